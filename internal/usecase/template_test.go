package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/utm"
	"github.com/vadimbarashkov/utmka/mocks/usecase"
)

type TemplateUseCaseTestSuite struct {
	suite.Suite
	errUnknown       error
	createdAt        time.Time
	templateRepoMock *usecase.MockTemplateRepository
	uc               *TemplateUseCase
}

func (suite *TemplateUseCaseTestSuite) SetupSuite() {
	suite.errUnknown = errors.New("unknown error")
	suite.createdAt = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *TemplateUseCaseTestSuite) SetupSubTest() {
	suite.templateRepoMock = usecase.NewMockTemplateRepository(suite.T())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.uc = NewTemplateUseCase(logger, suite.templateRepoMock)
	suite.uc.now = func() time.Time { return suite.createdAt }
	suite.uc.newID = func() (string, error) { return "tpl-1", nil }
}

func (suite *TemplateUseCaseTestSuite) TearDownSubTest() {
	suite.templateRepoMock.AssertExpectations(suite.T())
}

func ptr[T any](v T) *T {
	return &v
}

func (suite *TemplateUseCaseTestSuite) template() *entity.Template {
	return &entity.Template{
		ID:        "tpl-1",
		Name:      "Newsletter",
		Source:    "alpinabook",
		Medium:    "email",
		CreatedAt: suite.createdAt,
	}
}

func (suite *TemplateUseCaseTestSuite) TestCreateTemplate() {
	suite.Run("empty name", func() {
		t, err := suite.uc.CreateTemplate(context.Background(), "   ", "google", "cpc", nil)

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrEmptyName)
		suite.Nil(t)
	})

	suite.Run("group not found", func() {
		want := suite.template()
		want.GroupID = ptr("missing")

		suite.templateRepoMock.
			On("SaveTemplate", context.Background(), want).
			Once().
			Return(entity.ErrGroupNotFound)

		t, err := suite.uc.CreateTemplate(context.Background(), "Newsletter", "alpinabook", "email", ptr("missing"))

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrGroupNotFound)
		suite.Nil(t)
	})

	suite.Run("blank group is ungrouped", func() {
		suite.templateRepoMock.
			On("SaveTemplate", context.Background(), suite.template()).
			Once().
			Return(nil)

		t, err := suite.uc.CreateTemplate(context.Background(), " Newsletter ", " alpinabook ", "email", ptr(""))

		suite.NoError(err)
		suite.Equal(suite.template(), t)
	})

	suite.Run("success", func() {
		want := suite.template()
		want.GroupID = ptr("grp-1")

		suite.templateRepoMock.
			On("SaveTemplate", context.Background(), want).
			Once().
			Return(nil)

		t, err := suite.uc.CreateTemplate(context.Background(), "Newsletter", "alpinabook", "email", ptr("grp-1"))

		suite.NoError(err)
		suite.Equal(want, t)
	})
}

func (suite *TemplateUseCaseTestSuite) TestUpdateTemplate() {
	suite.Run("not found", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "missing").
			Once().
			Return(nil, entity.ErrTemplateNotFound)

		t, err := suite.uc.UpdateTemplate(context.Background(), "missing", entity.TemplatePatch{Name: ptr("x")})

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrTemplateNotFound)
		suite.Nil(t)
	})

	suite.Run("empty name", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "tpl-1").
			Once().
			Return(suite.template(), nil)

		t, err := suite.uc.UpdateTemplate(context.Background(), "tpl-1", entity.TemplatePatch{Name: ptr(" ")})

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrEmptyName)
		suite.Nil(t)
	})

	suite.Run("unknown error", func() {
		want := suite.template()
		want.Medium = "social"

		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "tpl-1").
			Once().
			Return(suite.template(), nil)

		suite.templateRepoMock.
			On("UpdateTemplate", context.Background(), want).
			Once().
			Return(suite.errUnknown)

		t, err := suite.uc.UpdateTemplate(context.Background(), "tpl-1", entity.TemplatePatch{Medium: ptr("social")})

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(t)
	})

	suite.Run("success", func() {
		stored := suite.template()
		stored.GroupID = ptr("grp-1")

		want := suite.template()
		want.Name = "Digest"
		want.Source = "vk"

		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "tpl-1").
			Once().
			Return(stored, nil)

		suite.templateRepoMock.
			On("UpdateTemplate", context.Background(), want).
			Once().
			Return(nil)

		t, err := suite.uc.UpdateTemplate(context.Background(), "tpl-1", entity.TemplatePatch{
			Name:    ptr("Digest"),
			Source:  ptr("vk"),
			GroupID: ptr(""),
		})

		suite.NoError(err)
		suite.Equal(want, t)
	})
}

func (suite *TemplateUseCaseTestSuite) TestRemoveTemplate() {
	suite.Run("not found", func() {
		suite.templateRepoMock.
			On("RemoveTemplate", context.Background(), "missing").
			Once().
			Return(entity.ErrTemplateNotFound)

		suite.NoError(suite.uc.RemoveTemplate(context.Background(), "missing"))
	})

	suite.Run("unknown error", func() {
		suite.templateRepoMock.
			On("RemoveTemplate", context.Background(), "tpl-1").
			Once().
			Return(suite.errUnknown)

		err := suite.uc.RemoveTemplate(context.Background(), "tpl-1")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.templateRepoMock.
			On("RemoveTemplate", context.Background(), "tpl-1").
			Once().
			Return(nil)

		suite.NoError(suite.uc.RemoveTemplate(context.Background(), "tpl-1"))
	})
}

func (suite *TemplateUseCaseTestSuite) TestFindTemplate() {
	suite.Run("not found", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "missing").
			Once().
			Return(nil, entity.ErrTemplateNotFound)

		t, err := suite.uc.FindTemplate(context.Background(), "missing")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrTemplateNotFound)
		suite.Nil(t)
	})

	suite.Run("success", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "tpl-1").
			Once().
			Return(suite.template(), nil)

		t, err := suite.uc.FindTemplate(context.Background(), "tpl-1")

		suite.NoError(err)
		suite.Equal(suite.template(), t)
	})
}

func (suite *TemplateUseCaseTestSuite) TestListTemplates() {
	suite.Run("unknown error", func() {
		suite.templateRepoMock.
			On("ListTemplates", context.Background()).
			Once().
			Return(nil, suite.errUnknown)

		templates, err := suite.uc.ListTemplates(context.Background())

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(templates)
	})

	suite.Run("success", func() {
		want := []entity.Template{*suite.template()}

		suite.templateRepoMock.
			On("ListTemplates", context.Background()).
			Once().
			Return(want, nil)

		templates, err := suite.uc.ListTemplates(context.Background())

		suite.NoError(err)
		suite.Equal(want, templates)
	})
}

func (suite *TemplateUseCaseTestSuite) TestLoadTemplate() {
	suite.Run("not found", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "missing").
			Once().
			Return(nil, entity.ErrTemplateNotFound)

		form := utm.NewForm(utm.DefaultCatalog())
		err := suite.uc.LoadTemplate(context.Background(), "missing", form)

		suite.ErrorIs(err, entity.ErrTemplateNotFound)
		suite.Equal(utm.FormEmpty, form.State())
	})

	suite.Run("success", func() {
		suite.templateRepoMock.
			On("FindTemplate", context.Background(), "tpl-1").
			Once().
			Return(suite.template(), nil)

		form := utm.NewForm(utm.DefaultCatalog())
		err := suite.uc.LoadTemplate(context.Background(), "tpl-1", form)

		suite.NoError(err)

		snap := form.Snapshot()
		suite.Equal(utm.FormLoaded, snap.State)
		suite.Equal("tpl-1", snap.TemplateID)
		suite.Equal("alpinabook", snap.Source.Preset)
		suite.Equal("email", snap.Medium.Preset)
	})
}

func (suite *TemplateUseCaseTestSuite) TestCreateGroup() {
	suite.Run("empty name", func() {
		g, err := suite.uc.CreateGroup(context.Background(), "")

		suite.Error(err)
		suite.ErrorIs(err, entity.ErrEmptyName)
		suite.Nil(g)
	})

	suite.Run("unknown error", func() {
		suite.templateRepoMock.
			On("SaveGroup", context.Background(), &entity.TemplateGroup{ID: "tpl-1", Name: "Ads"}).
			Once().
			Return(suite.errUnknown)

		g, err := suite.uc.CreateGroup(context.Background(), "Ads")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
		suite.Nil(g)
	})

	suite.Run("success", func() {
		want := &entity.TemplateGroup{ID: "tpl-1", Name: "Ads"}

		suite.templateRepoMock.
			On("SaveGroup", context.Background(), want).
			Once().
			Return(nil)

		g, err := suite.uc.CreateGroup(context.Background(), " Ads ")

		suite.NoError(err)
		suite.Equal(want, g)
	})
}

func (suite *TemplateUseCaseTestSuite) TestListGroups() {
	suite.Run("success", func() {
		want := []entity.TemplateGroup{{ID: "grp-1", Name: "Ads"}}

		suite.templateRepoMock.
			On("ListGroups", context.Background()).
			Once().
			Return(want, nil)

		groups, err := suite.uc.ListGroups(context.Background())

		suite.NoError(err)
		suite.Equal(want, groups)
	})
}

func (suite *TemplateUseCaseTestSuite) TestRemoveGroup() {
	suite.Run("not found", func() {
		suite.templateRepoMock.
			On("RemoveGroup", context.Background(), "missing").
			Once().
			Return(entity.ErrGroupNotFound)

		suite.NoError(suite.uc.RemoveGroup(context.Background(), "missing"))
	})

	suite.Run("unknown error", func() {
		suite.templateRepoMock.
			On("RemoveGroup", context.Background(), "grp-1").
			Once().
			Return(suite.errUnknown)

		err := suite.uc.RemoveGroup(context.Background(), "grp-1")

		suite.Error(err)
		suite.ErrorIs(err, suite.errUnknown)
	})

	suite.Run("success", func() {
		suite.templateRepoMock.
			On("RemoveGroup", context.Background(), "grp-1").
			Once().
			Return(nil)

		suite.NoError(suite.uc.RemoveGroup(context.Background(), "grp-1"))
	})
}

func TestTemplateUseCase(t *testing.T) {
	suite.Run(t, new(TemplateUseCaseTestSuite))
}
