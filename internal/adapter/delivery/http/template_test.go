package http

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/session"
	"github.com/vadimbarashkov/utmka/internal/utm"
)

func (suite *HandlersTestSuite) template() *entity.Template {
	groupID := "grp-1"
	return &entity.Template{
		ID:        "tpl-1",
		Name:      "Newsletter",
		Source:    "alpinabook",
		Medium:    "email",
		CreatedAt: suite.createdAt,
		GroupID:   &groupID,
	}
}

func (suite *HandlersTestSuite) TestTemplates_Unauthorized() {
	suite.Run("missing token", func() {
		suite.sessionManagerMock.
			On("Authenticate", "").
			Once().
			Return(nil, session.ErrUnauthorized)

		suite.e.GET("/api/v1/templates").
			Expect().
			Status(http.StatusUnauthorized).
			JSON().Object().HasValue("message", "unauthorized")
	})

	suite.Run("revoked token", func() {
		suite.sessionManagerMock.
			On("Authenticate", "revoked").
			Once().
			Return(nil, session.ErrUnauthorized)

		suite.e.DELETE("/api/v1/groups/grp-1").
			WithHeader("Authorization", "Bearer revoked").
			Expect().
			Status(http.StatusUnauthorized)
	})
}

func (suite *HandlersTestSuite) TestCreateTemplate() {
	const path = "/api/v1/templates"

	suite.Run("validation error", func() {
		suite.authorize()

		resp := suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"source": "google"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "name")
	})

	suite.Run("blank name", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("CreateTemplate", mock.Anything, "  ", "google", "cpc", (*string)(nil)).
			Once().
			Return(nil, entity.ErrEmptyName)

		resp := suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "  ", "source": "google", "medium": "cpc"}).
			Expect().
			Status(http.StatusBadRequest).
			JSON().Object()

		resp.Value("errors").Array().Value(0).Object().
			HasValue("field", "name")
	})

	suite.Run("group not found", func() {
		suite.authorize()
		groupID := "missing"
		suite.templateUseCaseMock.
			On("CreateTemplate", mock.Anything, "Newsletter", "alpinabook", "email", &groupID).
			Once().
			Return(nil, entity.ErrGroupNotFound)

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "Newsletter", "source": "alpinabook", "medium": "email", "group_id": "missing"}).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().HasValue("message", "group not found")
	})

	suite.Run("success", func() {
		suite.authorize()
		groupID := "grp-1"
		suite.templateUseCaseMock.
			On("CreateTemplate", mock.Anything, "Newsletter", "alpinabook", "email", &groupID).
			Once().
			Return(suite.template(), nil)

		resp := suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "Newsletter", "source": "alpinabook", "medium": "email", "group_id": "grp-1"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object()

		resp.HasValue("id", "tpl-1")
		resp.HasValue("name", "Newsletter")
		resp.HasValue("source", "alpinabook")
		resp.HasValue("medium", "email")
		resp.HasValue("group_id", "grp-1")
		resp.ContainsKey("created_at")
	})
}

func (suite *HandlersTestSuite) TestListTemplates() {
	const path = "/api/v1/templates"

	suite.Run("success", func() {
		suite.authorize()
		ungrouped := *suite.template()
		ungrouped.ID = "tpl-2"
		ungrouped.GroupID = nil

		suite.templateUseCaseMock.
			On("ListTemplates", mock.Anything).
			Once().
			Return([]entity.Template{*suite.template(), ungrouped}, nil)

		resp := suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusOK).
			JSON().Array()

		resp.Length().IsEqual(2)
		resp.Value(0).Object().HasValue("group_id", "grp-1")
		resp.Value(1).Object().Value("group_id").IsNull()
	})
}

func (suite *HandlersTestSuite) TestFindTemplate() {
	path := "/api/v1/templates/%s"

	suite.Run("template not found", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("FindTemplate", mock.Anything, "missing").
			Once().
			Return(nil, fmt.Errorf("usecase: %w", entity.ErrTemplateNotFound))

		suite.e.GET(fmt.Sprintf(path, "missing")).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusNotFound).
			JSON().Object().HasValue("message", "template not found")
	})

	suite.Run("success", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("FindTemplate", mock.Anything, "tpl-1").
			Once().
			Return(suite.template(), nil)

		suite.e.GET(fmt.Sprintf(path, "tpl-1")).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusOK).
			JSON().Object().HasValue("id", "tpl-1")
	})
}

func (suite *HandlersTestSuite) TestLoadTemplate() {
	path := "/api/v1/templates/%s/form"

	suite.Run("template not found", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("LoadTemplate", mock.Anything, "missing", mock.AnythingOfType("*utm.Form")).
			Once().
			Return(entity.ErrTemplateNotFound)

		suite.e.GET(fmt.Sprintf(path, "missing")).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("success", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("LoadTemplate", mock.Anything, "tpl-1", mock.AnythingOfType("*utm.Form")).
			Once().
			Run(func(args mock.Arguments) {
				args.Get(2).(*utm.Form).LoadTemplate(&entity.Template{
					ID:     "tpl-1",
					Source: "partner",
					Medium: "email",
				})
			}).
			Return(nil)

		resp := suite.e.GET(fmt.Sprintf(path, "tpl-1")).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("state", "loaded")
		resp.HasValue("template_id", "tpl-1")
		resp.Value("source").Object().
			HasValue("text", "partner").
			HasValue("preset", "").
			HasValue("matches_preset", false)
		resp.Value("medium").Object().
			HasValue("text", "email").
			HasValue("preset", "email").
			HasValue("matches_preset", true)
	})
}

func (suite *HandlersTestSuite) TestUpdateTemplate() {
	path := "/api/v1/templates/%s"

	suite.Run("template not found", func() {
		suite.authorize()
		name := "Digest"
		suite.templateUseCaseMock.
			On("UpdateTemplate", mock.Anything, "missing", entity.TemplatePatch{Name: &name}).
			Once().
			Return(nil, entity.ErrTemplateNotFound)

		suite.e.PUT(fmt.Sprintf(path, "missing")).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "Digest"}).
			Expect().
			Status(http.StatusNotFound)
	})

	suite.Run("success", func() {
		suite.authorize()
		name, groupID := "Digest", ""
		updated := suite.template()
		updated.Name = "Digest"
		updated.GroupID = nil

		suite.templateUseCaseMock.
			On("UpdateTemplate", mock.Anything, "tpl-1", entity.TemplatePatch{Name: &name, GroupID: &groupID}).
			Once().
			Return(updated, nil)

		resp := suite.e.PUT(fmt.Sprintf(path, "tpl-1")).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "Digest", "group_id": ""}).
			Expect().
			Status(http.StatusOK).
			JSON().Object()

		resp.HasValue("name", "Digest")
		resp.Value("group_id").IsNull()
	})
}

func (suite *HandlersTestSuite) TestRemoveTemplate() {
	suite.Run("success", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("RemoveTemplate", mock.Anything, "tpl-1").
			Once().
			Return(nil)

		suite.e.DELETE("/api/v1/templates/tpl-1").
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusNoContent)
	})
}

func (suite *HandlersTestSuite) TestGroups() {
	const path = "/api/v1/groups"

	suite.Run("create validation error", func() {
		suite.authorize()

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{}).
			Expect().
			Status(http.StatusBadRequest)
	})

	suite.Run("create", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("CreateGroup", mock.Anything, "Ads").
			Once().
			Return(&entity.TemplateGroup{ID: "grp-1", Name: "Ads"}, nil)

		suite.e.POST(path).
			WithHeader("Authorization", "Bearer "+validToken).
			WithJSON(map[string]any{"name": "Ads"}).
			Expect().
			Status(http.StatusCreated).
			JSON().Object().
			HasValue("id", "grp-1").
			HasValue("name", "Ads")
	})

	suite.Run("list", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("ListGroups", mock.Anything).
			Once().
			Return([]entity.TemplateGroup{{ID: "grp-1", Name: "Ads"}}, nil)

		suite.e.GET(path).
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusOK).
			JSON().Array().Length().IsEqual(1)
	})

	suite.Run("remove", func() {
		suite.authorize()
		suite.templateUseCaseMock.
			On("RemoveGroup", mock.Anything, "grp-1").
			Once().
			Return(nil)

		suite.e.DELETE(path+"/grp-1").
			WithHeader("Authorization", "Bearer "+validToken).
			Expect().
			Status(http.StatusNoContent)
	})
}
