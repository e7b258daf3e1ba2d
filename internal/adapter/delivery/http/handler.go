package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/httplog/v2"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/utmka/internal/entity"
	"github.com/vadimbarashkov/utmka/internal/session"
	"github.com/vadimbarashkov/utmka/internal/utm"
)

func handlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "pong")
}

type linkUseCase interface {
	GenerateLinkOnce(ctx context.Context, key string, params entity.LinkParameters) (*entity.HistoryItem, error)
	ListLinks(ctx context.Context, order entity.SortOrder) ([]entity.HistoryItem, error)
	RemoveLink(ctx context.Context, id string) error
}

type templateUseCase interface {
	CreateTemplate(ctx context.Context, name, source, medium string, groupID *string) (*entity.Template, error)
	UpdateTemplate(ctx context.Context, id string, patch entity.TemplatePatch) (*entity.Template, error)
	RemoveTemplate(ctx context.Context, id string) error
	FindTemplate(ctx context.Context, id string) (*entity.Template, error)
	ListTemplates(ctx context.Context) ([]entity.Template, error)
	LoadTemplate(ctx context.Context, id string, form *utm.Form) error
	CreateGroup(ctx context.Context, name string) (*entity.TemplateGroup, error)
	ListGroups(ctx context.Context) ([]entity.TemplateGroup, error)
	RemoveGroup(ctx context.Context, id string) error
}

type preferenceUseCase interface {
	Preferences(ctx context.Context) (*entity.Preferences, error)
	UpdatePreferences(ctx context.Context, patch entity.PreferencesPatch) (*entity.Preferences, error)
}

type sessionManager interface {
	Login(email string) (string, *session.Session, error)
	Logout(token string) error
	Authenticate(token string) (*session.Session, error)
}

func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return validate
}

// decodeRequest decodes and validates the JSON body into v. It writes the
// error response itself and reports whether the handler may continue.
func decodeRequest(w http.ResponseWriter, r *http.Request, validate *validator.Validate, v any) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		if errors.Is(err, io.EOF) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, emptyRequestBodyResponse)
			return false
		}

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidRequestBodyResponse)
		return false
	}

	if err := validate.Struct(v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, validationErrorResponse(err))
		return false
	}

	return true
}

// renderError maps err to a response. Unexpected errors are attached to
// the request log entry.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, entity.ErrIncompleteSource):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, fieldErrorResponse("source", "source is required"))
	case errors.Is(err, entity.ErrInvalidURL):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, fieldErrorResponse("base_url", "invalid url"))
	case errors.Is(err, entity.ErrEmptyName):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, fieldErrorResponse("name", "this field is required"))
	case errors.Is(err, entity.ErrInvalidPreference):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, invalidPreferenceResponse)
	case errors.Is(err, entity.ErrLinkNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, linkNotFoundResponse)
	case errors.Is(err, entity.ErrTemplateNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, templateNotFoundResponse)
	case errors.Is(err, entity.ErrGroupNotFound):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, groupNotFoundResponse)
	case errors.Is(err, session.ErrUnauthorized):
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, unauthorizedResponse)
	default:
		httplog.LogEntrySetField(r.Context(), "err", slog.AnyValue(err))

		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, serverErrorResponse)
	}
}
