package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/utmka/internal/utm"
)

type templateHandler struct {
	useCase  templateUseCase
	catalog  utm.Catalog
	validate *validator.Validate
}

func newTemplateHandler(useCase templateUseCase, catalog utm.Catalog, validate *validator.Validate) *templateHandler {
	return &templateHandler{
		useCase:  useCase,
		catalog:  catalog,
		validate: validate,
	}
}

func (h *templateHandler) createTemplate(w http.ResponseWriter, r *http.Request) {
	var req templateRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	t, err := h.useCase.CreateTemplate(r.Context(), req.Name, req.Source, req.Medium, req.GroupID)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toTemplateResponse(t))
}

func (h *templateHandler) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.useCase.ListTemplates(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]templateResponse, 0, len(templates))
	for i := range templates {
		resp = append(resp, toTemplateResponse(&templates[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *templateHandler) findTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	t, err := h.useCase.FindTemplate(r.Context(), id)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toTemplateResponse(t))
}

// loadTemplate returns the generator form as it looks after loading the template.
func (h *templateHandler) loadTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	form := utm.NewForm(h.catalog)

	if err := h.useCase.LoadTemplate(r.Context(), id, form); err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toFormResponse(form.Snapshot()))
}

func (h *templateHandler) updateTemplate(w http.ResponseWriter, r *http.Request) {
	var req templatePatchRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	id := chi.URLParam(r, "id")

	t, err := h.useCase.UpdateTemplate(r.Context(), id, req.toEntity())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toTemplateResponse(t))
}

func (h *templateHandler) removeTemplate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.useCase.RemoveTemplate(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *templateHandler) createGroup(w http.ResponseWriter, r *http.Request) {
	var req groupRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	g, err := h.useCase.CreateGroup(r.Context(), req.Name)
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, groupResponse{ID: g.ID, Name: g.Name})
}

func (h *templateHandler) listGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.useCase.ListGroups(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]groupResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, groupResponse{ID: g.ID, Name: g.Name})
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *templateHandler) removeGroup(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.useCase.RemoveGroup(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
