package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/utmka/internal/entity"
)

const idempotencyKeyHeader = "Idempotency-Key"

type linkHandler struct {
	useCase  linkUseCase
	validate *validator.Validate
}

func newLinkHandler(useCase linkUseCase, validate *validator.Validate) *linkHandler {
	return &linkHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *linkHandler) generateLink(w http.ResponseWriter, r *http.Request) {
	var req linkRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	key := r.Header.Get(idempotencyKeyHeader)

	item, err := h.useCase.GenerateLinkOnce(r.Context(), key, req.toEntity())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, toLinkResponse(item))
}

func (h *linkHandler) listLinks(w http.ResponseWriter, r *http.Request) {
	var order entity.SortOrder

	if s := r.URL.Query().Get("sort"); s != "" {
		o, err := entity.ParseSortOrder(s)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, fieldErrorResponse("sort", messageForTag("oneof")))
			return
		}
		order = o
	}

	items, err := h.useCase.ListLinks(r.Context(), order)
	if err != nil {
		renderError(w, r, err)
		return
	}

	resp := make([]linkResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toLinkResponse(&items[i]))
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *linkHandler) removeLink(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.useCase.RemoveLink(r.Context(), id); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
