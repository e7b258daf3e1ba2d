package http

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type preferenceHandler struct {
	useCase  preferenceUseCase
	validate *validator.Validate
}

func newPreferenceHandler(useCase preferenceUseCase, validate *validator.Validate) *preferenceHandler {
	return &preferenceHandler{
		useCase:  useCase,
		validate: validate,
	}
}

func (h *preferenceHandler) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.useCase.Preferences(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toPreferencesResponse(prefs))
}

func (h *preferenceHandler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	prefs, err := h.useCase.UpdatePreferences(r.Context(), req.toEntity())
	if err != nil {
		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, toPreferencesResponse(prefs))
}
