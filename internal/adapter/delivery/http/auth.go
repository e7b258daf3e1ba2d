package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/vadimbarashkov/utmka/internal/session"
)

type authHandler struct {
	sessions sessionManager
	validate *validator.Validate
}

func newAuthHandler(sessions sessionManager, validate *validator.Validate) *authHandler {
	return &authHandler{
		sessions: sessions,
		validate: validate,
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>" header.
func bearerToken(r *http.Request) string {
	const prefix = "bearer "

	h := r.Header.Get("Authorization")
	if len(h) < len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(h[len(prefix):])
}

// requireSession rejects requests without a valid session and stores the
// session in the request context otherwise.
func (h *authHandler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, err := h.sessions.Authenticate(bearerToken(r))
		if err != nil {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, unauthorizedResponse)
			return
		}

		next.ServeHTTP(w, r.WithContext(session.WithContext(r.Context(), sess)))
	})
}

func (h *authHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	if !decodeRequest(w, r, h.validate, &req) {
		return
	}

	token, sess, err := h.sessions.Login(req.Email)
	if err != nil {
		if errors.Is(err, session.ErrInvalidEmail) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, fieldErrorResponse("email", messageForTag("email")))
			return
		}

		renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, loginResponse{Token: token, ExpiresAt: sess.ExpiresAt})
}

func (h *authHandler) logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(bearerToken(r)); err != nil {
		renderError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *authHandler) currentSession(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{}

	if token := bearerToken(r); token != "" {
		if sess, err := h.sessions.Authenticate(token); err == nil {
			resp.LoggedIn = true
			resp.Email = sess.Email
		}
	}

	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}
