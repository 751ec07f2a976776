// HTTP handlers for the authentication endpoints. Handlers decode and
// validate request bodies, delegate to AuthService, and translate results
// into HTTP responses.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/user/authsvc-go/apperror"
)

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user with a username and password.
// @Tags Auth
// @Accept json
// @Produce plain
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 200 {string} string "User Created Successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - missing fields or username taken"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /register/ [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		// Existence checks only; no further validation by design.
		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		if _, err := h.service.Register(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		writeText(w, http.StatusOK, "User Created Successfully")
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials and returns a signed bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful, token provided"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - unknown user or wrong password"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login/ [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// writeText writes a plain-text response body with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// WriteError writes a standardized JSON error response. Errors that are not
// *AppError values are wrapped as internal errors so nothing unhandled leaks
// to the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}
	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
