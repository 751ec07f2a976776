// HTTP handlers for the users module. The routes here sit behind the JWT
// middleware; by the time a handler runs, verified claims are already in the
// request context.
package users

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/user/authsvc-go/auth"
)

// UserLister is the service dependency of the handlers, kept as an interface
// so handler tests can substitute a fake.
type UserLister interface {
	ListUsers(ctx context.Context) ([]UserRecord, error)
}

// UserHandlers provides HTTP handlers for user listing.
type UserHandlers struct {
	service UserLister
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service UserLister) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleListUsers godoc
// @Summary List all users
// @Description Returns every user record, including the stored password hash.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserRecord "All user records"
// @Failure 401 {string} string "Invalid JWT Token"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users/ [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := h.service.ListUsers(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(records)
	}
}
