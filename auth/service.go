package auth

import (
	"context"

	"github.com/user/authsvc-go/apperror"
	"github.com/user/authsvc-go/config"
)

// AuthService provides the registration and login flows. Dependencies are
// injected through the constructor: the credential store and the auth
// configuration carrying the signing secret.
type AuthService struct {
	store      UserStore
	authConfig config.AuthConfig
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, authConfig config.AuthConfig) *AuthService {
	return &AuthService{
		store:      store,
		authConfig: authConfig,
	}
}

// Register creates a new user with a bcrypt-hashed password.
// The existence check and the insert are separate statements; two concurrent
// registrations for the same username can both pass the check, in which case
// the loser surfaces the store's ConflictError from the unique constraint
// instead of creating a second record.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	_, err := s.store.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return nil, apperror.NewConflictError("user already existed", nil)
	}
	if !apperror.IsNotFound(err) {
		return nil, apperror.NewDatabaseError("failed to look up user", err)
	}

	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperror.NewInternalError("failed to hash password", err)
	}

	user := &User{
		Username:       req.Username,
		HashedPassword: hashedPassword,
	}
	createdUser, err := s.store.CreateUser(ctx, user)
	if err != nil {
		if apperror.IsConflictError(err) {
			return nil, err
		}
		return nil, apperror.NewDatabaseError("failed to create user", err)
	}
	return createdUser, nil
}

// Login authenticates a user and returns a signed token bound to the
// username. Unknown users and wrong passwords produce distinct messages,
// which leaks which half of the credentials was wrong; kept for client
// compatibility, see DESIGN.md.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.store.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.NewBadRequestError("invalid user", nil)
		}
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}

	if !CheckPassword(req.Password, user.HashedPassword) {
		return nil, apperror.NewBadRequestError("invalid password", nil)
	}

	tokenString, err := IssueToken(user.Username, &s.authConfig)
	if err != nil {
		return nil, apperror.NewInternalError("failed to issue token", err)
	}
	return &TokenResponse{JWTToken: tokenString}, nil
}
