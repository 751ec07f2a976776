// Data Transfer Objects for the authentication endpoints: the shapes of
// request and response bodies, separate from the stored User model.
package auth

// RegisterRequest represents the registration request payload.
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret123"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"secret123"`
}

// TokenResponse is returned to the client upon successful login.
// The field name is part of the public contract; do not rename it.
type TokenResponse struct {
	JWTToken string `json:"jwtToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}
