package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/ukydev/truck-fleet-tracker/internal/auth"
	"github.com/ukydev/truck-fleet-tracker/internal/middleware"
	"github.com/ukydev/truck-fleet-tracker/internal/models"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	authService *auth.Service
	users       auth.UserStore
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService *auth.Service, users auth.UserStore) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
	}
}

// Login checks credentials against the static user table and issues a token
// carrying the user's role.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		errorJSON(w, http.StatusBadRequest, "Failed to read request body")
		return
	}

	var loginReq models.LoginRequest
	if err := json.Unmarshal(body, &loginReq); err != nil {
		errorJSON(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if loginReq.Username == "" || loginReq.Password == "" {
		errorJSON(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.users.FindByUsername(loginReq.Username)
	if err != nil {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !h.authService.CheckPassword(loginReq.Password, user.PasswordHash) {
		errorJSON(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Token: token,
		Role:  user.Role,
	})
}

// Me returns the claims of the authenticated caller.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		errorJSON(w, http.StatusUnauthorized, "User context not found")
		return
	}
	writeJSON(w, http.StatusOK, claims)
}
