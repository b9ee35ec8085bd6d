package http

import (
	"encoding/json"
	"net/http"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// MessageResponse represents an API message response
// @Description API message response
type MessageResponse struct {
	Message string `json:"message" example:"user deleted successfully"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks the document store connection)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  MessageResponse  "Store unreachable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleRegister godoc
// @Summary      Register a new user
// @Description  Create an account and receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.RegisterRequest  true  "Registration data"
// @Success      201      {object}  domain.AuthResponse
// @Failure      400      {object}  MessageResponse  "Invalid input or email already registered"
// @Failure      500      {object}  MessageResponse  "Internal server error"
// @Router       /api/auth/register [post]
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Register(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrAlreadyRegistered:
			writeError(w, http.StatusBadRequest, "user already exists")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "name, email, password and dateOfBirth are required")
		default:
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// handleLogin godoc
// @Summary      User login
// @Description  Authenticate with email and password to receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.AuthResponse
// @Failure      400      {object}  MessageResponse  "Invalid request body"
// @Failure      401      {object}  MessageResponse  "Invalid credentials"
// @Failure      500      {object}  MessageResponse  "Internal server error"
// @Router       /api/auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			// Same message whether the email or the password was wrong
			writeError(w, http.StatusUnauthorized, "invalid email or password")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "email and password are required")
		default:
			writeError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// User endpoints

// handleProfile godoc
// @Summary      Get current user profile
// @Description  Returns the authenticated user's projection
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.PublicUser
// @Failure      401  {object}  MessageResponse  "Unauthorized"
// @Router       /api/auth/profile [get]
func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	authUser := GetAuthUser(r.Context())
	if authUser == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := s.userService.Profile(r.Context(), authUser.ID)
	if err != nil {
		if err == domain.ErrUserNotFound {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// handleListUsers godoc
// @Summary      List users
// @Description  Returns projections for all registered users
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.PublicUser
// @Failure      401  {object}  MessageResponse  "Unauthorized"
// @Failure      500  {object}  MessageResponse  "Internal server error"
// @Router       /api/auth/users [get]
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// handleDeleteUser godoc
// @Summary      Delete a user
// @Description  Removes a user by id
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  MessageResponse
// @Failure      400  {object}  MessageResponse  "Missing user id"
// @Failure      401  {object}  MessageResponse  "Unauthorized"
// @Failure      404  {object}  MessageResponse  "Unknown user id"
// @Router       /api/auth/users/{id} [delete]
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "user id is required")
		return
	}

	if err := s.userService.Delete(r.Context(), id); err != nil {
		if err == domain.ErrUserNotFound {
			writeError(w, http.StatusNotFound, "user not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "user deleted successfully"})
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
