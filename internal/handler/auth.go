package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/photovault/photovault/internal/auth"
	"github.com/photovault/photovault/internal/handler/dto"
	"github.com/photovault/photovault/internal/service"
)

// AuthHandler serves signup, signin and the current user's profile.
type AuthHandler struct {
	users          UserService
	logger         *slog.Logger
	maxRequestSize int64
}

// NewAuthHandler creates a new AuthHandler. maxRequestSize bounds
// multipart profile updates.
func NewAuthHandler(users UserService, logger *slog.Logger, maxRequestSize int64) *AuthHandler {
	return &AuthHandler{
		users:          users,
		logger:         logger,
		maxRequestSize: maxRequestSize,
	}
}

// Signup creates an account.
// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	user, err := h.users.Register(r.Context(), service.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Info("user_registered", slog.String("user_id", user.ID))
	writeJSON(w, http.StatusOK, dto.APIResponse{Success: true, Message: "User registered successfully"})
}

// Signin exchanges credentials for a bearer token.
// POST /api/auth/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req dto.SigninRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	token, user, err := h.users.Signin(r.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	h.logger.Debug("user_signed_in", slog.String("user_id", user.ID))
	writeJSON(w, http.StatusOK, dto.NewTokenResponse(token))
}

// Me returns the authenticated user's profile.
// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.GetCurrentUser(r.Context(), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToUserProfileResponse(user))
}

// ProfilePicture streams the stored avatar bytes.
// GET /api/auth/profile-picture
func (h *AuthHandler) ProfilePicture(w http.ResponseWriter, r *http.Request) {
	pic, err := h.users.GetProfilePicture(r.Context(), auth.MustUserIDFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	contentType := pic.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(pic.Data)))
	w.Header().Set("Cache-Control", "private, no-cache")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pic.Data)
}

// UpdateProfile changes the profile from a multipart form. Omitting the
// profilePicture part removes the current picture; sending it empty keeps it.
// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, h.maxRequestSize); err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	username, _ := formValue(r, "username")
	email, _ := formValue(r, "email")
	password, _ := formValue(r, "password")

	picture, err := firstUpload(r, "profilePicture")
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}
	if picture == nil {
		// A text part with the same name is how clients send "unchanged".
		if _, sent := formValue(r, "profilePicture"); sent {
			picture = &service.Upload{}
		}
	}

	user, err := h.users.UpdateProfile(r.Context(), service.UpdateProfileInput{
		UserID:         auth.MustUserIDFromContext(r.Context()),
		Username:       username,
		Email:          email,
		Password:       password,
		ProfilePicture: picture,
	})
	if err != nil {
		handleServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToUserProfileResponse(user))
}
