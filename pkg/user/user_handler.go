package user

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
)

type UserDTO struct {
	Uid         string `json:"uid"`
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
}

type RegistrationDTO struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	DisplayName string `json:"displayName,omitempty"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new user account with username and password
// @Tags User
// @Accept json
// @Produce json
// @Param registration body RegistrationDTO true "Registration"
// @Success 201 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 409 {object} rest.ErrorResponse "Username already taken"
// @Router /api/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Registering user")

	var registration RegistrationDTO
	if err := json.NewDecoder(r.Body).Decode(&registration); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}

	created, err := h.userService.Register(r.Context(), Registration{
		Username:    registration.Username,
		Password:    registration.Password,
		DisplayName: registration.DisplayName,
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Username already exists"})
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Username and password required"})
			return
		}
		log.Errorf("failed to register user: %v", err)
		http.Error(w, "Registration failed", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(UserToDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CurrentUser godoc
// @Summary Get the authenticated user
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 401 {string} string "Not authenticated"
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	current, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			http.Error(w, "Not authenticated", http.StatusUnauthorized)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(UserToDTO(current)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func UserToDTO(u User) UserDTO {
	return UserDTO{
		Uid:         u.Uid,
		Username:    u.Username,
		DisplayName: u.DisplayName,
	}
}
