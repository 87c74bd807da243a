package session

import (
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/spendwell/spendwell/internal/rest"
	"github.com/spendwell/spendwell/pkg/user"
)

// CookieName is the name of the HTTP cookie carrying the session token.
const CookieName = "spendwell_session"

type CredentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponseDTO struct {
	Message string       `json:"message"`
	User    user.UserDTO `json:"user"`
}

type AuthHandler struct {
	userService    user.Service
	sessionService Service
	secureCookie   bool
}

func NewAuthHandler(userService user.Service, sessionService Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		secureCookie:   secureCookie,
	}
}

// Login godoc
// @Summary Authenticate and start a session
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsDTO true "Credentials"
// @Success 200 {object} LoginResponseDTO
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 401 {object} rest.ErrorResponse "Invalid credentials"
// @Router /api/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var credentials CredentialsDTO
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid request body format"})
		return
	}
	if credentials.Username == "" || credentials.Password == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Username and password required"})
		return
	}

	authenticated, err := h.userService.Authenticate(r.Context(), credentials.Username, credentials.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(rest.ErrorResponse{Error: "Invalid credentials"})
			return
		}
		log.Errorf("login failed: %v", err)
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	session, err := h.sessionService.Start(r.Context(), authenticated.Id)
	if err != nil {
		log.Errorf("failed to start session: %v", err)
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	log.Infof("user logged in: %s", authenticated.Username)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(LoginResponseDTO{
		Message: "Login successful",
		User:    user.UserToDTO(authenticated),
	}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {string} string "Logged out"
// @Failure 401 {string} string "Not authenticated"
// @Router /api/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cookie, err := r.Cookie(CookieName)
	if err != nil {
		http.Error(w, "Not authenticated", http.StatusUnauthorized)
		return
	}
	if err := h.sessionService.End(r.Context(), cookie.Value); err != nil {
		log.Errorf("failed to end session: %v", err)
		http.Error(w, "Logout failed", http.StatusInternalServerError)
		return
	}

	// Expire the cookie client-side as well.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out successfully"})
}
