package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/service"
)

// UserHandler — регистрация, вход, проверка сессии и выход администратора.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type credentialsRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type sessionResponse struct {
	UserID int64 `json:"user_id"`
}

// Register создаёт администратора и сразу выдаёт auth cookie.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	u, err := h.UserService.Register(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrLoginTaken) {
		writeError(w, http.StatusConflict, "login already taken")
		return
	}
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusBadRequest, "login and password are required")
		return
	}
	if err != nil {
		h.Logger.Errorw("register failed", "login", req.Login, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("register: cookie failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{UserID: u.ID})
}

// Login проверяет пароль и выдаёт auth cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	u, err := h.UserService.Login(r.Context(), req.Login, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid login or password")
		return
	}
	if err != nil {
		h.Logger.Errorw("login failed", "login", req.Login, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := middleware.SetLoginCookie(w, u.ID, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("login: cookie failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{UserID: u.ID})
}

// Session отвечает 200 с id пользователя, если cookie валидна, иначе 401.
// Консоль зовёт его на старте, чтобы решить, пускать ли в админ-команды.
func (h *UserHandler) Session(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{UserID: uid})
}

// Logout сбрасывает auth cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.WriteHeader(http.StatusNoContent)
}
