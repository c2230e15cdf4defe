package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"PortfolioDesk/internal/model"
	"PortfolioDesk/internal/repo"
)

// ContactHandler — публичная форма контактов: единственная запись,
// которую сайт создаёт без авторизации.
type ContactHandler struct {
	Repo   *repo.TableRepository[model.ContactSubmission]
	Logger *zap.SugaredLogger
}

func NewContactHandler(rep *repo.TableRepository[model.ContactSubmission], logger *zap.SugaredLogger) *ContactHandler {
	return &ContactHandler{Repo: rep, Logger: logger}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit обрабатывает POST /api/contact.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.Name == "" || req.Email == "" || req.Subject == "" || req.Message == "" {
		writeError(w, http.StatusBadRequest, "all fields are required")
		return
	}
	sub := &model.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.Repo.Insert(r.Context(), sub); err != nil {
		h.Logger.Errorw("contact: insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}
