package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/repo"
)

// contentHandler — один CRUD-хендлер на контентную таблицу.
// Чтение публичное (его использует сайт), мутации требуют авторизации.
type contentHandler[M any] struct {
	table  string
	repo   *repo.TableRepository[M]
	logger *zap.SugaredLogger
}

// mountContent регистрирует CRUD-маршруты таблицы на роутере.
func mountContent[M any](r chi.Router, table string, rep *repo.TableRepository[M], logger *zap.SugaredLogger) {
	h := &contentHandler[M]{table: table, repo: rep, logger: logger}
	r.Get("/api/"+table, h.list)
	r.Post("/api/"+table, h.create)
	r.Put("/api/"+table+"/{id}", h.update)
	r.Delete("/api/"+table+"/{id}", h.delete)
}

// mountReadOnly регистрирует только чтение (профили).
func mountReadOnly[M any](r chi.Router, table string, rep *repo.TableRepository[M], logger *zap.SugaredLogger) {
	h := &contentHandler[M]{table: table, repo: rep, logger: logger}
	r.Get("/api/"+table, h.list)
}

func (h *contentHandler[M]) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Errorw("list failed", "table", h.table, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *contentHandler[M]) create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var m M
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		h.logger.Warnw("create: invalid payload", "table", h.table, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := h.repo.Insert(r.Context(), &m); err != nil {
		h.logger.Errorw("create failed", "table", h.table, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusCreated, m)
}

func (h *contentHandler[M]) update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	var m M
	// Второй разбор в map даёт список присланных ключей: частичный
	// payload (например {"read": true}) обновляет только свои колонки,
	// не затирая остальные нулевыми значениями.
	var present map[string]json.RawMessage
	if err := json.Unmarshal(body, &m); err != nil {
		h.logger.Warnw("update: invalid payload", "table", h.table, "id", id, "error", err)
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if err := json.Unmarshal(body, &present); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	err = h.repo.Update(r.Context(), id, &m, h.repo.ColumnsIn(present))
	if errors.Is(err, repo.ErrNoFields) {
		writeError(w, http.StatusBadRequest, "no editable fields in payload")
		return
	}
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		h.logger.Errorw("update failed", "table", h.table, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	fresh, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		h.logger.Errorw("update: reread failed", "table", h.table, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, fresh)
}

func (h *contentHandler[M]) delete(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id := chi.URLParam(r, "id")
	err := h.repo.Delete(r.Context(), id)
	if errors.Is(err, repo.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		h.logger.Errorw("delete failed", "table", h.table, "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError отвечает ошибкой в едином JSON-виде {"error": "..."}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
