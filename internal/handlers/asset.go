package handlers

import (
	"io"
	"net/http"
	"regexp"

	"go.uber.org/zap"

	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/storage"
)

// AssetHandler принимает один файл за запрос, кладёт его в бакет под
// случайным ключом и возвращает публичный URL. Клиент загружает набор
// файлов серией таких запросов — по одному на файл.
type AssetHandler struct {
	Store  storage.ObjectStore
	Logger *zap.SugaredLogger
	Config *config.Config
}

func NewAssetHandler(store storage.ObjectStore, logger *zap.SugaredLogger, cfg *config.Config) *AssetHandler {
	return &AssetHandler{Store: store, Logger: logger, Config: cfg}
}

// каталог внутри бакета: только простые имена, без путей
var dirRe = regexp.MustCompile(`^[a-z0-9_-]+$`)

type uploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Upload обрабатывает POST /api/assets (multipart: file, dir).
func (h *AssetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetUserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	// Лимит общего тела запроса
	maxBody := int64(h.Config.AssetMaxSizeMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("upload: invalid multipart form", "error", err)
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	dir := r.FormValue("dir")
	if dir == "" {
		dir = "uploads"
	}
	if !dirRe.MatchString(dir) {
		h.Logger.Warnw("upload: bad dir", "dir", dir)
		writeError(w, http.StatusBadRequest, "invalid dir")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.Logger.Warnw("upload: missing file", "error", err)
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.Logger.Warnw("upload: failed to read file", "error", err)
		writeError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	maxAsset := int64(h.Config.AssetMaxSizeMB) * 1024 * 1024
	if int64(len(data)) > maxAsset {
		h.Logger.Warnw("upload: payload too large", "name", header.Filename, "size", len(data), "limit", maxAsset)
		writeError(w, http.StatusRequestEntityTooLarge, "payload too large")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	key := storage.RandomKey(dir, header.Filename)
	if err := h.Store.Upload(r.Context(), key, data, contentType); err != nil {
		h.Logger.Errorw("upload: store failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{Key: key, URL: h.Store.PublicURL(key)})
}
