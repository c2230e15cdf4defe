package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

// пакетный логгер; до SetLogger — no-op, чтобы мидлварь была безопасна в тестах
var logger = zap.NewNop().Sugar()

// SetLogger передаёт логгер приложения в мидлварь.
func SetLogger(l *zap.SugaredLogger) {
	if l != nil {
		logger = l
	}
}

// statusRecorder перехватывает код и размер ответа.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// WithLogging логирует метод, путь, статус, размер и длительность запроса.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}
		logger.Infow("request",
			"method", r.Method,
			"uri", r.RequestURI,
			"status", rec.status,
			"size", rec.size,
			"duration", time.Since(start),
		)
	})
}
