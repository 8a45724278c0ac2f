package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// MetricsRecorder интерфейс сборщика метрик HTTP запросов
type MetricsRecorder interface {
	ObserveHTTPRequest(service, method, path string, status int, duration time.Duration)
}

// statusWriter оборачивает http.ResponseWriter и запоминает статус ответа
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// MetricsMiddleware записывает метрики каждого HTTP запроса. В качестве пути
// используется шаблон маршрута, чтобы не плодить метрики на каждый ID.
func MetricsMiddleware(recorder MetricsRecorder, serviceName string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			path := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					path = template
				}
			}

			recorder.ObserveHTTPRequest(serviceName, r.Method, path, sw.status, time.Since(start))
		})
	}
}
