package api

import (
	"log"
	"net/http"
	"route-directions-service/internal/platform/obs"
	"runtime/debug"
	"time"
)

const requestIDHeader = "X-Request-ID"

// responseRecorder remembers the status and size of what a handler wrote.
type responseRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *responseRecorder) WriteHeader(code int) {
	if w.status == 0 {
		w.status = code
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger assigns a request id (reusing a client-supplied X-Request-ID),
// turns handler panics into 500 responses and logs one line per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ctx, reqID := obs.WithRequestID(r.Context(), r.Header.Get(requestIDHeader))
		r = r.WithContext(ctx)
		w.Header().Set(requestIDHeader, reqID)

		rec := &responseRecorder{ResponseWriter: w}

		defer func() {
			if p := recover(); p != nil {
				log.Printf("req_id=%s panic=%v\n%s", reqID, p, debug.Stack())
				if rec.status == 0 {
					http.Error(rec, `{"error":"internal server error"}`, http.StatusInternalServerError)
				}
			}

			log.Printf(
				"req_id=%s method=%s path=%s status=%d bytes=%d dur=%dms",
				reqID, r.Method, r.URL.RequestURI(), rec.status, rec.bytes, time.Since(start).Milliseconds(),
			)
		}()

		next.ServeHTTP(rec, r)
	})
}
