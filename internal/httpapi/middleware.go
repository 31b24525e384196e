package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"coffeeshop/internal/observability"
)

// serverTimingWriter appends the app timing entry just before the
// response headers are committed; anything added after WriteHeader is
// silently dropped by the server.
type serverTimingWriter struct {
	http.ResponseWriter
	start time.Time
	durMs float64
	wrote bool
}

func (sw *serverTimingWriter) WriteHeader(status int) {
	if !sw.wrote {
		sw.wrote = true
		sw.durMs = elapsedMs(sw.start)
		observability.AppendServerTiming(sw.ResponseWriter, "app", sw.durMs, "")
	}
	sw.ResponseWriter.WriteHeader(status)
}

// ServerTimingApp measures total request processing time, writes
// app;dur=... to Server-Timing and reports the request to Metrics.
func ServerTimingApp(m observability.Metrics) func(http.Handler) http.Handler {
	if m == nil {
		m = observability.Noop{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sw := &serverTimingWriter{ResponseWriter: w, start: time.Now()}
			ww := middleware.NewWrapResponseWriter(sw, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			dur := sw.durMs
			if !sw.wrote {
				// The handler wrote nothing, so the headers are still open.
				dur = elapsedMs(sw.start)
				observability.AppendServerTiming(w, "app", dur, "")
			}
			m.ObserveHTTP(r.Method, r.URL.Path, ww.Status(), dur)
		})
	}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
