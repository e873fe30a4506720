package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestID tags every request with a short id and logs method, path
// and duration, so report generation can be traced across log lines.
func RequestID(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()[:8]
		start := time.Now()
		next(w, r)
		log.Printf("[%s] %s %s (%s)", id, r.Method, r.URL.Path, time.Since(start).Round(time.Millisecond))
	}
}
