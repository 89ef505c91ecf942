package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				rid := GetRequestID(r)
				if rid == "" {
					rid = "unknown"
				}
				log.Printf("[PANIC] RequestID=%s %s %s: %v\n%s",
					rid, r.Method, r.URL.Path, err, debug.Stack())

				apperr.WriteStatus(w, r, http.StatusInternalServerError, "", "Internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
