package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/milibrary/milibrary-api/internal/api/apperr"
	"github.com/milibrary/milibrary-api/internal/api/httpx"
	storebooks "github.com/milibrary/milibrary-api/internal/store/books"
	"github.com/milibrary/milibrary-api/internal/store/dbx"
)

type HealthStatus struct {
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
	DatabaseStatus string    `json:"database_status"`
}

// Health reports healthy only when the database answers; otherwise it fails
// with 500 rather than returning a degraded body.
func Health(pool dbx.Acquirer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := pool.WithConn(r.Context(), func(conn *sql.Conn) error {
			return storebooks.Ping(r.Context(), conn)
		})
		if err != nil {
			apperr.Respond(w, r, apperr.Internal("Database connection failed", err))
			return
		}
		httpx.OK(w, HealthStatus{
			Status:         "healthy",
			Timestamp:      time.Now(),
			DatabaseStatus: "connected",
		})
	}
}
