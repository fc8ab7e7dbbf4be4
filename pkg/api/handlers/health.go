package handlers

import (
	"context"
	"net/http"
)

const maxListedTables = 10

type DatabaseDiagnostics interface {
	Ping(ctx context.Context) error
	ListTables(ctx context.Context, limit int) ([]string, error)
}

type healthResponse struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	ConnectionStatus string   `json:"connection_status"`
	Tables           []string `json:"tables"`
}

// Health reports backend and database availability. The database is
// optional, so its failures only change the report, never the status code.
func Health(db DatabaseDiagnostics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := healthResponse{
			Backend:          "running",
			Database:         "not configured",
			ConnectionStatus: "not connected",
			Tables:           []string{},
		}

		if db != nil {
			if err := db.Ping(r.Context()); err != nil {
				resp.Database = "error: " + err.Error()
			} else {
				resp.Database = "available"
				resp.ConnectionStatus = "connected"
				if tables, err := db.ListTables(r.Context(), maxListedTables); err == nil {
					resp.Tables = tables
				}
			}
		}

		respondJSON(w, http.StatusOK, resp)
	}
}
