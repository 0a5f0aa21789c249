package endpoints

import (
	"net/http"

	"github.com/novatech/blog-api/pkg/server"
)

// statusResponse reports service health
type statusResponse struct {
	Status string `json:"status"`
	Posts  int64  `json:"posts"`
}

// RegisterStatusEndpoint registers the health endpoint (no auth required)
func RegisterStatusEndpoint(s *server.Server) {
	s.Router.HandleFunc("/api/v1/status", handleStatus(s)).Methods("GET")
}

func handleStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := s.PostsStore.CountPosts()
		if err != nil {
			respondWithJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "error",
				"error":  "database connectivity check failed",
			})
			return
		}

		respondWithJSON(w, http.StatusOK, statusResponse{Status: "ok", Posts: count})
	}
}
