// Package httpapi exposes the Poken services over HTTP. All bodies are
// JSON; errors are reported as {"detail": "..."} with a conventional
// status code, which is the contract the client transport parses.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/poken-app/poken/internal/logging"
	"github.com/poken-app/poken/internal/server/config"
	"github.com/poken-app/poken/internal/server/services"
)

type Server struct {
	users     *services.UserService
	profiles  *services.ProfileService
	secretKey []byte
	log       logging.Logger
}

func NewServer(users *services.UserService, profiles *services.ProfileService, cfg *config.Config, log logging.Logger) *Server {
	return &Server{
		users:     users,
		profiles:  profiles,
		secretKey: []byte(cfg.SecretKey),
		log:       log,
	}
}

// Handler builds the route table. Method patterns make the mux reject a
// wrong verb with 405 without extra code.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/signup", s.handleSignup)
	mux.Handle("GET /profile", s.requireAuth(http.HandlerFunc(s.handleGetProfile)))
	mux.Handle("PUT /profile", s.requireAuth(http.HandlerFunc(s.handleUpdateProfile)))

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDetail writes the error body shape clients key their messages off.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
