package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/server"
	"github.com/novatech/blog-api/pkg/server/store"
)

// loginResponse is the JSON shape for a successful login
type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	ExpiresIn int    `json:"expiresIn"`
}

func RegisterAuthEndpoints(s *server.Server) {
	api := s.Router.PathPrefix("/api/v1").Subrouter()

	api.Handle(
		"/auth/login",
		s.LoginRateLimiter.Middleware(handleLogin(s)),
	).Methods("POST")

	api.HandleFunc("/auth/logout", handleLogout).Methods("POST")
}

func handleLogin(s *server.Server) http.HandlerFunc {
	users := s.UsersStore
	issuer := s.TokenIssuer
	ttl := s.Config.TokenTTL()

	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithError(w, r, http.StatusBadRequest, "Invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if err := validate.Struct(req); err != nil {
			respondWithError(w, r, http.StatusBadRequest, validationMessage(err))
			return
		}

		user, err := users.FetchUserByUsername(req.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				respondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
				return
			}
			respondWithError(w, r, http.StatusInternalServerError, "Login failed")
			return
		}

		if !authn.VerifyPassword(user.PasswordHash, req.Password) {
			respondWithError(w, r, http.StatusUnauthorized, "Invalid username or password")
			return
		}

		token, err := issuer.Issue(user.Username, user.Role)
		if err != nil {
			respondWithError(w, r, http.StatusInternalServerError, "Login failed")
			return
		}

		respondWithJSON(w, http.StatusOK, loginResponse{
			Token:     token,
			TokenType: "Bearer",
			Username:  user.Username,
			Role:      user.Role.String(),
			ExpiresIn: int(ttl.Seconds()),
		})
	}
}

// handleLogout exists for client symmetry. Tokens are stateless, so there
// is nothing to revoke server-side; clients drop the token.
func handleLogout(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
