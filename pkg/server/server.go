package server

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/novatech/blog-api/pkg/authn"
	"github.com/novatech/blog-api/pkg/config"
	"github.com/novatech/blog-api/pkg/server/middleware"
	"github.com/novatech/blog-api/pkg/server/store"
)

type Server struct {
	Router *mux.Router
	DB     *gorm.DB
	Config *config.Config

	PostsStore store.PostsStore
	UsersStore store.UsersStore

	TokenIssuer      *authn.Issuer
	AuthMiddleware   *middleware.TokenAuthenticator
	LoginRateLimiter *middleware.RateLimiter

	srv *http.Server
}

func NewServer(
	cfg *config.Config,
	db *gorm.DB,
	postsStore store.PostsStore,
	usersStore store.UsersStore,
) *Server {
	issuer := authn.NewIssuer([]byte(cfg.TokenSecret), cfg.TokenTTL())

	router := mux.NewRouter()
	router.Use(middleware.Metrics)
	router.Handle("/metrics", middleware.MetricsHandler()).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(cfg.CORSAllowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, cors(router)),
		Addr:    cfg.Addr(),
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:           router,
		DB:               db,
		Config:           cfg,
		PostsStore:       postsStore,
		UsersStore:       usersStore,
		TokenIssuer:      issuer,
		AuthMiddleware:   middleware.NewTokenAuthenticator(issuer),
		LoginRateLimiter: middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst, cfg.TrustedProxies),
		srv:              srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
