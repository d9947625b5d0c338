package router

import (
	"database/sql"
	"net/http"
	"time"

	jwtadp "petshop-api/internal/adapters/auth/jwt"
	mem "petshop-api/internal/adapters/storage/memory"
	pg "petshop-api/internal/adapters/storage/postgres"
	"petshop-api/internal/domain/donos"
	"petshop-api/internal/domain/pets"
	"petshop-api/internal/domain/users"
	"petshop-api/internal/middleware"
	"petshop-api/internal/platform/logger"

	_ "petshop-api/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Si viene DB usa Postgres; si no, repos in-memory (dev/tests).
	DB *sql.DB

	JWTSecret string
	TokenTTL  time.Duration

	// Puede ser nil; en ese caso no se loguea nada.
	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(corsAllowAll)

	tokens := jwtadp.New(opts.JWTSecret, opts.TokenTTL)
	r.Use(middleware.AuthContext(tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	var (
		donoRepo donos.Repository
		petRepo  pets.Repository
		userRepo users.Repository
	)

	if opts.DB != nil {
		donoRepo = pg.NewDonosRepo(opts.DB)
		petRepo = pg.NewPetsRepo(opts.DB)
		userRepo = pg.NewUsersRepo(opts.DB)
	} else {
		store := mem.NewStore()
		donoRepo = mem.NewDonosRepo(store)
		petRepo = mem.NewPetsRepo(store)
		userRepo = mem.NewUsersRepo(store)
	}

	// Services por módulo
	donosSvc := donos.NewService(donoRepo)
	petsSvc := pets.NewService(petRepo)
	usersSvc := users.NewService(userRepo, tokens)

	// Rutas por módulo
	donos.RegisterRoutes(r, donosSvc, log)
	pets.RegisterRoutes(r, petsSvc, log)
	users.RegisterRoutes(r, usersSvc, log)

	return r
}

// corsAllowAll replica la política abierta que esperan el dashboard web
// y la app mobile existentes.
func corsAllowAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
