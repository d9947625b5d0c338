package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"petshop-api/internal/middleware"
	"petshop-api/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta registro/login en la raíz (mismas rutas que el
// sistema original) y la administración de usuarios bajo /api/admin.
func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/register", registerHandler(svc, log))
	r.Post("/login", loginHandler(svc, log))

	r.Route("/api/admin/users", func(ar chi.Router) {
		ar.Post("/", adminCreateUserHandler(svc, log))
		ar.Get("/", adminListUsersHandler(svc, log))
	})
}

type registerRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type adminCreateRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Role  string `json:"role"`
}

// userResponse nunca incluye senha ni hash.
type userResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func registerHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Register(r.Context(), RegisterInput{
			Nome:  req.Nome,
			Email: req.Email,
			Senha: req.Senha,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				http.Error(w, "email já cadastrado", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "nome, email e senha (mínimo 6) são obrigatórios", http.StatusBadRequest)
			default:
				log.Error("register failed", map[string]any{"error": err.Error()})
				http.Error(w, "erro ao cadastrar usuário", http.StatusBadRequest)
			}
			return
		}

		log.Info("user registered", map[string]any{"user_id": u.ID})
		writeJSON(w, http.StatusOK, toUserResponse(u))
	}
}

func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, token, err := svc.Login(r.Context(), req.Email, req.Senha)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
				return
			}
			log.Error("login failed", map[string]any{"error": err.Error()})
			http.Error(w, "erro ao efetuar login", http.StatusBadRequest)
			return
		}

		log.Info("user logged in", map[string]any{"user_id": u.ID})
		writeJSON(w, http.StatusOK, map[string]string{"token": token})
	}
}

// adminCreateUserHandler exige token válido con rol admin:
// sin claims => 401, claims sin rol admin => 403.
func adminCreateUserHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var req adminCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.AdminCreate(r.Context(), AdminCreateInput{
			Nome:  req.Nome,
			Email: req.Email,
			Senha: req.Senha,
			Role:  req.Role,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				http.Error(w, "email já cadastrado", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidRole):
				http.Error(w, "role inválido", http.StatusBadRequest)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "nome, email e senha (mínimo 6) são obrigatórios", http.StatusBadRequest)
			default:
				log.Error("admin create user failed", map[string]any{"admin_id": claims.UserID, "error": err.Error()})
				http.Error(w, "erro ao cadastrar usuário", http.StatusInternalServerError)
			}
			return
		}

		log.Info("user created by admin", map[string]any{"admin_id": claims.UserID, "user_id": u.ID})
		writeJSON(w, http.StatusCreated, toUserResponse(u))
	}
}

func adminListUsersHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.IsAdmin() {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list users failed", map[string]any{"error": err.Error()})
			http.Error(w, "erro ao buscar usuários", http.StatusInternalServerError)
			return
		}

		out := make([]userResponse, 0, len(items))
		for _, u := range items {
			out = append(out, toUserResponse(u))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:    u.ID,
		Nome:  u.Nome,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// para no crear helpers compartidos antes de tiempo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
