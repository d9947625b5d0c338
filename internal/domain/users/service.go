package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"petshop-api/internal/ports/auth"

	"golang.org/x/crypto/bcrypt"
)

const minSenhaLen = 6

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("bad credentials")
	ErrInvalidRole    = errors.New("invalid role")
	ErrNotFound       = errors.New("user not found")
)

type Service struct {
	repo   Repository
	issuer auth.TokenIssuer
}

func NewService(repo Repository, issuer auth.TokenIssuer) *Service {
	return &Service{repo: repo, issuer: issuer}
}

type RegisterInput struct {
	Nome  string
	Email string
	Senha string
}

// Register crea un usuario con rol worker. El chequeo de email repetido
// previo al insert es solo cortesía (mensaje amigable); la autoridad es
// el índice único del storage, que el repo traduce a ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	nome := strings.TrimSpace(in.Nome)
	email := normalizeEmail(in.Email)

	if nome == "" || !validEmail(email) || len(in.Senha) < minSenhaLen {
		return User{}, ErrInvalidInput
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash senha: %w", err)
	}

	return s.repo.Create(ctx, User{
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Role:      auth.RoleWorker,
	})
}

// Login valida credenciales y emite el token. Email desconocido y senha
// incorrecta devuelven el mismo error, sin distinguir el caso.
func (s *Service) Login(ctx context.Context, email, senha string) (User, string, error) {
	email = normalizeEmail(email)
	if email == "" || senha == "" {
		return User{}, "", ErrBadCredentials
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return User{}, "", ErrBadCredentials
		}
		return User{}, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.SenhaHash), []byte(senha)) != nil {
		return User{}, "", ErrBadCredentials
	}

	token, err := s.issuer.Issue(ctx, auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
	})
	if err != nil {
		return User{}, "", fmt.Errorf("issue token: %w", err)
	}

	return u, token, nil
}

type AdminCreateInput struct {
	Nome  string
	Email string
	Senha string
	Role  string // vacío => worker
}

// AdminCreate crea un usuario con rol explícito. El gate de rol admin
// lo aplica el handler sobre los claims del token; acá solo se valida
// la forma del input.
func (s *Service) AdminCreate(ctx context.Context, in AdminCreateInput) (User, error) {
	nome := strings.TrimSpace(in.Nome)
	email := normalizeEmail(in.Email)

	if nome == "" || !validEmail(email) || len(in.Senha) < minSenhaLen {
		return User{}, ErrInvalidInput
	}

	role := auth.RoleWorker
	if r := strings.TrimSpace(in.Role); r != "" {
		if !auth.ValidRole(r) {
			return User{}, ErrInvalidRole
		}
		role = auth.Role(r)
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNotFound) {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash senha: %w", err)
	}

	return s.repo.Create(ctx, User{
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Role:      role,
	})
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	// mail.ParseAddress acepta "Nombre <a@b>"; exigimos solo la dirección.
	return err == nil && addr.Address == email
}
