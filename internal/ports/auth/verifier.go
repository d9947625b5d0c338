package auth

import "context"

// TokenVerifier verifica un token y devuelve claims o error.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para los claims dados.
// A diferencia del verifier, solo lo usa el flujo de login.
type TokenIssuer interface {
	Issue(ctx context.Context, claims Claims) (string, error)
}
