package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	jwtadp "petshop-api/internal/adapters/auth/jwt"
	"petshop-api/internal/ports/auth"
	"petshop-api/internal/router"
)

const testSecret = "test-secret"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(router.NewRouter(router.Options{
		JWTSecret: testSecret,
		TokenTTL:  time.Hour,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_RegisterAndLogin(t *testing.T) {
	ts := newTestServer(t)

	// 1) Registro OK, sin senha ni hash en la respuesta
	{
		st, body := doReq(t, ts.URL, "POST", "/register", "", map[string]any{
			"nome":  "Ana",
			"email": "ana@x.com",
			"senha": "secret1",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 register, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "senha") {
			t.Fatalf("register response leaks senha: %s", string(body))
		}

		var resp struct {
			ID   int64  `json:"id"`
			Role string `json:"role"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ID == 0 {
			t.Fatalf("register: missing id body=%s", string(body))
		}
		if resp.Role != "worker" {
			t.Fatalf("expected role worker, got %q", resp.Role)
		}
	}

	// 2) Email repetido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/register", "", map[string]any{
			"nome":  "Otra",
			"email": "ana@x.com",
			"senha": "secret2",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 duplicate email, got %d", st)
		}
	}

	// 3) Login con senha correcta => token no vacío
	token := login(t, ts.URL, "ana@x.com", "secret1")

	// 4) El token emitido valida contra el mismo secreto
	{
		claims, err := jwtadp.New(testSecret, time.Hour).Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("issued token does not verify: %v", err)
		}
		if claims.Email != "ana@x.com" {
			t.Fatalf("expected email in claims, got %+v", claims)
		}
	}

	// 5) Login con senha incorrecta => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/login", "", map[string]any{
			"email": "ana@x.com",
			"senha": "wrong",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 bad password, got %d", st)
		}
	}
}

func TestHTTP_DonoCascadeDelete(t *testing.T) {
	ts := newTestServer(t)

	donoID := createDono(t, ts.URL, map[string]any{
		"nome":     "Carlos",
		"cpf":      "123",
		"telefone": "555",
	})

	// Pets del dono
	for _, nome := range []string{"Rex", "Bidu"} {
		st, body := doReq(t, ts.URL, "POST", "/api/Pet/Pets", "", map[string]any{
			"nome":    nome,
			"tipo":    "Cão",
			"raca":    "Labrador",
			"dono_id": donoID,
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 create pet, got %d body=%s", st, string(body))
		}
	}

	// Pet con dono inexistente => 400 genérico
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/Pet/Pets", "", map[string]any{
			"nome":    "Fantasma",
			"dono_id": 9999,
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown dono_id, got %d", st)
		}
	}

	// Borrar el dono arrastra sus pets
	{
		st, body := doReq(t, ts.URL, "DELETE", "/api/Dono/Donos/"+strconv.FormatInt(donoID, 10), "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete dono, got %d body=%s", st, string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/Pet/Pets", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d", st)
		}
		if strings.Contains(string(body), "Rex") || strings.Contains(string(body), "Bidu") {
			t.Fatalf("cascade left orphan pets: %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/api/Dono/Donos", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list donos, got %d", st)
		}
		if strings.Contains(string(body), "Carlos") {
			t.Fatalf("dono still listed after delete: %s", string(body))
		}
	}

	// Borrar de nuevo => 404
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/api/Dono/Donos/"+strconv.FormatInt(donoID, 10), "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 deleting twice, got %d", st)
		}
	}
}

func TestHTTP_PatchTouchesOnlyProvidedFields(t *testing.T) {
	ts := newTestServer(t)

	donoID := createDono(t, ts.URL, map[string]any{
		"nome":     "Carlos",
		"cpf":      "123",
		"telefone": "555",
	})

	st, body := doReq(t, ts.URL, "PATCH", "/api/Dono/Donos/"+strconv.FormatInt(donoID, 10), "", map[string]any{
		"telefone": "999",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 patch dono, got %d body=%s", st, string(body))
	}

	var resp struct {
		Nome     string `json:"nome"`
		CPF      string `json:"cpf"`
		Telefone string `json:"telefone"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Telefone != "999" || resp.Nome != "Carlos" || resp.CPF != "123" {
		t.Fatalf("patch changed wrong fields: %+v", resp)
	}

	// PATCH a un id inexistente => 404
	st, _ = doReq(t, ts.URL, "PATCH", "/api/Dono/Donos/424242", "", map[string]any{"nome": "x"})
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 patch unknown dono, got %d", st)
	}
}

func TestHTTP_AdminUserManagement(t *testing.T) {
	ts := newTestServer(t)

	adminToken := issueToken(t, auth.Claims{UserID: 1, Email: "root@x.com", Role: auth.RoleAdmin})
	workerToken := issueToken(t, auth.Claims{UserID: 2, Email: "w@x.com", Role: auth.RoleWorker})

	// Sin token => 401
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/users", "", map[string]any{
			"nome": "Bea", "email": "bea@x.com", "senha": "secret1",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 without token, got %d", st)
		}
	}

	// Token worker => 403
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/users", workerToken, map[string]any{
			"nome": "Bea", "email": "bea@x.com", "senha": "secret1",
		})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 with worker token, got %d", st)
		}
	}

	// Token expirado => 401 (los claims nunca llegan al contexto)
	{
		expired := issueExpiredToken(t, auth.Claims{UserID: 1, Email: "root@x.com", Role: auth.RoleAdmin})
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/users", expired, map[string]any{
			"nome": "Bea", "email": "bea@x.com", "senha": "secret1",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 with expired token, got %d", st)
		}
	}

	// Admin crea usuario => 201, sin campos sensibles
	{
		st, body := doReq(t, ts.URL, "POST", "/api/admin/users", adminToken, map[string]any{
			"nome": "Bea", "email": "bea@x.com", "senha": "secret1", "role": "admin",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 admin create, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "senha") {
			t.Fatalf("admin create response leaks senha: %s", string(body))
		}
	}

	// Rol desconocido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/api/admin/users", adminToken, map[string]any{
			"nome": "Eva", "email": "eva@x.com", "senha": "secret1", "role": "superuser",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 unknown role, got %d", st)
		}
	}

	// Listado solo para admin
	{
		st, body := doReq(t, ts.URL, "GET", "/api/admin/users", adminToken, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 admin list, got %d", st)
		}
		if !strings.Contains(string(body), "bea@x.com") {
			t.Fatalf("expected created user in list: %s", string(body))
		}

		st, _ = doReq(t, ts.URL, "GET", "/api/admin/users", workerToken, nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 worker list, got %d", st)
		}
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", "", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}
}

// -------------------------
// Helpers
// -------------------------

func createDono(t *testing.T, baseURL string, payload map[string]any) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/Dono/Donos", "", payload)
	if st != http.StatusOK {
		t.Fatalf("expected 200 create dono, got %d body=%s", st, string(body))
	}

	// El create devuelve envelope; el id sale del listado.
	st, body = doReq(t, baseURL, "GET", "/api/Dono/Donos", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list donos, got %d", st)
	}

	var items []struct {
		ID   int64  `json:"id"`
		Nome string `json:"nome"`
	}
	_ = json.Unmarshal(body, &items)

	nome, _ := payload["nome"].(string)
	for _, it := range items {
		if it.Nome == nome {
			return it.ID
		}
	}
	t.Fatalf("created dono %q not found in list: %s", nome, string(body))
	return 0
}

func login(t *testing.T, baseURL, email, senha string) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/login", "", map[string]any{
		"email": email,
		"senha": senha,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 login, got %d body=%s", st, string(body))
	}

	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Token == "" {
		t.Fatalf("login: missing token body=%s", string(body))
	}
	return resp.Token
}

func issueToken(t *testing.T, claims auth.Claims) string {
	t.Helper()

	token, err := jwtadp.New(testSecret, time.Hour).Issue(context.Background(), claims)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}

func issueExpiredToken(t *testing.T, claims auth.Claims) string {
	t.Helper()

	token, err := jwtadp.New(testSecret, time.Nanosecond).Issue(context.Background(), claims)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	return token
}

func doReq(t *testing.T, baseURL, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, bytes.TrimSpace(b)
}
