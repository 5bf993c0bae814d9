package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"colorsrest/internal/server/models"
	"colorsrest/internal/server/token"
)

func TestRegisterIssuesImmediatelyUsableToken(t *testing.T) {
	ts := newTestServer(t, "auth_register")
	tok := registerAndGetToken(t, ts, "user@example.com")

	// auto-login: the registration token gates the protected route at once
	rr := doJSON(t, ts, "POST", "/api/colors", models.Color{Nom: "rosa", Rgb: "#FFC0CB"}, bearer(tok))
	if rr.Code != http.StatusCreated {
		t.Fatalf("create with registration token: %d %s", rr.Code, rr.Body.String())
	}
}

func TestRegisterDuplicateEmailFails(t *testing.T) {
	ts := newTestServer(t, "auth_duplicate")
	registerAndGetToken(t, ts, "user@example.com")

	rr := doJSON(t, ts, "POST", "/api/user/register", map[string]string{"email": "user@example.com", "password": "Secret123!"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRegisterWeakPasswordReportsPolicy(t *testing.T) {
	ts := newTestServer(t, "auth_weak")
	rr := doJSON(t, ts, "POST", "/api/user/register", map[string]string{"email": "weak@example.com", "password": "short"}, nil)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "at least 6 characters") {
		t.Fatalf("policy message expected in %q", rr.Body.String())
	}
}

func TestLoginReturnsToken(t *testing.T) {
	ts := newTestServer(t, "auth_login")
	registerAndGetToken(t, ts, "user@example.com")

	rr := doJSON(t, ts, "POST", "/api/user/login", map[string]string{"email": "user@example.com", "password": "Secret123!"}, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rr.Code, rr.Body.String())
	}
	var resp models.TokenResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp.Token == "" {
		t.Fatalf("no token: %v %s", err, rr.Body.String())
	}
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	ts := newTestServer(t, "auth_login_fail")
	registerAndGetToken(t, ts, "user@example.com")

	wrongPassword := doJSON(t, ts, "POST", "/api/user/login", map[string]string{"email": "user@example.com", "password": "Wrong123!"}, nil)
	unknownEmail := doJSON(t, ts, "POST", "/api/user/login", map[string]string{"email": "nobody@example.com", "password": "Secret123!"}, nil)

	for _, rr := range []int{wrongPassword.Code, unknownEmail.Code} {
		if rr != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rr)
		}
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("responses must not distinguish the failure: %q vs %q",
			wrongPassword.Body.String(), unknownEmail.Body.String())
	}
	if !strings.Contains(wrongPassword.Body.String(), "Invalid Login") {
		t.Fatalf("body: %q", wrongPassword.Body.String())
	}
}

func TestExpiredTokenIsRejected(t *testing.T) {
	ts := newTestServer(t, "auth_expired")

	// same key and issuer as the server, but the validity window ends in the past
	expired := token.New(token.Config{Key: testJWTKey, Issuer: testJWTIssuer, ExpireDays: -1})
	raw, err := expired.Issue("user@example.com", "user-1")
	if err != nil {
		t.Fatal(err)
	}

	rr := doJSON(t, ts, "POST", "/api/colors", models.Color{Nom: "blanc", Rgb: "#FFFFFF"}, bearer(raw))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d %s", rr.Code, rr.Body.String())
	}
}

func TestForeignSignatureIsRejected(t *testing.T) {
	ts := newTestServer(t, "auth_foreign")

	foreign := token.New(token.Config{Key: "some-other-key", Issuer: testJWTIssuer, ExpireDays: 30})
	raw, err := foreign.Issue("user@example.com", "user-1")
	if err != nil {
		t.Fatal(err)
	}

	rr := doJSON(t, ts, "POST", "/api/colors", models.Color{Nom: "blanc", Rgb: "#FFFFFF"}, bearer(raw))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestMalformedAuthorizationHeaderIsRejected(t *testing.T) {
	ts := newTestServer(t, "auth_malformed")
	for _, h := range []map[string]string{
		nil,
		{"Authorization": "Basic dXNlcjpwYXNz"},
		{"Authorization": "Bearer not-a-token"},
	} {
		rr := doJSON(t, ts, "POST", "/api/colors", models.Color{Nom: "blanc", Rgb: "#FFFFFF"}, h)
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("headers %v: expected 401, got %d", h, rr.Code)
		}
	}
}
