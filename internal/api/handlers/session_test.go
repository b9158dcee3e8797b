package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSessionHandler_Login(t *testing.T) {
	router, reg, _, tokens := newTestRouter()
	provisionOrg(t, router, reg, tokens)

	rec := doRequest(t, router, http.MethodPost, "/v1/auth/login",
		`{"email":"admin@acme.com","password":"hunter2"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		OrgName     string `json:"org_name"`
		AdminEmail  string `json:"admin_email"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if got.TokenType != "bearer" {
		t.Errorf("token_type = %q, want %q", got.TokenType, "bearer")
	}
	if got.OrgName != "Acme Inc" || got.AdminEmail != "admin@acme.com" {
		t.Errorf("unexpected identity in response: %+v", got)
	}

	claims, err := tokens.Verify(got.AccessToken)
	if err != nil {
		t.Fatalf("verifying issued token: %v", err)
	}
	if claims.OrgName != "Acme Inc" {
		t.Errorf("token org = %q, want %q", claims.OrgName, "Acme Inc")
	}
}

// Login validates the email shape but leaves password checking to the stored
// hash, so a short password fails as bad credentials, not as a bad request.
func TestSessionHandler_Login_RejectsBadRequests(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantMsg    string
	}{
		{
			"malformed email",
			`{"email":"not-an-email","password":"hunter2"}`,
			http.StatusBadRequest,
			"email must be a valid email address",
		},
		{
			"missing email",
			`{"password":"hunter2"}`,
			http.StatusBadRequest,
			"email is required",
		},
		{
			"missing password",
			`{"email":"admin@acme.com"}`,
			http.StatusBadRequest,
			"password is required",
		},
		{
			"short password checked against the hash",
			`{"email":"admin@acme.com","password":"123"}`,
			http.StatusUnauthorized,
			"invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, reg, _, tokens := newTestRouter()
			provisionOrg(t, router, reg, tokens)

			rec := doRequest(t, router, http.MethodPost, "/v1/auth/login", tt.body, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if msg := errorMessage(t, rec); msg != tt.wantMsg {
				t.Errorf("error = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}
