package Token

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contextWithRequest(authorization, query string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/"+query, nil)
	if authorization != "" {
		c.Request.Header.Set("Authorization", authorization)
	}
	return c
}

func TestGenerateAndExtractTokenID(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")

	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := contextWithRequest("Bearer "+token, "")
	uid, err := ExtractTokenID(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != 7 {
		t.Errorf("expected user id 7, got %d", uid)
	}
}

func TestExtractToken_QueryParameterWins(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")

	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := contextWithRequest("", "?token="+token)
	if err := TokenValid(c); err != nil {
		t.Errorf("expected query token to validate, got %v", err)
	}
}

func TestTokenValid_RejectsTamperedSecret(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")
	token, err := GenerateToken(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("API_SECRET", "another-secret")
	c := contextWithRequest("Bearer "+token, "")
	if err := TokenValid(c); err == nil {
		t.Error("expected a token signed with another secret to be rejected")
	}
}

func TestTokenValid_RejectsMissingToken(t *testing.T) {
	t.Setenv("API_SECRET", "test-secret")
	c := contextWithRequest("", "")
	if err := TokenValid(c); err == nil {
		t.Error("expected an error when no token is supplied")
	}
}
