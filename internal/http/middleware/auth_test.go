package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, target string, header map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	for k, v := range header {
		c.Request.Header.Set(k, v)
	}
	return c
}

func TestExtractTokenFromQuery(t *testing.T) {
	c := testContext(t, "/api/orders?token=abc123", nil)
	if got := extractTokenFromAll(c); got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}
}

func TestExtractTokenFromBearerHeader(t *testing.T) {
	c := testContext(t, "/api/orders", map[string]string{"Authorization": "Bearer abc123"})
	if got := extractTokenFromAll(c); got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}

	c = testContext(t, "/api/orders", map[string]string{"Authorization": "bearer abc123"})
	if got := extractTokenFromAll(c); got != "abc123" {
		t.Fatalf("expected case-insensitive scheme, got %q", got)
	}
}

func TestExtractTokenMissing(t *testing.T) {
	c := testContext(t, "/api/orders", nil)
	if got := extractTokenFromAll(c); got != "" {
		t.Fatalf("expected empty token, got %q", got)
	}

	c = testContext(t, "/api/orders", map[string]string{"Authorization": "Basic abc123"})
	if got := extractTokenFromAll(c); got != "" {
		t.Fatalf("expected empty token for non-bearer scheme, got %q", got)
	}
}

func TestQueryTokenWinsOverHeader(t *testing.T) {
	c := testContext(t, "/api/orders?token=fromquery", map[string]string{"Authorization": "Bearer fromheader"})
	if got := extractTokenFromAll(c); got != "fromquery" {
		t.Fatalf("expected fromquery, got %q", got)
	}
}
