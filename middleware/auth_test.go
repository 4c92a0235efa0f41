package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appctx "Conbini/pkg/context"
	"Conbini/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func newIdentityRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Identity(secret))
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, appctx.GetUserID(c))
	})
	return r
}

func TestIdentityNoHeaderIsAnonymous(t *testing.T) {
	r := newIdentityRouter([]byte("s"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != appctx.AnonymousUserID {
		t.Errorf("user = %q, want %q", w.Body.String(), appctx.AnonymousUserID)
	}
}

func TestIdentityValidToken(t *testing.T) {
	secret := []byte("s")
	token, err := jwt.GenerateToken(secret, "device-42", "device", time.Hour)
	if err != nil {
		t.Fatal(err)
	}

	r := newIdentityRouter(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Body.String() != "device-42" {
		t.Errorf("user = %q, want device-42", w.Body.String())
	}
}

func TestIdentityBadToken(t *testing.T) {
	r := newIdentityRouter([]byte("s"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestIdentityMalformedHeader(t *testing.T) {
	r := newIdentityRouter([]byte("s"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "token-without-scheme")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
