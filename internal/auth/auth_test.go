package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/sla-dashboard/internal/domain"
	apperrors "github.com/spec-kit/sla-dashboard/pkg/util/errorutil"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	raw, meta, err := tm.GenerateToken("ops-1", domain.SubjectTypeOperator)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if meta.ExpiresAt.Sub(meta.IssuedAt) != 5*time.Minute {
		t.Fatalf("ttl = %v", meta.ExpiresAt.Sub(meta.IssuedAt))
	}

	claims, err := tm.ParseToken(raw)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.SubjectID != "ops-1" || claims.Subject != domain.SubjectTypeOperator {
		t.Fatalf("claims = %+v", claims)
	}

	if _, err := NewTokenManager("other", 5).ParseToken(raw); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}

func TestExpiredToken(t *testing.T) {
	tm := NewTokenManager("secret", 1)
	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	tm.now = func() time.Time { return issued }
	raw, _, err := tm.GenerateToken("ops-1", domain.SubjectTypeOperator)
	if err != nil {
		t.Fatal(err)
	}
	tm.now = func() time.Time { return issued.Add(2 * time.Minute) }
	if _, err := tm.ParseToken(raw); err == nil {
		t.Fatal("expired token accepted")
	}
}

func TestEmptySecretRefusesTokens(t *testing.T) {
	tm := NewTokenManager("", 5)
	if _, _, err := tm.GenerateToken("ops-1", domain.SubjectTypeOperator); err == nil {
		t.Fatal("expected error without secret")
	}
}

func TestMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	operator, _, _ := tm.GenerateToken("ops-1", domain.SubjectTypeOperator)
	svc, _, _ := tm.GenerateToken("cron", domain.SubjectTypeService)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.SendStatus(apperrors.ToDomainError(err).HTTPStatus)
		},
	})
	app.Get("/admin", NewAuthMiddleware(tm).Handle, RequireSubject(domain.SubjectTypeOperator), func(c *fiber.Ctx) error {
		p, _ := PrincipalFromContext(c)
		return c.SendString(p.SubjectID)
	})

	cases := []struct {
		name   string
		header string
		want   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"operator", "Bearer " + operator, http.StatusOK},
		{"service not allowed", "Bearer " + svc, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != tc.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.want)
			}
		})
	}
}
