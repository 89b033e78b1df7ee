package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spec-kit/sla-dashboard/internal/auth"
	"github.com/spec-kit/sla-dashboard/internal/domain"
)

func runToken(args []string, stdout io.Writer) error {
	fs := newFlagSet("token", stdout)
	subject := fs.String("subject", "", "token subject id (required)")
	kind := fs.String("type", string(domain.SubjectTypeOperator), "subject type: OPERATOR or SERVICE")
	ttl := fs.Int("ttl-minutes", 60, "token lifetime in minutes")
	secret := fs.String("secret", os.Getenv("AUTH_JWT_SECRET"), "HMAC signing secret")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *subject == "" {
		return fmt.Errorf("--subject is required")
	}

	subjectType := domain.SubjectType(strings.ToUpper(*kind))
	switch subjectType {
	case domain.SubjectTypeOperator, domain.SubjectTypeService:
	default:
		return fmt.Errorf("unknown subject type %q", *kind)
	}

	raw, meta, err := auth.NewTokenManager(*secret, *ttl).GenerateToken(*subject, subjectType)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, raw)
	fmt.Fprintf(os.Stderr, "expires %s\n", meta.ExpiresAt.Format(time.RFC3339))
	return nil
}
