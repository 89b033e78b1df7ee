package domain

import "time"

// SubjectType differentiates token holders.
type SubjectType string

const (
	SubjectTypeOperator SubjectType = "OPERATOR"
	SubjectTypeService  SubjectType = "SERVICE"
)

// Token represents issued admin token metadata.
type Token struct {
	SubjectID string
	Subject   SubjectType
	ExpiresAt time.Time
	IssuedAt  time.Time
}
