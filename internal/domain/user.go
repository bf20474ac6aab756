package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Papéis de usuário do dashboard
const (
	RoleAdmin    = "admin"
	RoleProducer = "producer"
)

type User struct {
	ID           string    `json:"id"`
	AgencyID     string    `json:"agency_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Claims são as claims do JWT emitido no login, com escopo de agência
type Claims struct {
	UserID   string
	AgencyID string
	Email    string
	Role     string
	jwt.RegisteredClaims
}
