// Package backend defines the contracts for the external REST service this
// gateway fronts. Implementations live in internal/infrastructure/upstream;
// application services depend only on these interfaces.
package backend

import (
	"context"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
)

// Credentials is the account payload the backend expects. The field casing
// is the backend's, not ours.
type Credentials struct {
	UserID   string `json:"UserId"`
	Password string `json:"Password"`
}

// LoginResult carries the opaque token and greeting returned by a
// successful login.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}

// AuthAPI covers the unauthenticated account endpoints.
type AuthAPI interface {
	Register(ctx context.Context, creds Credentials) (string, error)
	Login(ctx context.Context, creds Credentials) (*LoginResult, error)
}

// CustomerAPI covers the customer collection. Every call carries the
// session's upstream token.
type CustomerAPI interface {
	List(ctx context.Context, token string) ([]entity.Customer, error)
	Get(ctx context.Context, token, id string) (*entity.Customer, error)
	Create(ctx context.Context, token string, c *entity.Customer) (*entity.Customer, error)
	Update(ctx context.Context, token, id string, c *entity.Customer) (*entity.Customer, error)
	Delete(ctx context.Context, token, id string) error
}

// ExpenseAPI covers the expense collection.
type ExpenseAPI interface {
	List(ctx context.Context, token string) ([]entity.Expense, error)
	Get(ctx context.Context, token, id string) (*entity.Expense, error)
	Create(ctx context.Context, token string, e *entity.Expense) (*entity.Expense, error)
	Update(ctx context.Context, token, id string, e *entity.Expense) (*entity.Expense, error)
	Delete(ctx context.Context, token, id string) error
}

// ReceiptAPI covers the receipt collection.
type ReceiptAPI interface {
	List(ctx context.Context, token string) ([]entity.Receipt, error)
	Get(ctx context.Context, token, id string) (*entity.Receipt, error)
	Create(ctx context.Context, token string, r *entity.Receipt) (*entity.Receipt, error)
	Update(ctx context.Context, token, id string, r *entity.Receipt) (*entity.Receipt, error)
	Delete(ctx context.Context, token, id string) error
}
