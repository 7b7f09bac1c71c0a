package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
)

// fakeAuth is an in-memory backend.AuthAPI.
type fakeAuth struct {
	users     map[string]string
	loginErr  error
	lastToken string
}

func newFakeAuth() *fakeAuth {
	return &fakeAuth{users: map[string]string{"admin": "secret"}}
}

func (f *fakeAuth) Register(_ context.Context, creds backend.Credentials) (string, error) {
	f.users[creds.UserID] = creds.Password
	return "Account created", nil
}

func (f *fakeAuth) Login(_ context.Context, creds backend.Credentials) (*backend.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	if f.users[creds.UserID] != creds.Password {
		return nil, errLogin
	}
	f.lastToken = "token-" + creds.UserID
	return &backend.LoginResult{Token: f.lastToken, Message: "Welcome " + creds.UserID}, nil
}

var errLogin = fmt.Errorf("login rejected")

// fakeSessions is an in-memory repository.SessionRepository.
type fakeSessions struct {
	mu   sync.Mutex
	rows map[uuid.UUID]*entity.Session
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{rows: make(map[uuid.UUID]*entity.Session)}
}

func (f *fakeSessions) Create(_ context.Context, s *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows[s.ID] = s
	return nil
}

func (f *fakeSessions) GetByID(_ context.Context, id uuid.UUID) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[id], nil
}

func (f *fakeSessions) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rows, id)
	return nil
}

// fakeCustomers is an in-memory backend.CustomerAPI.
type fakeCustomers struct {
	items   []entity.Customer
	listErr error
	created []*entity.Customer
	deleted []string
}

func (f *fakeCustomers) List(context.Context, string) ([]entity.Customer, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCustomers) Get(_ context.Context, _, id string) (*entity.Customer, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeCustomers) Create(_ context.Context, _ string, c *entity.Customer) (*entity.Customer, error) {
	f.created = append(f.created, c)
	return c, nil
}

func (f *fakeCustomers) Update(_ context.Context, _, _ string, c *entity.Customer) (*entity.Customer, error) {
	return c, nil
}

func (f *fakeCustomers) Delete(_ context.Context, _, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

var errNotFound = fmt.Errorf("not found")

// fakeExpenses is an in-memory backend.ExpenseAPI.
type fakeExpenses struct {
	items   []entity.Expense
	created []*entity.Expense
}

func (f *fakeExpenses) List(context.Context, string) ([]entity.Expense, error) {
	return f.items, nil
}

func (f *fakeExpenses) Get(_ context.Context, _, id string) (*entity.Expense, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeExpenses) Create(_ context.Context, _ string, e *entity.Expense) (*entity.Expense, error) {
	f.created = append(f.created, e)
	return e, nil
}

func (f *fakeExpenses) Update(_ context.Context, _, _ string, e *entity.Expense) (*entity.Expense, error) {
	return e, nil
}

func (f *fakeExpenses) Delete(context.Context, string, string) error { return nil }

// fakeReceipts is an in-memory backend.ReceiptAPI.
type fakeReceipts struct {
	items   []entity.Receipt
	created []*entity.Receipt
	updated []*entity.Receipt
}

func (f *fakeReceipts) List(context.Context, string) ([]entity.Receipt, error) {
	return f.items, nil
}

func (f *fakeReceipts) Get(_ context.Context, _, id string) (*entity.Receipt, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, errNotFound
}

func (f *fakeReceipts) Create(_ context.Context, _ string, r *entity.Receipt) (*entity.Receipt, error) {
	f.created = append(f.created, r)
	return r, nil
}

func (f *fakeReceipts) Update(_ context.Context, _, _ string, r *entity.Receipt) (*entity.Receipt, error) {
	f.updated = append(f.updated, r)
	return r, nil
}

func (f *fakeReceipts) Delete(context.Context, string, string) error { return nil }
