package upstream

import (
	"context"
	"net/http"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
)

// expenseClient implements backend.ExpenseAPI.
type expenseClient struct{ *Client }

// Expenses returns the expense API bound to this client.
func (c *Client) Expenses() backend.ExpenseAPI { return &expenseClient{c} }

func (c *expenseClient) List(ctx context.Context, token string) ([]entity.Expense, error) {
	env, err := c.do(ctx, http.MethodGet, "/expenses", token, nil)
	if err != nil {
		return nil, err
	}
	expenses := []entity.Expense{}
	if err := env.payload(&expenses); err != nil {
		return nil, err
	}
	return expenses, nil
}

func (c *expenseClient) Get(ctx context.Context, token, id string) (*entity.Expense, error) {
	env, err := c.do(ctx, http.MethodGet, "/expenses/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	var expense entity.Expense
	if err := env.payload(&expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (c *expenseClient) Create(ctx context.Context, token string, expense *entity.Expense) (*entity.Expense, error) {
	env, err := c.do(ctx, http.MethodPost, "/newExpense", token, expense)
	if err != nil {
		return nil, err
	}
	created := *expense
	if err := env.payload(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *expenseClient) Update(ctx context.Context, token, id string, expense *entity.Expense) (*entity.Expense, error) {
	env, err := c.do(ctx, http.MethodPut, "/updateExpense/"+id, token, expense)
	if err != nil {
		return nil, err
	}
	updated := *expense
	if err := env.payload(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *expenseClient) Delete(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/deleteExpense/"+id, token, nil)
	return err
}
