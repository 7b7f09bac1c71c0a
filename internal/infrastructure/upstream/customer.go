package upstream

import (
	"context"
	"net/http"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
)

// customerClient implements backend.CustomerAPI.
type customerClient struct{ *Client }

// Customers returns the customer API bound to this client.
func (c *Client) Customers() backend.CustomerAPI { return &customerClient{c} }

func (c *customerClient) List(ctx context.Context, token string) ([]entity.Customer, error) {
	env, err := c.do(ctx, http.MethodGet, "/customers", token, nil)
	if err != nil {
		return nil, err
	}
	customers := []entity.Customer{}
	if err := env.payload(&customers); err != nil {
		return nil, err
	}
	return customers, nil
}

func (c *customerClient) Get(ctx context.Context, token, id string) (*entity.Customer, error) {
	env, err := c.do(ctx, http.MethodGet, "/onecustomers/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	var customer entity.Customer
	if err := env.payload(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

func (c *customerClient) Create(ctx context.Context, token string, customer *entity.Customer) (*entity.Customer, error) {
	env, err := c.do(ctx, http.MethodPost, "/newcustomer", token, customer)
	if err != nil {
		return nil, err
	}
	created := *customer
	if err := env.payload(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *customerClient) Update(ctx context.Context, token, id string, customer *entity.Customer) (*entity.Customer, error) {
	env, err := c.do(ctx, http.MethodPut, "/editcustomers/"+id, token, customer)
	if err != nil {
		return nil, err
	}
	updated := *customer
	if err := env.payload(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *customerClient) Delete(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/delete/"+id, token, nil)
	return err
}
