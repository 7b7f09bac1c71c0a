package upstream

import (
	"context"
	"net/http"

	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
)

// receiptClient implements backend.ReceiptAPI. The backend's receipt routes
// are the least regular of the three collections; the paths below are what
// it actually serves.
type receiptClient struct{ *Client }

// Receipts returns the receipt API bound to this client.
func (c *Client) Receipts() backend.ReceiptAPI { return &receiptClient{c} }

func (c *receiptClient) List(ctx context.Context, token string) ([]entity.Receipt, error) {
	env, err := c.do(ctx, http.MethodGet, "/receipts", token, nil)
	if err != nil {
		return nil, err
	}
	receipts := []entity.Receipt{}
	if err := env.payload(&receipts); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (c *receiptClient) Get(ctx context.Context, token, id string) (*entity.Receipt, error) {
	env, err := c.do(ctx, http.MethodGet, "/receiptsingle/"+id, token, nil)
	if err != nil {
		return nil, err
	}
	var receipt entity.Receipt
	if err := env.payload(&receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (c *receiptClient) Create(ctx context.Context, token string, receipt *entity.Receipt) (*entity.Receipt, error) {
	env, err := c.do(ctx, http.MethodPost, "/newreceipts", token, receipt)
	if err != nil {
		return nil, err
	}
	created := *receipt
	if err := env.payload(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *receiptClient) Update(ctx context.Context, token, id string, receipt *entity.Receipt) (*entity.Receipt, error) {
	env, err := c.do(ctx, http.MethodPut, "/receiptupdate/"+id, token, receipt)
	if err != nil {
		return nil, err
	}
	updated := *receipt
	if err := env.payload(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *receiptClient) Delete(ctx context.Context, token, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/deletereceipt/"+id, token, nil)
	return err
}
