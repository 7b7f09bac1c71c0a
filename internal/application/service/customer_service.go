package service

import (
	"context"
	"strconv"

	"github.com/auditdesk/backoffice-api/internal/application/export"
	"github.com/auditdesk/backoffice-api/internal/application/filter"
	"github.com/auditdesk/backoffice-api/internal/application/form"
	"github.com/auditdesk/backoffice-api/internal/application/listview"
	"github.com/auditdesk/backoffice-api/internal/domain/backend"
	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/pkg/pagination"
)

// CustomerService handles customer-related operations. Lists are rebuilt
// from the backend on every request; nothing is cached between calls, so a
// failed mutation can never leave a stale row on screen.
type CustomerService struct {
	api     backend.CustomerAPI
	perPage int
}

// NewCustomerService creates a new customer service
func NewCustomerService(api backend.CustomerAPI, perPage int) *CustomerService {
	return &CustomerService{api: api, perPage: perPage}
}

// CustomerInput represents the customer form as submitted: every field a
// string, exactly as typed. gstNumber is absent because it is derived.
type CustomerInput struct {
	CompanyName        string `json:"companyName"`
	CustomerName       string `json:"customerName"`
	CustomerCode       string `json:"customerCode"`
	Place              string `json:"place"`
	WorkClassification string `json:"workClassification"`
	AuditScope         string `json:"auditScope"`
	WorkOrderNo        string `json:"workOrderNo"`
	WorkOrderDate      string `json:"workOrderDate"`
	WorkOrderAmount    string `json:"workOrderAmount"`
	Travel             string `json:"travel"`
	Remarks            string `json:"remarks"`
}

// entity validates the input through the customer form and materializes the
// record, with gstNumber recomputed from the amount.
func (in *CustomerInput) entity() (*entity.Customer, error) {
	f := form.Customer()
	values := map[string]string{
		"companyName":        in.CompanyName,
		"customerName":       in.CustomerName,
		"customerCode":       in.CustomerCode,
		"place":              in.Place,
		"workClassification": in.WorkClassification,
		"auditScope":         in.AuditScope,
		"workOrderNo":        in.WorkOrderNo,
		"workOrderDate":      in.WorkOrderDate,
		"workOrderAmount":    in.WorkOrderAmount,
		"travel":             in.Travel,
		"remarks":            in.Remarks,
	}
	for name, value := range values {
		if err := f.Set(name, value); err != nil {
			return nil, err
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	amount, _ := strconv.ParseFloat(in.WorkOrderAmount, 64)
	return &entity.Customer{
		CompanyName:        in.CompanyName,
		CustomerName:       in.CustomerName,
		CustomerCode:       in.CustomerCode,
		Place:              in.Place,
		WorkClassification: in.WorkClassification,
		AuditScope:         in.AuditScope,
		WorkOrderNo:        in.WorkOrderNo,
		WorkOrderDate:      in.WorkOrderDate,
		WorkOrderAmount:    amount,
		GSTNumber:          f.Get("gstNumber"),
		Travel:             in.Travel,
		Remarks:            in.Remarks,
	}, nil
}

// searchByCode reduces customers to those whose code contains the query.
func searchByCode(customers []entity.Customer, search string) []entity.Customer {
	return filter.BySubstring(customers, search, func(c entity.Customer) string {
		return c.CustomerCode
	})
}

// ListCustomers returns one page of the (optionally searched) customer set.
func (s *CustomerService) ListCustomers(ctx context.Context, token, search string, page int) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}

	v := listview.New[entity.Customer](s.perPage)
	v.Load(customers)
	if search != "" {
		v.Apply(func(items []entity.Customer) []entity.Customer {
			return searchByCode(items, search)
		})
	}
	if page == 0 {
		page = 1
	}
	if err := v.SetPage(page); err != nil {
		return nil, err
	}
	return v.Result(), nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, token, id string) (*entity.Customer, error) {
	return s.api.Get(ctx, token, id)
}

// CreateCustomer validates and creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, token string, input *CustomerInput) (*entity.Customer, error) {
	customer, err := input.entity()
	if err != nil {
		return nil, err
	}
	return s.api.Create(ctx, token, customer)
}

// UpdateCustomer validates and updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, token, id string, input *CustomerInput) (*entity.Customer, error) {
	customer, err := input.entity()
	if err != nil {
		return nil, err
	}
	return s.api.Update(ctx, token, id, customer)
}

// DeleteCustomer deletes a customer by ID
func (s *CustomerService) DeleteCustomer(ctx context.Context, token, id string) error {
	return s.api.Delete(ctx, token, id)
}

// ExportCustomers renders the searched set as a workbook. An empty result
// is a validation error, not an empty file.
func (s *CustomerService) ExportCustomers(ctx context.Context, token, search string) (*export.File, error) {
	customers, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	return export.Workbook(export.CustomerSheet(searchByCode(customers, search)))
}

// CustomerCodes builds the receipt form's picklist from the customer
// collection: one option per customer, keyed by the combined display value.
func (s *CustomerService) CustomerCodes(ctx context.Context, token string) ([]entity.CustomerCodeOption, error) {
	customers, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	options := make([]entity.CustomerCodeOption, 0, len(customers))
	for _, c := range customers {
		options = append(options, entity.CustomerCodeOption{
			CustomerCode:  c.CustomerCode,
			WorkOrderNo:   c.WorkOrderNo,
			WorkOrderDate: c.WorkOrderDate,
			Display:       c.CustomerCode + " - " + c.WorkOrderNo,
		})
	}
	return options, nil
}
