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
	"github.com/auditdesk/backoffice-api/internal/domain/enum"
	"github.com/auditdesk/backoffice-api/pkg/pagination"
)

// ExpenseService handles expense-related operations
type ExpenseService struct {
	api     backend.ExpenseAPI
	perPage int
}

// NewExpenseService creates a new expense service
func NewExpenseService(api backend.ExpenseAPI, perPage int) *ExpenseService {
	return &ExpenseService{api: api, perPage: perPage}
}

// ExpenseInput represents the expense form as submitted.
type ExpenseInput struct {
	Date               string `json:"date"`
	ExpenseDescription string `json:"expenseDescription"`
	Amount             string `json:"amount"`
	PaymentBy          string `json:"paymentBy"`
	PaidFromAcc        string `json:"paidFromAcc"`
	Remarks            string `json:"remarks"`
}

func (in *ExpenseInput) entity() (*entity.Expense, error) {
	f := form.Expense()
	values := map[string]string{
		"date":               in.Date,
		"expenseDescription": in.ExpenseDescription,
		"amount":             in.Amount,
		"paymentBy":          in.PaymentBy,
		"paidFromAcc":        in.PaidFromAcc,
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

	amount, _ := strconv.ParseFloat(in.Amount, 64)
	return &entity.Expense{
		Date:               in.Date,
		ExpenseDescription: in.ExpenseDescription,
		Amount:             amount,
		PaymentBy:          enum.PaymentMethod(in.PaymentBy),
		PaidFromAcc:        in.PaidFromAcc,
		Remarks:            in.Remarks,
	}, nil
}

// ExpenseFilter narrows the expense list to an inclusive date range. Both
// bounds empty means no filtering.
type ExpenseFilter struct {
	FromDate string
	ToDate   string
}

func (q ExpenseFilter) active() bool {
	return q.FromDate != "" || q.ToDate != ""
}

func (q ExpenseFilter) apply(expenses []entity.Expense) ([]entity.Expense, error) {
	return filter.ByDateRange(expenses, q.FromDate, q.ToDate, func(e entity.Expense) string {
		return e.Date
	})
}

// ListExpenses returns one page of the (optionally date-filtered) expense
// set.
func (s *ExpenseService) ListExpenses(ctx context.Context, token string, q ExpenseFilter, page int) (*pagination.PaginatedResult[entity.Expense], error) {
	expenses, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}

	v := listview.New[entity.Expense](s.perPage)
	v.Load(expenses)
	if q.active() {
		matched, err := q.apply(expenses)
		if err != nil {
			return nil, err
		}
		v.Apply(func([]entity.Expense) []entity.Expense { return matched })
	}
	if page == 0 {
		page = 1
	}
	if err := v.SetPage(page); err != nil {
		return nil, err
	}
	return v.Result(), nil
}

// GetExpense retrieves an expense by ID
func (s *ExpenseService) GetExpense(ctx context.Context, token, id string) (*entity.Expense, error) {
	return s.api.Get(ctx, token, id)
}

// CreateExpense validates and creates a new expense
func (s *ExpenseService) CreateExpense(ctx context.Context, token string, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := input.entity()
	if err != nil {
		return nil, err
	}
	return s.api.Create(ctx, token, expense)
}

// UpdateExpense validates and updates an existing expense
func (s *ExpenseService) UpdateExpense(ctx context.Context, token, id string, input *ExpenseInput) (*entity.Expense, error) {
	expense, err := input.entity()
	if err != nil {
		return nil, err
	}
	return s.api.Update(ctx, token, id, expense)
}

// DeleteExpense deletes an expense by ID
func (s *ExpenseService) DeleteExpense(ctx context.Context, token, id string) error {
	return s.api.Delete(ctx, token, id)
}

// ExportExpenses renders the filtered expense set as a workbook.
func (s *ExpenseService) ExportExpenses(ctx context.Context, token string, q ExpenseFilter) (*export.File, error) {
	expenses, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	if q.active() {
		if expenses, err = q.apply(expenses); err != nil {
			return nil, err
		}
	}
	return export.Workbook(export.ExpenseSheet(expenses))
}
