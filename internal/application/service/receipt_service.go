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

// ReceiptService handles receipt-related operations. It leans on the
// customer collection for the picklist: a receipt's customerCode must be
// one of the combined "CODE - WONO" options, and its workOrderDate is
// snapshotted from the matching customer at creation time.
type ReceiptService struct {
	api       backend.ReceiptAPI
	customers backend.CustomerAPI
	perPage   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(api backend.ReceiptAPI, customers backend.CustomerAPI, perPage int) *ReceiptService {
	return &ReceiptService{api: api, customers: customers, perPage: perPage}
}

// ReceiptInput represents the receipt form as submitted. CustomerCode
// carries the combined display key chosen from the picklist.
type ReceiptInput struct {
	CustomerCode     string `json:"customerCode"`
	InvoiceNo        string `json:"invoiceNo"`
	InvoiceAmount    string `json:"invoiceAmount"`
	DateOfReceipt    string `json:"dateOfReceipt"`
	AmountReceived   string `json:"amountReceived"`
	GST              string `json:"gst"`
	TDSDeducted      string `json:"tdsDeducted"`
	TravelAmt        string `json:"travelAmt"`
	ReceiptInAccount string `json:"receiptInAccount"`
	Description      string `json:"description"`
	Remarks          string `json:"remarks"`
}

// entity validates the input against the receipt form, restricted to the
// given picklist, and materializes the record with workOrderDate set.
func (in *ReceiptInput) entity(options []entity.CustomerCodeOption, workOrderDate string) (*entity.Receipt, error) {
	f := form.Receipt()
	if options != nil {
		choices := make([]string, len(options))
		for i, opt := range options {
			choices[i] = opt.Display
		}
		f.SetChoices("customerCode", choices)
	}
	values := map[string]string{
		"customerCode":     in.CustomerCode,
		"workOrderDate":    workOrderDate,
		"invoiceNo":        in.InvoiceNo,
		"invoiceAmount":    in.InvoiceAmount,
		"dateOfReceipt":    in.DateOfReceipt,
		"amountReceived":   in.AmountReceived,
		"gst":              in.GST,
		"tdsDeducted":      in.TDSDeducted,
		"travelAmt":        in.TravelAmt,
		"receiptInAccount": in.ReceiptInAccount,
		"description":      in.Description,
		"remarks":          in.Remarks,
	}
	for name, value := range values {
		if err := f.Set(name, value); err != nil {
			return nil, err
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}

	parse := func(raw string) float64 {
		v, _ := strconv.ParseFloat(raw, 64)
		return v
	}
	return &entity.Receipt{
		CustomerCode:     in.CustomerCode,
		WorkOrderDate:    workOrderDate,
		InvoiceNo:        in.InvoiceNo,
		InvoiceAmount:    parse(in.InvoiceAmount),
		DateOfReceipt:    in.DateOfReceipt,
		AmountReceived:   parse(in.AmountReceived),
		GST:              parse(in.GST),
		TDSDeducted:      parse(in.TDSDeducted),
		TravelAmt:        parse(in.TravelAmt),
		ReceiptInAccount: in.ReceiptInAccount,
		Description:      in.Description,
		Remarks:          in.Remarks,
	}, nil
}

// ReceiptFilter narrows the receipt list to an inclusive dateOfReceipt
// range, optionally pinned to one customer's bare code.
type ReceiptFilter struct {
	FromDate     string
	ToDate       string
	CustomerCode string
}

func (q ReceiptFilter) active() bool {
	return q.FromDate != "" || q.ToDate != "" || q.CustomerCode != ""
}

func (q ReceiptFilter) apply(receipts []entity.Receipt) ([]entity.Receipt, error) {
	matched := receipts
	if q.FromDate != "" || q.ToDate != "" {
		var err error
		matched, err = filter.ByDateRange(receipts, q.FromDate, q.ToDate, func(r entity.Receipt) string {
			return r.DateOfReceipt
		})
		if err != nil {
			return nil, err
		}
	}
	if q.CustomerCode != "" {
		matched = filter.ByEquals(matched, q.CustomerCode, entity.Receipt.PlainCustomerCode)
	}
	return matched, nil
}

// ListReceipts returns one page of the (optionally filtered) receipt set.
func (s *ReceiptService) ListReceipts(ctx context.Context, token string, q ReceiptFilter, page int) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}

	v := listview.New[entity.Receipt](s.perPage)
	v.Load(receipts)
	if q.active() {
		matched, err := q.apply(receipts)
		if err != nil {
			return nil, err
		}
		v.Apply(func([]entity.Receipt) []entity.Receipt { return matched })
	}
	if page == 0 {
		page = 1
	}
	if err := v.SetPage(page); err != nil {
		return nil, err
	}
	return v.Result(), nil
}

// GetReceipt retrieves a receipt by ID
func (s *ReceiptService) GetReceipt(ctx context.Context, token, id string) (*entity.Receipt, error) {
	return s.api.Get(ctx, token, id)
}

// CreateReceipt validates the input against the live customer picklist,
// snapshots workOrderDate from the selected customer, and creates the
// receipt.
func (s *ReceiptService) CreateReceipt(ctx context.Context, token string, input *ReceiptInput) (*entity.Receipt, error) {
	customers, err := s.customers.List(ctx, token)
	if err != nil {
		return nil, err
	}
	options := make([]entity.CustomerCodeOption, 0, len(customers))
	workOrderDate := ""
	for _, c := range customers {
		opt := entity.CustomerCodeOption{
			CustomerCode:  c.CustomerCode,
			WorkOrderNo:   c.WorkOrderNo,
			WorkOrderDate: c.WorkOrderDate,
			Display:       c.CustomerCode + " - " + c.WorkOrderNo,
		}
		options = append(options, opt)
		if opt.Display == input.CustomerCode {
			workOrderDate = opt.WorkOrderDate
		}
	}

	receipt, err := input.entity(options, workOrderDate)
	if err != nil {
		return nil, err
	}
	return s.api.Create(ctx, token, receipt)
}

// UpdateReceipt validates and updates an existing receipt. workOrderDate
// keeps the value snapshotted at creation; it is never refreshed from the
// customer record.
func (s *ReceiptService) UpdateReceipt(ctx context.Context, token, id string, input *ReceiptInput) (*entity.Receipt, error) {
	existing, err := s.api.Get(ctx, token, id)
	if err != nil {
		return nil, err
	}

	receipt, err := input.entity(nil, existing.WorkOrderDate)
	if err != nil {
		return nil, err
	}
	return s.api.Update(ctx, token, id, receipt)
}

// DeleteReceipt deletes a receipt by ID
func (s *ReceiptService) DeleteReceipt(ctx context.Context, token, id string) error {
	return s.api.Delete(ctx, token, id)
}

// ExportReceipts renders the filtered receipt set as a workbook.
func (s *ReceiptService) ExportReceipts(ctx context.Context, token string, q ReceiptFilter) (*export.File, error) {
	receipts, err := s.api.List(ctx, token)
	if err != nil {
		return nil, err
	}
	if q.active() {
		if receipts, err = q.apply(receipts); err != nil {
			return nil, err
		}
	}
	return export.Workbook(export.ReceiptSheet(receipts))
}
