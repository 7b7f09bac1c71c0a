package service

import (
	"context"
	"testing"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

func validReceiptInput() *ReceiptInput {
	return &ReceiptInput{
		CustomerCode:     "C001 - WO9",
		InvoiceNo:        "INV-42",
		InvoiceAmount:    "11800",
		DateOfReceipt:    "2024-04-02",
		AmountReceived:   "11000",
		GST:              "1800",
		TDSDeducted:      "800",
		TravelAmt:        "0",
		ReceiptInAccount: "Current",
		Description:      "First tranche",
	}
}

func receiptFixtures() (*fakeReceipts, *fakeCustomers) {
	receipts := &fakeReceipts{items: []entity.Receipt{
		{ID: "r1", CustomerCode: "C001 - WO9", WorkOrderDate: "2024-02-15", DateOfReceipt: "2024-01-05T00:00:00.000Z"},
		{ID: "r2", CustomerCode: "C002 - WO4", DateOfReceipt: "2024-01-20T00:00:00.000Z"},
		{ID: "r3", CustomerCode: "C001 - WO9", DateOfReceipt: "2024-03-01T00:00:00.000Z"},
	}}
	customers := &fakeCustomers{items: []entity.Customer{
		{ID: "c1", CustomerCode: "C001", WorkOrderNo: "WO9", WorkOrderDate: "2024-02-15T00:00:00.000Z"},
		{ID: "c2", CustomerCode: "C002", WorkOrderNo: "WO4", WorkOrderDate: "2024-03-10T00:00:00.000Z"},
	}}
	return receipts, customers
}

func TestCreateReceiptSnapshotsWorkOrderDate(t *testing.T) {
	receipts, customers := receiptFixtures()
	svc := NewReceiptService(receipts, customers, 10)

	created, err := svc.CreateReceipt(context.Background(), "tok", validReceiptInput())
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}
	if created.WorkOrderDate != "2024-02-15T00:00:00.000Z" {
		t.Errorf("workOrderDate = %q, want the customer's", created.WorkOrderDate)
	}
	if created.InvoiceAmount != 11800 {
		t.Errorf("invoiceAmount = %v", created.InvoiceAmount)
	}
}

func TestCreateReceiptUnknownCode(t *testing.T) {
	receipts, customers := receiptFixtures()
	svc := NewReceiptService(receipts, customers, 10)

	input := validReceiptInput()
	input.CustomerCode = "C999 - WO1"

	_, err := svc.CreateReceipt(context.Background(), "tok", input)
	if !apperror.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if len(receipts.created) != 0 {
		t.Error("backend reached despite unknown customer code")
	}
}

func TestUpdateReceiptKeepsSnapshottedDate(t *testing.T) {
	receipts, customers := receiptFixtures()
	// The customer's work order date moved on after the receipt was created.
	customers.items[0].WorkOrderDate = "2025-01-01T00:00:00.000Z"
	svc := NewReceiptService(receipts, customers, 10)

	updated, err := svc.UpdateReceipt(context.Background(), "tok", "r1", validReceiptInput())
	if err != nil {
		t.Fatalf("UpdateReceipt: %v", err)
	}
	if updated.WorkOrderDate != "2024-02-15" {
		t.Errorf("workOrderDate = %q, want the stored snapshot", updated.WorkOrderDate)
	}
}

func TestListReceiptsDateRangeAndCode(t *testing.T) {
	receipts, customers := receiptFixtures()
	svc := NewReceiptService(receipts, customers, 10)

	q := ReceiptFilter{FromDate: "2024-01-01", ToDate: "2024-01-31", CustomerCode: "C001"}
	res, err := svc.ListReceipts(context.Background(), "tok", q, 1)
	if err != nil {
		t.Fatalf("ListReceipts: %v", err)
	}
	if len(res.Items) != 1 || res.Items[0].ID != "r1" {
		t.Fatalf("items = %+v, want only r1", res.Items)
	}
}

func TestListReceiptsMissingBound(t *testing.T) {
	receipts, customers := receiptFixtures()
	svc := NewReceiptService(receipts, customers, 10)

	q := ReceiptFilter{FromDate: "2024-01-01"}
	if _, err := svc.ListReceipts(context.Background(), "tok", q, 1); !apperror.IsValidationError(err) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestExportReceipts(t *testing.T) {
	receipts, customers := receiptFixtures()
	svc := NewReceiptService(receipts, customers, 10)

	file, err := svc.ExportReceipts(context.Background(), "tok", ReceiptFilter{})
	if err != nil {
		t.Fatalf("ExportReceipts: %v", err)
	}
	if file.Name != "Receipts.xlsx" {
		t.Errorf("file name = %q", file.Name)
	}

	q := ReceiptFilter{CustomerCode: "C999"}
	if _, err := svc.ExportReceipts(context.Background(), "tok", q); !apperror.IsValidationError(err) {
		t.Fatalf("empty export: err = %v, want validation error", err)
	}
}
