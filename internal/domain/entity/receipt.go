package entity

import "strings"

// Receipt represents a payment received against an invoice.
//
// CustomerCode holds the combined "CODE - WONO" display key chosen from the
// customer picklist. WorkOrderDate is copied from the selected customer when
// the receipt is created and never re-synced afterwards.
type Receipt struct {
	ID               string  `json:"_id,omitempty"`
	CustomerCode     string  `json:"customerCode"`
	WorkOrderDate    string  `json:"workOrderDate"`
	InvoiceNo        string  `json:"invoiceNo"`
	InvoiceAmount    float64 `json:"invoiceAmount"`
	DateOfReceipt    string  `json:"dateOfReceipt"`
	AmountReceived   float64 `json:"amountReceived"`
	GST              float64 `json:"gst"`
	TDSDeducted      float64 `json:"tdsDeducted"`
	TravelAmt        float64 `json:"travelAmt"`
	ReceiptInAccount string  `json:"receiptInAccount"`
	Description      string  `json:"description"`
	Remarks          string  `json:"remarks"`
	CreatedAt        string  `json:"createdAt,omitempty"`
	UpdatedAt        string  `json:"updatedAt,omitempty"`
	Version          int     `json:"__v,omitempty"`
}

// PlainCustomerCode returns the bare customer code from the combined
// "CODE - WONO" display key. Date-range search on receipts matches against
// the bare code.
func (r Receipt) PlainCustomerCode() string {
	code, _, _ := strings.Cut(r.CustomerCode, " - ")
	return code
}
