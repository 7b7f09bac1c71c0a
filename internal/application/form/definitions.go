package form

import "github.com/auditdesk/backoffice-api/internal/domain/enum"

// Customer returns the customer entry form. gstNumber is derived from
// workOrderAmount and cannot be set directly.
func Customer() *Form {
	return New(
		[]Field{
			{Name: "companyName", Kind: Text, Required: true},
			{Name: "customerName", Kind: Text, Required: true},
			{Name: "customerCode", Kind: Text, Required: true},
			{Name: "place", Kind: Text, Required: true},
			{Name: "workClassification", Kind: Text, Required: true},
			{Name: "auditScope", Kind: Text, Required: true},
			{Name: "workOrderNo", Kind: Text, Required: true},
			{Name: "workOrderDate", Kind: Date, Required: true},
			{Name: "workOrderAmount", Kind: Number, Required: true},
			{Name: "gstNumber", Kind: Number, Derived: true},
			{Name: "travel", Kind: Text, Required: true},
			{Name: "remarks", Kind: Text, Required: true},
		},
		DeriveRule{Source: "workOrderAmount", Target: "gstNumber", Fn: GST},
	)
}

// Expense returns the expense entry form.
func Expense() *Form {
	methods := enum.PaymentMethods()
	choices := make([]string, len(methods))
	for i, m := range methods {
		choices[i] = m.String()
	}
	return New(
		[]Field{
			{Name: "date", Kind: Date, Required: true},
			{Name: "expenseDescription", Kind: Text, Required: true},
			{Name: "amount", Kind: Number, Required: true},
			{Name: "paymentBy", Kind: Choice, Required: true, Choices: choices},
			{Name: "paidFromAcc", Kind: Text, Required: true},
			{Name: "remarks", Kind: Text},
		},
	)
}

// Receipt returns the receipt entry form. workOrderDate is filled from the
// selected customer when the receipt is created, not entered.
func Receipt() *Form {
	return New(
		[]Field{
			{Name: "customerCode", Kind: Choice, Required: true},
			{Name: "workOrderDate", Kind: Date},
			{Name: "invoiceNo", Kind: Text, Required: true},
			{Name: "invoiceAmount", Kind: Number, Required: true},
			{Name: "dateOfReceipt", Kind: Date, Required: true},
			{Name: "amountReceived", Kind: Number, Required: true},
			{Name: "gst", Kind: Number, Required: true},
			{Name: "tdsDeducted", Kind: Number, Required: true},
			{Name: "travelAmt", Kind: Number, Required: true},
			{Name: "receiptInAccount", Kind: Text, Required: true},
			{Name: "description", Kind: Text, Required: true},
			{Name: "remarks", Kind: Text},
		},
	)
}
