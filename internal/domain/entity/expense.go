package entity

import "github.com/auditdesk/backoffice-api/internal/domain/enum"

// Expense represents a business expense record.
type Expense struct {
	ID                 string             `json:"_id,omitempty"`
	Date               string             `json:"date"`
	ExpenseDescription string             `json:"expenseDescription"`
	Amount             float64            `json:"amount"`
	PaymentBy          enum.PaymentMethod `json:"paymentBy"`
	PaidFromAcc        string             `json:"paidFromAcc"`
	Remarks            string             `json:"remarks"`
	CreatedAt          string             `json:"createdAt,omitempty"`
	UpdatedAt          string             `json:"updatedAt,omitempty"`
	Version            int                `json:"__v,omitempty"`
}
