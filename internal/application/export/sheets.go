package export

import "github.com/auditdesk/backoffice-api/internal/domain/entity"

// CustomerSheet lays out customer rows for export. workOrderDate moves to
// the last column so the formatted date sits next to nothing it could be
// confused with.
func CustomerSheet(customers []entity.Customer) Sheet {
	rows := make([][]any, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []any{
			c.CompanyName,
			c.CustomerName,
			c.CustomerCode,
			c.Place,
			c.WorkClassification,
			c.AuditScope,
			c.WorkOrderNo,
			c.WorkOrderAmount,
			c.GSTNumber,
			c.Travel,
			c.Remarks,
			entity.DisplayDate(c.WorkOrderDate),
		})
	}
	return Sheet{
		Name:     "Customer",
		FileName: "Customer.xlsx",
		Headers: []string{
			"companyName", "customerName", "customerCode", "place",
			"workClassification", "auditScope", "workOrderNo",
			"workOrderAmount", "gstNumber", "travel", "remarks",
			"workOrderDate",
		},
		Rows: rows,
	}
}

// ExpenseSheet lays out expense rows for export, date last.
func ExpenseSheet(expenses []entity.Expense) Sheet {
	rows := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		rows = append(rows, []any{
			e.ExpenseDescription,
			e.Amount,
			e.PaymentBy.String(),
			e.PaidFromAcc,
			e.Remarks,
			entity.DisplayDate(e.Date),
		})
	}
	return Sheet{
		Name:     "Expenses",
		FileName: "Filtered_Expenses.xlsx",
		Headers: []string{
			"expenseDescription", "amount", "paymentBy", "paidFromAcc",
			"remarks", "date",
		},
		Rows: rows,
	}
}

// ReceiptSheet lays out receipt rows for export. Receipts carry two dates;
// both are formatted and both move to the trailing columns.
func ReceiptSheet(receipts []entity.Receipt) Sheet {
	rows := make([][]any, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, []any{
			r.CustomerCode,
			r.InvoiceNo,
			r.InvoiceAmount,
			r.AmountReceived,
			r.GST,
			r.TDSDeducted,
			r.TravelAmt,
			r.ReceiptInAccount,
			r.Description,
			r.Remarks,
			entity.DisplayDate(r.WorkOrderDate),
			entity.DisplayDate(r.DateOfReceipt),
		})
	}
	return Sheet{
		Name:     "Receipts",
		FileName: "Receipts.xlsx",
		Headers: []string{
			"customerCode", "invoiceNo", "invoiceAmount", "amountReceived",
			"gst", "tdsDeducted", "travelAmt", "receiptInAccount",
			"description", "remarks", "workOrderDate", "dateOfReceipt",
		},
		Rows: rows,
	}
}
