package entity

// Customer represents a customer record as stored by the backend service.
// Field names follow the backend's wire format verbatim.
type Customer struct {
	ID                 string  `json:"_id,omitempty"`
	CompanyName        string  `json:"companyName"`
	CustomerName       string  `json:"customerName"`
	CustomerCode       string  `json:"customerCode"`
	Place              string  `json:"place"`
	WorkClassification string  `json:"workClassification"`
	AuditScope         string  `json:"auditScope"`
	WorkOrderNo        string  `json:"workOrderNo"`
	WorkOrderDate      string  `json:"workOrderDate"`
	WorkOrderAmount    float64 `json:"workOrderAmount"`
	// GSTNumber is derived from WorkOrderAmount (18%, two decimals) and
	// stored as text. It is never entered directly.
	GSTNumber string `json:"gstNumber"`
	Travel    string `json:"travel"`
	Remarks   string `json:"remarks"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
	Version   int    `json:"__v,omitempty"`
}

// CustomerCodeOption pairs a customer's code with its work order, powering
// the receipt form's picklist.
type CustomerCodeOption struct {
	CustomerCode  string `json:"customerCode"`
	WorkOrderNo   string `json:"workOrderNo"`
	WorkOrderDate string `json:"workOrderDate"`
	// Display is the combined "CODE - WONO" key the receipt screen submits.
	Display string `json:"display"`
}
