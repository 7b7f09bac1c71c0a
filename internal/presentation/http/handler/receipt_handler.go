package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	*Guard
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(guard *Guard, receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{Guard: guard, receiptService: receiptService}
}

func receiptFilter(c *gin.Context) service.ReceiptFilter {
	return service.ReceiptFilter{
		FromDate:     c.Query("fromDate"),
		ToDate:       c.Query("toDate"),
		CustomerCode: c.Query("customerCode"),
	}
}

// List handles listing receipts with filtering and pagination
func (h *ReceiptHandler) List(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.receiptService.ListReceipts(c.Request.Context(), session.Token, receiptFilter(c), page)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// Get handles fetching one receipt
func (h *ReceiptHandler) Get(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), session.Token, c.Param("id"))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Receipt retrieved successfully", receipt)
}

// Create handles creating a receipt
func (h *ReceiptHandler) Create(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.ReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.CreateReceipt(c.Request.Context(), session.Token, &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.Created(c, "Receipt created successfully", receipt)
}

// Update handles updating a receipt
func (h *ReceiptHandler) Update(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.ReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	receipt, err := h.receiptService.UpdateReceipt(c.Request.Context(), session.Token, c.Param("id"), &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Receipt updated successfully", receipt)
}

// Delete handles deleting a receipt
func (h *ReceiptHandler) Delete(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Receipt deleted successfully", nil)
}

// Export serves the filtered receipt set as a spreadsheet download.
func (h *ReceiptHandler) Export(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	file, err := h.receiptService.ExportReceipts(c.Request.Context(), session.Token, receiptFilter(c))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	sendWorkbook(c, file)
}
