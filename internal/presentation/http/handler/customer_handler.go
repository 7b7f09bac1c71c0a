package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	*Guard
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(guard *Guard, customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{Guard: guard, customerService: customerService}
}

// List handles listing customers with search and pagination
func (h *CustomerHandler) List(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	search := c.Query("search")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.customerService.ListCustomers(c.Request.Context(), session.Token, search, page)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Customers retrieved successfully", result)
}

// Get handles fetching one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	customer, err := h.customerService.GetCustomer(c.Request.Context(), session.Token, c.Param("id"))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Customer retrieved successfully", customer)
}

// Create handles creating a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), session.Token, &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.Created(c, "Customer created successfully", customer)
}

// Update handles updating a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), session.Token, c.Param("id"), &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Customer updated successfully", customer)
}

// Delete handles deleting a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Customer deleted successfully", nil)
}

// Export serves the searched customer set as a spreadsheet download.
func (h *CustomerHandler) Export(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	file, err := h.customerService.ExportCustomers(c.Request.Context(), session.Token, c.Query("search"))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	sendWorkbook(c, file)
}

// Codes serves the receipt form's customer picklist.
func (h *CustomerHandler) Codes(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	options, err := h.customerService.CustomerCodes(c.Request.Context(), session.Token)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Customer codes retrieved successfully", options)
}
