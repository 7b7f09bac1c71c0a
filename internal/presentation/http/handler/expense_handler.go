package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/auditdesk/backoffice-api/internal/application/service"
	"github.com/auditdesk/backoffice-api/internal/presentation/http/dto/response"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	*Guard
	expenseService *service.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(guard *Guard, expenseService *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Guard: guard, expenseService: expenseService}
}

func expenseFilter(c *gin.Context) service.ExpenseFilter {
	return service.ExpenseFilter{
		FromDate: c.Query("fromDate"),
		ToDate:   c.Query("toDate"),
	}
}

// List handles listing expenses with date filtering and pagination
func (h *ExpenseHandler) List(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.expenseService.ListExpenses(c.Request.Context(), session.Token, expenseFilter(c), page)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Expenses retrieved successfully", result)
}

// Get handles fetching one expense
func (h *ExpenseHandler) Get(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), session.Token, c.Param("id"))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Expense retrieved successfully", expense)
}

// Create handles creating an expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), session.Token, &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.Created(c, "Expense created successfully", expense)
}

// Update handles updating an expense
func (h *ExpenseHandler) Update(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	var input service.ExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), session.Token, c.Param("id"), &input)
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Expense updated successfully", expense)
}

// Delete handles deleting an expense
func (h *ExpenseHandler) Delete(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), session.Token, c.Param("id")); err != nil {
		h.Fail(c, session, err)
		return
	}
	response.OK(c, "Expense deleted successfully", nil)
}

// Export serves the filtered expense set as a spreadsheet download.
func (h *ExpenseHandler) Export(c *gin.Context) {
	session := h.Session(c)
	if session == nil {
		return
	}

	file, err := h.expenseService.ExportExpenses(c.Request.Context(), session.Token, expenseFilter(c))
	if err != nil {
		h.Fail(c, session, err)
		return
	}
	sendWorkbook(c, file)
}
