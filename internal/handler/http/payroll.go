package http

import (
	"net/http"

	"github.com/dayflow-hris/hris-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/hris-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/hris-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const pdfContentType = "application/pdf"

type PayrollHandler interface {
	GetMyPayroll(w http.ResponseWriter, r *http.Request)
	GetMyPayslip(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
	}
}

// GetMyPayroll handles GET /payroll/my
func (h *payrollHandlerImpl) GetMyPayroll(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.GetPayroll(r.Context(), claims.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMyPayslip handles GET /payroll/my/payslip?period=YYYY-MM
func (h *payrollHandlerImpl) GetMyPayslip(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromRequest(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	h.writePayslip(w, r, claims.EmployeeID)
}

// List handles GET /payroll
func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.payrollService.ListPayroll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayslip handles GET /payroll/{code}/payslip?period=YYYY-MM
func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	h.writePayslip(w, r, chi.URLParam(r, "code"))
}

func (h *payrollHandlerImpl) writePayslip(w http.ResponseWriter, r *http.Request, employeeID string) {
	file, err := h.payrollService.RenderPayslip(r.Context(), payroll.PayslipRequest{
		EmployeeID: employeeID,
		Period:     r.URL.Query().Get("period"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, pdfContentType, file.Filename, file.Content)
}
