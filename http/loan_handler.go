package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loan-optimizer/domain"
	"loan-optimizer/service"
)

type LoanHandler struct {
	loans   *service.LoanService
	advisor *service.AdvisorService
}

func NewLoanHandler(loans *service.LoanService, advisor *service.AdvisorService) *LoanHandler {
	return &LoanHandler{loans: loans, advisor: advisor}
}

// CalculateEMI handles POST /api/calculate-emi.
func (h *LoanHandler) CalculateEMI(c *gin.Context) {
	var terms domain.LoanTerms
	if !bindJSON(c, &terms) {
		return
	}

	result, err := h.loans.CalculateEMI(terms)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CompareLoans handles POST /api/compare-loans.
func (h *LoanHandler) CompareLoans(c *gin.Context) {
	var req compareLoansRequest
	if !bindJSON(c, &req) {
		return
	}

	ranked, err := h.loans.CompareLoans(req.Loans)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, compareLoansResponse{
		Comparisons:   ranked,
		AIInsight:     h.advisor.ComparativeInsight(c.Request.Context(), ranked),
		BestLoanID:    ranked[0].ID,
		TotalCompared: len(ranked),
	})
}

// CalculatePrepayment handles POST /api/calculate-prepayment.
func (h *LoanHandler) CalculatePrepayment(c *gin.Context) {
	var req prepaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.loans.SimulatePrepayment(req.PrepaymentRequest)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := prepaymentResponse{PrepaymentOutcome: out}
	if req.WithInsight {
		resp.AIInsight = h.advisor.PrepaymentInsight(c.Request.Context(), req.PrepaymentRequest, out)
	}
	c.JSON(http.StatusOK, resp)
}

// AmortizationSchedule handles POST /api/amortization-schedule.
func (h *LoanHandler) AmortizationSchedule(c *gin.Context) {
	var terms domain.LoanTerms
	if !bindJSON(c, &terms) {
		return
	}

	rows, summary, err := h.loans.AmortizationSchedule(terms)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, scheduleResponse{Schedule: rows, ScheduleSummary: summary})
}
