package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"loan-optimizer/calculator"
	"loan-optimizer/domain"
	"loan-optimizer/service"
)

type AdvisorHandler struct {
	advisor *service.AdvisorService
	now     func() time.Time
}

func NewAdvisorHandler(advisor *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisor: advisor, now: time.Now}
}

// Recommend handles POST /api/ai-advisor.
func (h *AdvisorHandler) Recommend(c *gin.Context) {
	var req advisorRequest
	if !bindJSON(c, &req) {
		return
	}
	if strings.TrimSpace(req.BestLoan.Name) == "" {
		writeError(c, fmt.Errorf("%w: best_loan.loan_name is required", domain.ErrInvalidInput))
		return
	}

	text, confidence := h.advisor.Recommendation(c.Request.Context(), req.BestLoan, req.UserProfile, req.AllLoans)
	c.JSON(http.StatusOK, advisorResponse{
		Recommendation: text,
		BestLoan:       req.BestLoan,
		Confidence:     confidence,
	})
}

// ExplainTerm handles POST /api/ai-explain-term.
func (h *AdvisorHandler) ExplainTerm(c *gin.Context) {
	var req explainTermRequest
	if !bindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, explainTermResponse{
		Term:        req.Term,
		Explanation: h.advisor.ExplainTerm(c.Request.Context(), req.Term, req.Context),
	})
}

// Strategy handles POST /api/ai-strategy.
func (h *AdvisorHandler) Strategy(c *gin.Context) {
	var req strategyRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := validateStrategy(req); err != nil {
		writeError(c, err)
		return
	}

	loan := req.CurrentLoan
	strategy := h.advisor.SavingsStrategy(c.Request.Context(), domain.SavingsPlanInput{
		Loan: domain.LoanOffer{
			ID:            "current",
			Name:          "Current Loan",
			Principal:     loan.Principal,
			AnnualRate:    loan.AnnualRatePercent,
			TenureMonths:  loan.TenureMonths,
			ProcessingFee: loan.ProcessingFee,
		},
		AvailableSavings: req.AvailableSavings,
		FinancialGoal:    req.FinancialGoal,
		TimelineMonths:   req.TimelineMonths,
	})

	c.JSON(http.StatusOK, strategyResponse{
		Strategy:         strategy,
		AvailableSavings: req.AvailableSavings,
		TimelineMonths:   req.TimelineMonths,
		Goal:             req.FinancialGoal,
	})
}

func validateStrategy(req strategyRequest) error {
	if err := calculator.ValidateTerms(req.CurrentLoan.LoanTerms); err != nil {
		return err
	}
	if req.CurrentLoan.ProcessingFee < 0 {
		return fmt.Errorf("%w: processing fee must not be negative", domain.ErrInvalidInput)
	}
	if req.AvailableSavings < 0 {
		return fmt.Errorf("%w: available savings must not be negative", domain.ErrInvalidInput)
	}
	if req.TimelineMonths <= 0 {
		return fmt.Errorf("%w: timeline must be at least one month", domain.ErrInvalidInput)
	}
	return nil
}

// Chat handles POST /api/ai-chat.
func (h *AdvisorHandler) Chat(c *gin.Context) {
	var req chatRequest
	if !bindJSON(c, &req) {
		return
	}

	answer := h.advisor.Chat(c.Request.Context(), req.UserQuestion, req.LoanContext, req.ConversationHistory)
	c.JSON(http.StatusOK, chatResponse{
		Question:  req.UserQuestion,
		Answer:    answer,
		Timestamp: h.now().UTC().Format(time.RFC3339),
	})
}
