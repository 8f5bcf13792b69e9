package http

import "loan-optimizer/domain"

type compareLoansRequest struct {
	Loans []domain.LoanOffer `json:"loans"`
}

type compareLoansResponse struct {
	Comparisons   []domain.RankedLoan `json:"comparisons"`
	AIInsight     string              `json:"ai_insight"`
	BestLoanID    string              `json:"best_loan_id"`
	TotalCompared int                 `json:"total_compared"`
}

type prepaymentRequest struct {
	domain.PrepaymentRequest
	WithInsight bool `json:"with_insight"`
}

type prepaymentResponse struct {
	domain.PrepaymentOutcome
	AIInsight string `json:"ai_insight,omitempty"`
}

type scheduleResponse struct {
	Schedule []domain.AmortizationRow `json:"schedule"`
	domain.ScheduleSummary
}

type advisorRequest struct {
	BestLoan    domain.RankedLoan   `json:"best_loan"`
	UserProfile map[string]any      `json:"user_profile"`
	AllLoans    []domain.RankedLoan `json:"all_loans"`
}

type advisorResponse struct {
	Recommendation string            `json:"recommendation"`
	BestLoan       domain.RankedLoan `json:"best_loan"`
	Confidence     domain.Confidence `json:"confidence"`
}

type explainTermRequest struct {
	Term    string              `json:"term" binding:"required"`
	Context *domain.TermContext `json:"context"`
}

type explainTermResponse struct {
	Term        string `json:"term"`
	Explanation string `json:"explanation"`
}

type currentLoan struct {
	domain.LoanTerms
	ProcessingFee float64 `json:"processing_fee"`
}

type strategyRequest struct {
	CurrentLoan      currentLoan `json:"current_loan"`
	AvailableSavings float64     `json:"available_savings"`
	FinancialGoal    string      `json:"financial_goal" binding:"required"`
	TimelineMonths   int         `json:"timeline_months"`
}

type strategyResponse struct {
	Strategy         string  `json:"strategy"`
	AvailableSavings float64 `json:"available_savings"`
	TimelineMonths   int     `json:"timeline_months"`
	Goal             string  `json:"goal"`
}

type chatRequest struct {
	UserQuestion        string               `json:"user_question" binding:"required"`
	LoanContext         *domain.LoanContext  `json:"loan_context"`
	ConversationHistory []domain.ChatMessage `json:"conversation_history"`
}

type chatResponse struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}
