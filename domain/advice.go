package domain

// ChatMessage is one prior exchange of an advisory conversation. The history is
// forwarded to the text generator as-is.
type ChatMessage struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// LoanContext is the optional loan a chat question refers to.
type LoanContext struct {
	Principal    float64 `json:"principal,omitempty"`
	InterestRate float64 `json:"interest_rate,omitempty"`
	EMI          float64 `json:"emi,omitempty"`
	TenureMonths int     `json:"tenure,omitempty"`
}

// TermContext gives an example loan for a glossary explanation.
type TermContext struct {
	Amount float64 `json:"amount,omitempty"`
	Rate   float64 `json:"rate,omitempty"`
}

// SavingsPlanInput drives a prepayment strategy suggestion.
type SavingsPlanInput struct {
	Loan             LoanOffer
	AvailableSavings float64
	FinancialGoal    string
	TimelineMonths   int
}

// Confidence of a recommendation.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
)
