package service

import "time"

const (
	// Longest schedule the API will materialize.
	MaxScheduleMonths = 1200

	// Chat forwards only the most recent exchanges to the model.
	MaxHistoryExchanges = 3

	MaxResponseTokens = 400

	HighConfidenceScore = 80.0

	DefaultLLMTimeout    = 10 * time.Second
	DefaultRetryInterval = 200 * time.Millisecond
	DefaultAdviceTTL     = time.Hour
)

// Advisory kinds, used for cache keys, logs and metrics.
const (
	KindComparativeInsight = "comparative_insight"
	KindRecommendation     = "recommendation"
	KindExplainTerm        = "explain_term"
	KindSavingsStrategy    = "savings_strategy"
	KindChat               = "chat"
	KindPrepaymentInsight  = "prepayment_insight"
)
