package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"loan-optimizer/domain"
)

type sampleScenario struct {
	Name    string             `json:"name"`
	Current domain.LoanOffer   `json:"current"`
	Options []domain.LoanOffer `json:"options"`
}

var sampleScenarios = []sampleScenario{
	{
		Name:    "Home Loan Refinancing",
		Current: domain.LoanOffer{ID: "current", Name: "Current Home Loan", Principal: 5_000_000, AnnualRate: 11.5, TenureMonths: 240},
		Options: []domain.LoanOffer{
			{ID: "option_a", Name: "Bank A - Premium Rate", Principal: 5_000_000, AnnualRate: 9.5, TenureMonths: 240, ProcessingFee: 25_000},
			{ID: "option_b", Name: "Bank B - Express Loan", Principal: 5_000_000, AnnualRate: 9.0, TenureMonths: 180, ProcessingFee: 75_000},
		},
	},
	{
		Name:    "Personal Loan Optimization",
		Current: domain.LoanOffer{ID: "current", Name: "Current Personal Loan", Principal: 500_000, AnnualRate: 16.0, TenureMonths: 36},
		Options: []domain.LoanOffer{
			{ID: "option_a", Name: "Bank C - Quick Cash", Principal: 500_000, AnnualRate: 13.0, TenureMonths: 36, ProcessingFee: 5_000},
			{ID: "option_b", Name: "Bank D - Fast Track", Principal: 500_000, AnnualRate: 14.0, TenureMonths: 24, ProcessingFee: 2_000},
		},
	},
	{
		Name:    "Car Loan Comparison",
		Current: domain.LoanOffer{ID: "current", Name: "Current Auto Loan", Principal: 1_000_000, AnnualRate: 10.0, TenureMonths: 60},
		Options: []domain.LoanOffer{
			{ID: "option_a", Name: "Bank E - Auto Finance", Principal: 1_000_000, AnnualRate: 8.5, TenureMonths: 60, ProcessingFee: 15_000},
			{ID: "option_b", Name: "Bank F - Quick Auto", Principal: 1_000_000, AnnualRate: 9.0, TenureMonths: 48, ProcessingFee: 10_000},
		},
	},
}

// SampleLoans handles GET /api/sample-loans.
func SampleLoans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"scenarios": sampleScenarios})
}
