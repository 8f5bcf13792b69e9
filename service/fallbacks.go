package service

import (
	"fmt"
	"math"
	"strings"

	"loan-optimizer/domain"
)

// Fallback texts are built only from numbers that were already computed, so a
// missing or failing model never changes what the borrower is told.

func (s *AdvisorService) fallbackRecommendation(best domain.RankedLoan) string {
	payoff := ""
	if best.TenureMonths > 0 {
		payoff = fmt.Sprintf(" You would be debt free in %.1f years.", years(best.TenureMonths))
	}
	return fmt.Sprintf("Based on our analysis, %s is your best option with a monthly EMI of %s and a total cost of %s "+
		"(score %.2f/100).%s It offers the best balance of monthly affordability and overall savings among the loans compared.",
		best.Name, money(s.currency, best.EMI), money(s.currency, best.TotalCost), best.Score, payoff)
}

func (s *AdvisorService) fallbackComparativeInsight(best, worst domain.RankedLoan) string {
	emiDiff := worst.EMI - best.EMI
	interestDiff := worst.TotalInterest - best.TotalInterest

	var monthly string
	switch {
	case emiDiff > 0:
		monthly = fmt.Sprintf("saves you %s every month", money(s.currency, emiDiff))
	case emiDiff < 0:
		monthly = fmt.Sprintf("costs %s more per month", money(s.currency, -emiDiff))
	default:
		monthly = "keeps the same monthly EMI"
	}

	var total string
	if interestDiff >= 0 {
		total = fmt.Sprintf("%s less in total interest", money(s.currency, interestDiff))
	} else {
		total = fmt.Sprintf("%s more in total interest", money(s.currency, -interestDiff))
	}

	return fmt.Sprintf("Choosing %s over %s %s, with %s and a total cost that is %s lower.",
		best.Name, worst.Name, monthly, total, money(s.currency, math.Max(0, worst.SavingsVsFirst)))
}

type glossaryEntry struct {
	key         string
	explanation string
}

// glossary is matched in order against the lower-cased term.
var glossary = []glossaryEntry{
	{"emi", "EMI (Equated Monthly Installment) is the fixed amount you pay every month towards your loan. It covers both part of the amount you borrowed and the interest charged by the lender."},
	{"principal", "Principal is the amount you actually borrow. If you take a loan of 500,000, that 500,000 is your principal; interest is charged on whatever part of it is still unpaid."},
	{"interest rate", "The interest rate is the yearly cost of borrowing, shown as a percentage. Borrowing 100,000 at 10% a year costs roughly 10,000 in interest for that year."},
	{"processing fee", "A processing fee is a one-time charge the lender takes to set up your loan. It is usually 0.5% to 2% of the loan amount and adds to your total cost."},
	{"tenure", "Tenure is how long you take to repay the loan. A longer tenure lowers your EMI but means you pay more interest overall."},
	{"apr", "APR (Annual Percentage Rate) is the true yearly cost of a loan, including fees and charges, not just the interest rate."},
	{"prepayment", "A prepayment is an extra payment on top of your EMI. It reduces the principal early, so you pay less interest and can finish the loan sooner."},
	{"amortization", "An amortization schedule shows, month by month, how much of each EMI goes to interest and how much reduces the principal."},
}

func fallbackExplanation(term string) string {
	lower := strings.ToLower(term)
	for _, entry := range glossary {
		if strings.Contains(lower, entry.key) {
			return entry.explanation
		}
	}
	return fmt.Sprintf("%s is an important loan term that affects your monthly payments and the total cost of the loan. "+
		"Check your loan agreement or ask your lender for how it applies to you.", term)
}

func (s *AdvisorService) fallbackSavingsStrategy(in domain.SavingsPlanInput) string {
	savings := in.AvailableSavings
	timeline := max(in.TimelineMonths, 1)
	quarterly := savings / float64(timeline) * 3
	interestAvoided := savings * in.Loan.AnnualRate / 100

	var b strings.Builder
	b.WriteString("Here is a simple prepayment plan:\n\n")
	fmt.Fprintf(&b, "1. Months 1-3: keep %s (20%% of your savings) aside as an emergency fund.\n", wholeMoney(s.currency, savings*0.2))
	fmt.Fprintf(&b, "2. Month 4: make a first prepayment of %s to cut the principal.\n", wholeMoney(s.currency, quarterly))
	fmt.Fprintf(&b, "3. Month 7: prepay another %s; the interest savings start to show.\n", wholeMoney(s.currency, quarterly))
	b.WriteString("4. Month 12: compare current market rates. If you can get 1-2% lower, consider refinancing.\n")
	fmt.Fprintf(&b, "5. Month %d: prepay the remaining %s to reach your goal (%s).\n", timeline, wholeMoney(s.currency, savings*0.4), in.FinancialGoal)
	fmt.Fprintf(&b, "\nExpected outcome: roughly %s less interest per year on the amount you prepay.", wholeMoney(s.currency, interestAvoided))
	return b.String()
}

const fallbackChatAnswer = "I'm here to help with your loan questions! Could you share a bit more detail? " +
	"For example, are you asking about EMI calculations, interest rates or prepayment options?"

func (s *AdvisorService) fallbackPrepaymentInsight(req domain.PrepaymentRequest, out domain.PrepaymentOutcome) string {
	if out.InterestSaved <= 0 {
		return fmt.Sprintf("A prepayment of %s after month %d does not reduce your total interest, so keeping the money invested may serve you better.",
			money(s.currency, req.Amount), req.Month)
	}

	effect := fmt.Sprintf("finishes your loan %d months earlier", out.MonthsSaved)
	if req.ReduceEMI {
		effect = fmt.Sprintf("lowers your EMI from %s to %s", money(s.currency, out.OriginalEMI), money(s.currency, out.NewEMI))
	}
	return fmt.Sprintf("Prepaying %s after month %d saves you %s in interest and %s. The interest saved matches the amount prepaid in about %d months.",
		money(s.currency, req.Amount), req.Month, money(s.currency, out.InterestSaved), effect, out.BreakEvenMonths)
}
