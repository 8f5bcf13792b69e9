package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"loan-optimizer/domain"
)

const advisorPersona = "You are a friendly, practical loan advisor. You explain loan numbers in plain " +
	"language for first-time borrowers, avoid jargon, quote the exact figures you are given and never " +
	"invent new ones."

func (s *AdvisorService) recommendationPrompt(best domain.RankedLoan, profile map[string]any, all []domain.RankedLoan) string {
	profileJSON, err := json.Marshal(profile)
	if err != nil || len(profile) == 0 {
		profileJSON = []byte("{}")
	}

	return fmt.Sprintf(`Explain why this is the best loan option in 3-4 simple sentences.

Best loan option:
- Name: %s
- Monthly EMI: %s
- Total interest: %s
- Total cost: %s
- Score: %.2f/100

Borrower profile: %s
Options compared: %d

Focus on tangible benefits such as monthly savings and how soon the borrower is debt free.
Use a conversational, encouraging tone. Keep it to 4 sentences at most.`,
		best.Name,
		money(s.currency, best.EMI),
		money(s.currency, best.TotalInterest),
		money(s.currency, best.TotalCost),
		best.Score,
		profileJSON,
		len(all),
	)
}

func (s *AdvisorService) comparativePrompt(best, worst domain.RankedLoan) string {
	return fmt.Sprintf(`Compare these loan options and give the key insight in 2-3 sentences.

Best option: %s
- EMI: %s
- Total interest: %s
- Total cost: %s

Lowest ranked option: %s
- EMI: %s
- Total interest: %s
- Total cost: %s

EMI difference: %s per month
Interest difference: %s in total

Explain the real-life impact of choosing the better option. Be specific and encouraging.`,
		best.Name, money(s.currency, best.EMI), money(s.currency, best.TotalInterest), money(s.currency, best.TotalCost),
		worst.Name, money(s.currency, worst.EMI), money(s.currency, worst.TotalInterest), money(s.currency, worst.TotalCost),
		money(s.currency, worst.EMI-best.EMI),
		money(s.currency, worst.TotalInterest-best.TotalInterest),
	)
}

func (s *AdvisorService) explainTermPrompt(term string, tc *domain.TermContext) string {
	example := ""
	if tc != nil && tc.Amount > 0 {
		example = fmt.Sprintf("\nExample context: a loan of %s at %.2f%% interest.", wholeMoney(s.currency, tc.Amount), tc.Rate)
	}

	return fmt.Sprintf(`Explain the financial term %q in 2-3 simple sentences for someone taking their first loan.
Use everyday language and a relevant example.%s

Keep it under 50 words.`, term, example)
}

func (s *AdvisorService) savingsStrategyPrompt(in domain.SavingsPlanInput) string {
	return fmt.Sprintf(`Create a personalized loan prepayment strategy.

Current loan:
- Principal: %s
- Interest rate: %.2f%%
- Tenure: %d months
- Processing fee: %s

Borrower situation:
- Available savings: %s
- Financial goal: %s
- Target timeline: %d months

Give 6-8 numbered steps with specific prepayment amounts and months, expected savings milestones
and when refinancing is worth considering.`,
		money(s.currency, in.Loan.Principal),
		in.Loan.AnnualRate,
		in.Loan.TenureMonths,
		money(s.currency, in.Loan.ProcessingFee),
		money(s.currency, in.AvailableSavings),
		in.FinancialGoal,
		in.TimelineMonths,
	)
}

func (s *AdvisorService) chatPrompt(question string, lc *domain.LoanContext, history []domain.ChatMessage) string {
	var b strings.Builder
	b.WriteString("Answer the borrower's question in a friendly, practical way.\n")

	if lc != nil {
		fmt.Fprintf(&b, "\nBorrower's current loan:\n- Principal: %s\n- Interest rate: %.2f%%\n- EMI: %s\n- Tenure: %d months\n",
			money(s.currency, lc.Principal), lc.InterestRate, money(s.currency, lc.EMI), lc.TenureMonths)
	}

	if len(history) > MaxHistoryExchanges {
		history = history[len(history)-MaxHistoryExchanges:]
	}
	if len(history) > 0 {
		b.WriteString("\nPrevious conversation:\n")
		for _, h := range history {
			fmt.Fprintf(&b, "User: %s\nAssistant: %s\n\n", h.Question, h.Answer)
		}
	}

	fmt.Fprintf(&b, "\nQuestion: %s\n\n", question)
	b.WriteString("Reply in 3-4 sentences and use the loan figures when they help. Ask a follow-up question if details are missing.")
	return b.String()
}

func (s *AdvisorService) prepaymentPrompt(req domain.PrepaymentRequest, out domain.PrepaymentOutcome) string {
	mode := "keep the EMI and shorten the tenure"
	if req.ReduceEMI {
		mode = "keep the tenure and lower the EMI"
	}

	return fmt.Sprintf(`Explain the effect of this loan prepayment in 2-3 sentences.

Loan: %s at %.2f%% for %d months
Prepayment: %s after month %d, chosen to %s

- EMI: %s before, %s after
- Total interest: %s before, %s after (saves %s)
- Tenure: %d months before, %d months after (%d months saved)
- Break-even: %d months

Say whether the prepayment is worth it and why, using these numbers.`,
		money(s.currency, req.Principal), req.AnnualRatePercent, req.TenureMonths,
		money(s.currency, req.Amount), req.Month, mode,
		money(s.currency, out.OriginalEMI), money(s.currency, out.NewEMI),
		money(s.currency, out.OriginalTotalInterest), money(s.currency, out.NewTotalInterest), money(s.currency, out.InterestSaved),
		out.OriginalTenure, out.NewTenure, out.MonthsSaved,
		out.BreakEvenMonths,
	)
}
