package service

import (
	"fmt"

	"go.uber.org/zap"

	"loan-optimizer/calculator"
	"loan-optimizer/domain"
	"loan-optimizer/metrics"
)

// Operation names for logs and metrics.
const (
	OpCalculateEMI = "calculate_emi"
	OpSchedule     = "amortization_schedule"
	OpCompare      = "compare_loans"
	OpPrepayment   = "prepayment"
)

// LoanService runs the numeric core and records what it did.
type LoanService struct {
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewLoanService creates a new LoanService. Both arguments may be nil.
func NewLoanService(logger *zap.Logger, m *metrics.Metrics) *LoanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoanService{logger: logger, metrics: m}
}

// CalculateEMI computes the installment and totals for the given terms.
func (s *LoanService) CalculateEMI(terms domain.LoanTerms) (domain.EMIResult, error) {
	result, err := calculator.ComputeEMI(terms)
	s.observe(OpCalculateEMI, err)
	if err != nil {
		return domain.EMIResult{}, err
	}

	s.logger.Debug("emi calculated",
		zap.Float64("principal", terms.Principal),
		zap.Float64("rate", terms.AnnualRatePercent),
		zap.Int("tenure", terms.TenureMonths),
		zap.Float64("emi", result.EMI),
	)
	return result, nil
}

// AmortizationSchedule returns the month-by-month schedule with its totals.
func (s *LoanService) AmortizationSchedule(terms domain.LoanTerms) ([]domain.AmortizationRow, domain.ScheduleSummary, error) {
	if terms.TenureMonths > MaxScheduleMonths {
		err := fmt.Errorf("%w: schedule limited to %d months, got %d", domain.ErrInvalidInput, MaxScheduleMonths, terms.TenureMonths)
		s.observe(OpSchedule, err)
		return nil, domain.ScheduleSummary{}, err
	}

	rows, err := calculator.GenerateSchedule(terms)
	s.observe(OpSchedule, err)
	if err != nil {
		return nil, domain.ScheduleSummary{}, err
	}
	return rows, calculator.SummarizeSchedule(rows), nil
}

// CompareLoans ranks a batch of offers, best first.
func (s *LoanService) CompareLoans(offers []domain.LoanOffer) ([]domain.RankedLoan, error) {
	ranked, err := calculator.RankLoans(offers)
	s.observe(OpCompare, err)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("loans compared",
		zap.Int("count", len(ranked)),
		zap.String("best", ranked[0].ID),
		zap.Float64("best_score", ranked[0].Score),
	)
	return ranked, nil
}

// SimulatePrepayment compares the loan with and without a lump-sum payment.
func (s *LoanService) SimulatePrepayment(req domain.PrepaymentRequest) (domain.PrepaymentOutcome, error) {
	out, err := calculator.SimulatePrepayment(req)
	s.observe(OpPrepayment, err)
	if err != nil {
		return domain.PrepaymentOutcome{}, err
	}

	s.logger.Debug("prepayment simulated",
		zap.Float64("amount", req.Amount),
		zap.Int("month", req.Month),
		zap.Bool("reduce_emi", req.ReduceEMI),
		zap.Float64("interest_saved", out.InterestSaved),
	)
	return out, nil
}

func (s *LoanService) observe(op string, err error) {
	s.metrics.ObserveCalculation(op, err)
	if err != nil {
		s.logger.Info("calculation rejected", zap.String("operation", op), zap.Error(err))
	}
}
