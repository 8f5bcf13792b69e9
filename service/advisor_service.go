package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"loan-optimizer/domain"
	"loan-optimizer/metrics"
	"loan-optimizer/repository"
)

const DefaultCurrencySymbol = "₹"

// AdvisorOptions tunes an AdvisorService. Zero values fall back to defaults.
type AdvisorOptions struct {
	Cache         repository.CacheRepository
	CacheTTL      time.Duration
	Timeout       time.Duration
	MaxRetries    int
	RetryInterval time.Duration
	Currency      string
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
}

// AdvisorService phrases computed loan figures as advice. Every operation
// returns usable text: when the generator is missing, slow or failing, a
// fallback built from the same figures is returned instead.
type AdvisorService struct {
	generator     TextGenerator
	cache         repository.CacheRepository
	cacheTTL      time.Duration
	timeout       time.Duration
	maxRetries    int
	retryInterval time.Duration
	currency      string
	logger        *zap.Logger
	metrics       *metrics.Metrics
}

// NewAdvisorService wraps generator, which may be nil.
func NewAdvisorService(generator TextGenerator, opts AdvisorOptions) *AdvisorService {
	s := &AdvisorService{
		generator:     generator,
		cache:         opts.Cache,
		cacheTTL:      opts.CacheTTL,
		timeout:       opts.Timeout,
		maxRetries:    max(0, opts.MaxRetries),
		retryInterval: opts.RetryInterval,
		currency:      opts.Currency,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
	}
	if s.cacheTTL <= 0 {
		s.cacheTTL = DefaultAdviceTTL
	}
	if s.timeout <= 0 {
		s.timeout = DefaultLLMTimeout
	}
	if s.retryInterval <= 0 {
		s.retryInterval = DefaultRetryInterval
	}
	if s.currency == "" {
		s.currency = DefaultCurrencySymbol
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// Enabled reports whether a text generator is configured.
func (s *AdvisorService) Enabled() bool {
	return s.generator != nil
}

// ComparativeInsight contrasts the best and the lowest ranked offer.
func (s *AdvisorService) ComparativeInsight(ctx context.Context, ranked []domain.RankedLoan) string {
	if len(ranked) < 2 {
		return "Add at least two loan options to get comparative insights."
	}
	best, worst := ranked[0], ranked[len(ranked)-1]

	text, _ := s.generate(ctx, KindComparativeInsight, s.comparativePrompt(best, worst), true, func() string {
		return s.fallbackComparativeInsight(best, worst)
	})
	return text
}

// Recommendation explains why best is the pick. Confidence is high only for
// generated text about a clearly superior offer.
func (s *AdvisorService) Recommendation(ctx context.Context, best domain.RankedLoan, profile map[string]any, all []domain.RankedLoan) (string, domain.Confidence) {
	text, generated := s.generate(ctx, KindRecommendation, s.recommendationPrompt(best, profile, all), true, func() string {
		return s.fallbackRecommendation(best)
	})

	confidence := domain.ConfidenceMedium
	if generated && best.Score > HighConfidenceScore {
		confidence = domain.ConfidenceHigh
	}
	return text, confidence
}

// ExplainTerm explains a loan term in plain language.
func (s *AdvisorService) ExplainTerm(ctx context.Context, term string, tc *domain.TermContext) string {
	term = strings.TrimSpace(term)
	text, _ := s.generate(ctx, KindExplainTerm, s.explainTermPrompt(term, tc), true, func() string {
		return fallbackExplanation(term)
	})
	return text
}

// SavingsStrategy suggests a prepayment plan for the given savings.
func (s *AdvisorService) SavingsStrategy(ctx context.Context, in domain.SavingsPlanInput) string {
	text, _ := s.generate(ctx, KindSavingsStrategy, s.savingsStrategyPrompt(in), true, func() string {
		return s.fallbackSavingsStrategy(in)
	})
	return text
}

// Chat answers a free-form question. Answers depend on the conversation and
// are never cached.
func (s *AdvisorService) Chat(ctx context.Context, question string, lc *domain.LoanContext, history []domain.ChatMessage) string {
	text, _ := s.generate(ctx, KindChat, s.chatPrompt(question, lc, history), false, func() string {
		return fallbackChatAnswer
	})
	return text
}

// PrepaymentInsight comments on a simulated prepayment.
func (s *AdvisorService) PrepaymentInsight(ctx context.Context, req domain.PrepaymentRequest, out domain.PrepaymentOutcome) string {
	text, _ := s.generate(ctx, KindPrepaymentInsight, s.prepaymentPrompt(req, out), true, func() string {
		return s.fallbackPrepaymentInsight(req, out)
	})
	return text
}

// generate returns model text for prompt, or fallback() when none can be
// had. The boolean reports whether the text came from the model.
func (s *AdvisorService) generate(ctx context.Context, kind, prompt string, cacheable bool, fallback func() string) (string, bool) {
	if s.generator == nil {
		s.metrics.ObserveAdvisory(kind, metrics.OutcomeFallback)
		return fallback(), false
	}

	useCache := cacheable && s.cache != nil
	key := repository.CacheKey(kind, prompt)
	if useCache {
		if text, ok := s.cache.Get(ctx, key); ok {
			s.metrics.ObserveAdvisory(kind, metrics.OutcomeCached)
			return text, true
		}
	}

	text, err := s.call(ctx, prompt)
	if err != nil {
		s.logger.Warn("advisory text unavailable, using fallback",
			zap.String("kind", kind),
			zap.Error(err),
		)
		s.metrics.ObserveAdvisory(kind, metrics.OutcomeFallback)
		return fallback(), false
	}

	if useCache {
		if err := s.cache.Set(ctx, key, text, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache advisory text", zap.String("kind", kind), zap.Error(err))
		}
	}
	s.metrics.ObserveAdvisory(kind, metrics.OutcomeGenerated)
	return text, true
}

// call runs the generator under the configured timeout, retrying transient
// failures with exponential backoff.
func (s *AdvisorService) call(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.LLMCallLatency.Observe(time.Since(start).Seconds())
		}
	}()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = s.retryInterval

	var text string
	op := func() error {
		out, err := s.generator.Generate(ctx, prompt)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && !apiErr.Retryable() {
				return backoff.Permanent(err)
			}
			return err
		}
		out = strings.TrimSpace(out)
		if out == "" {
			return backoff.Permanent(fmt.Errorf("%w: empty response", domain.ErrExternalServiceUnavailable))
		}
		text = out
		return nil
	}

	err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(policy, uint64(s.maxRetries)), ctx))
	if err != nil {
		if !errors.Is(err, domain.ErrExternalServiceUnavailable) {
			err = fmt.Errorf("%w: %v", domain.ErrExternalServiceUnavailable, err)
		}
		return "", err
	}
	return text, nil
}
