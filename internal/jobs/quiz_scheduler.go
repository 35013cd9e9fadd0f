package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ShishirShekhar/E-Learning-Platform/internal/metrics"
	"github.com/ShishirShekhar/E-Learning-Platform/internal/model"
)

type TestSource interface {
	ListTestsByFrequency(ctx context.Context, frequency string) ([]model.Test, error)
	UpdateTestQuestions(ctx context.Context, testID string, questions []string) error
}

type QuestionGenerator interface {
	GenerateQuestions(ctx context.Context, topic, difficulty string) ([]string, error)
}

// QuizScheduler regenerates test questions on the tests' own cadence: daily
// tests at midnight, weekly tests on Sunday, monthly tests on the first of the
// month. Upstream calls are paced so a large test catalog does not burst
// against the AI API.
type QuizScheduler struct {
	store   TestSource
	gen     QuestionGenerator
	limiter *rate.Limiter
	metrics *metrics.Collector
	logger  *zap.Logger
}

func NewQuizScheduler(store TestSource, gen QuestionGenerator, collector *metrics.Collector, logger *zap.Logger, apiPause time.Duration) *QuizScheduler {
	if apiPause <= 0 {
		apiPause = time.Second
	}
	return &QuizScheduler{
		store:   store,
		gen:     gen,
		limiter: rate.NewLimiter(rate.Every(apiPause), 1),
		metrics: collector,
		logger:  logger,
	}
}

// Start registers the cron entries and starts the scheduler. The returned
// cron can be stopped by the caller on shutdown.
func (s *QuizScheduler) Start(ctx context.Context) *cron.Cron {
	c := cron.New()
	_, _ = c.AddFunc("0 0 * * *", func() { s.Run(ctx, model.FrequencyDaily) })
	_, _ = c.AddFunc("0 0 * * 0", func() { s.Run(ctx, model.FrequencyWeekly) })
	_, _ = c.AddFunc("0 0 1 * *", func() { s.Run(ctx, model.FrequencyMonthly) })
	c.Start()
	return c
}

// Run refreshes the question list of every test with the given frequency.
// A failure on one test is logged and skipped so the rest of the batch still
// runs.
func (s *QuizScheduler) Run(ctx context.Context, frequency string) {
	s.metrics.RecordQuizRun(frequency)

	tests, err := s.store.ListTestsByFrequency(ctx, frequency)
	if err != nil {
		s.logger.Error("quiz run listing failed",
			zap.String("frequency", frequency),
			zap.Error(err),
		)
		return
	}

	refreshed := 0
	for _, test := range tests {
		if err := s.limiter.Wait(ctx); err != nil {
			return
		}

		questions, err := s.gen.GenerateQuestions(ctx, test.Topic, "medium")
		if err != nil {
			s.metrics.RecordQuizFailure()
			s.logger.Warn("question generation failed",
				zap.String("test_id", test.ID),
				zap.String("topic", test.Topic),
				zap.Error(err),
			)
			continue
		}

		if err := s.store.UpdateTestQuestions(ctx, test.ID, questions); err != nil {
			s.metrics.RecordQuizFailure()
			s.logger.Warn("question update failed",
				zap.String("test_id", test.ID),
				zap.Error(err),
			)
			continue
		}
		refreshed++
	}

	if refreshed > 0 {
		s.logger.Info("quiz run completed",
			zap.String("frequency", frequency),
			zap.Int("refreshed", refreshed),
		)
	}
}
