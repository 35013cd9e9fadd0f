// Package metrics collects Prometheus metrics for the AI proxy and the quiz
// scheduler. The HTTP server exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Collector struct {
	aiRequests   *prometheus.CounterVec
	quizRuns     *prometheus.CounterVec
	quizFailures prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		aiRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aitutor_ai_requests_total",
			Help: "AI generation requests by operation and outcome",
		}, []string{"operation", "outcome"}),
		quizRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aitutor_quiz_runs_total",
			Help: "Quiz scheduler runs by frequency",
		}, []string{"frequency"}),
		quizFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aitutor_quiz_failures_total",
			Help: "Per-test failures during scheduled quiz generation",
		}),
	}

	reg.MustRegister(c.aiRequests, c.quizRuns, c.quizFailures)

	return c
}

func (c *Collector) RecordAIRequest(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	c.aiRequests.WithLabelValues(operation, outcome).Inc()
}

func (c *Collector) RecordQuizRun(frequency string) {
	c.quizRuns.WithLabelValues(frequency).Inc()
}

func (c *Collector) RecordQuizFailure() {
	c.quizFailures.Inc()
}
