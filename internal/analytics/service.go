package analytics

import (
	"context"
	"time"
)

// Overview is the full analytics payload.
type Overview struct {
	GeneratedAt  time.Time           `json:"generatedAt"`
	Stats        []Stat              `json:"stats"`
	Insights     []Insight           `json:"insights"`
	Distribution []DistributionSlice `json:"categoryDistribution"`
	Predictions  []Prediction        `json:"predictions"`
}

// Service assembles analytics reports.
type Service struct {
	// RunDelay simulates the latency of regenerating the report.
	RunDelay time.Duration
	Now      func() time.Time
}

func (s *Service) now() time.Time {
	if s != nil && s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Overview returns the current report.
func (s *Service) Overview() Overview {
	return Overview{
		GeneratedAt:  s.now(),
		Stats:        stats(),
		Insights:     insights(),
		Distribution: categoryDistribution(),
		Predictions:  predictions(),
	}
}

// Insights returns only the recommendation cards.
func (s *Service) Insights() []Insight {
	return insights()
}

// Run regenerates the report, honoring the configured delay unless the
// context ends first.
func (s *Service) Run(ctx context.Context) (Overview, error) {
	delay := time.Duration(0)
	if s != nil {
		delay = s.RunDelay
	}
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Overview{}, ctx.Err()
		case <-timer.C:
		}
	}
	return s.Overview(), nil
}
