package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOverviewContent(t *testing.T) {
	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	svc := &Service{Now: func() time.Time { return now }}

	report := svc.Overview()
	require.Equal(t, now, report.GeneratedAt)
	require.Len(t, report.Stats, 4)
	require.Len(t, report.Insights, 5)
	require.Len(t, report.Predictions, 3)

	total := 0
	for _, slice := range report.Distribution {
		total += slice.Percentage
	}
	require.Equal(t, 100, total)
}

func TestInsightsAreClassified(t *testing.T) {
	for _, insight := range (&Service{}).Insights() {
		require.NotEmpty(t, insight.ID)
		require.NotEmpty(t, insight.Title)
		require.Contains(t, []InsightType{TypePrediction, TypeOptimization, TypeTrend, TypeAlert}, insight.Type)
		require.Contains(t, []Impact{ImpactHigh, ImpactMedium, ImpactLow}, insight.Impact)
	}
}

func TestRunHonorsDelay(t *testing.T) {
	svc := &Service{RunDelay: 20 * time.Millisecond}
	start := time.Now()
	report, err := svc.Run(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	require.Len(t, report.Insights, 5)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	svc := &Service{RunDelay: time.Minute}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunWithoutDelayReturnsImmediately(t *testing.T) {
	report, err := (&Service{}).Run(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, report.Stats)
}
