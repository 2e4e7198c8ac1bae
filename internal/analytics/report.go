// Package analytics serves curated billing insights. The content is a
// static editorial dataset rather than a computed model; report generation
// only simulates work so clients can exercise their loading states.
package analytics

// InsightType classifies an insight card.
type InsightType string

// Insight types.
const (
	TypePrediction   InsightType = "prediction"
	TypeOptimization InsightType = "optimization"
	TypeTrend        InsightType = "trend"
	TypeAlert        InsightType = "alert"
)

// Impact grades how actionable an insight is.
type Impact string

// Impact levels.
const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// Insight is a single recommendation card.
type Insight struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Type        InsightType `json:"type"`
	Impact      Impact      `json:"impact"`
	Value       string      `json:"value,omitempty"`
}

// Stat is one headline figure on the overview.
type Stat struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

// DistributionSlice is one category's share of billing volume.
type DistributionSlice struct {
	Category   string `json:"category"`
	Percentage int    `json:"percentage"`
}

// Prediction is a forecasted revenue figure.
type Prediction struct {
	Period string `json:"period"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

func insights() []Insight {
	return []Insight{
		{
			ID:          "1",
			Title:       "Laboratory Services Demand",
			Description: "Expected 15% increase in laboratory test requests next month based on seasonal patterns.",
			Type:        TypePrediction,
			Impact:      ImpactHigh,
			Value:       "+15%",
		},
		{
			ID:          "2",
			Title:       "Billing Optimization",
			Description: "Consider bundling common procedures to improve billing efficiency by 8%.",
			Type:        TypeOptimization,
			Impact:      ImpactMedium,
			Value:       "8%",
		},
		{
			ID:          "3",
			Title:       "Room Occupancy Trend",
			Description: "Private room utilization increased by 22% compared to last quarter.",
			Type:        TypeTrend,
			Impact:      ImpactHigh,
			Value:       "+22%",
		},
		{
			ID:          "4",
			Title:       "Medication Stock Alert",
			Description: "Antibiotic usage trending higher. Consider reviewing stock levels.",
			Type:        TypeAlert,
			Impact:      ImpactMedium,
		},
		{
			ID:          "5",
			Title:       "Peak Hours Analysis",
			Description: "Outpatient services peak between 9-11 AM. Consider staffing adjustments.",
			Type:        TypeOptimization,
			Impact:      ImpactLow,
		},
	}
}

func stats() []Stat {
	return []Stat{
		{Label: "Total Transactions", Value: "2,847", Change: "+12%"},
		{Label: "Average Bill Amount", Value: "₱15,420", Change: "+5%"},
		{Label: "Most Used Category", Value: "Laboratory", Change: "34%"},
		{Label: "Peak Usage Time", Value: "10:00 AM", Change: "Weekdays"},
	}
}

func categoryDistribution() []DistributionSlice {
	return []DistributionSlice{
		{Category: "Laboratory", Percentage: 34},
		{Category: "Pharmacy", Percentage: 22},
		{Category: "Radiology", Percentage: 18},
		{Category: "Room & Board", Percentage: 15},
		{Category: "Others", Percentage: 11},
	}
}

func predictions() []Prediction {
	return []Prediction{
		{Period: "Next Month", Value: "₱4.2M", Change: "+8%"},
		{Period: "Next Quarter", Value: "₱13.5M", Change: "+12%"},
		{Period: "Year-End", Value: "₱52M", Change: "Projected"},
	}
}
