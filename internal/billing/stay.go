package billing

import (
	"math"
	"time"
)

// Stay holds the admission window for an inpatient session. Either date may
// be absent until the front desk has both.
type Stay struct {
	Admission *time.Time `json:"admissionDate,omitempty"`
	Discharge *time.Time `json:"dischargeDate,omitempty"`
}

// Days computes the billable day count for daily-rate items: the day
// difference between admission and discharge rounded up, never below 1. A
// missing date yields 1, and a discharge before admission clamps to 1 rather
// than producing a phantom positive count.
func (s Stay) Days() int {
	return StayDays(s.Admission, s.Discharge)
}

// StayDays is the pure form of Stay.Days.
func StayDays(admission, discharge *time.Time) int {
	if admission == nil || discharge == nil {
		return 1
	}
	diff := discharge.Sub(*admission)
	if diff <= 0 {
		return 1
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}
