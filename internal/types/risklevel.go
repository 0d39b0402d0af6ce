package types

import (
	"fmt"
	"strings"
)

// RiskLevel is one of the five ordered wildfire danger categories. The
// forecast service decides which level applies to a day; this type only
// carries and orders the categories.
type RiskLevel int

const (
	RiskLow RiskLevel = iota
	RiskMedium
	RiskHigh
	RiskVeryHigh
	RiskExtreme
)

var riskLabels = map[RiskLevel]string{
	RiskLow:      "Low",
	RiskMedium:   "Medium",
	RiskHigh:     "High",
	RiskVeryHigh: "Very High",
	RiskExtreme:  "Extreme",
}

// String returns the display label for the risk level
func (r RiskLevel) String() string {
	if label, ok := riskLabels[r]; ok {
		return label
	}
	return fmt.Sprintf("RiskLevel(%d)", int(r))
}

// ParseRiskLevel maps a display label from the forecast service to a
// RiskLevel. Matching is case-insensitive; internal whitespace must match
// the canonical label ("Very High").
func ParseRiskLevel(s string) (RiskLevel, error) {
	for level, label := range riskLabels {
		if strings.EqualFold(strings.TrimSpace(s), label) {
			return level, nil
		}
	}
	return 0, fmt.Errorf("unknown risk level %q", s)
}

// RiskLevels returns all levels in ascending order of severity
func RiskLevels() []RiskLevel {
	return []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh, RiskExtreme}
}
