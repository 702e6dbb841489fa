package models

// Clause risk levels, ordered Low < Medium < High.
const (
	RiskLow    = "Low"
	RiskMedium = "Medium"
	RiskHigh   = "High"
)

// Document-level gauge values, ordered Low < Moderate < High.
const (
	GaugeLow      = "Low"
	GaugeModerate = "Moderate"
	GaugeHigh     = "High"
)

// riskRank maps clause risk levels to their position in the ordering.
var riskRank = map[string]int{
	RiskLow:    1,
	RiskMedium: 2,
	RiskHigh:   3,
}

// gaugeRank maps gauge values to their position in the ordering.
var gaugeRank = map[string]int{
	GaugeLow:      1,
	GaugeModerate: 2,
	GaugeHigh:     3,
}

// RiskRank returns the numeric rank of a clause risk level.
// Unknown levels rank as Low.
func RiskRank(level string) int {
	if r, ok := riskRank[level]; ok {
		return r
	}
	return riskRank[RiskLow]
}

// MaxRisk returns the higher of two clause risk levels.
func MaxRisk(a, b string) string {
	if RiskRank(b) > RiskRank(a) {
		return b
	}
	return a
}

// ValidRiskLevel reports whether level is one of Low, Medium, High.
func ValidRiskLevel(level string) bool {
	_, ok := riskRank[level]
	return ok
}

// GaugeForRisk maps a clause risk level to the document gauge scale.
func GaugeForRisk(level string) string {
	switch level {
	case RiskHigh:
		return GaugeHigh
	case RiskMedium:
		return GaugeModerate
	default:
		return GaugeLow
	}
}

// GaugeRank returns the numeric rank of a gauge value.
// Unknown values rank as Low.
func GaugeRank(gauge string) int {
	if r, ok := gaugeRank[gauge]; ok {
		return r
	}
	return gaugeRank[GaugeLow]
}
