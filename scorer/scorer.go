package scorer

import (
	"math"

	"github.com/NITHIKASHREEMS/montelucast/models"
)

// Calculate converts an assessment into a risk result.  It is a pure function:
// it never fails, never mutates its input, and identical inputs always produce
// identical results.  Out-of-domain values (negative age, negative duration)
// are not rejected here; they flow through the arithmetic and land in a
// default branch.  Callers wanting stricter input handling should use
// Assessment.Validate first.
func Calculate(a models.Assessment) models.RiskResult {
	base := baselineForAge(a.Age)
	risk := base * doseMultiplier(a.Dose) * durationMultiplier(a.DurationWeeks)

	category, adder := symptomLoad(len(a.Symptoms))
	risk += adder

	hasHighSeverity := containsHighRiskSymptom(a.Symptoms)
	if hasHighSeverity {
		if risk < severityFloor {
			risk = severityFloor
		}
		category = models.SeveritySymptomLoad
	}

	if a.TemporalAssociation {
		risk *= temporalBoost
	}

	isCritical := false
	if forced, ok := criticalComboRisk(a.Brand, a.ComboDrugs); ok {
		risk = forced
		isCritical = true
	}

	risk = clamp(risk)

	return models.RiskResult{
		Percentage: int(math.Round(risk * 100)),
		Label:      labelForRisk(risk),
		Details: models.ResultDetails{
			Baseline:        base,
			SymptomCategory: category,
			HasHighSeverity: hasHighSeverity,
			IsCriticalCombo: isCritical,
		},
	}
}

// baselineForAge resolves the baseline risk fraction for an age.  Selection is
// lowest-bound-met with the highest qualifying bracket winning.  An absent age
// (zero) falls back to the middle bracket; an age below every bracket bound
// falls back to the default baseline.
func baselineForAge(age int) float64 {
	if age == 0 {
		return absentAgeBaseline
	}
	for _, bracket := range ageBrackets {
		if age >= bracket.MinAge {
			return bracket.Baseline
		}
	}
	return defaultBaseline
}

// doseMultiplier looks up the multiplier for a dose identifier, defaulting to
// 1.0 for unrecognized doses rather than failing
func doseMultiplier(dose string) float64 {
	if mult, ok := doseMultipliers[dose]; ok {
		return mult
	}
	return unknownDoseMultiplier
}

// durationMultiplier buckets a treatment duration in weeks into short, medium,
// or long and returns the bucket's multiplier.  A zero (absent) duration is
// treated as a medium course.
func durationMultiplier(weeks float64) float64 {
	switch {
	case weeks == 0:
		return mediumDurationMultiplier
	case weeks < shortDurationMaxWeeks:
		return shortDurationMultiplier
	case weeks <= mediumDurationMaxWeeks:
		return mediumDurationMultiplier
	default:
		return longDurationMultiplier
	}
}

// symptomLoad derives the count-based symptom category and its risk adder.
// The raw count drives this rule, so duplicate names count toward the load.
func symptomLoad(count int) (string, float64) {
	switch {
	case count >= 4:
		return models.HighSymptomLoad, 0.25
	case count >= 2:
		return models.ModerateSymptomLoad, 0.10
	case count == 1:
		return models.LowSymptomLoad, 0.05
	default:
		return models.LowSymptomLoad, 0.0
	}
}

func containsHighRiskSymptom(symptoms []string) bool {
	for _, s := range symptoms {
		if highRiskSet[s] {
			return true
		}
	}
	return false
}

// criticalComboRisk checks the brand and co-administered drugs against the
// critical combination table, returning the forced risk fraction on a match
func criticalComboRisk(brand string, comboDrugs []string) (float64, bool) {
	if brand == "" || len(comboDrugs) == 0 {
		return 0, false
	}
	for _, drug := range comboDrugs {
		if forced, ok := criticalCombinations[drugPair{Brand: brand, ComboDrug: drug}]; ok {
			return forced, true
		}
	}
	return 0, false
}

func clamp(risk float64) float64 {
	if risk < minRiskFraction {
		return minRiskFraction
	}
	if risk > maxRiskFraction {
		return maxRiskFraction
	}
	return risk
}

// labelForRisk applies the fixed label cut points to the clamped fraction
func labelForRisk(risk float64) string {
	switch {
	case risk >= highRiskCutPoint:
		return models.HighRiskLabel
	case risk >= moderateRiskCutPoint:
		return models.ModerateRiskLabel
	default:
		return models.LowRiskLabel
	}
}
