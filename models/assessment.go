package models

import "fmt"

// Assessment represents the patient and medication inputs collected for a single
// montelukast risk assessment
type Assessment struct {
	Age                 int      `json:"age" bson:"age"`
	Dose                string   `json:"dose" bson:"dose"`
	DurationWeeks       float64  `json:"durationWeeks" bson:"durationWeeks"`
	Symptoms            []string `json:"symptoms" bson:"symptoms"`
	TemporalAssociation bool     `json:"temporalAssociation" bson:"temporalAssociation"`
	Brand               string   `json:"brand,omitempty" bson:"brand,omitempty"`
	ComboDrugs          []string `json:"comboDrugs,omitempty" bson:"comboDrugs,omitempty"`
}

// MaxValidAge is the oldest age accepted at the validation boundary
const MaxValidAge = 120

// Validate checks that the numeric inputs are within their documented domains.
// Unknown dose strings and symptom names outside the catalog are NOT rejected
// here; the scorer absorbs them via its default branches.  Scoring itself never
// validates and never fails.
func (a *Assessment) Validate() error {
	if a.Age < 0 {
		return fmt.Errorf("age must not be negative: %d", a.Age)
	}
	if a.Age > MaxValidAge {
		return fmt.Errorf("age must not exceed %d: %d", MaxValidAge, a.Age)
	}
	if a.DurationWeeks < 0 {
		return fmt.Errorf("duration must not be negative: %g", a.DurationWeeks)
	}
	return nil
}
