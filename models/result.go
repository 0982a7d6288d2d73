package models

import (
	"time"

	"gopkg.in/mgo.v2/bson"
)

// Risk labels derived from the clamped risk fraction
const (
	LowRiskLabel      = "Low Risk"
	ModerateRiskLabel = "Moderate Risk"
	HighRiskLabel     = "High Risk"
)

// Symptom load categories reported in the result details
const (
	LowSymptomLoad      = "Low"
	ModerateSymptomLoad = "Moderate"
	HighSymptomLoad     = "High"
	SeveritySymptomLoad = "High (Severity)"
)

// RiskResult is the output of a risk calculation: a whole-number percentage,
// one of the three fixed labels, and the details of how the score was derived
type RiskResult struct {
	Percentage int           `json:"percentage" bson:"percentage"`
	Label      string        `json:"label" bson:"label"`
	Details    ResultDetails `json:"details" bson:"details"`
}

// ResultDetails carries the intermediate classification facts alongside the
// final score so a caller can explain the result
type ResultDetails struct {
	Baseline        float64 `json:"baseline" bson:"baseline"`
	SymptomCategory string  `json:"symptomCategory" bson:"symptomCategory"`
	HasHighSeverity bool    `json:"hasHighSeverity" bson:"hasHighSeverity"`
	IsCriticalCombo bool    `json:"isCriticalCombo" bson:"isCriticalCombo"`
}

// StoredAssessment is the persisted envelope pairing an assessment with the
// result it produced
type StoredAssessment struct {
	Id         bson.ObjectId `json:"id" bson:"_id"`
	Created    time.Time     `json:"created" bson:"created"`
	Assessment Assessment    `json:"assessment" bson:"assessment"`
	Result     RiskResult    `json:"result" bson:"result"`
}

// NewStoredAssessment builds a StoredAssessment with a fresh ObjectId and the
// current time
func NewStoredAssessment(assessment Assessment, result RiskResult) *StoredAssessment {
	return &StoredAssessment{
		Id:         bson.NewObjectId(),
		Created:    time.Now(),
		Assessment: assessment,
		Result:     result,
	}
}
