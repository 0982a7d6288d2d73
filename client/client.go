package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"strings"

	"github.com/NITHIKASHREEMS/montelucast/models"
)

// Score submits an assessment to the risk service at the given endpoint and
// returns the stored assessment the service created, including the computed
// risk result
func Score(endpoint string, assessment models.Assessment) (*models.StoredAssessment, error) {
	body, err := json.Marshal(assessment)
	if err != nil {
		return nil, err
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	res, err := http.DefaultClient.Post(endpoint+"/assessments", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		msg, _ := ioutil.ReadAll(res.Body)
		return nil, fmt.Errorf("Received HTTP %d %s from risk service: %s", res.StatusCode, res.Status, strings.TrimSpace(string(msg)))
	}

	stored := new(models.StoredAssessment)
	decoder := json.NewDecoder(res.Body)
	if err := decoder.Decode(stored); err != nil {
		return nil, err
	}

	return stored, nil
}

// Result represents the result (successful or not) of submitting a single
// assessment to the risk service
type Result struct {
	AssessmentID string
	Percentage   int
	Label        string
	Error        error
}

// MarshalJSON handles the marshalling of the errors since Go doesn't
func (r *Result) MarshalJSON() ([]byte, error) {
	var errString string
	if r.Error != nil {
		errString = r.Error.Error()
	}
	return json.Marshal(&struct {
		AssessmentID string `json:"assessmentID,omitempty"`
		Percentage   int    `json:"percentage"`
		Label        string `json:"label,omitempty"`
		Error        string `json:"error,omitempty"`
	}{
		AssessmentID: r.AssessmentID,
		Percentage:   r.Percentage,
		Label:        r.Label,
		Error:        errString,
	})
}

// LogResultSummary prints out a log of the result summary (# submissions, # errors, # high risk)
func LogResultSummary(results []Result) {
	var numErrors, numHighRisk int
	for _, result := range results {
		if result.Error != nil {
			numErrors++
		}
		if result.Label == models.HighRiskLabel {
			numHighRisk++
		}
	}
	log.Printf("Submitted %d assessments: %d errors, %d scored as high risk.",
		len(results), numErrors, numHighRisk)
}
