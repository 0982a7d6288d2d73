package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/NITHIKASHREEMS/montelucast/client"
	"github.com/NITHIKASHREEMS/montelucast/models"
	"github.com/NITHIKASHREEMS/montelucast/scorer"
)

func main() {
	confirmFlag := flag.Bool("confirm-mock", false, "Flag to confirm you want mock data.  This MUST be set (to prevent accidental use of mock).")
	serviceFlag := flag.String("service", "", "Risk service address to submit to (env: SERVICE_URL, default: \"http://localhost:9000\")")
	countFlag := flag.String("n", "", "Number of mock assessments to generate (env: MOCK_COUNT, default: \"25\")")
	flag.Parse()

	if !(*confirmFlag) {
		fmt.Fprintln(os.Stderr, "Mock data can be dangerous if accidentally used in a production environment.  This WILL store fake assessments in the service database.")
		fmt.Fprintln(os.Stderr, "\nYou MUST confirm that you want to use mock data by passing the '-confirm-mock' flag!")
		os.Exit(1)
	} else {
		fmt.Println("!!! WARNING: MOCK assessment generator is running.  This produces and stores FAKE data. !!!")
	}

	service := getConfigValue(serviceFlag, "SERVICE_URL", "http://localhost:9000")
	count, err := strconv.Atoi(getConfigValue(countFlag, "MOCK_COUNT", "25"))
	if err != nil || count < 1 {
		fmt.Fprintln(os.Stderr, "Mock assessment count must be a positive number.")
		os.Exit(1)
	}

	results := make([]client.Result, 0, count)
	for i := 0; i < count; i++ {
		stored, err := client.Score(service, randomishAssessment())
		result := client.Result{Error: err}
		if err == nil {
			result.AssessmentID = stored.Id.Hex()
			result.Percentage = stored.Result.Percentage
			result.Label = stored.Result.Label
		}
		results = append(results, result)
	}
	client.LogResultSummary(results)
}

var r = rand.New(rand.NewSource(time.Now().Unix()))

func randomishAssessment() models.Assessment {
	doses := scorer.DoseLevels()
	assessment := models.Assessment{
		Age:                 1 + r.Intn(18),
		Dose:                doses[r.Intn(len(doses))],
		DurationWeeks:       float64(r.Intn(52)),
		Symptoms:            randomishSymptoms(),
		TemporalAssociation: r.Intn(100) < 40,
	}
	if r.Intn(100) < 5 {
		// Occasional critical combination
		assessment.Brand = "Almont"
		assessment.ComboDrugs = []string{"Levocetirizine"}
	}
	return assessment
}

func randomishSymptoms() []string {
	moderate := scorer.ModerateLowRiskSymptoms()
	high := scorer.HighRiskSymptoms()

	var symptoms []string
	i := r.Intn(100)
	switch {
	case i < 5:
		// 5% chance: four moderate symptoms plus a high-risk one
		symptoms = append(symptoms, moderate[:4]...)
		symptoms = append(symptoms, high[r.Intn(len(high))])
	case i < 20:
		// 15% chance: a single high-risk symptom
		symptoms = append(symptoms, high[r.Intn(len(high))])
	case i < 50:
		// 30% chance: one to three moderate symptoms
		symptoms = append(symptoms, moderate[:1+r.Intn(3)]...)
	}
	// 50% chance: no symptoms at all
	return symptoms
}

func getConfigValue(parsedFlag *string, envVar string, defaultVal string) string {
	val := *parsedFlag
	if val == "" {
		val = os.Getenv(envVar)
		if val == "" {
			val = defaultVal
		}
	}
	return val
}
