package scorer

// ageBracket maps a lowest qualifying age to the baseline risk fraction for
// that bracket.  Brackets are kept in descending order of MinAge so the first
// bracket whose bound is met wins.
type ageBracket struct {
	MinAge   int
	Baseline float64
}

var ageBrackets = []ageBracket{
	{MinAge: 16, Baseline: 0.14},
	{MinAge: 13, Baseline: 0.325},
	{MinAge: 10, Baseline: 0.535},
	{MinAge: 7, Baseline: 0.69},
	{MinAge: 4, Baseline: 0.85},
	{MinAge: 1, Baseline: 0.94},
}

const (
	// defaultBaseline applies when the age maps to no bracket at all
	defaultBaseline = 0.14
	// absentAgeBaseline is the 7-9 bracket baseline, used when no age was given
	absentAgeBaseline = 0.69
)

var doseMultipliers = map[string]float64{
	"4mg":  1.0,
	"5mg":  1.1,
	"10mg": 1.25,
}

const unknownDoseMultiplier = 1.0

// Treatment duration is expressed in WEEKS.  A second published variant of
// this engine used months with different cut points; this implementation
// commits to the weeks variant.
const (
	shortDurationMaxWeeks  = 4  // exclusive: below this is a short course
	mediumDurationMaxWeeks = 24 // inclusive: up to this is a medium course
)

const (
	shortDurationMultiplier  = 1.0
	mediumDurationMultiplier = 1.1
	longDurationMultiplier   = 1.25
)

// highRiskSymptoms lists the montelukast neuropsychiatric adverse events that
// escalate severity on their own.  Membership is exact string match.
var highRiskSymptoms = []string{
	"Suicidal thoughts",
	"Self-harm behavior",
	"Hallucinations",
	"Severe depression",
	"Aggressive behavior",
}

// moderateLowRiskSymptoms lists the remaining catalog symptoms, used for
// display grouping only; they contribute through the count-based load rule.
var moderateLowRiskSymptoms = []string{
	"Anxiety",
	"Irritability",
	"Agitation",
	"Sleep disturbance",
	"Nightmares",
	"Vivid dreams",
	"Restlessness",
	"Tremor",
	"Headache",
	"Mood swings",
}

var highRiskSet = func() map[string]bool {
	set := make(map[string]bool, len(highRiskSymptoms))
	for _, s := range highRiskSymptoms {
		set[s] = true
	}
	return set
}()

// drugPair identifies a brand plus a co-administered drug known to interact
type drugPair struct {
	Brand     string
	ComboDrug string
}

// criticalCombinations maps interacting brand/co-drug pairs to the risk
// fraction they force, overriding all other computation
var criticalCombinations = map[drugPair]float64{
	{Brand: "Almont", ComboDrug: "Levocetirizine"}: 0.96,
}

const (
	severityFloor   = 0.75
	temporalBoost   = 1.15
	minRiskFraction = 0.05
	maxRiskFraction = 0.99
)

// Label cut points, applied to the clamped fraction rather than the rounded
// percentage to avoid rounding-boundary mismatches
const (
	highRiskCutPoint     = 0.70
	moderateRiskCutPoint = 0.30
)

// DoseLevels returns the recognized dose identifiers, for form rendering
func DoseLevels() []string {
	return []string{"4mg", "5mg", "10mg"}
}

// HighRiskSymptoms returns a copy of the high-risk symptom catalog
func HighRiskSymptoms() []string {
	return append([]string{}, highRiskSymptoms...)
}

// ModerateLowRiskSymptoms returns a copy of the moderate/low-risk symptom catalog
func ModerateLowRiskSymptoms() []string {
	return append([]string{}, moderateLowRiskSymptoms...)
}
