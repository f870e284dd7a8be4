package entropy

// Weights of the composite health score. They must sum to 1.0.
const (
	weightFreshness    = 0.35
	weightActivity     = 0.30
	weightCompleteness = 0.20
	weightOrganization = 0.15
)

// Grade bands for the composite score.
const (
	gradeAMin = 80.0
	gradeBMin = 60.0
	gradeCMin = 40.0
)

// Status labels attached to each grade.
const (
	StatusHealthy        = "healthy"
	StatusGood           = "good"
	StatusFair           = "fair"
	StatusNeedsAttention = "needs attention"
)

// ScoreInput holds the four already-computed rates the scorer combines.
// All fields are percentages in [0, 100].
type ScoreInput struct {
	// TimeDecayEntropy is the 30-day decay rate.
	TimeDecayEntropy float64
	// ActivityRate30d is the 30-day activity rate.
	ActivityRate30d float64
	// AvgCompleteness is the mean property completeness.
	AvgCompleteness float64
	// CoverageRate is the categorization coverage.
	CoverageRate float64
}

// HealthScore is the composite workspace health assessment.
type HealthScore struct {
	Score  float64
	Grade  string // A, B, C or D
	Status string

	// The four component scores (each 0-100) behind Score, for rendering
	// per-dimension breakdowns.
	Freshness    float64
	Activity     float64
	Completeness float64
	Organization float64
}

// Score combines the four component rates into the weighted composite score
// and letter grade.
//
//	freshness    = max(0, 100 - time_decay_entropy)
//	activity     = min(100, activity_rate_30d * 2)   // 50% 30-day activity saturates
//	completeness = avg_completeness
//	organization = coverage_rate
//	score        = .35*freshness + .30*activity + .20*completeness + .15*organization
func Score(in ScoreInput) HealthScore {
	freshness := 100 - in.TimeDecayEntropy
	if freshness < 0 {
		freshness = 0
	}
	activity := in.ActivityRate30d * 2
	if activity > 100 {
		activity = 100
	}

	score := freshness*weightFreshness +
		activity*weightActivity +
		in.AvgCompleteness*weightCompleteness +
		in.CoverageRate*weightOrganization

	grade, status := gradeFromScore(score)
	return HealthScore{
		Score:        score,
		Grade:        grade,
		Status:       status,
		Freshness:    freshness,
		Activity:     activity,
		Completeness: in.AvgCompleteness,
		Organization: in.CoverageRate,
	}
}

func gradeFromScore(score float64) (string, string) {
	switch {
	case score >= gradeAMin:
		return "A", StatusHealthy
	case score >= gradeBMin:
		return "B", StatusGood
	case score >= gradeCMin:
		return "C", StatusFair
	default:
		return "D", StatusNeedsAttention
	}
}
