package audit

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// minRecords is the smallest dataset the audit will analyze; below it the
// result is marked unavailable.
const minRecords = 10

var ageBands = []struct {
	name     string
	min, max int
}{
	{"0-17", 0, 17},
	{"18-34", 18, 34},
	{"35-49", 35, 49},
	{"50-64", 50, 64},
	{"65+", 65, 200},
}

type Service struct {
	predictor Predictor
	log       zerolog.Logger

	mu     sync.Mutex
	cached *BiasAnalysisResult
}

func NewService(predictor Predictor, log zerolog.Logger) *Service {
	return &Service{predictor: predictor, log: log}
}

// Analyze runs the full fairness audit over a raw dataset. It never
// returns an error to the caller: any unexpected failure while parsing
// or aggregating degrades to an unavailable result.
func (s *Service) Analyze(r io.Reader) (result *BiasAnalysisResult) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error().Interface("panic", rec).Msg("bias analysis failed")
			result = &BiasAnalysisResult{IsAvailable: false, FairnessRating: "Unknown"}
		}
		s.mu.Lock()
		s.cached = result
		s.mu.Unlock()
	}()

	records, err := ParseDataset(r)
	if err != nil {
		s.log.Warn().Err(err).Msg("dataset read failed")
		return &BiasAnalysisResult{IsAvailable: false, FairnessRating: "Unknown"}
	}

	if len(records) < minRecords {
		return &BiasAnalysisResult{
			IsAvailable:    false,
			TotalRecords:   len(records),
			FairnessRating: "Unknown",
		}
	}

	for i := range records {
		records[i].PredictedRisk = s.predictor.Predict(records[i].PatientID, records[i].ActualRisk)
	}

	gender := genderAnalysis(records)
	ageGroups := ageGroupAnalysis(records)

	score := FairnessScore(gender, ageGroups)
	now := time.Now()

	s.log.Info().
		Int("records", len(records)).
		Float64("fairness_score", score).
		Msg("bias analysis complete")

	return &BiasAnalysisResult{
		IsAvailable:      true,
		TotalRecords:     len(records),
		AnalysisDate:     &now,
		GenderAnalysis:   gender,
		AgeGroupAnalysis: ageGroups,
		FairnessScore:    score,
		FairnessRating:   FairnessRating(score),
	}
}

// Cached returns the last computed result, or nil when no audit has run.
func (s *Service) Cached() *BiasAnalysisResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached
}

// genderAnalysis computes the gender metric pair. Records whose gender
// matches neither group are excluded; the pair exists only when both
// groups have data, since a disparity against an empty group is
// meaningless.
func genderAnalysis(records []TrainingRecord) *GenderMetrics {
	var male, female []TrainingRecord
	for _, rec := range records {
		switch {
		case strings.EqualFold(rec.Gender, "Male"):
			male = append(male, rec)
		case strings.EqualFold(rec.Gender, "Female"):
			female = append(female, rec)
		}
	}
	if len(male) == 0 || len(female) == 0 {
		return nil
	}
	return &GenderMetrics{
		Male:   GroupAccuracy("Male", male),
		Female: GroupAccuracy("Female", female),
	}
}

// ageGroupAnalysis computes metrics per age band, skipping empty bands.
func ageGroupAnalysis(records []TrainingRecord) []AgeGroupMetrics {
	var groups []AgeGroupMetrics
	for _, band := range ageBands {
		var members []TrainingRecord
		for _, rec := range records {
			if rec.Age >= band.min && rec.Age <= band.max {
				members = append(members, rec)
			}
		}
		if len(members) == 0 {
			continue
		}
		groups = append(groups, AgeGroupMetrics{
			DemographicAccuracy: GroupAccuracy(band.name, members),
			MinAge:              band.min,
			MaxAge:              band.max,
		})
	}
	return groups
}
