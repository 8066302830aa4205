package services

import "github.com/sandaruh/EduSense/internal/models"

// Features are the aggregates the dyscalculia classifier consumes.
type Features struct {
	Accuracy float64 `json:"accuracy"`
	SkipRate float64 `json:"skip_rate"`
	AvgTime  float64 `json:"avg_time"`
	Wrong    int     `json:"wrong"`
	Skipped  int     `json:"skipped"`
	Total    int     `json:"total"`
}

// ExtractFeatures reduces graded attempts to aggregate features.
// Empty input yields the zero Features; rows with no recorded time
// count as zero seconds.
func ExtractFeatures(rows []*models.ActivityResult) Features {
	var f Features
	f.Total = len(rows)
	if f.Total == 0 {
		return f
	}
	correct := 0
	timeSum := 0
	for _, r := range rows {
		switch r.Score {
		case ScoreCorrect:
			correct++
		case ScoreIncorrect:
			f.Wrong++
		case ScoreSkipped:
			f.Skipped++
		}
		if r.TimeTakenSeconds != nil {
			timeSum += *r.TimeTakenSeconds
		}
	}
	total := float64(f.Total)
	f.Accuracy = float64(correct) / total
	f.SkipRate = float64(f.Skipped) / total
	f.AvgTime = float64(timeSum) / total
	return f
}
