package services

import "github.com/sandaruh/EduSense/internal/models"

// Activity id ranges feeding each classifier (inclusive bounds).
const (
	DyscalculiaFirstID = 1
	DyscalculiaLastID  = 9
	AttentionFirstID   = 10
	AttentionLastID    = 11
	MemoryFirstID      = 12
	MemoryLastID       = 13
)

// Risk labels. These are categorical rule outputs, not calibrated
// probabilities.
const (
	LabelNotEnoughData = "Not Enough Data"

	LabelHighRisk = "High Risk"
	LabelMildRisk = "Mild Risk"
	LabelNoRisk   = "No Risk"

	LabelAttentionImpaired = "Attention Impairment"
	LabelAttentionOK       = "No Attention Impairment"

	LabelMemoryImpaired = "Memory Impairment"
	LabelMemoryOK       = "No Memory Impairment"
)

// FilterByActivityRange keeps rows whose activity id lies in
// [first, last].
func FilterByActivityRange(rows []*models.ActivityResult, first, last int) []*models.ActivityResult {
	out := make([]*models.ActivityResult, 0, len(rows))
	for _, r := range rows {
		if r.ActivityID >= first && r.ActivityID <= last {
			out = append(out, r)
		}
	}
	return out
}

// ClassifyDyscalculia buckets the numeracy rows into a risk label with
// a fixed per-bucket confidence. The confidence is internal: the
// report surfaces only the label. Priority order matters; the first
// matching bucket wins.
func ClassifyDyscalculia(rows []*models.ActivityResult) (confidence float64, label string) {
	if len(rows) == 0 {
		return 0, LabelNotEnoughData
	}
	f := ExtractFeatures(rows)
	wrongSkippedRatio := float64(f.Wrong+f.Skipped) / float64(f.Total)

	if f.Accuracy < 0.4 || wrongSkippedRatio >= 0.5 || f.SkipRate >= 0.3 || f.AvgTime >= 8 {
		return 0.85, LabelHighRisk
	}
	if f.Accuracy < 0.7 || f.SkipRate >= 0.15 || f.AvgTime >= 5 {
		return 0.55, LabelMildRisk
	}
	return 0.15, LabelNoRisk
}

// ClassifyAttention flags impairment on any non-perfect attempt among
// the attention rows. Strict on purpose: a single wrong or skipped
// answer in this range flags the child.
func ClassifyAttention(rows []*models.ActivityResult) string {
	return classifyPerfect(rows, LabelAttentionImpaired, LabelAttentionOK)
}

// ClassifyMemory applies the same rule shape as attention to the
// memory rows.
func ClassifyMemory(rows []*models.ActivityResult) string {
	return classifyPerfect(rows, LabelMemoryImpaired, LabelMemoryOK)
}

func classifyPerfect(rows []*models.ActivityResult, impaired, ok string) string {
	if len(rows) < 2 {
		return LabelNotEnoughData
	}
	for _, r := range rows {
		if r.Score != ScoreCorrect {
			return impaired
		}
	}
	return ok
}
