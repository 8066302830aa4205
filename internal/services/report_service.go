package services

import "github.com/sandaruh/EduSense/internal/models"

type ReportStore interface {
	FindChildByName(name string) (*models.Child, error)
	// ListResultsByChild returns all stored results for the child
	// ordered by activity id ascending.
	ListResultsByChild(childID int64) ([]*models.ActivityResult, error)
}

// ReportService assembles the risk report for a child from the stored
// activity history.
type ReportService struct {
	store ReportStore
}

// ChildProfile is the report's view of the child row.
type ChildProfile struct {
	ChildID   int64  `json:"child_id"`
	ChildName string `json:"child_name"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

// ActivityRow is the report's view of one stored attempt.
type ActivityRow struct {
	ActivityID       int     `json:"activity_id"`
	GivenAnswer      *string `json:"given_answer"`
	IsCorrect        int     `json:"is_correct"`
	Score            int     `json:"score"`
	TimeTakenSeconds *int    `json:"time_taken_seconds"`
}

// Report combines the child's profile, full ordered history, and the
// three classifier labels. The dyscalculia confidence is computed but
// intentionally not part of the report.
type Report struct {
	Child           ChildProfile  `json:"child"`
	Activities      []ActivityRow `json:"activities"`
	DyscalculiaRisk string        `json:"dyscalculia_risk"`
	AttentionStatus string        `json:"attention_status"`
	MemoryStatus    string        `json:"memory_status"`
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// BuildReport loads the child's history, partitions it by activity id
// range, and runs the three classifiers.
func (s *ReportService) BuildReport(childName string) (*Report, error) {
	child, err := s.store.FindChildByName(childName)
	if err != nil {
		return nil, err
	}
	if child == nil {
		return nil, NewNotFoundError("Child not found")
	}
	results, err := s.store.ListResultsByChild(child.ChildID)
	if err != nil {
		return nil, err
	}

	_, dysLabel := ClassifyDyscalculia(FilterByActivityRange(results, DyscalculiaFirstID, DyscalculiaLastID))
	attLabel := ClassifyAttention(FilterByActivityRange(results, AttentionFirstID, AttentionLastID))
	memLabel := ClassifyMemory(FilterByActivityRange(results, MemoryFirstID, MemoryLastID))

	rows := make([]ActivityRow, 0, len(results))
	for _, r := range results {
		rows = append(rows, ActivityRow{
			ActivityID:       r.ActivityID,
			GivenAnswer:      r.GivenAnswer,
			IsCorrect:        r.IsCorrect,
			Score:            r.Score,
			TimeTakenSeconds: r.TimeTakenSeconds,
		})
	}

	return &Report{
		Child: ChildProfile{
			ChildID:   child.ChildID,
			ChildName: child.ChildName,
			Age:       child.Age,
			Gender:    child.Gender,
		},
		Activities:      rows,
		DyscalculiaRisk: dysLabel,
		AttentionStatus: attLabel,
		MemoryStatus:    memLabel,
	}, nil
}
