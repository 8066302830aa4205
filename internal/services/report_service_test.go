package services

import (
	"sort"
	"testing"

	"github.com/sandaruh/EduSense/internal/models"
)

type reportStubStore struct {
	children map[string]*models.Child
	results  map[int64][]*models.ActivityResult
}

func newReportStubStore() *reportStubStore {
	return &reportStubStore{children: map[string]*models.Child{}, results: map[int64][]*models.ActivityResult{}}
}

func (s *reportStubStore) FindChildByName(name string) (*models.Child, error) {
	if c, ok := s.children[name]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, nil
}

func (s *reportStubStore) ListResultsByChild(childID int64) ([]*models.ActivityResult, error) {
	rows := append([]*models.ActivityResult{}, s.results[childID]...)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ActivityID < rows[j].ActivityID })
	return rows, nil
}

func TestBuildReportUnknownChild(t *testing.T) {
	svc := NewReportService(newReportStubStore())
	_, err := svc.BuildReport("Nobody")
	wantCode(t, err, ErrorNotFound)
}

func TestBuildReport(t *testing.T) {
	store := newReportStubStore()
	store.children["Amal"] = &models.Child{ChildID: 1, ChildName: "Amal", Age: 7, Gender: "male"}
	answer := "<"
	seconds := 4
	store.results[1] = []*models.ActivityResult{
		{ChildID: 1, ActivityID: 10, Score: ScoreSkipped},
		{ChildID: 1, ActivityID: 2, GivenAnswer: &answer, IsCorrect: 1, Score: ScoreCorrect, TimeTakenSeconds: &seconds},
	}
	svc := NewReportService(store)

	report, err := svc.BuildReport("Amal")
	if err != nil {
		t.Fatalf("BuildReport returned error: %v", err)
	}
	if report.Child.ChildID != 1 || report.Child.ChildName != "Amal" || report.Child.Age != 7 || report.Child.Gender != "male" {
		t.Fatalf("unexpected child profile: %+v", report.Child)
	}
	if len(report.Activities) != 2 {
		t.Fatalf("expected 2 activity rows, got %d", len(report.Activities))
	}
	if report.Activities[0].ActivityID != 2 || report.Activities[1].ActivityID != 10 {
		t.Fatalf("activities not ordered by id: %+v", report.Activities)
	}

	// Only activity 2 falls in the 1-9 range: one fast correct row,
	// which classifies as No Risk. The single row in 10-11 is not
	// enough data for attention, and 12-13 is empty.
	if report.DyscalculiaRisk != LabelNoRisk {
		t.Fatalf("dyscalculia=%q, want %q", report.DyscalculiaRisk, LabelNoRisk)
	}
	if report.AttentionStatus != LabelNotEnoughData {
		t.Fatalf("attention=%q, want %q", report.AttentionStatus, LabelNotEnoughData)
	}
	if report.MemoryStatus != LabelNotEnoughData {
		t.Fatalf("memory=%q, want %q", report.MemoryStatus, LabelNotEnoughData)
	}
}

func TestBuildReportHighRisk(t *testing.T) {
	store := newReportStubStore()
	store.children["Nimal"] = &models.Child{ChildID: 2, ChildName: "Nimal", Age: 8, Gender: "male"}
	rows := manyRows(1, 3, 7, 0, 3)
	for _, r := range rows {
		r.ChildID = 2
	}
	store.results[2] = rows
	svc := NewReportService(store)

	report, err := svc.BuildReport("Nimal")
	if err != nil {
		t.Fatalf("BuildReport returned error: %v", err)
	}
	if report.DyscalculiaRisk != LabelHighRisk {
		t.Fatalf("dyscalculia=%q, want %q", report.DyscalculiaRisk, LabelHighRisk)
	}
}
