package services

import (
	"testing"

	"github.com/sandaruh/EduSense/internal/models"
)

type activityStubStore struct {
	children map[string]*models.Child
	results  []*models.ActivityResult
}

func newActivityStubStore() *activityStubStore {
	return &activityStubStore{children: map[string]*models.Child{}}
}

func (s *activityStubStore) FindChildByName(name string) (*models.Child, error) {
	if c, ok := s.children[name]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, nil
}

func (s *activityStubStore) AddActivityResult(r *models.ActivityResult) error {
	copy := *r
	s.results = append(s.results, &copy)
	return nil
}

func TestSaveActivity(t *testing.T) {
	store := newActivityStubStore()
	store.children["Amal"] = &models.Child{ChildID: 1, ChildName: "Amal"}
	svc := NewActivityService(store)

	seconds := 4
	if err := svc.SaveActivity("Amal", 2, "<", &seconds); err != nil {
		t.Fatalf("SaveActivity returned error: %v", err)
	}
	if len(store.results) != 1 {
		t.Fatalf("expected 1 stored result, got %d", len(store.results))
	}
	r := store.results[0]
	if r.ChildID != 1 || r.ActivityID != 2 || r.Score != ScoreCorrect || r.IsCorrect != 1 {
		t.Fatalf("unexpected stored row: %+v", r)
	}
	if r.IsCompleted != 1 {
		t.Fatalf("expected is_completed=1, got %d", r.IsCompleted)
	}
	if r.GivenAnswer == nil || *r.GivenAnswer != "<" {
		t.Fatalf("unexpected given answer: %v", r.GivenAnswer)
	}
	if r.TimeTakenSeconds == nil || *r.TimeTakenSeconds != 4 {
		t.Fatalf("unexpected time taken: %v", r.TimeTakenSeconds)
	}
}

func TestSaveActivitySkip(t *testing.T) {
	store := newActivityStubStore()
	store.children["Amal"] = &models.Child{ChildID: 1, ChildName: "Amal"}
	svc := NewActivityService(store)

	if err := svc.SaveActivity("Amal", 10, "", nil); err != nil {
		t.Fatalf("SaveActivity returned error: %v", err)
	}
	r := store.results[0]
	if r.Score != ScoreSkipped || r.IsCorrect != 0 {
		t.Fatalf("skip not recorded as score 0: %+v", r)
	}
	if r.GivenAnswer != nil {
		t.Fatalf("expected NULL given answer for skip, got %q", *r.GivenAnswer)
	}
}

func TestSaveActivityUnknownChild(t *testing.T) {
	svc := NewActivityService(newActivityStubStore())
	wantCode(t, svc.SaveActivity("Nobody", 1, "5", nil), ErrorNotFound)
}
