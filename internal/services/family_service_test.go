package services

import (
	"testing"

	"github.com/sandaruh/EduSense/internal/models"
)

type familyStubStore struct {
	adults   map[string]*models.ResponsibleAdult
	children []*models.Child
	nextID   int64
}

func newFamilyStubStore() *familyStubStore {
	return &familyStubStore{adults: map[string]*models.ResponsibleAdult{}}
}

func (s *familyStubStore) FindAdultByEmail(email string) (*models.ResponsibleAdult, error) {
	if a, ok := s.adults[email]; ok {
		copy := *a
		return &copy, nil
	}
	return nil, nil
}

func (s *familyStubStore) AddChild(c *models.Child) error {
	for _, existing := range s.children {
		if existing.AdultID == c.AdultID && existing.ChildName == c.ChildName {
			return NewConflictError("Child name already exists for this adult")
		}
	}
	s.nextID++
	c.ChildID = s.nextID
	copy := *c
	s.children = append(s.children, &copy)
	return nil
}

func (s *familyStubStore) ListChildNames(adultID int64) ([]string, error) {
	names := []string{}
	for _, c := range s.children {
		if c.AdultID == adultID {
			names = append(names, c.ChildName)
		}
	}
	return names, nil
}

func TestAddChild(t *testing.T) {
	store := newFamilyStubStore()
	store.adults["a@gmail.com"] = &models.ResponsibleAdult{AdultID: 1, Email: "a@gmail.com"}
	store.adults["b@gmail.com"] = &models.ResponsibleAdult{AdultID: 2, Email: "b@gmail.com"}
	svc := NewFamilyService(store)

	if err := svc.AddChild("a@gmail.com", "Amal", "male", 7, 2); err != nil {
		t.Fatalf("AddChild returned error: %v", err)
	}
	wantCode(t, svc.AddChild("missing@gmail.com", "Amal", "male", 7, 2), ErrorNotFound)

	// same guardian reusing a name conflicts, another guardian may
	// reuse it
	wantCode(t, svc.AddChild("a@gmail.com", "Amal", "male", 8, 3), ErrorConflict)
	if err := svc.AddChild("b@gmail.com", "Amal", "female", 6, 1); err != nil {
		t.Fatalf("AddChild for second adult returned error: %v", err)
	}
}

func TestListChildren(t *testing.T) {
	store := newFamilyStubStore()
	store.adults["a@gmail.com"] = &models.ResponsibleAdult{AdultID: 1, Email: "a@gmail.com"}
	svc := NewFamilyService(store)

	names, err := svc.ListChildren("unknown@gmail.com")
	if err != nil {
		t.Fatalf("ListChildren returned error: %v", err)
	}
	if names == nil || len(names) != 0 {
		t.Fatalf("expected empty list for unknown adult, got %v", names)
	}

	if err := svc.AddChild("a@gmail.com", "Amal", "male", 7, 2); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := svc.AddChild("a@gmail.com", "Nimal", "male", 9, 4); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	names, err = svc.ListChildren("a@gmail.com")
	if err != nil {
		t.Fatalf("ListChildren returned error: %v", err)
	}
	if len(names) != 2 || names[0] != "Amal" || names[1] != "Nimal" {
		t.Fatalf("unexpected names: %v", names)
	}
}
