package services

import "github.com/sandaruh/EduSense/internal/models"

type FamilyStore interface {
	FindAdultByEmail(email string) (*models.ResponsibleAdult, error)
	AddChild(c *models.Child) error
	ListChildNames(adultID int64) ([]string, error)
}

// FamilyService links child profiles to their responsible adult.
type FamilyService struct {
	store FamilyStore
}

func NewFamilyService(store FamilyStore) *FamilyService {
	return &FamilyService{store: store}
}

// AddChild registers a child under the adult with the given email.
// Age and grade are stored as sent; the only integrity rule is the
// per-adult unique child name, enforced by the store and surfaced as
// a conflict error.
func (s *FamilyService) AddChild(email, name, gender string, age, grade int) error {
	adult, err := s.store.FindAdultByEmail(email)
	if err != nil {
		return err
	}
	if adult == nil {
		return NewNotFoundError("Adult not found")
	}
	return s.store.AddChild(&models.Child{
		AdultID:   adult.AdultID,
		ChildName: name,
		Gender:    gender,
		Age:       age,
		Grade:     grade,
	})
}

// ListChildren returns the child names registered under the email.
// An unknown email yields an empty list, not an error.
func (s *FamilyService) ListChildren(email string) ([]string, error) {
	adult, err := s.store.FindAdultByEmail(email)
	if err != nil {
		return nil, err
	}
	if adult == nil {
		return []string{}, nil
	}
	names, err := s.store.ListChildNames(adult.AdultID)
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}
