package services

import "github.com/sandaruh/EduSense/internal/models"

type ActivityStore interface {
	FindChildByName(name string) (*models.Child, error)
	AddActivityResult(r *models.ActivityResult) error
}

// ActivityService grades submitted answers and appends them to the
// child's result history.
type ActivityService struct {
	store ActivityStore
}

func NewActivityService(store ActivityStore) *ActivityService {
	return &ActivityService{store: store}
}

// SaveActivity grades the answer and stores one result row. An empty
// answer is recorded as a skip with a NULL given_answer.
func (s *ActivityService) SaveActivity(childName string, activityID int, given string, timeTakenSeconds *int) error {
	child, err := s.store.FindChildByName(childName)
	if err != nil {
		return err
	}
	if child == nil {
		return NewNotFoundError("Child not found")
	}
	score, correct := Grade(activityID, given)
	isCorrect := 0
	if correct {
		isCorrect = 1
	}
	var answer *string
	if given != "" {
		answer = &given
	}
	return s.store.AddActivityResult(&models.ActivityResult{
		ChildID:          child.ChildID,
		ActivityID:       activityID,
		GivenAnswer:      answer,
		IsCorrect:        isCorrect,
		Score:            score,
		IsCompleted:      1,
		TimeTakenSeconds: timeTakenSeconds,
	})
}
