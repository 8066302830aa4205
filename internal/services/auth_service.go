package services

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"
	"github.com/sandaruh/EduSense/internal/models"
)

type AuthStore interface {
	FindAdultByEmail(email string) (*models.ResponsibleAdult, error)
	UsernameExists(username string) (bool, error)
	AddAdult(a *models.ResponsibleAdult) error
}

// AuthService handles guardian signup and login. Login is
// session-less: a successful login issues no token.
type AuthService struct {
	store AuthStore
	// suffix returns a random candidate suffix for username
	// suggestions; injectable for tests.
	suffix func() int
}

const (
	suggestionCount = 5
	// Attempt budget per suggestion slot. The duplicate-check loop on
	// random 100..9999 suffixes is unbounded in principle; after this
	// many collisions the slot falls back to a uuid-derived suffix.
	suggestionAttempts = 50
)

func NewAuthService(store AuthStore) *AuthService {
	return &AuthService{
		store:  store,
		suffix: func() int { return rand.IntN(9900) + 100 },
	}
}

// Signup validates the credentials and registers a new responsible
// adult with a digested password.
//
// The duplicate checks and the insert are not one transaction;
// concurrent signups with the same email or username race, and the
// store's UNIQUE constraints resolve the race into a conflict error.
func (s *AuthService) Signup(email, username, password string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(username) == "" || password == "" {
		return NewInvalidError("All fields required")
	}
	if !ValidEmail(email) {
		return NewInvalidError("Invalid email format. Use @gmail.com only")
	}
	if !ValidPassword(password) {
		return NewInvalidError("Weak password. Must include uppercase, lowercase, number, symbol, and be 8+ chars")
	}
	existing, err := s.store.FindAdultByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return NewConflictError("Email already exists")
	}
	taken, err := s.store.UsernameExists(username)
	if err != nil {
		return err
	}
	if taken {
		suggestions, err := s.suggestUsernames(username)
		if err != nil {
			return err
		}
		return NewUsernameConflictError("Username exists", suggestions)
	}
	return s.store.AddAdult(&models.ResponsibleAdult{
		Email:        email,
		Username:     username,
		PasswordHash: DigestPassword(password),
	})
}

// suggestUsernames returns exactly suggestionCount distinct usernames
// of the form base+NNN, each verified unused one at a time.
func (s *AuthService) suggestUsernames(base string) ([]string, error) {
	suggestions := make([]string, 0, suggestionCount)
	offered := map[string]struct{}{}
	for len(suggestions) < suggestionCount {
		candidate := ""
		for attempt := 0; attempt < suggestionAttempts; attempt++ {
			name := fmt.Sprintf("%s%d", base, s.suffix())
			if _, dup := offered[name]; dup {
				continue
			}
			taken, err := s.store.UsernameExists(name)
			if err != nil {
				return nil, err
			}
			if !taken {
				candidate = name
				break
			}
		}
		if candidate == "" {
			// Budget exhausted: a longer random suffix guarantees
			// termination.
			candidate = base + shortID(6)
		}
		offered[candidate] = struct{}{}
		suggestions = append(suggestions, candidate)
	}
	return suggestions, nil
}

// Login checks the password digest against the stored one. No token
// is issued on success.
func (s *AuthService) Login(email, password string) error {
	adult, err := s.store.FindAdultByEmail(email)
	if err != nil {
		return err
	}
	if adult == nil || adult.PasswordHash != DigestPassword(password) {
		return NewUnauthorizedError("Invalid login")
	}
	return nil
}

func shortID(n int) string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:n]
}
