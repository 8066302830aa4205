package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
	"github.com/sandaruh/EduSense/internal/models"
	"github.com/sandaruh/EduSense/internal/services"
)

// SQLiteStore implements the service store interfaces over a shared
// *sql.DB. Each call is one synchronous round trip; no transactions
// span requests.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ services.AuthStore     = (*SQLiteStore)(nil)
	_ services.FamilyStore   = (*SQLiteStore)(nil)
	_ services.ActivityStore = (*SQLiteStore)(nil)
	_ services.ReportStore   = (*SQLiteStore)(nil)
)

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
	for _, stmt := range pragmas {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("apply sqlite pragma %q: %w", stmt, err)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure. The services pre-check duplicates, but concurrent inserts
// can still land here; the constraint turns the race into a conflict.
func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.Code == sqlite3.ErrConstraint
	}
	return false
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func toNullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func fromNullInt(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

func (s *SQLiteStore) FindAdultByEmail(email string) (*models.ResponsibleAdult, error) {
	row := s.db.QueryRow(`SELECT adult_id, email, username, password_hash
      FROM responsible_adult WHERE email = ?`, email)
	var a models.ResponsibleAdult
	if err := row.Scan(&a.AdultID, &a.Email, &a.Username, &a.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find adult by email: %w", err)
	}
	return &a, nil
}

func (s *SQLiteStore) UsernameExists(username string) (bool, error) {
	row := s.db.QueryRow(`SELECT 1 FROM responsible_adult WHERE username = ?`, username)
	var one int
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("username exists: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) AddAdult(a *models.ResponsibleAdult) error {
	res, err := s.db.Exec(`INSERT INTO responsible_adult (email, username, password_hash)
      VALUES (?, ?, ?)`, a.Email, a.Username, a.PasswordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return services.NewConflictError("Email or username already exists")
		}
		return fmt.Errorf("add adult: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		a.AdultID = id
	}
	return nil
}

func (s *SQLiteStore) AddChild(c *models.Child) error {
	res, err := s.db.Exec(`INSERT INTO child (adult_id, child_name, gender, age, grade)
      VALUES (?, ?, ?, ?, ?)`, c.AdultID, c.ChildName, c.Gender, c.Age, c.Grade)
	if err != nil {
		if isUniqueViolation(err) {
			return services.NewConflictError("Child name already exists for this adult")
		}
		return fmt.Errorf("add child: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		c.ChildID = id
	}
	return nil
}

func (s *SQLiteStore) ListChildNames(adultID int64) ([]string, error) {
	rows, err := s.db.Query(`SELECT child_name FROM child WHERE adult_id = ?`, adultID)
	if err != nil {
		return nil, fmt.Errorf("list child names: %w", err)
	}
	defer rows.Close()
	names := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list child names: scan: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list child names: rows: %w", err)
	}
	return names, nil
}

func (s *SQLiteStore) FindChildByName(name string) (*models.Child, error) {
	row := s.db.QueryRow(`SELECT child_id, adult_id, child_name, gender, age, grade
      FROM child WHERE child_name = ? ORDER BY child_id LIMIT 1`, name)
	var c models.Child
	if err := row.Scan(&c.ChildID, &c.AdultID, &c.ChildName, &c.Gender, &c.Age, &c.Grade); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find child by name: %w", err)
	}
	return &c, nil
}

func (s *SQLiteStore) AddActivityResult(r *models.ActivityResult) error {
	res, err := s.db.Exec(`INSERT INTO activity_results
      (child_id, activity_id, given_answer, is_correct, score, is_completed, time_taken_seconds)
      VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.ChildID, r.ActivityID, toNullString(r.GivenAnswer), r.IsCorrect, r.Score,
		r.IsCompleted, toNullInt(r.TimeTakenSeconds))
	if err != nil {
		return fmt.Errorf("add activity result: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		r.ResultID = id
	}
	return nil
}

func (s *SQLiteStore) ListResultsByChild(childID int64) ([]*models.ActivityResult, error) {
	rows, err := s.db.Query(`SELECT result_id, child_id, activity_id, given_answer,
      is_correct, score, is_completed, time_taken_seconds
      FROM activity_results WHERE child_id = ? ORDER BY activity_id`, childID)
	if err != nil {
		return nil, fmt.Errorf("list results by child: %w", err)
	}
	defer rows.Close()
	out := []*models.ActivityResult{}
	for rows.Next() {
		var r models.ActivityResult
		var given sql.NullString
		var taken sql.NullInt64
		if err := rows.Scan(&r.ResultID, &r.ChildID, &r.ActivityID, &given,
			&r.IsCorrect, &r.Score, &r.IsCompleted, &taken); err != nil {
			return nil, fmt.Errorf("list results by child: scan: %w", err)
		}
		r.GivenAnswer = fromNullString(given)
		r.TimeTakenSeconds = fromNullInt(taken)
		out = append(out, &r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list results by child: rows: %w", err)
	}
	return out, nil
}
