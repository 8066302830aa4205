package api

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/sandaruh/EduSense/internal/services"
)

// Store is everything the router's services need from persistence.
type Store interface {
	services.AuthStore
	services.FamilyStore
	services.ActivityStore
	services.ReportStore
}

type Router struct {
	auth     *services.AuthService
	family   *services.FamilyService
	activity *services.ActivityService
	report   *services.ReportService
}

func NewRouter(store Store) *Router {
	return &Router{
		auth:     services.NewAuthService(store),
		family:   services.NewFamilyService(store),
		activity: services.NewActivityService(store),
		report:   services.NewReportService(store),
	}
}

func (rt *Router) Register(mux *http.ServeMux) {
	mux.HandleFunc("/signup", rt.handleSignup)            // POST
	mux.HandleFunc("/login", rt.handleLogin)              // POST
	mux.HandleFunc("/add-child", rt.handleAddChild)       // POST
	mux.HandleFunc("/save-activity", rt.handleSaveActivity) // POST
	mux.HandleFunc("/view-report/", rt.handleViewReport)  // GET /view-report/{child_name}
	mux.HandleFunc("/children/", rt.handleChildren)       // GET /children/{parent_email}
	mux.HandleFunc("/health", rt.handleHealth)            // GET
	mux.HandleFunc("/", rt.handleHome)                    // GET
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	if se, ok := services.AsServiceError(err); ok {
		status := http.StatusInternalServerError
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorUnauthorized:
			status = http.StatusUnauthorized
		case services.ErrorNotFound:
			status = http.StatusNotFound
		case services.ErrorConflict:
			status = http.StatusConflict
		}
		payload := map[string]any{"error": se.Message}
		if len(se.Suggestions) > 0 {
			payload["suggestions"] = se.Suggestions
		}
		writeJSON(w, status, payload)
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{"error": err.Error()})
}

// POST /signup
func (rt *Router) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := rt.auth.Signup(req.Email, req.Username, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Signup successful"})
}

// POST /login
func (rt *Router) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := rt.auth.Login(req.Email, req.Password); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Login successful"})
}

// POST /add-child
func (rt *Router) handleAddChild(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email  string `json:"email"`
		Name   string `json:"name"`
		Gender string `json:"gender"`
		Age    int    `json:"age"`
		Grade  int    `json:"grade"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := rt.family.AddChild(req.Email, req.Name, req.Gender, req.Age, req.Grade); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"message": "Child added"})
}

// POST /save-activity
func (rt *Router) handleSaveActivity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		ChildName        string `json:"child_name"`
		ActivityID       int    `json:"activity_id"`
		GivenAnswer      string `json:"given_answer"`
		TimeTakenSeconds *int   `json:"time_taken_seconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := rt.activity.SaveActivity(req.ChildName, req.ActivityID, req.GivenAnswer, req.TimeTakenSeconds); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Saved"})
}

// GET /view-report/{child_name}
func (rt *Router) handleViewReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/view-report/")
	if name == "" || strings.Contains(name, "/") {
		http.NotFound(w, r)
		return
	}
	if decoded, err := url.PathUnescape(name); err == nil {
		name = decoded
	}
	report, err := rt.report.BuildReport(name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// GET /children/{parent_email}
// The email arrives URL-encoded in the path.
func (rt *Router) handleChildren(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	email := strings.TrimPrefix(r.URL.Path, "/children/")
	if email == "" {
		http.NotFound(w, r)
		return
	}
	if decoded, err := url.PathUnescape(email); err == nil {
		email = decoded
	}
	names, err := rt.family.ListChildren(email)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "name": "EduSense API"})
}

// GET /
func (rt *Router) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("API running"))
}
