package fakes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// APIKey is the key the fake server accepts unless overridden.
const APIKey = "test-api-key"

// Request is a recorded call.
type Request struct {
	Method   string
	Path     string
	Route    string
	TenantID string
	Body     []byte
}

type failure struct {
	status int
	body   string
}

type record struct {
	ID       string `json:"id"`
	Name     string `json:"name,omitempty"`
	TenantID string `json:"tenantId,omitempty"`
	Email    string `json:"email,omitempty"`

	JWT   map[string]any `json:"jwtConfiguration,omitempty"`
	OAuth map[string]any `json:"oauthConfiguration,omitempty"`
}

// Server is a fake FusionAuth instance.
type Server struct {
	*httptest.Server

	APIKey string

	mu       sync.Mutex
	seq      int
	tenants  []*record
	keys     []*record
	apps     []*record
	users    []*record
	themes   []*record
	requests []Request
	failures map[string]failure
	appBody  map[string]json.RawMessage
}

// NewServer starts a fake FusionAuth and closes it when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		APIKey:   APIKey,
		failures: make(map[string]failure),
		appBody:  make(map[string]json.RawMessage),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)

	mux.HandleFunc("POST /api/tenant/search", s.search(&s.tenants, "tenants", byName))
	mux.HandleFunc("POST /api/tenant", s.createTenant)
	mux.HandleFunc("PATCH /api/tenant/{id}", s.patchTenant)
	mux.HandleFunc("DELETE /api/tenant/{id}", s.delete(&s.tenants))

	mux.HandleFunc("POST /api/key/search", s.search(&s.keys, "keys", byName))
	mux.HandleFunc("POST /api/key/generate", s.generateKey)
	mux.HandleFunc("DELETE /api/key/{id}", s.delete(&s.keys))

	mux.HandleFunc("POST /api/application/search", s.search(&s.apps, "applications", byName))
	mux.HandleFunc("POST /api/application", s.createApplication)

	mux.HandleFunc("POST /api/user/search", s.search(&s.users, "users", byEmail))
	mux.HandleFunc("POST /api/user/registration", s.register)
	mux.HandleFunc("DELETE /api/user/{id}", s.delete(&s.users))

	mux.HandleFunc("POST /api/theme/search", s.search(&s.themes, "themes", byName))
	mux.HandleFunc("POST /api/theme", s.copyTheme)

	s.Server = httptest.NewServer(s.middleware(mux))
	t.Cleanup(s.Close)
	return s
}

// Fail makes every call to route answer with status and body. Route is
// "METHOD /path" with "{id}" standing in for identifiers, e.g.
// "PATCH /api/tenant/{id}".
func (s *Server) Fail(route string, status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[route] = failure{status: status, body: body}
}

// Calls returns how many times route was called.
func (s *Server) Calls(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, r := range s.requests {
		if r.Route == route {
			n++
		}
	}
	return n
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// LastRequest returns the most recent request to route.
func (s *Server) LastRequest(route string) (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := len(s.requests) - 1; i >= 0; i-- {
		if s.requests[i].Route == route {
			return s.requests[i], true
		}
	}
	return Request{}, false
}

// SeedTenant adds an existing tenant and returns its ID.
func (s *Server) SeedTenant(name string) string {
	return s.seed(&s.tenants, &record{Name: name}, "tenant")
}

// SeedKey adds an existing key and returns its ID.
func (s *Server) SeedKey(name string) string {
	return s.seed(&s.keys, &record{Name: name}, "key")
}

// SeedApplication adds an existing application and returns its ID.
func (s *Server) SeedApplication(name, clientSecret string) string {
	rec := &record{Name: name}
	id := s.seed(&s.apps, rec, "app")
	s.mu.Lock()
	rec.OAuth = map[string]any{"clientId": id, "clientSecret": clientSecret}
	s.mu.Unlock()
	return id
}

// SeedUser adds an existing user and returns its ID.
func (s *Server) SeedUser(email string) string {
	return s.seed(&s.users, &record{Email: email}, "user")
}

// SeedTheme adds an existing theme and returns its ID.
func (s *Server) SeedTheme(name string) string {
	return s.seed(&s.themes, &record{Name: name}, "theme")
}

// Tenant returns the stored tenant by ID.
func (s *Server) Tenant(id string) (map[string]any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.tenants {
		if r.ID == id {
			return r.JWT, true
		}
	}
	return nil, false
}

// ApplicationBody returns the raw create body the server received for an application.
func (s *Server) ApplicationBody(id string) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appBody[id]
}

// Counts returns the number of stored tenants, keys, users.
func (s *Server) Counts() (tenants, keys, users int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tenants), len(s.keys), len(s.users)
}

func (s *Server) seed(list *[]*record, rec *record, prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.nextID(prefix)
	*list = append(*list, rec)
	return rec.ID
}

func (s *Server) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%04d", prefix, s.seq)
}

func (s *Server) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		route := routeOf(r.Method, r.URL.Path)

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			Route:    route,
			TenantID: r.Header.Get("X-FusionAuth-TenantId"),
			Body:     body,
		})
		f, failing := s.failures[route]
		s.mu.Unlock()

		if r.Header.Get("Authorization") != s.APIKey {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if failing {
			w.WriteHeader(f.status)
			_, _ = io.WriteString(w, f.body)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// routeOf replaces the identifier segment of resource paths with "{id}".
func routeOf(method, path string) string {
	parts := strings.Split(strings.TrimPrefix(path, "/"), "/")
	if len(parts) == 3 && parts[0] == "api" {
		switch parts[2] {
		case "search", "generate", "registration":
		default:
			parts[2] = "{id}"
		}
	}
	return method + " /" + strings.Join(parts, "/")
}

type matcher func(rec *record, search map[string]any) bool

func byName(rec *record, search map[string]any) bool {
	name, _ := search["name"].(string)
	return name != "" && rec.Name == name
}

func byEmail(rec *record, search map[string]any) bool {
	q, _ := search["queryString"].(string)
	return q != "" && rec.Email == q
}

func (s *Server) search(list *[]*record, field string, match matcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Search map[string]any `json:"search"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeFieldError(w, http.StatusBadRequest, "search", "[invalid]search")
			return
		}

		s.mu.Lock()
		matches := []*record{}
		for _, rec := range *list {
			if match(rec, req.Search) {
				matches = append(matches, rec)
			}
		}
		s.mu.Unlock()

		total := len(matches)
		if n, ok := req.Search["numberOfResults"].(float64); ok && n > 0 && int(n) < total {
			matches = matches[:int(n)]
		}
		writeJSON(w, http.StatusOK, map[string]any{field: matches, "total": total})
	}
}

func (s *Server) delete(list *[]*record) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")

		s.mu.Lock()
		defer s.mu.Unlock()
		for i, rec := range *list {
			if rec.ID == id {
				*list = append((*list)[:i], (*list)[i+1:]...)
				w.WriteHeader(http.StatusOK)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{})
}

func (s *Server) createTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tenant struct {
			Name string `json:"name"`
		} `json:"tenant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Tenant.Name == "" {
		writeFieldError(w, http.StatusBadRequest, "tenant.name", "[blank]tenant.name")
		return
	}

	s.mu.Lock()
	rec := &record{ID: s.nextID("tenant"), Name: req.Tenant.Name}
	s.tenants = append(s.tenants, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"tenant": rec})
}

func (s *Server) patchTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tenant struct {
			JWTConfiguration map[string]any `json:"jwtConfiguration"`
		} `json:"tenant"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFieldError(w, http.StatusBadRequest, "tenant", "[invalid]tenant")
		return
	}
	keyID, _ := req.Tenant.JWTConfiguration["accessTokenKeyId"].(string)
	if keyID == "" {
		writeFieldError(w, http.StatusBadRequest, "tenant.jwtConfiguration.accessTokenKeyId", "[missing]tenant.jwtConfiguration.accessTokenKeyId")
		return
	}

	id := r.PathValue("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.tenants {
		if rec.ID == id {
			rec.JWT = req.Tenant.JWTConfiguration
			writeJSON(w, http.StatusOK, map[string]any{"tenant": rec})
			return
		}
	}
	w.WriteHeader(http.StatusNotFound)
}

func (s *Server) generateKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Key struct {
			Name      string `json:"name"`
			Algorithm string `json:"algorithm"`
			Length    int    `json:"length"`
		} `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key.Algorithm == "" {
		writeFieldError(w, http.StatusBadRequest, "key.algorithm", "[missing]key.algorithm")
		return
	}

	s.mu.Lock()
	rec := &record{ID: s.nextID("key"), Name: req.Key.Name}
	s.keys = append(s.keys, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"key": rec})
}

func (s *Server) createApplication(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var req struct {
		Application struct {
			Name string `json:"name"`
		} `json:"application"`
	}
	if err := json.Unmarshal(raw, &req); err != nil || req.Application.Name == "" {
		writeFieldError(w, http.StatusBadRequest, "application.name", "[blank]application.name")
		return
	}
	tenantID := r.Header.Get("X-FusionAuth-TenantId")
	if tenantID == "" {
		writeFieldError(w, http.StatusBadRequest, "tenantId", "[missing]tenantId")
		return
	}

	s.mu.Lock()
	id := s.nextID("app")
	rec := &record{
		ID:       id,
		Name:     req.Application.Name,
		TenantID: tenantID,
		OAuth:    map[string]any{"clientId": id, "clientSecret": "secret-" + id},
	}
	s.apps = append(s.apps, rec)
	s.appBody[id] = raw
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"application": rec})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		User struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		} `json:"user"`
		Registration struct {
			ApplicationID string   `json:"applicationId"`
			Roles         []string `json:"roles"`
		} `json:"registration"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.User.Email == "" {
		writeFieldError(w, http.StatusBadRequest, "user.email", "[blank]user.email")
		return
	}
	if req.Registration.ApplicationID == "" {
		writeFieldError(w, http.StatusBadRequest, "registration.applicationId", "[blank]registration.applicationId")
		return
	}

	s.mu.Lock()
	rec := &record{ID: s.nextID("user"), Email: req.User.Email}
	s.users = append(s.users, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"user":         rec,
		"registration": req.Registration,
	})
}

func (s *Server) copyTheme(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceThemeID string `json:"sourceThemeId"`
		Theme         struct {
			Name string `json:"name"`
		} `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.SourceThemeID == "" {
		writeFieldError(w, http.StatusBadRequest, "sourceThemeId", "[missing]sourceThemeId")
		return
	}

	s.mu.Lock()
	rec := &record{ID: s.nextID("theme"), Name: req.Theme.Name}
	s.themes = append(s.themes, rec)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"theme": rec})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeFieldError(w http.ResponseWriter, status int, field, code string) {
	writeJSON(w, status, map[string]any{
		"fieldErrors": map[string]any{
			field: []map[string]string{{"code": code, "message": "Invalid " + field}},
		},
	})
}
