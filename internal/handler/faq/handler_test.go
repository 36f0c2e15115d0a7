package faq

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-chi/chi/v5"

	faqmodel "github.com/tatvaai/careerbot/backend/internal/model/faq"
)

func setupRouter() *chi.Mux {
	store := faqmodel.NewMemoryStore([]faqmodel.Entry{
		{Keyword: "machine learning basics", Answer: "ML is...", Domain: "AI"},
		{Keyword: "robotics skills", Answer: "Mechanics.", Domain: "Robotics"},
		{Keyword: "resume tips", Answer: "Keep it short."},
	})

	r := chi.NewRouter()
	New(store).RegisterRoutes(r)
	return r
}

func TestListDomainsWildcardFirst(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/domains", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var domains []string
	if err := json.Unmarshal(resp.Body.Bytes(), &domains); err != nil {
		t.Fatalf("decode domains: %v", err)
	}
	want := []string{faqmodel.WildcardDomain, "AI", "Robotics"}
	if !reflect.DeepEqual(domains, want) {
		t.Fatalf("unexpected domains: got %v want %v", domains, want)
	}
}

func TestListExamples(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/examples", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var examples []string
	if err := json.Unmarshal(resp.Body.Bytes(), &examples); err != nil {
		t.Fatalf("decode examples: %v", err)
	}
	if len(examples) == 0 {
		t.Fatal("expected example questions")
	}
}
