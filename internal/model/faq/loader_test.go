package faq_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/tatvaai/careerbot/backend/internal/model/faq"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "faq.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestLoadValidFile(t *testing.T) {
	path := writeCSV(t, "keyword,answer,domain\n"+
		"Machine Learning Basics,ML is...,AI\n"+
		"robotics skills,Mechanics and code.,Robotics\n"+
		"resume tips,Keep it short.,\n")

	entries, err := faq.Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Keyword != "machine learning basics" {
		t.Fatalf("keyword not lowercased: %q", entries[0].Keyword)
	}
	if entries[2].Domain != "" {
		t.Fatalf("expected empty domain, got %q", entries[2].Domain)
	}
}

func TestLoadDuplicateKeywordLastWinsKeepsPosition(t *testing.T) {
	path := writeCSV(t, "keyword,answer,domain\n"+
		"robotics skills,old answer,Robotics\n"+
		"machine learning basics,ML is...,AI\n"+
		"Robotics Skills,new answer,Robotics\n")

	entries, err := faq.Load(path)
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected duplicate collapsed to 2 entries, got %d", len(entries))
	}
	if entries[0].Keyword != "robotics skills" || entries[0].Answer != "new answer" {
		t.Fatalf("expected last row to win in place, got %+v", entries[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := faq.Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRowMissingAnswer(t *testing.T) {
	path := writeCSV(t, "keyword,answer,domain\nrobotics skills,,Robotics\n")
	if _, err := faq.Load(path); err == nil {
		t.Fatal("expected error for row without answer")
	}
}

func TestStoreDomainsSortedDistinct(t *testing.T) {
	store := faq.NewMemoryStore([]faq.Entry{
		{Keyword: "a", Answer: "a", Domain: "Robotics"},
		{Keyword: "b", Answer: "b", Domain: "AI"},
		{Keyword: "c", Answer: "c", Domain: "Robotics"},
		{Keyword: "d", Answer: "d"},
	})

	got := store.Domains()
	want := []string{"AI", "Robotics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected domains: got %v want %v", got, want)
	}
}
