package text_test

import (
	"reflect"
	"testing"

	"github.com/tatvaai/careerbot/backend/internal/analysis/text"
)

func TestNormalizeDropsStopwordsAndPunctuation(t *testing.T) {
	got := text.Normalize("What are machine learning basics?")
	want := []string{"machine", "learning", "basics"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: got %v want %v", got, want)
	}
}

func TestNormalizeKeepsOrderAndDuplicates(t *testing.T) {
	got := text.Normalize("skills, skills and MORE skills!")
	want := []string{"skills", "skills", "skills"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: got %v want %v", got, want)
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := text.Normalize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
	if got := text.Normalize("?!... --"); len(got) != 0 {
		t.Fatalf("expected no tokens for punctuation, got %v", got)
	}
	if got := text.Normalize("what is the"); len(got) != 0 {
		t.Fatalf("expected no tokens for stopwords only, got %v", got)
	}
}

func TestNormalizeKeepsDigits(t *testing.T) {
	got := text.Normalize("Top 10 robotics skills")
	want := []string{"top", "10", "robotics", "skills"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected tokens: got %v want %v", got, want)
	}
}
