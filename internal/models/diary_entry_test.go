// ABOUTME: Tests for DiaryEntry construction, validation, and search matching
// ABOUTME: Covers category parsing, mood labels, and default filling
package models

import (
	"testing"
	"time"
)

func TestNewDiaryEntryDefaults(t *testing.T) {
	now := time.Date(2024, 6, 10, 23, 30, 0, 0, time.UTC)
	e := NewDiaryEntry("d1", DiaryEntryInput{ChildID: "c1", Title: "Escola", Tags: []string{" a ", "", "a", "b"}}, now)

	if e.Date != "2024-06-10" {
		t.Errorf("expected date from clock, got %s", e.Date)
	}
	if e.Category != CategoryDaily {
		t.Errorf("expected cotidiano, got %s", e.Category)
	}
	if e.Mood != MoodDefault {
		t.Errorf("expected mood 3, got %d", e.Mood)
	}
	if len(e.Tags) != 2 || e.Tags[0] != "a" || e.Tags[1] != "b" {
		t.Errorf("expected cleaned tags [a b], got %v", e.Tags)
	}
}

func TestDiaryEntryInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   DiaryEntryInput
		wantErr bool
	}{
		{"minimal", DiaryEntryInput{ChildID: "c"}, false},
		{"full", DiaryEntryInput{ChildID: "c", Date: "2024-01-31", Category: CategoryTherapy, Mood: 5}, false},
		{"missing child", DiaryEntryInput{}, true},
		{"bad category", DiaryEntryInput{ChildID: "c", Category: "lazer"}, true},
		{"mood too high", DiaryEntryInput{ChildID: "c", Mood: 6}, true},
		{"mood negative", DiaryEntryInput{ChildID: "c", Mood: -1}, true},
		{"bad date", DiaryEntryInput{ChildID: "c", Date: "31/01/2024"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.input.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := map[string]Category{
		"escola":    CategorySchool,
		"Terapia":   CategoryTherapy,
		"médico":    CategoryMedical,
		" medico ":  CategoryMedical,
		"COTIDIANO": CategoryDaily,
	}
	for in, want := range tests {
		got, err := ParseCategory(in)
		if err != nil || got != want {
			t.Errorf("ParseCategory(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseCategory("lazer"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestMoodLabel(t *testing.T) {
	if Mood(1).Label() != "Muito difícil" || Mood(5).Label() != "Excelente" {
		t.Error("unexpected mood labels")
	}
	if Mood(9).Label() != "" {
		t.Error("out-of-range mood should have no label")
	}
}

func TestDiaryEntryMatches(t *testing.T) {
	e := DiaryEntry{Title: "Consulta", Content: "Dia calmo na Terapia", Category: CategoryTherapy}

	tests := []struct {
		query    string
		category string
		want     bool
	}{
		{"", "", true},
		{"", "all", true},
		{"consulta", "", true},
		{"TERAPIA", "terapia", true},
		{"calmo", "escola", false},
		{"crise", "", false},
	}
	for _, tt := range tests {
		if got := e.Matches(tt.query, tt.category); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.query, tt.category, got, tt.want)
		}
	}
}
