// ABOUTME: DiaryEntry records one dated event about a child with category, mood, and tags
// ABOUTME: Includes category and mood label tables plus input normalization
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for diary dates and birth dates
const DateLayout = "2006-01-02"

// Category classifies a diary entry
type Category string

const (
	CategorySchool  Category = "escola"
	CategoryTherapy Category = "terapia"
	CategoryMedical Category = "medico"
	CategoryDaily   Category = "cotidiano"
)

// Categories lists every category in display order
var Categories = []Category{CategorySchool, CategoryTherapy, CategoryMedical, CategoryDaily}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	switch c {
	case CategorySchool, CategoryTherapy, CategoryMedical, CategoryDaily:
		return true
	}
	return false
}

// Label returns the display label for c
func (c Category) Label() string {
	switch c {
	case CategorySchool:
		return "Escola"
	case CategoryTherapy:
		return "Terapia"
	case CategoryMedical:
		return "Médico"
	case CategoryDaily:
		return "Cotidiano"
	}
	return string(c)
}

// ParseCategory accepts a wire value or a display label, case-insensitively
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	for _, c := range Categories {
		if s == string(c) || s == strings.ToLower(c.Label()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Mood rates how the day went, 1 (very hard) to 5 (excellent)
type Mood int

const (
	MoodMin     Mood = 1
	MoodMax     Mood = 5
	MoodDefault Mood = 3
)

var moodLabels = map[Mood]string{
	1: "Muito difícil",
	2: "Difícil",
	3: "Normal",
	4: "Bom",
	5: "Excelente",
}

// Valid reports whether m is within 1..5
func (m Mood) Valid() bool {
	return m >= MoodMin && m <= MoodMax
}

// Label returns the display label for m, or "" when out of range
func (m Mood) Label() string {
	return moodLabels[m]
}

// DiaryEntry is a stored diary record
type DiaryEntry struct {
	ID        string    `json:"id"`
	ChildID   string    `json:"childId"`
	Date      string    `json:"date"`
	Category  Category  `json:"category"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      Mood      `json:"mood"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
}

// DiaryEntryInput is a diary entry without id and creation time
type DiaryEntryInput struct {
	ChildID  string
	Date     string
	Category Category
	Title    string
	Content  string
	Mood     Mood
	Tags     []string
}

// Validate checks category and mood values after defaults are applied
func (in DiaryEntryInput) Validate() error {
	if in.ChildID == "" {
		return fmt.Errorf("child id cannot be empty")
	}
	if in.Category != "" && !in.Category.Valid() {
		return fmt.Errorf("unknown category %q", in.Category)
	}
	if in.Mood != 0 && !in.Mood.Valid() {
		return fmt.Errorf("mood must be between %d and %d, got %d", MoodMin, MoodMax, in.Mood)
	}
	if in.Date != "" {
		if _, err := time.Parse(DateLayout, in.Date); err != nil {
			return fmt.Errorf("invalid date %q: %w", in.Date, err)
		}
	}
	return nil
}

// NewDiaryEntry builds an entry, filling the date from now, the category
// with "cotidiano", and the mood with 3 when they are unset.
func NewDiaryEntry(id string, in DiaryEntryInput, now time.Time) DiaryEntry {
	now = now.UTC()
	entry := DiaryEntry{
		ID:        id,
		ChildID:   in.ChildID,
		Date:      in.Date,
		Category:  in.Category,
		Title:     in.Title,
		Content:   in.Content,
		Mood:      in.Mood,
		Tags:      CleanLabels(in.Tags),
		CreatedAt: now,
	}
	if entry.Date == "" {
		entry.Date = now.Format(DateLayout)
	}
	if entry.Category == "" {
		entry.Category = CategoryDaily
	}
	if entry.Mood == 0 {
		entry.Mood = MoodDefault
	}
	return entry
}

// Matches reports whether the entry title or content contains query
// case-insensitively, and whether it is in category. An empty query matches
// everything; an empty category or "all" matches any category.
func (e DiaryEntry) Matches(query string, category string) bool {
	if category != "" && category != "all" && string(e.Category) != category {
		return false
	}
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Title), q) ||
		strings.Contains(strings.ToLower(e.Content), q)
}
