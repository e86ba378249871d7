// ABOUTME: Tests for diary search and statistics over the active profile
// ABOUTME: Verifies substring matching, category filters, and mood averages
package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/carenotes/internal/models"
)

func seedDiary(t *testing.T) *Controller {
	t.Helper()
	c := newFixture(t).loaded(t)
	other := c.CreateProfile(models.ProfileInput{Name: "Leo"})
	p := c.CreateProfile(models.ProfileInput{Name: "Ana"})

	inputs := []models.DiaryEntryInput{
		{ChildID: p.ID, Title: "Aula de natação", Content: "Gostou da piscina", Category: models.CategoryDaily, Mood: 5},
		{ChildID: p.ID, Title: "Consulta", Content: "Revisão com a fonoaudióloga", Category: models.CategoryTherapy, Mood: 3},
		{ChildID: p.ID, Title: "Escola", Content: "Crise no recreio", Category: models.CategorySchool, Mood: 1},
		{ChildID: other.ID, Title: "Consulta do Leo", Category: models.CategoryMedical, Mood: 2},
	}
	for _, in := range inputs {
		_, err := c.AddDiaryEntry(in)
		require.NoError(t, err)
	}
	return c
}

func TestSearchDiary(t *testing.T) {
	c := seedDiary(t)

	tests := []struct {
		query    string
		category string
		want     []string
	}{
		{"", "", []string{"Escola", "Consulta", "Aula de natação"}},
		{"", "all", []string{"Escola", "Consulta", "Aula de natação"}},
		{"consulta", "", []string{"Consulta"}},
		{"  PISCINA ", "", []string{"Aula de natação"}},
		{"", "terapia", []string{"Consulta"}},
		{"crise", "terapia", nil},
		{"leo", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.query+"/"+tt.category, func(t *testing.T) {
			var titles []string
			for _, e := range c.SearchDiary(tt.query, tt.category) {
				titles = append(titles, e.Title)
			}
			assert.Equal(t, tt.want, titles)
		})
	}
}

func TestSearchDiary_NoActiveProfile(t *testing.T) {
	c := seedDiary(t)
	c.Navigate(PageDashboard)
	c.Back()

	assert.Empty(t, c.SearchDiary("", ""))
}

func TestStats(t *testing.T) {
	c := seedDiary(t)

	stats := c.Stats()
	assert.Equal(t, 3, stats.Total)
	assert.InDelta(t, 3.0, stats.AverageMood, 0.001)
	assert.Equal(t, 1, stats.ByCategory[models.CategorySchool])
	assert.Equal(t, 1, stats.ByCategory[models.CategoryTherapy])
	assert.Equal(t, 1, stats.ByCategory[models.CategoryDaily])
	assert.Equal(t, 0, stats.ByCategory[models.CategoryMedical])
	assert.Equal(t, "2024-03-10", stats.LastEntry)
}

func TestStats_Empty(t *testing.T) {
	c := newFixture(t).loaded(t)
	stats := c.Stats()
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AverageMood)
	assert.Len(t, stats.ByCategory, 4)
}
