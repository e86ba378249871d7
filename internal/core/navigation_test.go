// ABOUTME: Tests for page navigation and the back transition rules
// ABOUTME: Verifies back behavior across picker, dashboard, and module pages
package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper/carenotes/internal/models"
)

func TestBack(t *testing.T) {
	tests := []struct {
		name       string
		profiles   int
		start      Page
		wantPage   Page
		wantActive bool
		canGoBack  bool
	}{
		{"picker stays", 2, PageProfiles, PageProfiles, true, false},
		{"dashboard single profile stays", 1, PageDashboard, PageDashboard, true, false},
		{"dashboard several profiles to picker", 2, PageDashboard, PageProfiles, false, true},
		{"diary to dashboard", 1, PageDiary, PageDashboard, true, true},
		{"assistant to dashboard", 2, PageAssistant, PageDashboard, true, true},
		{"module without view to dashboard", 1, PageBehavior, PageDashboard, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newFixture(t).loaded(t)
			for i := 0; i < tt.profiles; i++ {
				c.CreateProfile(models.ProfileInput{Name: "child"})
			}
			c.Navigate(tt.start)
			assert.Equal(t, tt.canGoBack, c.CanGoBack())

			got := c.Back()

			assert.Equal(t, tt.wantPage, got)
			assert.Equal(t, tt.wantPage, c.Page())
			assert.Equal(t, tt.wantActive, c.ActiveProfile() != nil)
		})
	}
}

func TestNavigateUnknownPage(t *testing.T) {
	c := newFixture(t).loaded(t)
	c.Navigate("relatorios")

	assert.Equal(t, Page("relatorios"), c.Page())
	assert.False(t, c.Page().Known())
	assert.Equal(t, "Carenotes", c.Page().Title())
}

func TestModules(t *testing.T) {
	mods := Modules()
	require.Len(t, mods, 6)

	var ids []Page
	for _, m := range mods {
		ids = append(ids, m.Page)
		assert.NotEmpty(t, m.Title)
		assert.NotEmpty(t, m.Description)
		assert.Equal(t, m.Page.Known(), m.Available, "module %s", m.Page)
		assert.Equal(t, m.Title, m.Page.Title())
	}
	assert.Equal(t, []Page{PageDiary, PageBehavior, PageAssistant, PageCommunication, PageDevelopment, PageVideoAnalysis}, ids)

	assert.Equal(t, "Análise de Vídeo", PageVideoAnalysis.Title())
	assert.False(t, PageVideoAnalysis.Known())

	mods[0].Title = "changed"
	assert.Equal(t, "Diário Digital", Modules()[0].Title, "Modules must return a copy")
}

func TestNavigationDoesNotPersist(t *testing.T) {
	f := newFixture(t)
	c := f.loaded(t)
	p := c.CreateProfile(models.ProfileInput{Name: "Ana"})
	before := f.repo.Writes("profiles")

	c.Navigate(PageDiary)
	c.Back()
	require.NoError(t, c.SelectProfile(p.ID))

	assert.Equal(t, before, f.repo.Writes("profiles"))
}

func TestPageTitles(t *testing.T) {
	assert.Equal(t, "Selecionar Perfil", PageProfiles.Title())
	assert.Equal(t, "Diário Digital", PageDiary.Title())
	assert.Equal(t, "Assistente Virtual", PageAssistant.Title())
	assert.True(t, PageDashboard.Known())
}
