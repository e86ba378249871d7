// ABOUTME: View-state pages and transitions between them
// ABOUTME: Navigation never touches persisted data
package core

// Page names a view in the presentation layer
type Page string

const (
	PageProfiles  Page = "profiles"
	PageDashboard Page = "dashboard"
	PageDiary     Page = "diario"
	PageAssistant Page = "assistente"

	// Dashboard modules without a dedicated view yet
	PageBehavior      Page = "comportamento"
	PageCommunication Page = "comunicacao"
	PageDevelopment   Page = "desenvolvimento"
	PageVideoAnalysis Page = "analise-video"
)

// Known reports whether p has a dedicated view.
// Other pages are valid targets; they render as modules in development.
func (p Page) Known() bool {
	switch p {
	case PageProfiles, PageDashboard, PageDiary, PageAssistant:
		return true
	}
	return false
}

// Title is the header caption for p
func (p Page) Title() string {
	switch p {
	case PageProfiles:
		return "Selecionar Perfil"
	case PageDashboard:
		return "Dashboard"
	}
	if m, ok := FindModule(p); ok {
		return m.Title
	}
	return "Carenotes"
}

// Module is one dashboard tile
type Module struct {
	Page        Page   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

var modules = []Module{
	{PageDiary, "Diário Digital", "Registre eventos e momentos especiais", true},
	{PageBehavior, "Monitoramento Comportamental", "Acompanhe padrões e comportamentos", false},
	{PageAssistant, "Assistente Virtual", "Chat inteligente para suporte e orientação", true},
	{PageCommunication, "Comunicação", "PECS e rotinas visuais", false},
	{PageDevelopment, "Marcos de Desenvolvimento", "Acompanhe o progresso e conquistas", false},
	{PageVideoAnalysis, "Análise de Vídeo", "IA para análise comportamental", false},
}

// Modules lists the dashboard tiles in display order
func Modules() []Module {
	return append([]Module(nil), modules...)
}

// FindModule returns the dashboard tile for p
func FindModule(p Page) (Module, bool) {
	for _, m := range modules {
		if m.Page == p {
			return m, true
		}
	}
	return Module{}, false
}

// Page returns the current view
func (c *Controller) Page() Page {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.page
}

// Navigate switches to page
func (c *Controller) Navigate(page Page) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.page = page
}

// Back leaves the current view. From the dashboard with several profiles it
// returns to the picker and clears the selection; from any module it returns
// to the dashboard; on the picker, or on the dashboard of a single profile,
// it does nothing.
func (c *Controller) Back() Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.page == PageDashboard && len(c.profiles) > 1:
		c.page = PageProfiles
		c.activeID = ""
	case c.page != PageProfiles && c.page != PageDashboard:
		c.page = PageDashboard
	}
	return c.page
}

// CanGoBack reports whether Back would change the view
func (c *Controller) CanGoBack() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.canGoBackLocked()
}

func (c *Controller) canGoBackLocked() bool {
	return c.page != PageProfiles && (c.page != PageDashboard || len(c.profiles) > 1)
}
