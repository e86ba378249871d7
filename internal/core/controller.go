// ABOUTME: Application state controller holding profiles, diary, chat, theme, and view state
// ABOUTME: Two-phase lifecycle: mutations only write through to the repository once loaded
package core

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/carenotes/internal/models"
	"github.com/harper/carenotes/internal/storage"
)

var (
	ErrAlreadyLoaded   = errors.New("state already loaded")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidRole     = errors.New("invalid message role")
	ErrEmptyMessage    = errors.New("message content cannot be empty")
)

// Phase is the controller lifecycle stage
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseLoaded
)

func (p Phase) String() string {
	if p == PhaseLoaded {
		return "loaded"
	}
	return "uninitialized"
}

// Repository is the persistence the controller reads once and writes through to
type Repository interface {
	LoadSnapshot() storage.Snapshot
	SaveProfiles([]models.Profile)
	SaveDiaryEntries([]models.DiaryEntry)
	SaveChatMessages([]models.ChatMessage)
	SaveDarkMode(bool)
}

// Option configures a Controller
type Option func(*Controller)

// WithClock overrides the time source used for timestamps
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithIDGenerator overrides entity id generation
func WithIDGenerator(newID func() string) Option {
	return func(c *Controller) { c.newID = newID }
}

// WithLogger sets the logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// Controller owns the in-memory application state.
// All methods are safe for concurrent use.
type Controller struct {
	repo   Repository
	logger *log.Logger
	now    func() time.Time
	newID  func() string

	mu           sync.RWMutex
	phase        Phase
	page         Page
	profiles     []models.Profile
	activeID     string
	diary        []models.DiaryEntry
	messages     []models.ChatMessage
	darkMode     bool
	themeWatches []func(bool)
}

// NewController creates a controller in the uninitialized phase showing the profile picker
func NewController(repo Repository, opts ...Option) *Controller {
	c := &Controller{
		repo:     repo,
		logger:   log.Default(),
		now:      time.Now,
		newID:    NewID,
		page:     PageProfiles,
		profiles: []models.Profile{},
		diary:    []models.DiaryEntry{},
		messages: []models.ChatMessage{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewID returns a time-ordered unique identifier
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Load hydrates state from the repository exactly once.
// A single stored profile is selected and the view moves to the dashboard;
// otherwise the view stays on the profile picker.
func (c *Controller) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase == PhaseLoaded {
		return ErrAlreadyLoaded
	}

	snap := c.repo.LoadSnapshot()
	c.profiles = orEmpty(snap.Profiles)
	c.diary = orEmpty(snap.DiaryEntries)
	c.messages = orEmpty(snap.ChatMessages)
	c.darkMode = snap.DarkMode

	if len(c.profiles) == 1 {
		c.activeID = c.profiles[0].ID
		c.page = PageDashboard
	} else {
		c.activeID = ""
		c.page = PageProfiles
	}
	c.phase = PhaseLoaded

	c.logger.Info("state loaded",
		"profiles", len(c.profiles),
		"diaryEntries", len(c.diary),
		"chatMessages", len(c.messages),
		"darkMode", c.darkMode,
		"page", c.page)
	return nil
}

// Phase reports the lifecycle stage
func (c *Controller) Phase() Phase {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.phase
}

// Loaded reports whether Load has completed
func (c *Controller) Loaded() bool {
	return c.Phase() == PhaseLoaded
}

// CreateProfile stores a new profile, makes it active, and opens the dashboard
func (c *Controller) CreateProfile(in models.ProfileInput) models.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := models.NewProfile(c.newID(), in, c.now())
	c.profiles = append(c.profiles, p)
	c.activeID = p.ID
	c.page = PageDashboard
	c.logger.Debug("profile created", "id", p.ID, "name", p.Name)

	c.persistProfiles()
	return p
}

// SelectProfile makes the profile with id active and opens the dashboard
func (c *Controller) SelectProfile(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if models.FindProfile(c.profiles, id) < 0 {
		return fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	c.activeID = id
	c.page = PageDashboard
	return nil
}

// AddDiaryEntry prepends a new entry so the newest entry is always first.
// The entry must reference an existing profile.
func (c *Controller) AddDiaryEntry(in models.DiaryEntryInput) (models.DiaryEntry, error) {
	if err := in.Validate(); err != nil {
		return models.DiaryEntry{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if models.FindProfile(c.profiles, in.ChildID) < 0 {
		return models.DiaryEntry{}, fmt.Errorf("%w: %s", ErrProfileNotFound, in.ChildID)
	}

	entry := models.NewDiaryEntry(c.newID(), in, c.now())
	c.diary = append([]models.DiaryEntry{entry}, c.diary...)
	c.logger.Debug("diary entry added", "id", entry.ID, "childId", entry.ChildID, "category", entry.Category)

	c.persistDiary()
	return entry, nil
}

// SendMessage appends a message whose role is inferred from the previous one:
// user after an assistant message or on an empty conversation, assistant otherwise.
// Callers that know the sender should use PostMessage.
func (c *Controller) SendMessage(content string) models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.appendMessage(models.NextRole(c.messages), content)
}

// PostMessage appends a message with an explicit role
func (c *Controller) PostMessage(role models.Role, content string) (models.ChatMessage, error) {
	if !role.Valid() {
		return models.ChatMessage{}, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	return c.appendMessage(role, content), nil
}

func (c *Controller) appendMessage(role models.Role, content string) models.ChatMessage {
	msg := models.NewChatMessage(c.newID(), role, content, c.now())
	c.messages = append(c.messages, msg)
	c.logger.Debug("chat message appended", "id", msg.ID, "role", msg.Role)

	c.persistMessages()
	return msg
}

// ToggleTheme flips dark mode, persists it, and notifies theme watchers.
// Returns the new value.
func (c *Controller) ToggleTheme() bool {
	c.mu.Lock()
	c.darkMode = !c.darkMode
	dark := c.darkMode
	c.persistTheme()
	watchers := slices.Clone(c.themeWatches)
	c.mu.Unlock()

	for _, fn := range watchers {
		fn(dark)
	}
	return dark
}

// OnThemeChange registers fn to run after every theme toggle
func (c *Controller) OnThemeChange(fn func(dark bool)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.themeWatches = append(c.themeWatches, fn)
}

// Profiles returns a copy of all profiles in creation order
func (c *Controller) Profiles() []models.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.profiles)
}

// ActiveProfile returns a copy of the active profile, or nil when none is selected
func (c *Controller) ActiveProfile() *models.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.activeLocked()
}

func (c *Controller) activeLocked() *models.Profile {
	if c.activeID == "" {
		return nil
	}
	i := models.FindProfile(c.profiles, c.activeID)
	if i < 0 {
		return nil
	}
	p := c.profiles[i]
	return &p
}

// DiaryEntries returns the active profile's entries, newest first.
// Empty when no profile is active.
func (c *Controller) DiaryEntries() []models.DiaryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filterDiary("", "")
}

// AllDiaryEntries returns every entry for every profile, newest first
func (c *Controller) AllDiaryEntries() []models.DiaryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.diary)
}

// ChatMessages returns the conversation in order
func (c *Controller) ChatMessages() []models.ChatMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.messages)
}

// DarkMode reports the theme flag
func (c *Controller) DarkMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.darkMode
}

// State is a point-in-time copy of everything the presentation layer reads
type State struct {
	Phase         string               `json:"phase"`
	Loaded        bool                 `json:"loaded"`
	Page          Page                 `json:"page"`
	PageTitle     string               `json:"pageTitle"`
	CanGoBack     bool                 `json:"canGoBack"`
	Profiles      []models.Profile     `json:"profiles"`
	ActiveProfile *models.Profile      `json:"activeProfile"`
	DiaryEntries  []models.DiaryEntry  `json:"diaryEntries"`
	ChatMessages  []models.ChatMessage `json:"chatMessages"`
	DarkMode      bool                 `json:"isDarkMode"`
}

// State returns a consistent copy of the whole state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return State{
		Phase:         c.phase.String(),
		Loaded:        c.phase == PhaseLoaded,
		Page:          c.page,
		PageTitle:     c.page.Title(),
		CanGoBack:     c.canGoBackLocked(),
		Profiles:      slices.Clone(c.profiles),
		ActiveProfile: c.activeLocked(),
		DiaryEntries:  c.filterDiary("", ""),
		ChatMessages:  slices.Clone(c.messages),
		DarkMode:      c.darkMode,
	}
}

// persistence helpers; callers hold c.mu

func (c *Controller) writable(collection string) bool {
	if c.phase != PhaseLoaded {
		c.logger.Debug("skipping write before load", "collection", collection)
		return false
	}
	return true
}

func (c *Controller) persistProfiles() {
	if c.writable(storage.KeyProfiles) {
		c.repo.SaveProfiles(slices.Clone(c.profiles))
	}
}

func (c *Controller) persistDiary() {
	if c.writable(storage.KeyDiaryEntries) {
		c.repo.SaveDiaryEntries(slices.Clone(c.diary))
	}
}

func (c *Controller) persistMessages() {
	if c.writable(storage.KeyChatMessages) {
		c.repo.SaveChatMessages(slices.Clone(c.messages))
	}
}

func (c *Controller) persistTheme() {
	if c.writable(storage.KeyDarkMode) {
		c.repo.SaveDarkMode(c.darkMode)
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
