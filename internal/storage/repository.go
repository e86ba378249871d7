// ABOUTME: Entity repository mapping each collection to one key of the namespace store
// ABOUTME: Every save replaces the whole collection; absent or unreadable data loads empty
package storage

import (
	"github.com/charmbracelet/log"

	"github.com/harper/carenotes/internal/kv"
	"github.com/harper/carenotes/internal/models"
)

// Collection keys inside the namespace blob
const (
	KeyProfiles     = "profiles"
	KeyDiaryEntries = "diaryEntries"
	KeyChatMessages = "chatMessages"
	KeyDarkMode     = "isDarkMode"
)

// Snapshot is the full persisted application state
type Snapshot struct {
	Profiles     []models.Profile     `json:"profiles"`
	DiaryEntries []models.DiaryEntry  `json:"diaryEntries"`
	ChatMessages []models.ChatMessage `json:"chatMessages"`
	DarkMode     bool                 `json:"isDarkMode"`
}

// Repository reads and writes whole collections through a kv.Store
type Repository struct {
	store  kv.Store
	logger *log.Logger
}

// NewRepository wraps store. A nil logger uses log.Default().
func NewRepository(store kv.Store, logger *log.Logger) *Repository {
	if logger == nil {
		logger = log.Default()
	}
	return &Repository{store: store, logger: logger}
}

// LoadProfiles returns every stored profile, empty when none were saved
func (r *Repository) LoadProfiles() []models.Profile {
	return loadList[models.Profile](r, KeyProfiles)
}

// SaveProfiles replaces the stored profile collection
func (r *Repository) SaveProfiles(profiles []models.Profile) {
	r.store.Set(KeyProfiles, nonNil(profiles))
}

// LoadDiaryEntries returns every diary entry across all profiles
func (r *Repository) LoadDiaryEntries() []models.DiaryEntry {
	return loadList[models.DiaryEntry](r, KeyDiaryEntries)
}

// SaveDiaryEntries replaces the stored diary collection
func (r *Repository) SaveDiaryEntries(entries []models.DiaryEntry) {
	r.store.Set(KeyDiaryEntries, nonNil(entries))
}

// LoadChatMessages returns the conversation in append order
func (r *Repository) LoadChatMessages() []models.ChatMessage {
	return loadList[models.ChatMessage](r, KeyChatMessages)
}

// SaveChatMessages replaces the stored conversation
func (r *Repository) SaveChatMessages(messages []models.ChatMessage) {
	r.store.Set(KeyChatMessages, nonNil(messages))
}

// LoadDarkMode returns false when the flag was never saved
func (r *Repository) LoadDarkMode() bool {
	v, ok, err := kv.GetJSON[bool](r.store, KeyDarkMode)
	if err != nil {
		r.logger.Warn("ignoring unreadable collection", "key", KeyDarkMode, "err", err)
		return false
	}
	return ok && v
}

// SaveDarkMode stores the theme flag
func (r *Repository) SaveDarkMode(dark bool) {
	r.store.Set(KeyDarkMode, dark)
}

// LoadSnapshot reads all four collections
func (r *Repository) LoadSnapshot() Snapshot {
	return Snapshot{
		Profiles:     r.LoadProfiles(),
		DiaryEntries: r.LoadDiaryEntries(),
		ChatMessages: r.LoadChatMessages(),
		DarkMode:     r.LoadDarkMode(),
	}
}

// SaveSnapshot writes all four collections
func (r *Repository) SaveSnapshot(s Snapshot) {
	r.SaveProfiles(s.Profiles)
	r.SaveDiaryEntries(s.DiaryEntries)
	r.SaveChatMessages(s.ChatMessages)
	r.SaveDarkMode(s.DarkMode)
}

// Clear removes every collection
func (r *Repository) Clear() {
	r.store.Clear()
}

func loadList[T any](r *Repository, key string) []T {
	v, ok, err := kv.GetJSON[[]T](r.store, key)
	if err != nil {
		r.logger.Warn("ignoring unreadable collection", "key", key, "err", err)
		return []T{}
	}
	if !ok || v == nil {
		return []T{}
	}
	return v
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
