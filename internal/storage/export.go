// ABOUTME: Export of the persisted snapshot for backup and sharing with clinicians
// ABOUTME: Supports YAML, JSON, and Markdown formats
package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harper/carenotes/internal/models"
)

// Export formats
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// ExportData represents the complete exportable data structure
type ExportData struct {
	Version    string          `yaml:"version" json:"version"`
	ExportedAt string          `yaml:"exported_at" json:"exported_at"`
	Tool       string          `yaml:"tool" json:"tool"`
	DarkMode   bool            `yaml:"dark_mode" json:"dark_mode"`
	Children   []ExportChild   `yaml:"children" json:"children"`
	Chat       []ExportMessage `yaml:"chat,omitempty" json:"chat,omitempty"`
}

// ExportChild is one profile with its diary
type ExportChild struct {
	ID            string        `yaml:"id" json:"id"`
	Name          string        `yaml:"name" json:"name"`
	Age           int           `yaml:"age" json:"age"`
	Gender        string        `yaml:"gender,omitempty" json:"gender,omitempty"`
	DateOfBirth   string        `yaml:"date_of_birth" json:"date_of_birth"`
	Diagnoses     []string      `yaml:"diagnoses,omitempty" json:"diagnoses,omitempty"`
	Sensitivities []string      `yaml:"sensitivities,omitempty" json:"sensitivities,omitempty"`
	Preferences   []string      `yaml:"preferences,omitempty" json:"preferences,omitempty"`
	VerbalLevel   string        `yaml:"verbal_level" json:"verbal_level"`
	Diary         []ExportEntry `yaml:"diary,omitempty" json:"diary,omitempty"`
}

// ExportEntry represents a diary entry for export
type ExportEntry struct {
	Date     string   `yaml:"date" json:"date"`
	Category string   `yaml:"category" json:"category"`
	Title    string   `yaml:"title" json:"title"`
	Content  string   `yaml:"content" json:"content"`
	Mood     int      `yaml:"mood" json:"mood"`
	Tags     []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// ExportMessage represents a chat message for export
type ExportMessage struct {
	Role      string `yaml:"role" json:"role"`
	Content   string `yaml:"content" json:"content"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
}

// BuildExport converts a snapshot into the export structure.
// Diary entries are grouped under their child; orphaned entries are dropped.
func BuildExport(s Snapshot, now time.Time) *ExportData {
	data := &ExportData{
		Version:    "1.0",
		ExportedAt: now.UTC().Format(time.RFC3339),
		Tool:       "carenotes",
		DarkMode:   s.DarkMode,
		Children:   make([]ExportChild, 0, len(s.Profiles)),
	}

	for i := range s.Profiles {
		p := &s.Profiles[i]
		child := ExportChild{
			ID:            p.ID,
			Name:          p.Name,
			Age:           p.Age,
			Gender:        string(p.Gender),
			DateOfBirth:   p.DateOfBirth,
			Diagnoses:     p.Diagnoses,
			Sensitivities: p.Sensitivities,
			Preferences:   p.Preferences,
			VerbalLevel:   string(p.Communication().VerbalLevel),
		}
		for _, e := range s.DiaryEntries {
			if e.ChildID != p.ID {
				continue
			}
			child.Diary = append(child.Diary, ExportEntry{
				Date:     e.Date,
				Category: string(e.Category),
				Title:    e.Title,
				Content:  e.Content,
				Mood:     int(e.Mood),
				Tags:     e.Tags,
			})
		}
		data.Children = append(data.Children, child)
	}

	for _, m := range s.ChatMessages {
		data.Chat = append(data.Chat, ExportMessage{
			Role:      string(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	return data
}

// Export writes the snapshot to w in the given format
func Export(w io.Writer, s Snapshot, format string, now time.Time) error {
	data := BuildExport(s, now)

	switch format {
	case FormatYAML, "yml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return encoder.Close()
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	case FormatMarkdown, "md":
		writeMarkdown(w, data)
		return nil
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// ExportToFile writes the export to path, creating parent directories
func ExportToFile(path string, s Snapshot, format string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Export(file, s, format, time.Now())
}

// FormatFromPath guesses the export format from a file extension
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".md", ".markdown":
		return FormatMarkdown
	}
	return FormatYAML
}

func writeMarkdown(w io.Writer, data *ExportData) {
	_, _ = fmt.Fprintf(w, "# Carenotes Export - %s\n\n", data.ExportedAt[:10])
	_, _ = fmt.Fprintf(w, "Generated: %s\n\n", data.ExportedAt)

	for _, child := range data.Children {
		_, _ = fmt.Fprintf(w, "## %s (%d anos)\n\n", child.Name, child.Age)
		_, _ = fmt.Fprintf(w, "- **Data de nascimento:** %s\n", child.DateOfBirth)
		if len(child.Diagnoses) > 0 {
			_, _ = fmt.Fprintf(w, "- **Diagnósticos:** %s\n", strings.Join(child.Diagnoses, ", "))
		}
		if len(child.Sensitivities) > 0 {
			_, _ = fmt.Fprintf(w, "- **Sensibilidades:** %s\n", strings.Join(child.Sensitivities, ", "))
		}
		if len(child.Preferences) > 0 {
			_, _ = fmt.Fprintf(w, "- **Preferências:** %s\n", strings.Join(child.Preferences, ", "))
		}
		_, _ = fmt.Fprintln(w)

		if len(child.Diary) > 0 {
			_, _ = fmt.Fprintln(w, "### Diário")
			_, _ = fmt.Fprintln(w)
			_, _ = fmt.Fprintln(w, "| Data | Categoria | Título | Humor |")
			_, _ = fmt.Fprintln(w, "|------|-----------|--------|-------|")
			for _, e := range child.Diary {
				_, _ = fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
					e.Date, models.Category(e.Category).Label(), e.Title, models.Mood(e.Mood).Label())
			}
			_, _ = fmt.Fprintln(w)
		}
	}

	if len(data.Chat) > 0 {
		_, _ = fmt.Fprintln(w, "## Assistente")
		_, _ = fmt.Fprintln(w)
		for _, m := range data.Chat {
			who := "Você"
			if m.Role == string(models.RoleAssistant) {
				who = "Assistente"
			}
			_, _ = fmt.Fprintf(w, "**%s:** %s\n\n", who, m.Content)
		}
	}
}
