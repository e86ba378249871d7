// ABOUTME: Derived diary views for the active profile: search and summary statistics
// ABOUTME: Recomputed on every call from the global entry list
package core

import (
	"strings"

	"github.com/harper/carenotes/internal/models"
)

// SearchDiary filters the active profile's entries by a case-insensitive
// substring of title or content and by category ("" or "all" for any).
func (c *Controller) SearchDiary(query, category string) []models.DiaryEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filterDiary(strings.TrimSpace(query), category)
}

func (c *Controller) filterDiary(query, category string) []models.DiaryEntry {
	out := []models.DiaryEntry{}
	if c.activeID == "" {
		return out
	}
	for _, e := range c.diary {
		if e.ChildID == c.activeID && e.Matches(query, category) {
			out = append(out, e)
		}
	}
	return out
}

// DiaryStats summarizes the active profile's diary
type DiaryStats struct {
	Total       int                     `json:"total"`
	ByCategory  map[models.Category]int `json:"byCategory"`
	AverageMood float64                 `json:"averageMood"`
	LastEntry   string                  `json:"lastEntry,omitempty"`
}

// Stats computes diary statistics for the active profile
func (c *Controller) Stats() DiaryStats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := DiaryStats{ByCategory: map[models.Category]int{}}
	for _, cat := range models.Categories {
		stats.ByCategory[cat] = 0
	}

	entries := c.filterDiary("", "")
	moodSum := 0
	for _, e := range entries {
		stats.ByCategory[e.Category]++
		moodSum += int(e.Mood)
	}
	stats.Total = len(entries)
	if stats.Total > 0 {
		stats.AverageMood = float64(moodSum) / float64(stats.Total)
		stats.LastEntry = entries[0].Date
	}
	return stats
}
