// ABOUTME: CLI commands to add and list diary entries for the active profile
// ABOUTME: Listing supports text search, category filters, and summary stats
package commands

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/models"
)

var (
	diaryTitle    string
	diaryContent  string
	diaryCategory string
	diaryMood     int
	diaryDate     string
	diaryTags     []string
	diaryQuery    string
	diaryStats    bool
)

// NewDiaryCmd creates the diary command group
func NewDiaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diary",
		Short: "Record and browse the daily diary",
		Long: `Record and browse diary entries for the active profile.

Categories: escola, terapia, medico, cotidiano.
Mood: 1 (muito difícil) to 5 (excelente).

Examples:
  carenotes diary add "Primeiro dia de aula" --content "Chegou calma" --category escola --mood 4
  carenotes diary list --query crise
  carenotes diary list --category terapia --stats`,
		RunE: runDiaryList,
	}

	cmd.AddCommand(newDiaryAddCmd())
	cmd.AddCommand(newDiaryListCmd())

	return cmd
}

func newDiaryAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a diary entry",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runDiaryAdd,
	}

	cmd.Flags().StringVar(&diaryTitle, "title", "", "Entry title (or pass it as the argument)")
	cmd.Flags().StringVar(&diaryContent, "content", "", "What happened")
	cmd.Flags().StringVar(&diaryCategory, "category", "", "escola, terapia, medico, or cotidiano (default cotidiano)")
	cmd.Flags().IntVar(&diaryMood, "mood", 0, "Mood from 1 to 5 (default 3)")
	cmd.Flags().StringVar(&diaryDate, "date", "", "Date as YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&diaryTags, "tag", nil, "Add a tag (can be repeated)")

	return cmd
}

func runDiaryAdd(cmd *cobra.Command, args []string) error {
	title := diaryTitle
	if len(args) == 1 {
		title = args[0]
	}
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("a title is required")
	}

	var category models.Category
	if diaryCategory != "" {
		c, err := models.ParseCategory(diaryCategory)
		if err != nil {
			return err
		}
		category = c
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.requireActive()
	if err != nil {
		return err
	}

	entry, err := a.controller.AddDiaryEntry(models.DiaryEntryInput{
		ChildID:  p.ID,
		Date:     diaryDate,
		Category: category,
		Title:    title,
		Content:  diaryContent,
		Mood:     models.Mood(diaryMood),
		Tags:     diaryTags,
	})
	if err != nil {
		return fmt.Errorf("adding entry: %w", err)
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), entry)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added %s entry %q for %s (%s)\n", entry.Category.Label(), entry.Title, p.Name, entry.ID)
	return nil
}

func newDiaryListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List diary entries, newest first",
		RunE:  runDiaryList,
	}

	cmd.Flags().StringVar(&diaryQuery, "query", "", "Only entries whose title or content contains this text")
	cmd.Flags().StringVar(&diaryCategory, "category", "", "Only entries in this category")
	cmd.Flags().BoolVar(&diaryStats, "stats", false, "Show summary statistics")

	return cmd
}

func runDiaryList(cmd *cobra.Command, args []string) error {
	category := diaryCategory
	if category != "" && category != "all" {
		c, err := models.ParseCategory(category)
		if err != nil {
			return err
		}
		category = string(c)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p, err := a.requireActive()
	if err != nil {
		return err
	}

	entries := a.controller.SearchDiary(diaryQuery, category)
	stats := a.controller.Stats()

	if jsonOutput() {
		if diaryStats {
			return printJSON(cmd.OutOrStdout(), map[string]any{"entries": entries, "stats": stats})
		}
		return printJSON(cmd.OutOrStdout(), entries)
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		if !quiet {
			fmt.Fprintf(out, "No diary entries found for %s\n", p.Name)
		}
	} else {
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "DATE\tCATEGORY\tMOOD\tTITLE\tTAGS\n")
		fmt.Fprintf(w, "----\t--------\t----\t-----\t----\n")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				e.Date,
				e.Category.Label(),
				strconv.Itoa(int(e.Mood)),
				truncate(e.Title, 40),
				truncate(joinOrDash(e.Tags), 30))
		}
		w.Flush()
	}

	if diaryStats && !quiet {
		fmt.Fprintf(out, "\nTotal: %d  Humor médio: %.1f", stats.Total, stats.AverageMood)
		if stats.LastEntry != "" {
			fmt.Fprintf(out, "  Último registro: %s", stats.LastEntry)
		}
		fmt.Fprintln(out)
		for _, c := range models.Categories {
			fmt.Fprintf(out, "  %-10s %d\n", c.Label(), stats.ByCategory[c])
		}
	}
	return nil
}
