// ABOUTME: CLI commands to inspect and clear the persisted namespace
// ABOUTME: Shows the backend, the keys in the blob, and per-collection counts
package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var storageConfirm bool

// NewStorageCmd creates the storage command group
func NewStorageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "storage",
		Short: "Inspect or clear stored data",
		RunE:  runStorageShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show backend, namespace, and stored collections",
		RunE:  runStorageShow,
	})

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every stored collection in the namespace",
		Long: `Delete the whole namespace: profiles, diary, chat, and theme.

This cannot be undone. Run with --confirm to proceed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !storageConfirm {
				fmt.Fprintln(cmd.OutOrStdout(), "This will delete ALL profiles, diary entries, and messages!")
				fmt.Fprintln(cmd.OutOrStdout(), "Run with --confirm to proceed")
				return nil
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			a.store.Clear()
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared namespace %s\n", a.store.Store.Namespace())
			return nil
		},
	}
	clearCmd.Flags().BoolVar(&storageConfirm, "confirm", false, "Confirm the clear operation")
	cmd.AddCommand(clearCmd)

	return cmd
}

type storageInfo struct {
	Backend      string   `json:"backend"`
	Namespace    string   `json:"namespace"`
	Location     string   `json:"location,omitempty"`
	Keys         []string `json:"keys"`
	Bytes        int      `json:"bytes"`
	Profiles     int      `json:"profiles"`
	DiaryEntries int      `json:"diaryEntries"`
	ChatMessages int      `json:"chatMessages"`
	DarkMode     bool     `json:"isDarkMode"`
}

func runStorageShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	raw, _ := a.store.Store.Raw()
	snapshot := a.store.LoadSnapshot()
	info := storageInfo{
		Backend:      a.store.Kind,
		Namespace:    a.store.Store.Namespace(),
		Keys:         a.store.Store.Keys(),
		Bytes:        len(raw),
		Profiles:     len(snapshot.Profiles),
		DiaryEntries: len(snapshot.DiaryEntries),
		ChatMessages: len(snapshot.ChatMessages),
		DarkMode:     snapshot.DarkMode,
	}
	switch a.store.Kind {
	case "file":
		info.Location = a.cfg.DataDir
	case "sqlite":
		if db, ok := a.store.SQLiteDB(); ok {
			info.Location = db.Path()
		}
	case "charm":
		info.Location = a.cfg.CharmHost
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), info)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "FIELD\tVALUE\n")
	fmt.Fprintf(w, "-----\t-----\n")
	fmt.Fprintf(w, "Backend\t%s\n", info.Backend)
	if info.Location != "" {
		fmt.Fprintf(w, "Location\t%s\n", info.Location)
	}
	fmt.Fprintf(w, "Namespace\t%s\n", info.Namespace)
	fmt.Fprintf(w, "Keys\t%s\n", joinOrDash(info.Keys))
	fmt.Fprintf(w, "Size\t%d bytes\n", info.Bytes)
	fmt.Fprintf(w, "Profiles\t%d\n", info.Profiles)
	fmt.Fprintf(w, "Diary entries\t%d\n", info.DiaryEntries)
	fmt.Fprintf(w, "Chat messages\t%d\n", info.ChatMessages)
	fmt.Fprintf(w, "Dark mode\t%t\n", info.DarkMode)
	return w.Flush()
}
