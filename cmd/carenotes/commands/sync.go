// ABOUTME: Sync commands for Charm cloud synchronization
// ABOUTME: Provides status, manual sync, wipe, and SSH key management
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/charm"
	"github.com/harper/carenotes/internal/config"
)

var (
	syncConfirm bool
	syncUnlink  string
)

// NewSyncCmd creates the sync command group
func NewSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Manage Charm cloud synchronization",
		Long: `Manage synchronization with Charm cloud.

With CARENOTES_BACKEND=charm, carenotes stores its namespace in Charm KV
and syncs it across devices linked to the same Charm account via SSH keys.`,
	}

	cmd.AddCommand(newSyncStatusCmd())
	cmd.AddCommand(newSyncNowCmd())
	cmd.AddCommand(newSyncWipeCmd())
	cmd.AddCommand(newSyncKeysCmd())

	return cmd
}

// openCharm opens the app and returns its Charm client
func openCharm(cmd *cobra.Command) (*app, *charm.Client, error) {
	a, err := openApp(cmd)
	if err != nil {
		return nil, nil, err
	}
	client, ok := a.store.CharmClient()
	if !ok {
		a.Close()
		return nil, nil, fmt.Errorf("sync needs the charm backend (current: %s); set CARENOTES_BACKEND=%s", a.cfg.Backend, config.BackendCharm)
	}
	return a, client, nil
}

func newSyncStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and connection info",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, client, err := openCharm(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			id, err := client.ID()
			if err != nil {
				fmt.Fprintln(out, "Status: Not connected")
				fmt.Fprintln(out, "Run 'carenotes sync keys' to check your SSH keys")
				return nil
			}

			fmt.Fprintln(out, "Status: Connected")
			fmt.Fprintf(out, "User ID: %s\n", id)
			fmt.Fprintf(out, "Host: %s\n", a.cfg.CharmHost)
			fmt.Fprintf(out, "Database: %s\n", a.cfg.CharmDBName)
			fmt.Fprintf(out, "Auto-sync: %t\n", a.cfg.AutoSync)

			if namespaces, err := client.Namespaces(); err == nil {
				fmt.Fprintf(out, "Namespaces: %s\n", joinOrDash(namespaces))
			}
			return nil
		},
	}
}

func newSyncNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Force immediate sync with Charm cloud",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := openCharm(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), "Syncing...")
			}
			if err := a.store.Sync(cmd.Context()); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Sync complete")
			return nil
		},
	}
}

func newSyncWipeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Wipe all local data (nuclear option)",
		Long: `Completely wipe all local Charm data.

WARNING: This deletes all locally cached data. Your cloud data
remains intact and will be re-synced on next access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !syncConfirm {
				fmt.Fprintln(cmd.OutOrStdout(), "This will wipe ALL local data!")
				fmt.Fprintln(cmd.OutOrStdout(), "Run with --confirm to proceed")
				return nil
			}

			a, client, err := openCharm(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := client.Reset(); err != nil {
				return fmt.Errorf("failed to wipe data: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Local data wiped successfully")
			return nil
		},
	}

	cmd.Flags().BoolVar(&syncConfirm, "confirm", false, "Confirm the wipe operation")

	return cmd
}

func newSyncKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List or unlink authorized SSH keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, client, err := openCharm(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			out := cmd.OutOrStdout()
			if syncUnlink != "" {
				if err := client.UnlinkKey(syncUnlink); err != nil {
					return fmt.Errorf("failed to unlink key: %w", err)
				}
				fmt.Fprintln(out, "Key unlinked")
				return nil
			}

			keys, err := client.GetAuthorizedKeys()
			if err != nil {
				return fmt.Errorf("failed to get authorized keys: %w", err)
			}

			if keys == "" {
				fmt.Fprintln(out, "No authorized keys found")
				return nil
			}

			fmt.Fprintln(out, "Authorized SSH keys:")
			fmt.Fprintln(out, keys)
			return nil
		},
	}

	cmd.Flags().StringVar(&syncUnlink, "unlink", "", "Unlink this authorized key from the account")

	return cmd
}
