// ABOUTME: Root command and global flags for the carenotes CLI
// ABOUTME: Wires every subcommand and validates flag combinations
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Global flags
var (
	verbose      bool
	quiet        bool
	outputFormat string
	profileID    string
)

const banner = `
 ██████╗ █████╗ ██████╗ ███████╗███╗   ██╗ ██████╗ ████████╗███████╗███████╗
██╔════╝██╔══██╗██╔══██╗██╔════╝████╗  ██║██╔═══██╗╚══██╔══╝██╔════╝██╔════╝
██║     ███████║██████╔╝█████╗  ██╔██╗ ██║██║   ██║   ██║   █████╗  ███████╗
██║     ██╔══██║██╔══██╗██╔══╝  ██║╚██╗██║██║   ██║   ██║   ██╔══╝  ╚════██║
╚██████╗██║  ██║██║  ██║███████╗██║ ╚████║╚██████╔╝   ██║   ███████╗███████║
 ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚══════╝╚══════╝`

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carenotes",
		Short: "Caregiver notebook for children with sensory and developmental needs",
		Long: banner + `

Keep child profiles, a daily diary, and a scripted assistant chat in
one local store. Data lives in a single namespace on disk, in SQLite,
or in Charm cloud with automatic sync.

Configuration comes from the environment (or a .env file):
  CARENOTES_BACKEND    file, memory, sqlite, or charm
  CARENOTES_DATA_DIR   where file and sqlite data live
  LOG_LEVEL            debug, info, warn, or error`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch outputFormat {
			case "auto", "table", "json":
			default:
				return fmt.Errorf("invalid --format %q (want auto, table, or json)", outputFormat)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors and results")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, or json")
	cmd.PersistentFlags().StringVar(&profileID, "profile", "", "Profile ID to act on (default: the only profile)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewDiaryCmd())
	cmd.AddCommand(NewChatCmd())
	cmd.AddCommand(NewThemeCmd())
	cmd.AddCommand(NewExportCmd())
	cmd.AddCommand(NewStorageCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
