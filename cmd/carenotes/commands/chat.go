// ABOUTME: CLI commands to talk to the scripted assistant and read the history
// ABOUTME: send waits for the reply so both messages are stored before exit
package commands

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/carenotes/internal/models"
)

var chatLimit int

// NewChatCmd creates the chat command group
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the virtual assistant",
		Long: `Talk to the virtual assistant.

The assistant answers with scripted guidance about crises, routines,
communication, social skills, sleep, and school, using the active
child's name when a profile is selected.

Examples:
  carenotes chat send "Como lidar com crises sensoriais?"
  carenotes chat history --limit 10`,
		RunE: runChatHistory,
	}

	cmd.AddCommand(newChatSendCmd())
	cmd.AddCommand(newChatHistoryCmd())

	return cmd
}

func newChatSendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "send [message]",
		Short: "Send a message and wait for the reply",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			chat := a.newChat()
			defer chat.Responder().Close()

			appended, err := chat.Exchange(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			if jsonOutput() {
				return printJSON(cmd.OutOrStdout(), appended)
			}
			for _, m := range appended {
				if m.Role == models.RoleAssistant {
					fmt.Fprintln(cmd.OutOrStdout(), m.Content)
				}
			}
			return nil
		},
	}
}

func newChatHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation",
		RunE:  runChatHistory,
	}
	cmd.Flags().IntVar(&chatLimit, "limit", 0, "Only show the last N messages")
	return cmd
}

func runChatHistory(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	messages := a.controller.ChatMessages()
	if chatLimit > 0 && chatLimit < len(messages) {
		messages = messages[len(messages)-chatLimit:]
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), messages)
	}
	if len(messages) == 0 {
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), "No messages yet")
		}
		return nil
	}
	for _, m := range messages {
		speaker := "Você"
		if m.Role == models.RoleAssistant {
			speaker = "Assistente"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s: %s\n", m.Timestamp.Local().Format("2006-01-02 15:04"), speaker, m.Content)
	}
	return nil
}
