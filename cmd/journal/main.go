// Command journal is a terminal client for the AI journal relay. It
// keeps the transcript in memory for the session, exactly like the web
// client: nothing is persisted, and a restart starts fresh.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"nextstep/internal/conversation"
	journalModels "nextstep/internal/domain/models/journal"
	"nextstep/internal/modes"
)

const greeting = "Hi! I'm here to help you explore your thoughts about your future. What's on your mind today?"

var (
	serverURL string
	mode      string
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Chat with the NextStep AI journal from the terminal",
	Long: `An interactive AI journal session over the NextStep relay server.

Type a message and press Enter to send it. Commands:
  /mode <conversation|venting|structured>   switch journal mode
  /quit                                     end the session

The transcript lives only for this session; quitting discards it.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&serverURL, "server", "http://localhost:3001", "relay server base URL")
	rootCmd.Flags().StringVar(&mode, "mode", modes.ModeConversation, "initial journal mode")
}

func run(cmd *cobra.Command, args []string) error {
	relay := conversation.NewRelayClient(serverURL)
	journal := conversation.New(relay, conversation.WithMode(mode))

	fmt.Printf("journal> %s\n", greeting)
	fmt.Printf("(mode: %s, server: %s)\n\n", journal.Mode(), serverURL)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("you> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "/quit" || line == "/exit":
			return nil
		case strings.HasPrefix(line, "/mode"):
			switchMode(journal, strings.TrimSpace(strings.TrimPrefix(line, "/mode")))
			continue
		}

		if !journal.Submit(context.Background(), line) {
			continue
		}
		printLastReply(journal)
	}
	return scanner.Err()
}

func switchMode(journal *conversation.Journal, next string) {
	if next == "" {
		fmt.Printf("(current mode: %s)\n", journal.Mode())
		return
	}
	// Unknown modes are accepted and coerced server-side, but warn here.
	if next != modes.ModeConversation && next != modes.ModeVenting && next != modes.ModeStructured {
		fmt.Printf("(unknown mode %q - the relay will treat it as %s)\n", next, modes.ModeConversation)
	}
	journal.SetMode(next)
	fmt.Printf("(mode set to %s)\n", journal.Mode())
}

func printLastReply(journal *conversation.Journal) {
	turns := journal.Turns()
	if len(turns) == 0 {
		return
	}
	last := turns[len(turns)-1]
	if last.Role != journalModels.RoleAssistant {
		return
	}
	if last.IsError {
		fmt.Printf("journal! %s\n", last.Content)
		return
	}
	fmt.Printf("journal> %s\n", last.Content)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
