package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthasage/arthasage/internal/cli"
	"github.com/arthasage/arthasage/internal/service"
)

func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message>",
		Short: "Ask the assistant a single question",
		Long: `Send one message to the assistant and print the reply.

Examples:
  arthasage ask "add ₹150 for lunch with Sarah"
  arthasage ask "show my expenses this month"
  arthasage ask "how much did I spend on food last week"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAsk,
	}
}

func runAsk(cmd *cobra.Command, args []string) error {
	a, store, err := openAssistant()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	userID, err := currentUserID()
	if err != nil {
		return err
	}

	resp := a.Chat(cmd.Context(), service.ChatRequest{
		UserID:  userID,
		Message: strings.Join(args, " "),
	})

	if !resp.Success {
		fmt.Println(cli.FormatError(resp.Response))
		return nil
	}

	fmt.Println(cli.RenderReply(resp.Response))
	for _, s := range resp.Suggestions {
		fmt.Println(cli.StyleSubtle(s))
	}
	return nil
}
