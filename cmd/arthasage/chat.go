package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthasage/arthasage/internal/cli"
	"github.com/arthasage/arthasage/internal/service"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation",
		Long: `Open an interactive session with the assistant. History is kept
across turns, so references like "delete it" work. Type "exit" or
press Ctrl-D to leave.`,
		RunE: runChat,
	}
}

func runChat(cmd *cobra.Command, _ []string) error {
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

	fmt.Println(cli.FormatTitle("arthasage"))
	fmt.Println(cli.StyleSubtle("Tell me about your expenses. Type \"exit\" to leave."))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(cli.FormatPrompt("you"))
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}

		resp := a.Chat(cmd.Context(), service.ChatRequest{UserID: userID, Message: line})
		if !resp.Success {
			fmt.Println(cli.FormatError(resp.Response))
			continue
		}
		fmt.Println(cli.RenderReply(resp.Response))
		for _, s := range resp.Suggestions {
			fmt.Println(cli.StyleSubtle(s))
		}

		if cmd.Context().Err() != nil {
			break
		}
	}

	fmt.Println(cli.StyleSubtle("Namaste. Spend wisely."))
	return scanner.Err()
}
