package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"study-mentor/internal/chatclient"
	"study-mentor/internal/logging"
	"study-mentor/internal/tui"
)

func main() {
	cli, err := parseArgs(os.Args[1:], os.Stdout, os.Stderr, os.Exit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cli.LogLevel, cli.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := chatclient.NewClient(cli.URL, cli.Timeout)
	model := tui.New(ctx, client, logger)

	logger.Info("starting mentor chat", zap.String("url", cli.URL), zap.Duration("timeout", cli.Timeout))

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		logger.Error("chat UI exited with error", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if m, ok := final.(tui.Model); ok {
		logger.Info("chat session ended", zap.Int("messages", len(m.Session().History())))
	}
}
