package main

import (
	"io"
	"time"

	"github.com/alecthomas/kong"
)

type CLI struct {
	URL      string        `help:"Base URL of the mentor server." default:"http://localhost:8080" env:"MENTOR_URL"`
	Timeout  time.Duration `help:"Give up on a reply after this long." default:"60s" env:"MENTOR_TIMEOUT"`
	LogFile  string        `help:"Write logs to this file (rotated)." default:"mentor-chat.log" env:"MENTOR_LOG_FILE"`
	LogLevel string        `help:"Log level: debug, info, warn, error." default:"info" enum:"debug,info,warn,error" env:"LOG_LEVEL"`
}

// parseArgs parses args into a CLI. It takes explicit arguments and writers
// so tests can drive it.
func parseArgs(args []string, stdout, stderr io.Writer, exit func(int)) (*CLI, error) {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("mentor-chat"),
		kong.Description("Terminal chat with the AI study mentor."),
		kong.Writers(stdout, stderr),
		kong.Exit(exit),
	)
	if err != nil {
		return nil, err
	}
	if _, err := parser.Parse(args); err != nil {
		return nil, err
	}
	return &cli, nil
}
