package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/fang"

	"github.com/doeshing/cmdx/internal/infrastructure/cli"
	"github.com/doeshing/cmdx/internal/version"
)

func main() {
	ctx := context.Background()
	opts := cli.Options{
		Verbose:    isVerbose(os.Args[1:]),
		ConfigPath: os.Getenv("CMDX_CONFIG"),
	}

	root, container, err := cli.NewRootCmd(ctx, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	err = fang.Execute(ctx, root,
		fang.WithVersion(version.Version),
		fang.WithNotifySignal(os.Interrupt),
	)
	if closeErr := container.Close(); closeErr != nil {
		container.Logger.Warn("history close failed", map[string]interface{}{"error": closeErr.Error()})
	}
	if err != nil {
		os.Exit(1)
	}
}

// isVerbose is decided before cobra parses flags because the logger is
// built with the container.
func isVerbose(args []string) bool {
	env := os.Getenv("CMDX_DEBUG")
	return strings.EqualFold(env, "1") || strings.EqualFold(env, "true") || slices.Contains(args, "--debug")
}
