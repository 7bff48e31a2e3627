package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dtnitsch/textstats/internal/analyze"
)

func newApp() *cli.App {
	return &cli.App{
		Name:  "textstats",
		Usage: "word frequency statistics for a text document",
		UsageText: `textstats [options] [FILE|URL]
   textstats analyze --input moby.txt --top 10 --format json
   textstats stopwords`,
		// Running without a subcommand analyzes, same as "analyze".
		Flags:  analyze.Flags(),
		Action: analyze.AnalyzeAction,
		Commands: []*cli.Command{
			{
				Name:      "analyze",
				Usage:     "count words and report totals, top words and unique words",
				ArgsUsage: "[FILE|URL]",
				Flags:     analyze.Flags(),
				Action:    analyze.AnalyzeAction,
			},
			{
				Name:   "stopwords",
				Usage:  "print the effective stop-word list",
				Flags:  analyze.StopWordsFlags(),
				Action: analyze.StopWordsAction,
			},
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
