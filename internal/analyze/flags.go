package analyze

import "github.com/urfave/cli/v2"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "YAML config file (input, stop_words, top_n, unique_limit, stem, format, output)",
	}
}

func stopWordFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "stopwords",
			Usage: "comma-separated stop words, replaces the configured list",
		},
		&cli.BoolFlag{
			Name:  "no-stopwords",
			Usage: "count every word, including stop words",
		},
	}
}

// Flags returns the flags understood by AnalyzeAction.
func Flags() []cli.Flag {
	flags := []cli.Flag{
		configFlag(),
		&cli.StringFlag{
			Name:    "input",
			Aliases: []string{"i"},
			Usage:   "text file, HTML file or http(s) URL to analyze (default \"moby.txt\")",
		},
		&cli.IntFlag{
			Name:    "top",
			Aliases: []string{"n"},
			Usage:   "number of most frequent words to report (default 5)",
		},
		&cli.IntFlag{
			Name:  "unique",
			Usage: "number of alphabetical unique words to report (default 50)",
		},
		&cli.BoolFlag{
			Name:  "stem",
			Usage: "reduce words to their English stem before counting",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "report format: text, json or yaml (default \"text\")",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "write the report to this file instead of stdout",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "only log errors",
		},
	}
	return append(flags, stopWordFlags()...)
}

// StopWordsFlags returns the flags understood by StopWordsAction.
func StopWordsFlags() []cli.Flag {
	return append([]cli.Flag{configFlag()}, stopWordFlags()...)
}
