package main

import (
	"fmt"
	"os"

	"github.com/Complexivist-Ran/notion-entropy/internal/check"
	"github.com/Complexivist-Ran/notion-entropy/internal/databases"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "notion-entropy",
		Usage: "audit a Notion workspace for content decay",
		Commands: []*cli.Command{
			{
				Name:   "check",
				Usage:  "run the entropy audit and write a markdown report",
				Action: check.CheckAction,
				Flags: append(commonFlags(),
					&cli.StringFlag{
						Name:  "databases",
						Usage: "comma-separated database ids to audit (default: all accessible)",
					},
					&cli.IntFlag{
						Name:  "threshold-days",
						Usage: "staleness threshold in days for the decay warning",
						Value: 30,
					},
					&cli.Float64Flag{
						Name:  "warning-threshold",
						Usage: "decay rate (percent) above which the report warns",
						Value: 40.0,
					},
					&cli.Float64Flag{
						Name:  "sample-rate",
						Usage: "fraction of pages sampled for mention density",
						Value: 0.1,
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "number of concurrent fetch workers",
						Value: 4,
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory the report is written to",
						Value: "report",
					},
					&cli.StringFlag{
						Name:  "max-age",
						Usage: "maximum age of cached API responses (e.g. 1h, 30m)",
						Value: "1h",
					},
					&cli.BoolFlag{
						Name:  "no-cache",
						Usage: "bypass the response cache and always hit the API",
					},
					&cli.StringFlag{
						Name:  "cache-path",
						Usage: "path of the response cache database",
						Value: "notion-entropy-cache.db",
					},
				),
			},
			{
				Name:   "databases",
				Usage:  "list databases the integration can access",
				Action: databases.ListAction,
				Flags:  commonFlags(),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "token",
			Usage:   "Notion integration token (falls back to NOTION_TOKEN)",
			EnvVars: []string{"NOTION_TOKEN"},
		},
		&cli.StringFlag{
			Name:  "config",
			Usage: "path to the YAML config file",
			Value: "config.yaml",
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "only log errors",
		},
	}
}
