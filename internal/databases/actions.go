// Package databases implements the `databases` command: list every database
// the integration token can reach.
package databases

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Complexivist-Ran/notion-entropy/internal/ui"
	"github.com/Complexivist-Ran/notion-entropy/pkg/notion"
	"github.com/urfave/cli/v2"
)

func ListAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	client, err := notion.NewClient(c.String("token"), notion.WithLogger(logger))
	if err != nil {
		logger.Error("failed to initialize client", "error", err)
		os.Exit(2)
	}

	found, err := client.ListDatabases(c.Context)
	if err != nil {
		logger.Error("failed to list databases", "error", err)
		os.Exit(1)
	}

	styles := ui.DefaultStyles()
	if len(found) == 0 {
		fmt.Println(styles.Muted.Render("No databases are shared with this integration."))
		return nil
	}

	fmt.Println(styles.Title.Render(fmt.Sprintf("%d accessible database(s)", len(found))))
	for _, db := range found {
		fmt.Printf("%s\n  %s %s\n",
			styles.Value.Render(db.Title()),
			styles.Label.Render("id:"),
			db.ID)
	}
	return nil
}
