// Package history implements the command that lists past word-count runs.
package history

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/nata87/goit-algo2-hw-06/pkg/db"
)

func Action(c *cli.Context) error {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	database, err := db.Open()
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return cli.Exit("Error: history database unavailable", 2)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		logger.Error("failed to list runs", "error", err)
		return cli.Exit("Error: could not read run history", 2)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		fmt.Printf("#%d  %s  %s\n", run.ID, run.CreatedAt.Format("2006-01-02 15:04:05"), run.Source)
		fmt.Printf("    tokens=%d distinct=%d workers=%d language=%s duration=%s\n",
			run.TokenCount, run.DistinctWords, run.Workers, run.Language, run.Duration)
		if len(run.TopWords) > 0 {
			fmt.Printf("    top: %s\n", strings.Join(run.TopWords, ", "))
		}
	}
	return nil
}
