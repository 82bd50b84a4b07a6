package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nata87/goit-algo2-hw-06/internal/count"
	"github.com/nata87/goit-algo2-hw-06/internal/history"
	"github.com/nata87/goit-algo2-hw-06/models"
)

func main() {
	app := &cli.App{
		Name:  "wordfreq",
		Usage: "count word frequencies in a text using a concurrent map/reduce pipeline",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "source",
				Usage: "URL or file path of the text to analyze",
				Value: models.DefaultSource,
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "worker pool size for the map and reduce phases",
				Value: models.DefaultWorkers,
			},
			&cli.IntFlag{
				Name:  "top",
				Usage: "how many of the most frequent words to report",
				Value: models.DefaultTopN,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout for URL sources",
				Value: models.DefaultTimeout,
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "optional YAML config file",
				Value: "config.yaml",
			},
			&cli.StringFlag{
				Name:  "chart-out",
				Usage: "path of the bar chart HTML file",
				Value: models.DefaultChartPath,
			},
			&cli.BoolFlag{
				Name:  "no-chart",
				Usage: "skip chart rendering",
			},
			&cli.BoolFlag{
				Name:  "force-fetch",
				Usage: "bypass the text cache and refetch the source",
			},
			&cli.BoolFlag{
				Name:  "quiet",
				Usage: "only log errors",
			},
		},
		Action: count.Action,
		Commands: []*cli.Command{
			{
				Name:  "history",
				Usage: "list past word-count runs",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to show",
						Value: 20,
					},
				},
				Action: history.Action,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
