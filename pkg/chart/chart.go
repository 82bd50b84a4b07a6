// Package chart renders the ranked word list as a bar chart HTML file.
package chart

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/nata87/goit-algo2-hw-06/pkg/mapreduce"
)

// Render writes a descending bar chart of the entries to path. An empty
// entry list is not an error: nothing is written and rendered is false so
// the caller can report "no data" instead.
func Render(path, title string, entries []mapreduce.Entry) (rendered bool, err error) {
	if len(entries) == 0 {
		return false, nil
	}

	words := make([]string, len(entries))
	values := make([]opts.BarData, len(entries))
	for i, e := range entries {
		words[i] = e.Word
		values[i] = opts.BarData{Value: e.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      "Word",
			AxisLabel: &opts.AxisLabel{Rotate: 45},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(words).AddSeries("frequency", values)

	f, err := os.Create(path)
	if err != nil {
		return false, fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := bar.Render(f); err != nil {
		return false, fmt.Errorf("failed to render chart: %w", err)
	}
	return true, nil
}
