package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/user/rm_plotter_go/internal/analysis"
	"github.com/user/rm_plotter_go/internal/parser"
	"github.com/user/rm_plotter_go/internal/report"
)

const (
	defaultInputPath  = "simulation_results.json"
	defaultOutputPath = "reed_muller_results.png"
)

// App runs the load, group, render pipeline once.
type App struct {
	InputPath  string
	OutputPath string
	Chart      report.ChartConfig
	Display    report.Displayer
	Out        io.Writer // user-facing messages
}

// NewApp creates an App with the fixed input and output paths.
func NewApp(out io.Writer) *App {
	return &App{
		InputPath:  defaultInputPath,
		OutputPath: defaultOutputPath,
		Chart:      report.DefaultChartConfig(),
		Display:    report.SystemViewer{},
		Out:        out,
	}
}

func (a *App) sendStatus(message string) {
	log.Debug(message)
}

// Run loads the results, saves the chart and then displays it.
// A missing input file is reported to Out as a single line and returned
// without anything being written.
func (a *App) Run() error {
	a.sendStatus(fmt.Sprintf("Loading: %s", a.InputPath))
	data, err := parser.LoadResults(a.InputPath)
	if err != nil {
		var missing *parser.MissingInputError
		if errors.As(err, &missing) {
			fmt.Fprintf(a.Out, "Error: %v\n", missing)
		}
		return err
	}

	collection := analysis.GroupByOrder(data)
	a.sendStatus(fmt.Sprintf("Grouped %d records into %d series.", len(data), len(collection.Series)))

	chart, err := report.BuildChart(collection, a.Chart)
	if err != nil {
		return errors.Wrap(err, "build chart")
	}
	a.sendStatus(fmt.Sprintf("Legend placed %s.", chart.Corner))

	if err := chart.SavePNG(a.OutputPath); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Chart saved as %q\n", a.OutputPath)

	if a.Display != nil {
		if err := a.Display.Display(a.OutputPath); err != nil {
			log.Warnf("Could not display chart: %v", err)
		}
	}
	return nil
}
