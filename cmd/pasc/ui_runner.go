package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"pasc/internal/buildpipeline"
	"pasc/internal/driver"
	"pasc/internal/source"
	"pasc/internal/ui"
)

type checkOutcome struct {
	fs      *source.FileSet
	results []*driver.CheckResult
	err     error
}

func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.Options) (*source.FileSet, []*driver.CheckResult, error) {
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Sink = buildpipeline.ChannelSink{Ch: events}
		fs, results, err := driver.CheckFiles(ctx, files, optsCopy)
		outcomeCh <- checkOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// Ctrl-C leaves the checker running; keep it from blocking on a full channel.
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
