package main

import (
	"fmt"
	"os"
	"strings"
)

// progressView is the --ui setting of pasc check.
type progressView uint8

const (
	progressAuto progressView = iota
	progressOn
	progressOff
)

var progressViewNames = map[string]progressView{
	"":     progressAuto,
	"auto": progressAuto,
	"on":   progressOn,
	"off":  progressOff,
}

func parseProgressView(value string) (progressView, error) {
	v, ok := progressViewNames[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return progressAuto, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
	return v, nil
}

// enabled reports whether the progress view runs for files checked with the
// given output format. JSON reports never share stdout with it; auto wants
// more than one file and a terminal on out.
func (v progressView) enabled(files int, format string, out *os.File) bool {
	if format == "json" || v == progressOff {
		return false
	}
	if v == progressOn {
		return true
	}
	return files > 1 && out != nil && isTerminal(out)
}
