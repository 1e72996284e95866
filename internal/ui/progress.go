package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"pasc/internal/buildpipeline"
)

// stageInfo is how a working stage is shown and how far it moves the bar.
type stageInfo struct {
	label  string
	weight float64
}

var stages = map[buildpipeline.Stage]stageInfo{
	buildpipeline.StageLoad:  {"loading", 0.1},
	buildpipeline.StageCache: {"cache", 0.2},
	buildpipeline.StageParse: {"parsing", 0.4},
	buildpipeline.StageSema:  {"checking", 0.8},
}

var (
	styleQueued  = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	styleWorking = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleClean   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
)

// fileRow is one checked file. finished is set by a done or error event.
type fileRow struct {
	path     string
	stage    buildpipeline.Stage
	status   buildpipeline.Status
	elapsed  time.Duration
	finished bool
}

func (r fileRow) label() string {
	switch r.status {
	case buildpipeline.StatusDone:
		return "ok"
	case buildpipeline.StatusError:
		return "errors"
	case buildpipeline.StatusWorking:
		if info, ok := stages[r.stage]; ok {
			return info.label
		}
	}
	return "queued"
}

func (r fileRow) style() lipgloss.Style {
	switch r.status {
	case buildpipeline.StatusDone:
		return styleClean
	case buildpipeline.StatusError:
		return styleFailed
	case buildpipeline.StatusWorking:
		return styleWorking
	}
	return styleQueued
}

func (r fileRow) weight() float64 {
	if r.finished {
		return 1
	}
	return stages[r.stage].weight
}

type checkModel struct {
	title   string
	events  <-chan buildpipeline.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	closed  bool
}

type eventMsg buildpipeline.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that shows one row per checked
// file. The model quits once events is closed.
func NewProgressModel(title string, files []string, events <-chan buildpipeline.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleWorking

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 76

	m := &checkModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     bar,
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	for i, file := range files {
		m.rows[i] = fileRow{path: file, status: buildpipeline.StatusQueued}
		m.byPath[file] = i
	}
	return m
}

func (m *checkModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *checkModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(buildpipeline.Event(msg)), m.next())
	case doneMsg:
		m.closed = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.closed {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = msg.Width - 4
		}
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *checkModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	finished, failed := m.counts()
	header := fmt.Sprintf("%s (%d/%d)", m.title, finished, len(m.rows))
	if m.closed {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(header))
	b.WriteString("\n\n")

	const labelWidth, timeWidth = 9, 10
	pathWidth := max(m.width-labelWidth-timeWidth-6, 20)
	for _, row := range m.rows {
		elapsed := ""
		if row.finished && row.elapsed > 0 {
			elapsed = fmt.Sprintf("%.1fms", float64(row.elapsed.Microseconds())/1000)
		}
		fmt.Fprintf(&b, "  %s %s %s\n",
			row.style().Render(fmt.Sprintf("%*s", labelWidth, row.label())),
			padRight(truncate(row.path, pathWidth), pathWidth),
			elapsed)
	}

	b.WriteString("\n")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1.0))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	if failed > 0 {
		b.WriteString(styleFailed.Render(fmt.Sprintf("%d of %d files have errors", failed, len(m.rows))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *checkModel) next() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *checkModel) counts() (finished, failed int) {
	for _, row := range m.rows {
		if row.finished {
			finished++
		}
		if row.status == buildpipeline.StatusError {
			failed++
		}
	}
	return finished, failed
}

// apply records ev on its row; events for unknown files are ignored.
func (m *checkModel) apply(ev buildpipeline.Event) tea.Cmd {
	idx, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[idx]
	if ev.Stage != "" {
		row.stage = ev.Stage
	}
	row.status = ev.Status
	if ev.Status == buildpipeline.StatusDone || ev.Status == buildpipeline.StatusError {
		row.finished = true
		row.elapsed = ev.Elapsed
	}
	total := 0.0
	for _, r := range m.rows {
		total += r.weight()
	}
	return m.bar.SetPercent(total / float64(len(m.rows)))
}

// truncate cuts value to width display cells, the "..." tail included.
func truncate(value string, width int) string {
	if width <= 0 || runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width, "...")
}

func padRight(value string, width int) string {
	return runewidth.FillRight(value, width)
}
