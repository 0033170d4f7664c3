package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/localstack/dockhand/internal/output"
	"github.com/localstack/dockhand/internal/ui/components"
	"github.com/localstack/dockhand/internal/ui/styles"
)

const maxLines = 200

const spinnerMinDuration = 250 * time.Millisecond

type runDoneMsg struct{}

type runErrMsg struct {
	err error
}

type styledLine struct {
	text      string
	secondary bool
	warning   bool
}

type App struct {
	header  components.Header
	spinner components.Spinner
	lines   []styledLine
	// progress maps a pull layer ID to the absolute index of its line, so
	// repeated layer updates rewrite one line instead of flooding the log.
	progress map[string]int
	trimmed  int
	width    int
	cancel   func()
	err      error
}

func NewApp(version string, cancel func()) App {
	return App{
		header:   components.NewHeader(version),
		spinner:  components.NewSpinner(),
		lines:    make([]styledLine, 0, maxLines),
		progress: make(map[string]int),
		cancel:   cancel,
	}
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			if a.cancel != nil {
				a.cancel()
			}
			a.err = context.Canceled
			return a, tea.Quit
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
	case runDoneMsg:
		return a, tea.Quit
	case runErrMsg:
		a.err = msg.err
		return a, tea.Quit
	case output.WarningEvent:
		line, _ := output.FormatEventLine(msg)
		a.appendLine(styledLine{text: line, warning: true})
	case output.ResourceStatusEvent:
		return a.updateStatus(msg)
	case output.ProgressEvent:
		a.updateProgress(msg)
	case components.SpinnerMinDurationElapsedMsg:
		a.spinner = a.spinner.HandleMinDurationElapsed()
	default:
		if line, ok := output.FormatEventLine(msg); ok {
			a.appendLine(styledLine{text: line})
		} else {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
	}

	return a, nil
}

func (a App) updateStatus(msg output.ResourceStatusEvent) (tea.Model, tea.Cmd) {
	line, _ := output.FormatEventLine(msg)
	switch msg.Phase {
	case "pulling", "creating", "removing":
		wasVisible := a.spinner.Visible()
		a.spinner = a.spinner.Start(line, spinnerMinDuration)
		if !wasVisible {
			return a, a.spinner.Tick()
		}
		return a, nil
	default:
		a.appendLine(styledLine{text: line})
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Stop()
		return a, cmd
	}
}

// updateProgress rewrites the existing line for a layer when one exists,
// otherwise appends a new one.
func (a *App) updateProgress(msg output.ProgressEvent) {
	line, ok := output.FormatEventLine(msg)
	if !ok {
		return
	}
	if abs, seen := a.progress[msg.LayerID]; seen && msg.LayerID != "" {
		if idx := abs - a.trimmed; idx >= 0 && idx < len(a.lines) {
			a.lines[idx] = styledLine{text: line, secondary: true}
			return
		}
	}
	a.appendLine(styledLine{text: line, secondary: true})
	if msg.LayerID != "" {
		a.progress[msg.LayerID] = a.trimmed + len(a.lines) - 1
	}
}

func (a *App) appendLine(line styledLine) {
	a.lines = append(a.lines, line)
	if len(a.lines) > maxLines {
		drop := len(a.lines) - maxLines
		a.lines = a.lines[drop:]
		a.trimmed += drop
	}
}

const lineIndent = 2

func hardWrap(s string, maxWidth int) string {
	rs := []rune(s)
	if maxWidth <= 0 || len(rs) <= maxWidth {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(rs); i += maxWidth {
		if i > 0 {
			sb.WriteByte('\n')
		}
		end := i + maxWidth
		if end > len(rs) {
			end = len(rs)
		}
		sb.WriteString(string(rs[i:end]))
	}
	return sb.String()
}

func (a App) View() string {
	var sb strings.Builder
	sb.WriteString(a.header.View())
	sb.WriteString("\n")
	contentWidth := a.width - lineIndent
	for _, line := range a.lines {
		sb.WriteString("  ")
		text := hardWrap(line.text, contentWidth)
		switch {
		case line.warning:
			sb.WriteString(styles.Warning.Render(text))
		case line.secondary:
			sb.WriteString(styles.SecondaryMessage.Render(text))
		default:
			sb.WriteString(styles.Message.Render(text))
		}
		sb.WriteString("\n")
	}
	if spinnerView := a.spinner.View(); spinnerView != "" {
		sb.WriteString("  ")
		sb.WriteString(spinnerView)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (a App) Err() error {
	return a.err
}
