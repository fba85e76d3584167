package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

type stageStatus int

const (
	stagePending stageStatus = iota
	stageRunning
	stageDone
	stageWarning
	stageFailed
	stageSkipped
)

const (
	stageLocate = iota
	stageInitializer
	stageExistingDoubles
	stageGenerateDoubles
	stageGeneratedDoubles
	stageScaffold
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	doneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

type stage struct {
	title  string
	status stageStatus
	detail string
}

type titleMsg string

type stageMsg struct {
	index  int
	status stageStatus
	detail string
}

type closeMsg struct{}

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd     *cobra.Command
	program *tea.Program
	done    chan struct{}

	mu      sync.Mutex
	pending bytes.Buffer
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start launches the progress program in the background.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	t.program = tea.NewProgram(
		newProgressModel(stagesFor(config.mode)),
		tea.WithContext(ctx),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithInput(nil),
	)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the program and flushes buffered output.
func (t *TUI) Close(_ context.Context) {
	if t.program != nil {
		t.program.Send(closeMsg{})
		<-t.done
		t.program = nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = t.pending.WriteTo(t.cmd.OutOrStdout())
}

// DisplayRequest shows the requested type as the progress title.
func (t *TUI) DisplayRequest(_ context.Context, request Request) {
	t.send(titleMsg(fmt.Sprintf("unitgen %s (root %s)", request.TypeName, request.Root)))
}

// DisplayNotFound marks the lookup as failed.
func (t *TUI) DisplayNotFound(_ context.Context, typeName string) {
	t.send(stageMsg{index: stageLocate, status: stageFailed, detail: fmt.Sprintf("%s not found", typeName)})
}

// DisplayMatch marks the lookup as done.
func (t *TUI) DisplayMatch(_ context.Context, match m.Match) {
	detail := fmt.Sprintf("%s %s", match.Primary.Kind, match.TypeName)
	if match.File != nil {
		detail += " in " + string(match.File.Path)
	}

	t.send(stageMsg{index: stageLocate, status: stageDone, detail: detail})
}

// DisplayInitializer marks initializer extraction as done.
func (t *TUI) DisplayInitializer(_ context.Context, source m.InitializerSource, params m.Parameters) {
	t.send(stageMsg{index: stageInitializer, status: stageDone, detail: source.String() + " " + params.String()})
}

// DisplayDoubles marks a resolver pass as done.
func (t *TUI) DisplayDoubles(_ context.Context, pass m.ResolverPass, params m.Parameters) {
	index := stageExistingDoubles
	if pass == m.PassGenerated {
		index = stageGeneratedDoubles
	}

	t.send(stageMsg{
		index:  index,
		status: stageDone,
		detail: fmt.Sprintf("%d of %d resolved", len(params.Resolved()), len(params)),
	})
}

// DisplayDoubleGeneration marks double generation as done or degraded.
func (t *TUI) DisplayDoubleGeneration(_ context.Context, types []string, _ string, err error) {
	msg := stageMsg{index: stageGenerateDoubles, status: stageDone, detail: strings.Join(types, ", ")}
	if err != nil {
		msg.status = stageWarning
		msg.detail = err.Error()
	}

	t.send(msg)
}

// DisplayScaffold marks the scaffold as written and buffers dry-run output.
func (t *TUI) DisplayScaffold(ctx context.Context, file m.GeneratedFile, diff string, dryRun bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.send(stageMsg{index: stageScaffold, status: stageDone, detail: string(file.Path)})

	if !dryRun {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return writeScaffold(&t.pending, file, diff, dryRun)
}

// DisplayReport buffers the report until the progress view closes.
func (t *TUI) DisplayReport(ctx context.Context, report m.Report, format ReportFormat) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return renderReport(&t.pending, report, format)
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

func stagesFor(mode StartMode) []stage {
	titles := []string{
		"Locate type",
		"Extract initializer",
		"Resolve existing doubles",
		"Generate doubles",
		"Resolve generated doubles",
		"Write scaffold",
	}
	if mode == ModeInspect {
		titles = titles[:stageGenerateDoubles]
	}

	stages := make([]stage, len(titles))
	for i, title := range titles {
		stages[i] = stage{title: title}
	}

	stages[0].status = stageRunning

	return stages
}

type progressModel struct {
	title   string
	stages  []stage
	spinner spinner.Model
}

func newProgressModel(stages []stage) progressModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return progressModel{stages: stages, spinner: s}
}

func (pm progressModel) Init() tea.Cmd {
	return pm.spinner.Tick
}

func (pm progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		pm.title = string(msg)
		return pm, nil
	case stageMsg:
		pm.stages = advanceStages(pm.stages, msg)
		return pm, nil
	case closeMsg:
		for i := range pm.stages {
			if pm.stages[i].status == stagePending || pm.stages[i].status == stageRunning {
				pm.stages[i].status = stageSkipped
			}
		}

		return pm, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return pm, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		pm.spinner, cmd = pm.spinner.Update(msg)

		return pm, cmd
	}

	return pm, nil
}

// advanceStages applies msg and marks earlier unfinished stages as skipped.
func advanceStages(stages []stage, msg stageMsg) []stage {
	if msg.index < 0 || msg.index >= len(stages) {
		return stages
	}

	updated := make([]stage, len(stages))
	copy(updated, stages)

	for i := 0; i < msg.index; i++ {
		if updated[i].status == stagePending || updated[i].status == stageRunning {
			updated[i].status = stageSkipped
		}
	}

	updated[msg.index].status = msg.status
	updated[msg.index].detail = msg.detail

	next := msg.index + 1
	if msg.status != stageFailed && next < len(updated) && updated[next].status == stagePending {
		updated[next].status = stageRunning
	}

	return updated
}

func (pm progressModel) View() string {
	var b strings.Builder

	if pm.title != "" {
		b.WriteString(titleStyle.Render(pm.title))
		b.WriteString("\n\n")
	}

	for _, s := range pm.stages {
		b.WriteString(pm.stageLine(s))
		b.WriteString("\n")
	}

	return b.String()
}

func (pm progressModel) stageLine(s stage) string {
	var icon string

	switch s.status {
	case stageRunning:
		icon = pm.spinner.View()
	case stageDone:
		icon = doneStyle.Render("✓")
	case stageWarning:
		icon = warningStyle.Render("!")
	case stageFailed:
		icon = failedStyle.Render("✗")
	case stageSkipped:
		icon = faintStyle.Render("-")
	default:
		icon = faintStyle.Render("·")
	}

	line := fmt.Sprintf("  %s %s", icon, s.title)
	if s.detail != "" {
		line += " " + faintStyle.Render(s.detail)
	}

	return line
}
