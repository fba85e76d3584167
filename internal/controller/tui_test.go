package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestStagesFor(t *testing.T) {
	generate := stagesFor(ModeGenerate)
	if len(generate) != 6 {
		t.Fatalf("generate mode stages = %d, want 6", len(generate))
	}

	if generate[0].status != stageRunning {
		t.Errorf("first stage should be running, got %v", generate[0].status)
	}

	inspect := stagesFor(ModeInspect)
	if len(inspect) != 3 {
		t.Fatalf("inspect mode stages = %d, want 3", len(inspect))
	}

	if inspect[2].title != "Resolve existing doubles" {
		t.Errorf("last inspect stage = %q", inspect[2].title)
	}
}

func TestAdvanceStages(t *testing.T) {
	stages := stagesFor(ModeGenerate)

	stages = advanceStages(stages, stageMsg{index: stageLocate, status: stageDone, detail: "class Cart"})
	if stages[stageLocate].status != stageDone || stages[stageLocate].detail != "class Cart" {
		t.Errorf("locate stage = %+v", stages[stageLocate])
	}

	if stages[stageInitializer].status != stageRunning {
		t.Errorf("next stage should be running, got %v", stages[stageInitializer].status)
	}

	stages = advanceStages(stages, stageMsg{index: stageScaffold, status: stageDone})
	for i := stageInitializer; i < stageScaffold; i++ {
		if stages[i].status != stageSkipped {
			t.Errorf("stage %d = %v, want skipped", i, stages[i].status)
		}
	}

	unchanged := advanceStages(stages, stageMsg{index: 42, status: stageFailed})
	if unchanged[stageScaffold].status != stageDone {
		t.Error("out of range messages must be ignored")
	}
}

func TestAdvanceStages_FailureStopsProgress(t *testing.T) {
	stages := advanceStages(stagesFor(ModeInspect), stageMsg{index: stageLocate, status: stageFailed})

	if stages[stageInitializer].status != stagePending {
		t.Errorf("stage after a failure should stay pending, got %v", stages[stageInitializer].status)
	}
}

func TestProgressModel(t *testing.T) {
	var model tea.Model = newProgressModel(stagesFor(ModeInspect))

	model, _ = model.Update(titleMsg("unitgen Cart"))
	model, _ = model.Update(stageMsg{index: stageLocate, status: stageDone, detail: "class Cart in Cart.swift"})

	view := model.View()
	for _, want := range []string{"unitgen Cart", "Locate type", "class Cart in Cart.swift", "Extract initializer"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q, got: %s", want, view)
		}
	}

	model, cmd := model.Update(closeMsg{})
	if cmd == nil {
		t.Fatal("closing should quit the program")
	}

	for i, s := range model.(progressModel).stages {
		if s.status == stagePending || s.status == stageRunning {
			t.Errorf("stage %d still unfinished after close", i)
		}
	}
}

func TestTUI_BuffersOutputUntilClose(t *testing.T) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	tui := NewTUI(cmd)
	ctx := context.Background()

	report := m.Report{TypeName: "Cart", Kind: "class"}
	if err := tui.DisplayReport(ctx, report, FormatJSON); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	file := m.GeneratedFile{Path: "CartTests.swift", Content: []byte("final class CartTests {}\n")}
	if err := tui.DisplayScaffold(ctx, file, "", true); err != nil {
		t.Fatalf("DisplayScaffold() error = %v", err)
	}

	if buf.Len() != 0 {
		t.Fatalf("output should be buffered until Close, got: %s", buf.String())
	}

	tui.Close(ctx)

	out := buf.String()
	if !strings.Contains(out, `"type": "Cart"`) || !strings.Contains(out, "final class CartTests {}") {
		t.Errorf("Close() flushed %q", out)
	}
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("NewUI(tty) should return the TUI")
	}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("NewUI(!tty) should return the SimpleUI")
	}

	if IsTTY(nil) {
		t.Error("IsTTY(nil) should be false")
	}
}
