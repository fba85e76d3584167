package adapter

import (
	"bufio"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestLocalProcessAdapter_Run(t *testing.T) {
	requireShell(t)

	adapter := NewLocalProcessAdapter()

	output, err := adapter.Run(context.Background(), "", "sh", "-c", "echo out; echo err 1>&2")
	require.NoError(t, err)
	assert.Contains(t, output, "out\n")
	assert.Contains(t, output, "err\n")
}

func TestLocalProcessAdapter_RunUsesDir(t *testing.T) {
	requireShell(t)

	adapter := NewLocalProcessAdapter()
	dir := t.TempDir()

	output, err := adapter.Run(context.Background(), dir, "sh", "-c", "pwd")
	require.NoError(t, err)
	assert.Contains(t, output, dir)
}

func TestLocalProcessAdapter_Stdout(t *testing.T) {
	requireShell(t)

	adapter := NewLocalProcessAdapter()

	t.Run("stderr is not mixed in", func(t *testing.T) {
		out, err := adapter.Stdout(context.Background(), "", "sh", "-c", `echo '{"key.substructure":[]}'; echo noise 1>&2`)
		require.NoError(t, err)
		assert.Equal(t, "{\"key.substructure\":[]}\n", string(out))
	})

	t.Run("failure carries stderr", func(t *testing.T) {
		_, err := adapter.Stdout(context.Background(), "", "sh", "-c", "echo broken file 1>&2; exit 3")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken file")
	})
}

func TestLocalProcessAdapter_MissingTool(t *testing.T) {
	adapter := NewLocalProcessAdapter()

	_, err := adapter.Run(context.Background(), "", "unitgen-definitely-missing-tool")
	require.ErrorIs(t, err, ErrToolNotFound)

	_, err = adapter.LookPath("unitgen-definitely-missing-tool")
	require.ErrorIs(t, err, ErrToolNotFound)
}

func TestDrain_OverlongLineConsumesReader(t *testing.T) {
	reader := strings.NewReader("first\n" + strings.Repeat("x", maxOutputLine+1) + "\nlast\n")

	var lines []string

	err := drain(reader, "tool", "stdout", func(line string) { lines = append(lines, line) })
	require.ErrorIs(t, err, bufio.ErrTooLong)

	assert.Equal(t, []string{"first"}, lines)
	assert.Zero(t, reader.Len(), "reader must be drained after a scan error")
}
