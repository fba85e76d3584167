package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestLocalSourceFSAdapter_SourceFiles(t *testing.T) {
	t.Run("lexical order with nested files", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "b.swift"), "struct B {}\n")
		writeTestFile(t, filepath.Join(root, "a.swift"), "struct A {}\n")
		writeTestFile(t, filepath.Join(root, "Models", "c.swift"), "struct C {}\n")
		writeTestFile(t, filepath.Join(root, "README.md"), "# readme\n")

		files, err := adapter.SourceFiles(context.Background(), m.Path(root), ".swift")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "Models", "c.swift")),
			m.Path(filepath.Join(root, "a.swift")),
			m.Path(filepath.Join(root, "b.swift")),
		}, files)
	})

	t.Run("sorted by full path across directories", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a", "x.swift"), "struct X {}\n")
		writeTestFile(t, filepath.Join(root, "a.swift"), "struct A {}\n")
		writeTestFile(t, filepath.Join(root, "a-b.swift"), "struct AB {}\n")

		files, err := adapter.SourceFiles(context.Background(), m.Path(root), ".swift")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a-b.swift")),
			m.Path(filepath.Join(root, "a.swift")),
			m.Path(filepath.Join(root, "a", "x.swift")),
		}, files)
	})

	t.Run("hidden components are skipped", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "Visible.swift"), "class Visible {}\n")
		writeTestFile(t, filepath.Join(root, ".build", "checkouts", "Dep.swift"), "class Dep {}\n")
		writeTestFile(t, filepath.Join(root, "Sources", ".hidden", "Secret.swift"), "class Secret {}\n")
		writeTestFile(t, filepath.Join(root, "Sources", ".Draft.swift"), "class Draft {}\n")

		files, err := adapter.SourceFiles(context.Background(), m.Path(root), ".swift")
		require.NoError(t, err)

		assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "Visible.swift"))}, files)
	})

	t.Run("hidden root itself is walked", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := filepath.Join(t.TempDir(), ".workspace")
		writeTestFile(t, filepath.Join(root, "Inside.swift"), "class Inside {}\n")

		files, err := adapter.SourceFiles(context.Background(), m.Path(root), ".swift")
		require.NoError(t, err)
		assert.Len(t, files, 1)
	})

	t.Run("missing root", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		_, err := adapter.SourceFiles(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")), ".swift")
		if err == nil {
			t.Fatalf("SourceFiles() expected error for missing root")
		}
	})

	t.Run("root is a file", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		file := filepath.Join(t.TempDir(), "single.swift")
		writeTestFile(t, file, "class Single {}\n")

		_, err := adapter.SourceFiles(context.Background(), m.Path(file), ".swift")
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		adapter := NewLocalSourceFSAdapter()

		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.swift"), "struct A {}\n")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := adapter.SourceFiles(ctx, m.Path(root), ".swift")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestIsHidden(t *testing.T) {
	tests := []struct {
		rel  string
		want bool
	}{
		{".", false},
		{"Sources/App.swift", false},
		{".build/App.swift", true},
		{"Sources/.git/config", true},
		{"Sources/.App.swift", true},
		{"Sources/App.v2.swift", false},
	}

	for _, tt := range tests {
		t.Run(tt.rel, func(t *testing.T) {
			assert.Equal(t, tt.want, isHidden(filepath.FromSlash(tt.rel)))
		})
	}
}

func TestLocalSourceFSAdapter_WriteAndRead(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	target := adapter.JoinPath(t.TempDir(), "Tests", "Generated", "FooTests.swift")

	require.NoError(t, adapter.WriteFile(ctx, target, []byte("final class FooTests {}\n"), 0o644))

	content, err := adapter.ReadFile(ctx, target)
	require.NoError(t, err)
	assert.Equal(t, "final class FooTests {}\n", string(content))

	info, err := adapter.FileInfo(ctx, target)
	require.NoError(t, err)
	assert.False(t, info.IsDir())
}

func TestLocalSourceFSAdapter_TempDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()
	ctx := context.Background()

	dir, err := adapter.CreateTempDir(ctx, "unitgen-test-*")
	require.NoError(t, err)

	writeTestFile(t, filepath.Join(string(dir), "template.stencil"), "{{ type.name }}")

	require.NoError(t, adapter.RemoveAll(ctx, dir))

	_, err = os.Stat(string(dir))
	assert.True(t, os.IsNotExist(err))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
