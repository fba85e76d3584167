package adapter_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	adaptermocks "unitgen.dev/pkg/unitgen/internal/adapter/mocks"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestSourceKittenAdapter_Structure(t *testing.T) {
	ctx := context.Background()
	process := adaptermocks.NewMockProcessAdapter(t)

	abs, err := filepath.Abs("Sources/Cart.swift")
	require.NoError(t, err)

	process.EXPECT().
		Stdout(mock.Anything, "", "sourcekitten", "structure", "--file", abs).
		Return([]byte(`{"key.substructure":[]}`), nil)

	structure := adapter.NewSourceKittenAdapter(process, "")

	out, err := structure.Structure(ctx, m.Path("Sources/Cart.swift"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"key.substructure":[]}`, string(out))
}

func TestSourceKittenAdapter_CustomBinaryAndFailure(t *testing.T) {
	ctx := context.Background()
	process := adaptermocks.NewMockProcessAdapter(t)

	process.EXPECT().
		Stdout(mock.Anything, "", "/opt/bin/sourcekitten", "structure", "--file", mock.Anything).
		Return(nil, errors.New("exit status 1"))

	structure := adapter.NewSourceKittenAdapter(process, "/opt/bin/sourcekitten")

	_, err := structure.Structure(ctx, m.Path("/tmp/Broken.swift"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/tmp/Broken.swift")
}
