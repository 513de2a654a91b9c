package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/infra/jsonstore"
	"github.com/mdtask/mdtask/internal/infra/yamlstore"
	"github.com/mdtask/mdtask/internal/testutil"
)

func TestNew_DefaultsToJSONLStore(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := New(t.TempDir())
	require.NoError(t, err)

	store := c.StoreFor("")
	assert.IsType(t, &jsonstore.Store{}, store)
	assert.Equal(t, "tasks.jsonl", store.Path())
}

func TestNew_YAMLBackendFromConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	workDir := t.TempDir()
	cfg := `
[store]
path = "tasks.yaml"
format = "yaml"
`
	require.NoError(t, os.WriteFile(filepath.Join(workDir, ".mdtask.toml"), []byte(cfg), 0o600))

	c, err := New(workDir)
	require.NoError(t, err)

	store := c.StoreFor("")
	assert.IsType(t, &yamlstore.Store{}, store)
	assert.Equal(t, "tasks.yaml", store.Path())
}

func TestStoreFor_ExplicitPathWins(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	c, err := New(t.TempDir())
	require.NoError(t, err)

	store := c.StoreFor("elsewhere.jsonl")
	assert.Equal(t, "elsewhere.jsonl", store.Path())
}

func TestNewWithDeps_InjectsStore(t *testing.T) {
	mem := testutil.NewMemStore()
	c := NewWithDeps(nil, testutil.ClockAt(2024, time.August, 1), nil,
		func(string) domain.CollectionStore { return mem })

	assert.Equal(t, 4, c.Indent())
	assert.Same(t, mem, c.StoreFor("anything").(*testutil.MemStore))

	uc := c.ApplyDocumentUseCase("")
	assert.NotNil(t, uc)
}
