package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdtask/mdtask/internal/domain"
	"github.com/mdtask/mdtask/internal/testutil"
)

func storedTask(name string, id int64, order int64) domain.Task {
	return domain.Task{
		Name:         name,
		Status:       domain.StatusNone,
		Priority:     "N",
		ID:           id,
		Created:      domain.MustDate(2024, time.January, 1),
		DisplayOrder: order,
	}
}

func TestApplyDocument_MergesAndSaves(t *testing.T) {
	store := testutil.NewMemStore()
	store.Tasks = []domain.Task{storedTask("Old name", 1, 1)}
	clock := testutil.ClockAt(2024, time.August, 1)
	uc := NewApplyDocument(store, clock, nil, 0)

	out, err := uc.Execute(context.Background(), ApplyDocumentInput{
		Source: "- [x] [[New name]] id:1\n- [ ] [[Fresh]]",
	})
	require.NoError(t, err)

	assert.True(t, store.SaveCalled)
	require.Len(t, store.Tasks, 2)

	assert.Equal(t, "New name", store.Tasks[0].Name)
	assert.Equal(t, domain.StatusDone, store.Tasks[0].Status)
	// created survives the rename; updated is stamped with today.
	assert.Equal(t, domain.MustDate(2024, time.January, 1), store.Tasks[0].Created)
	require.NotNil(t, store.Tasks[0].Updated)
	assert.Equal(t, domain.MustDate(2024, time.August, 1), *store.Tasks[0].Updated)

	assert.Equal(t, "Fresh", store.Tasks[1].Name)
	assert.Equal(t, int64(2), store.Tasks[1].ID)
	assert.Equal(t, domain.MustDate(2024, time.August, 1), store.Tasks[1].Created)

	require.Len(t, out.Added, 1)
	assert.Equal(t, "Fresh", out.Added[0].Name)
	assert.Contains(t, out.Rendered, "[[New name]]")
	assert.Contains(t, out.Rendered, "[[Fresh]]")
}

func TestApplyDocument_DropsAbsentTasks(t *testing.T) {
	store := testutil.NewMemStore()
	store.Tasks = []domain.Task{storedTask("Keep", 1, 1), storedTask("Drop", 2, 2)}
	uc := NewApplyDocument(store, testutil.ClockAt(2024, time.August, 1), nil, 0)

	_, err := uc.Execute(context.Background(), ApplyDocumentInput{
		Source: "- [ ] [[Keep]] id:1",
	})
	require.NoError(t, err)

	require.Len(t, store.Tasks, 1)
	assert.Equal(t, int64(1), store.Tasks[0].ID)
}

func TestApplyDocument_DryRunDoesNotSave(t *testing.T) {
	store := testutil.NewMemStore()
	store.Tasks = []domain.Task{storedTask("Existing", 1, 1)}
	uc := NewApplyDocument(store, testutil.ClockAt(2024, time.August, 1), nil, 0)

	out, err := uc.Execute(context.Background(), ApplyDocumentInput{
		Source: "- [ ] [[Existing]] id:1\n- [ ] [[Would be new]]",
		DryRun: true,
	})
	require.NoError(t, err)

	assert.False(t, store.SaveCalled)
	require.Len(t, store.Tasks, 1)
	require.Len(t, out.Added, 1)
	assert.Equal(t, "Would be new", out.Added[0].Name)
}

func TestApplyDocument_ParseErrorAbortsWithoutSave(t *testing.T) {
	store := testutil.NewMemStore()
	uc := NewApplyDocument(store, testutil.ClockAt(2024, time.August, 1), nil, 0)

	_, err := uc.Execute(context.Background(), ApplyDocumentInput{
		Source: "- [completely] broken",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLineFormat)
	assert.False(t, store.SaveCalled)
}

func TestApplyDocument_LoadErrorPropagates(t *testing.T) {
	store := testutil.NewMemStore()
	store.LoadErr = domain.ErrStoreNotFound
	uc := NewApplyDocument(store, testutil.ClockAt(2024, time.August, 1), nil, 0)

	_, err := uc.Execute(context.Background(), ApplyDocumentInput{Source: "- [ ] [[A]]"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}
