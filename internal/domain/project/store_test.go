package project_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/rpggio/projectboard/internal/domain/project"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func TestStore_AddNotifiesWithSnapshot(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	store := project.NewStore(
		project.WithIDGenerator(sequentialIDs()),
		project.WithClock(func() time.Time { return created }),
	)
	require.Equal(t, 0, store.Len())

	var got [][]project.Project
	store.Subscribe(func(snapshot []project.Project) {
		got = append(got, snapshot)
	})

	proj := store.Add("T", "Desc123", 4)

	require.Len(t, got, 1)
	require.Equal(t, []project.Project{{
		ID:          "p1",
		Title:       "T",
		Description: "Desc123",
		People:      4,
		Status:      project.StatusActive,
		CreatedAt:   created,
	}}, got[0])
	require.Equal(t, got[0][0], proj)
}

func TestStore_SubscribeDoesNotInvokeImmediately(t *testing.T) {
	store := project.NewStore()
	calls := 0
	store.Subscribe(func([]project.Project) { calls++ })
	require.Zero(t, calls)
}

func TestStore_SnapshotsFollowInsertionOrder(t *testing.T) {
	store := project.NewStore(project.WithIDGenerator(sequentialIDs()))

	var lengths []int
	var last []project.Project
	store.Subscribe(func(snapshot []project.Project) {
		lengths = append(lengths, len(snapshot))
		last = snapshot
	})

	const n = 5
	for i := 0; i < n; i++ {
		store.Add(fmt.Sprintf("title %d", i), "description", i)
	}

	require.Equal(t, []int{1, 2, 3, 4, 5}, lengths)
	require.Len(t, last, n)
	for i, proj := range last {
		require.Equal(t, fmt.Sprintf("title %d", i), proj.Title)
	}
	require.Equal(t, last, store.Snapshot())
}

func TestStore_ListenersCalledInSubscriptionOrder(t *testing.T) {
	store := project.NewStore()

	var order []string
	store.Subscribe(func([]project.Project) { order = append(order, "first") })
	store.Subscribe(func([]project.Project) { order = append(order, "second") })

	store.Add("Alpha project", "description", 1)
	require.Equal(t, []string{"first", "second"}, order)

	store.Add("Beta project", "description", 1)
	require.Equal(t, []string{"first", "second", "first", "second"}, order)
}

func TestStore_SnapshotsAreIndependent(t *testing.T) {
	store := project.NewStore()

	var first, second []project.Project
	store.Subscribe(func(snapshot []project.Project) {
		if first == nil {
			first = snapshot
		}
		snapshot[0].Title = "mutated by listener"
	})
	store.Subscribe(func(snapshot []project.Project) {
		second = snapshot
	})

	store.Add("Original", "description", 2)
	store.Add("Another", "description", 3)

	require.Len(t, first, 1)
	require.Equal(t, "Original", second[0].Title)
	require.Equal(t, "Original", store.Snapshot()[0].Title)
	require.Len(t, second, 2)
}

func TestStore_AcceptsUnvalidatedInput(t *testing.T) {
	store := project.NewStore()
	proj := store.Add("", "", -3)
	require.Equal(t, -3, proj.People)
	require.Equal(t, 1, store.Len())
}

func TestStore_UniqueIDs(t *testing.T) {
	store := project.NewStore()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		proj := store.Add("Project", "description", 1)
		require.NotEmpty(t, proj.ID)
		require.False(t, seen[proj.ID], "duplicate id %s", proj.ID)
		seen[proj.ID] = true
	}
}

func TestStore_EmptySnapshot(t *testing.T) {
	store := project.NewStore()
	snapshot := store.Snapshot()
	require.NotNil(t, snapshot)
	require.Empty(t, snapshot)
}

func TestStore_ListenerMaySnapshot(t *testing.T) {
	store := project.NewStore()
	var inside int
	store.Subscribe(func([]project.Project) {
		inside = store.Len()
	})
	store.Add("Reentrant", "description", 1)
	require.Equal(t, 1, inside)
}

func TestFilterByStatus(t *testing.T) {
	snapshot := []project.Project{
		{ID: "a", Status: project.StatusActive},
		{ID: "b", Status: project.StatusFinished},
		{ID: "c", Status: project.StatusActive},
	}

	active := project.FilterByStatus(snapshot, project.StatusActive)
	require.Equal(t, []string{"a", "c"}, ids(active))

	finished := project.FilterByStatus(snapshot, project.StatusFinished)
	require.Equal(t, []string{"b"}, ids(finished))

	require.Empty(t, project.FilterByStatus(nil, project.StatusActive))
}

func TestParseStatus(t *testing.T) {
	status, err := project.ParseStatus(" Active ")
	require.NoError(t, err)
	require.Equal(t, project.StatusActive, status)

	status, err = project.ParseStatus("finished")
	require.NoError(t, err)
	require.Equal(t, project.StatusFinished, status)

	_, err = project.ParseStatus("archived")
	require.ErrorIs(t, err, project.ErrUnknownStatus)
}

func ids(projects []project.Project) []string {
	out := make([]string, 0, len(projects))
	for _, proj := range projects {
		out = append(out, proj.ID)
	}
	return out
}
