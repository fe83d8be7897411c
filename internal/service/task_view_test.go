package service

import (
	"testing"
	"time"

	"github.com/guide4360/guide4360api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func viewFixture() []models.TaskModel {
	base := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)
	return []models.TaskModel{
		{ID: 1, Retailer: "B", Day: "Monday", LoadType: models.LoadTypeDirect, FileCount: 3, Completed: false, UpdatedAt: base.Add(2 * time.Hour)},
		{ID: 2, Retailer: "A", Day: "Tuesday", LoadType: models.LoadTypeIndirect, FileCount: 9, Completed: true, UpdatedAt: base},
		{ID: 3, Retailer: "C", Day: "Friday", LoadType: models.LoadTypeDirect, FileCount: 5, Completed: true, UpdatedAt: base.Add(time.Hour)},
	}
}

func TestBuildTaskView_CompletedFilterAndRetailerSort(t *testing.T) {
	tasks := []models.TaskModel{
		{Retailer: "B", Day: "Monday", FileCount: 3, Completed: false},
		{Retailer: "A", Day: "Tuesday", FileCount: 9, Completed: true},
	}

	view := BuildTaskView(tasks, TaskViewOptions{
		LoadType:  "all",
		Status:    "completed",
		SortBy:    SortByRetailer,
		SortOrder: SortAsc,
	})

	require.Len(t, view, 1)
	assert.Equal(t, "A", view[0].Retailer)
}

func TestBuildTaskView_LoadTypeFilter(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{LoadType: models.LoadTypeDirect, Status: "all"})
	require.Len(t, view, 2)
	for _, task := range view {
		assert.Equal(t, models.LoadTypeDirect, task.LoadType)
	}
}

func TestBuildTaskView_PendingFilter(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{Status: "pending"})
	require.Len(t, view, 1)
	assert.Equal(t, uint(1), view[0].ID)
}

func TestBuildTaskView_SortFileCountDesc(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{SortBy: SortByFileCount, SortOrder: SortDesc})
	require.Len(t, view, 3)
	assert.Equal(t, []int{9, 5, 3}, []int{view[0].FileCount, view[1].FileCount, view[2].FileCount})
}

func TestBuildTaskView_SortUpdatedAt(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{SortBy: SortByUpdatedAt, SortOrder: SortAsc})
	require.Len(t, view, 3)
	assert.Equal(t, uint(2), view[0].ID)
	assert.Equal(t, uint(3), view[1].ID)
	assert.Equal(t, uint(1), view[2].ID)
}

func TestBuildTaskView_StableOnEqualKeys(t *testing.T) {
	tasks := []models.TaskModel{
		{ID: 1, Retailer: "Same", FileCount: 1},
		{ID: 2, Retailer: "Same", FileCount: 2},
		{ID: 3, Retailer: "Same", FileCount: 3},
	}

	view := BuildTaskView(tasks, TaskViewOptions{SortBy: SortByRetailer, SortOrder: SortAsc})
	require.Len(t, view, 3)
	assert.Equal(t, uint(1), view[0].ID)
	assert.Equal(t, uint(2), view[1].ID)
	assert.Equal(t, uint(3), view[2].ID)
}

func TestBuildTaskView_UnknownSortKeyFallsBackToRetailer(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{SortBy: "bogus", SortOrder: SortAsc})
	require.Len(t, view, 3)
	assert.Equal(t, "A", view[0].Retailer)
	assert.Equal(t, "B", view[1].Retailer)
	assert.Equal(t, "C", view[2].Retailer)
}

func TestBuildTaskView_NoSortKeepsInputOrder(t *testing.T) {
	view := BuildTaskView(viewFixture(), TaskViewOptions{})
	require.Len(t, view, 3)
	assert.Equal(t, uint(1), view[0].ID)
}

func TestDecodeTaskList_NonArrayPayload(t *testing.T) {
	assert.Empty(t, DecodeTaskList([]byte(`{"error":"store unreachable"}`)))
	assert.Empty(t, DecodeTaskList([]byte(`null`)))
	assert.Empty(t, DecodeTaskList([]byte(`not json`)))
}

func TestDecodeTaskList_ValidPayload(t *testing.T) {
	tasks := DecodeTaskList([]byte(`[{"retailer":"Retailer-A","day":"Monday"}]`))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Retailer-A", tasks[0].Retailer)
}
