package service

import (
	"encoding/json"
	"sort"

	"github.com/guide4360/guide4360api/internal/models"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Sort keys for the task view
const (
	SortByRetailer  = "retailer"
	SortByDay       = "day"
	SortByFileCount = "fileCount"
	SortByUpdatedAt = "updatedAt"
)

// Sort orders for the task view
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// TaskViewOptions are the client-supplied filter and sort options for the
// task view. Empty or "all" values disable the corresponding filter; an
// empty SortBy leaves the input order untouched.
type TaskViewOptions struct {
	LoadType  string
	Status    string
	SortBy    string
	SortOrder string
}

// BuildTaskView produces the filtered, ordered view of the given tasks.
// The sort is stable, so tasks with equal keys keep their input order.
func BuildTaskView(tasks []models.TaskModel, opts TaskViewOptions) []models.TaskModel {
	view := make([]models.TaskModel, 0, len(tasks))
	for _, task := range tasks {
		if opts.LoadType != "" && opts.LoadType != "all" && task.LoadType != opts.LoadType {
			continue
		}
		switch opts.Status {
		case "completed":
			if !task.Completed {
				continue
			}
		case "pending":
			if task.Completed {
				continue
			}
		}
		view = append(view, task)
	}

	if opts.SortBy == "" {
		return view
	}

	collator := collate.New(language.English)
	less := func(a, b models.TaskModel) bool {
		switch opts.SortBy {
		case SortByDay:
			return collator.CompareString(a.Day, b.Day) < 0
		case SortByFileCount:
			return a.FileCount < b.FileCount
		case SortByUpdatedAt:
			return a.UpdatedAt.Before(b.UpdatedAt)
		default:
			// unknown keys fall back to retailer
			return collator.CompareString(a.Retailer, b.Retailer) < 0
		}
	}

	sort.SliceStable(view, func(i, j int) bool {
		if opts.SortOrder == SortDesc {
			return less(view[j], view[i])
		}
		return less(view[i], view[j])
	})

	return view
}

// DecodeTaskList decodes a fetched payload into a task list. A payload that
// is not a JSON array (an error object, for instance) degrades to an empty
// list rather than failing the view.
func DecodeTaskList(payload []byte) []models.TaskModel {
	var tasks []models.TaskModel
	if err := json.Unmarshal(payload, &tasks); err != nil || tasks == nil {
		return []models.TaskModel{}
	}
	return tasks
}
