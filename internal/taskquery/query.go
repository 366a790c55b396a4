// Package taskquery derives the filtered, sorted, paginated view over one
// owner's tasks. It is pure (no store access) and is the single source of
// the list math: the list endpoint and the exporters both run it, so API
// responses and downloads always agree.
package taskquery

import (
	"sort"
	"strings"

	"github.com/singhalaadi/taskly-capstone-project/internal/models"
)

// PageSize is fixed at 10 tasks per page.
const PageSize = 10

// Status filter values. Anything else (including "") keeps all tasks.
const (
	StatusOpen = "open"
	StatusDone = "done"
)

// Sort keys.
const (
	OrderByName     = "name"
	OrderByPriority = "priority"
	OrderByStatus   = "status"
	OrderByDue      = "due"
)

var priorityRank = map[string]int{
	models.PriorityHigh:   3,
	models.PriorityMedium: 2,
	models.PriorityLow:    1,
}

// rank treats unknown or missing priorities as medium.
func rank(priority string) int {
	if r, ok := priorityRank[priority]; ok {
		return r
	}
	return priorityRank[models.PriorityMedium]
}

// Filter keeps tasks matching the status: "open" keeps incomplete tasks,
// "done" keeps completed ones, anything else keeps all. The input slice is
// never mutated.
func Filter(tasks []models.Task, status string) []models.Task {
	if status != StatusOpen && status != StatusDone {
		out := make([]models.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	out := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if (status == StatusOpen && !t.Completed) || (status == StatusDone && t.Completed) {
			out = append(out, t)
		}
	}
	return out
}

// Sort returns a sorted copy of tasks. Sorting is stable: ties keep their
// prior relative order. An unknown or empty key preserves the input order.
func Sort(tasks []models.Task, orderBy string) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	var less func(a, b *models.Task) bool
	switch orderBy {
	case OrderByName:
		// case-sensitive lexicographic compare on title
		less = func(a, b *models.Task) bool {
			return strings.Compare(a.Title, b.Title) < 0
		}
	case OrderByPriority:
		// highest priority first
		less = func(a, b *models.Task) bool {
			return rank(a.Priority) > rank(b.Priority)
		}
	case OrderByStatus:
		// incomplete before completed
		less = func(a, b *models.Task) bool {
			return !a.Completed && b.Completed
		}
	case OrderByDue:
		// undated tasks after all dated tasks; dated ascending
		less = func(a, b *models.Task) bool {
			if a.DueDate == nil {
				return false
			}
			if b.DueDate == nil {
				return true
			}
			return a.DueDate.Before(*b.DueDate)
		}
	default:
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(&out[i], &out[j])
	})
	return out
}

// Paginate returns the 1-based page of the given list plus the total count
// of the list (for page-count display). A page beyond the end yields an
// empty slice, not an error.
func Paginate(tasks []models.Task, page int) ([]models.Task, int) {
	if page < 1 {
		page = 1
	}
	total := len(tasks)
	start := (page - 1) * PageSize
	if start >= total {
		return []models.Task{}, total
	}
	end := start + PageSize
	if end > total {
		end = total
	}
	return tasks[start:end], total
}

// Apply runs the whole pipeline: filter, then sort, then paginate.
func Apply(tasks []models.Task, status, orderBy string, page int) ([]models.Task, int) {
	return Paginate(Sort(Filter(tasks, status), orderBy), page)
}
