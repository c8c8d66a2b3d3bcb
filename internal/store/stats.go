package store

import "taskboard/internal/models"

// StatsSummary holds aggregate counts over the current store contents.
// The three status counters always sum to TaskTotal.
type StatsSummary struct {
	UserTotal  int
	TaskTotal  int
	Pending    int
	InProgress int
	Completed  int
}

// computeStats classifies the task snapshot by status in a single pass.
// Pure function of the inputs; nothing is memoized here.
func computeStats(userCount int, tasks []models.Task) StatsSummary {
	s := StatsSummary{
		UserTotal: userCount,
		TaskTotal: len(tasks),
	}
	for _, t := range tasks {
		switch t.Status {
		case models.StatusPending:
			s.Pending++
		case models.StatusInProgress:
			s.InProgress++
		case models.StatusCompleted:
			s.Completed++
		}
	}
	return s
}
