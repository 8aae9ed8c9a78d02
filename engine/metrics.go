package engine

import (
	"math"
	"time"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

// earningsPerTask is the flat rate credited per completed task.
const earningsPerTask = 50.0

var heatmapDays = []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"}

type FinanceStats struct {
	TotalEarnings  float64        `json:"totalEarnings"`
	Efficiency     float64        `json:"efficiency"`
	AvgHours       float64        `json:"avgHours"`
	CompletedCount int            `json:"completedCount"`
	Heatmap        map[string]int `json:"heatmap"`
}

// FinanceStats derives earnings, efficiency, average completion time and a
// 90-day completion heatmap from the actor's own assigned tasks. Pure
// read-side aggregation, no side effects.
func (e *Engine) FinanceStats(actorEmail string) (*FinanceStats, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	tasks, err := e.tasks.ByAssignee(actor.ID)
	if err != nil {
		return nil, err
	}
	stats := computeFinanceStats(tasks, e.now())
	return &stats, nil
}

func computeFinanceStats(tasks []models.Task, now time.Time) FinanceStats {
	var completed, rejected int
	for _, t := range tasks {
		switch t.Status {
		case constants.TaskStatusCompleted:
			completed++
		case constants.TaskStatusRejected:
			rejected++
		}
	}

	efficiency := 100.0
	if denom := completed + rejected; denom > 0 {
		efficiency = round1(float64(completed) / float64(denom) * 100)
	}

	var totalHours float64
	var timed int
	for _, t := range tasks {
		if t.Status == constants.TaskStatusCompleted && t.StartedAt != nil && t.CompletedAt != nil {
			minutes := int64(t.CompletedAt.Sub(*t.StartedAt) / time.Minute)
			totalHours += float64(minutes) / 60.0
			timed++
		}
	}
	avgHours := 0.0
	if timed > 0 {
		avgHours = round1(totalHours / float64(timed))
	}

	heatmap := make(map[string]int, len(heatmapDays))
	for _, d := range heatmapDays {
		heatmap[d] = 0
	}
	cutoff := now.AddDate(0, 0, -90)
	for _, t := range tasks {
		if t.Status == constants.TaskStatusCompleted && t.CompletedAt != nil && t.CompletedAt.After(cutoff) {
			heatmap[dayKey(t.CompletedAt.Weekday())]++
		}
	}

	return FinanceStats{
		TotalEarnings:  float64(completed) * earningsPerTask,
		Efficiency:     efficiency,
		AvgHours:       avgHours,
		CompletedCount: completed,
		Heatmap:        heatmap,
	}
}

func dayKey(d time.Weekday) string {
	switch d {
	case time.Monday:
		return "MON"
	case time.Tuesday:
		return "TUE"
	case time.Wednesday:
		return "WED"
	case time.Thursday:
		return "THU"
	case time.Friday:
		return "FRI"
	case time.Saturday:
		return "SAT"
	default:
		return "SUN"
	}
}

// round1 rounds half-up to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
