package engine

import (
	"testing"
	"time"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

func completedTask(startedAgo, duration time.Duration, now time.Time) models.Task {
	started := now.Add(-startedAgo)
	completed := started.Add(duration)
	return models.Task{
		Status:      constants.TaskStatusCompleted,
		StartedAt:   &started,
		CompletedAt: &completed,
	}
}

func TestFinanceStatsEfficiency(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // a Monday

	tasks := []models.Task{
		completedTask(72*time.Hour, time.Hour, now),
		completedTask(48*time.Hour, time.Hour, now),
		completedTask(24*time.Hour, time.Hour, now),
		{Status: constants.TaskStatusRejected},
	}

	stats := computeFinanceStats(tasks, now)
	if stats.CompletedCount != 3 {
		t.Fatalf("completedCount = %d, want 3", stats.CompletedCount)
	}
	if stats.TotalEarnings != 150.0 {
		t.Fatalf("earnings = %v, want 150.0", stats.TotalEarnings)
	}
	if stats.Efficiency != 75.0 {
		t.Fatalf("efficiency = %v, want 75.0", stats.Efficiency)
	}
}

func TestFinanceStatsEmptyDefaults(t *testing.T) {
	stats := computeFinanceStats(nil, time.Now())
	if stats.Efficiency != 100.0 {
		t.Fatalf("efficiency = %v, want 100.0", stats.Efficiency)
	}
	if stats.AvgHours != 0.0 || stats.TotalEarnings != 0.0 || stats.CompletedCount != 0 {
		t.Fatalf("stats = %+v", stats)
	}
	if len(stats.Heatmap) != 7 {
		t.Fatalf("heatmap buckets = %d, want 7", len(stats.Heatmap))
	}
	for _, d := range []string{"MON", "TUE", "WED", "THU", "FRI", "SAT", "SUN"} {
		if v, ok := stats.Heatmap[d]; !ok || v != 0 {
			t.Fatalf("bucket %s = %d, present=%v", d, v, ok)
		}
	}
}

func TestFinanceStatsAverageHoursRounding(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tasks := []models.Task{
		completedTask(10*time.Hour, 90*time.Minute, now),  // 1.5h
		completedTask(20*time.Hour, 150*time.Minute, now), // 2.5h
		// No timestamps: excluded from the average.
		{Status: constants.TaskStatusCompleted},
	}

	stats := computeFinanceStats(tasks, now)
	if stats.AvgHours != 2.0 {
		t.Fatalf("avgHours = %v, want 2.0", stats.AvgHours)
	}

	// Efficiency rounds half-up to one decimal: 2/3 of 100 -> 66.7.
	tasks = []models.Task{
		completedTask(10*time.Hour, time.Hour, now),
		completedTask(20*time.Hour, time.Hour, now),
		{Status: constants.TaskStatusRejected},
	}
	stats = computeFinanceStats(tasks, now)
	if stats.Efficiency != 66.7 {
		t.Fatalf("efficiency = %v, want 66.7", stats.Efficiency)
	}
}

func TestFinanceStatsHeatmapWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC) // Monday

	recentMonday := completedTask(24*time.Hour, 2*time.Hour, now) // completes Sunday
	sameDay := completedTask(4*time.Hour, time.Hour, now)         // completes Monday
	old := completedTask(100*24*time.Hour, time.Hour, now)        // outside 90 days

	stats := computeFinanceStats([]models.Task{recentMonday, sameDay, old}, now)

	var total int
	for _, v := range stats.Heatmap {
		total += v
	}
	if total != 2 {
		t.Fatalf("heatmap total = %d, want 2 (old completion excluded)", total)
	}
	if stats.Heatmap["MON"] != 1 || stats.Heatmap["SUN"] != 1 {
		t.Fatalf("heatmap = %v", stats.Heatmap)
	}
}

func TestFinanceStatsThroughEngine(t *testing.T) {
	f := newFixture(t)

	task := f.createTask(t, f.manager.Email)
	if _, err := f.eng.ClaimTask(f.workerA.Email, task.ID, ""); err != nil {
		t.Fatalf("claim: %v", err)
	}
	if _, err := f.eng.StartTask(f.workerA.Email, task.ID); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.eng.CompleteTask(f.workerA.Email, task.ID, nil, nil); err != nil {
		t.Fatalf("complete: %v", err)
	}

	stats, err := f.eng.FinanceStats(f.workerA.Email)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.CompletedCount != 1 || stats.TotalEarnings != 50.0 || stats.Efficiency != 100.0 {
		t.Fatalf("stats = %+v", stats)
	}
}
