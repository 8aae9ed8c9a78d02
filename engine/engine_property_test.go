package engine

import (
	"errors"
	"sync"
	"testing"

	"pgregory.net/rapid"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/store"
)

// For any sequence of lifecycle operations by any actors, a task's status
// stays inside the closed enum and a stored quality score stays in [1,5].
func TestPropertyStatusStaysInClosedSet(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		f := newFixture(t)
		task := f.createTask(t, f.workerA.Email)

		actors := []string{f.admin.Email, f.manager.Email, f.workerA.Email, f.workerB.Email}
		ops := []string{"claim", "start", "complete", "reject", "rerequest", "reassign", "resolve", "score", "backup"}

		steps := rapid.IntRange(1, 25).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			actor := rapid.SampledFrom(actors).Draw(rt, "actor")
			var err error
			switch rapid.SampledFrom(ops).Draw(rt, "op") {
			case "claim":
				_, err = f.eng.ClaimTask(actor, task.ID, "")
			case "start":
				_, err = f.eng.StartTask(actor, task.ID)
			case "complete":
				_, err = f.eng.CompleteTask(actor, task.ID, nil, nil)
			case "reject":
				_, err = f.eng.RejectTask(actor, task.ID, "reason")
			case "rerequest":
				_, err = f.eng.ReRequestTask(actor, task.ID)
			case "reassign":
				_, err = f.eng.ReassignTask(actor, task.ID, f.workerB.ID)
			case "resolve":
				_, err = f.eng.ResolveTask(actor, task.ID)
			case "score":
				_, err = f.eng.SetQualityScore(actor, task.ID, rapid.IntRange(-1, 7).Draw(rt, "score"))
			case "backup":
				_, err = f.eng.SetBackupAssignee(actor, task.ID, f.workerA.ID)
			}

			if err != nil &&
				!errors.Is(err, ErrUnauthorized) &&
				!errors.Is(err, ErrInvalidArgument) &&
				!errors.Is(err, ErrConflict) &&
				!errors.Is(err, ErrNotFound) {
				rt.Fatalf("unexpected error kind: %v", err)
			}

			current, loadErr := f.tasks.ByID(task.ID)
			if loadErr != nil {
				rt.Fatalf("reload: %v", loadErr)
			}
			if !constants.ValidTaskStatus(current.Status) {
				rt.Fatalf("status %q escaped the closed set", current.Status)
			}
			if current.QualityScore != nil && (*current.QualityScore < 1 || *current.QualityScore > 5) {
				rt.Fatalf("quality score %d escaped [1,5]", *current.QualityScore)
			}
		}
	})
}

// For any number of concurrent claims on one unassigned task, exactly one
// succeeds and every loser gets Conflict.
func TestPropertyConcurrentClaimsSingleWinner(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		users := store.NewMemoryUserStore()
		tasks := store.NewMemoryTaskStore()
		eng := New(users, tasks, store.NewMemoryNotificationStore(), store.NewMemoryAuditStore(),
			store.NewMemoryMessageStore(), store.NewMemorySettingStore())

		creator := models.User{Name: "Creator", Email: "creator@test.com", Role: constants.RoleManager}
		if err := users.Save(&creator); err != nil {
			rt.Fatalf("seed creator: %v", err)
		}

		n := rapid.IntRange(2, 8).Draw(rt, "claimers")
		emails := make([]string, n)
		for i := 0; i < n; i++ {
			u := models.User{Name: "Agent", Email: rapid.StringMatching(`agent[0-9]{4}`).Draw(rt, "email") + "@test.com", Role: constants.RoleWorker}
			u.Email = u.Email[:5] + string(rune('a'+i)) + u.Email[5:] // keep emails unique
			if err := users.Save(&u); err != nil {
				rt.Fatalf("seed agent: %v", err)
			}
			emails[i] = u.Email
		}

		task, err := eng.CreateTask(creator.Email, CreateTaskInput{Title: "contested"})
		if err != nil {
			rt.Fatalf("create: %v", err)
		}

		errsCh := make([]error, n)
		var wg sync.WaitGroup
		for i := range emails {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errsCh[i] = eng.ClaimTask(emails[i], task.ID, "")
			}(i)
		}
		wg.Wait()

		var wins int
		for _, err := range errsCh {
			switch {
			case err == nil:
				wins++
			case errors.Is(err, ErrConflict):
			default:
				rt.Fatalf("unexpected error kind: %v", err)
			}
		}
		if wins != 1 {
			rt.Fatalf("wins = %d, want exactly 1 of %d claimers", wins, n)
		}

		final, err := tasks.ByID(task.ID)
		if err != nil {
			rt.Fatalf("reload: %v", err)
		}
		if final.AssignedToID == nil || final.AssignedAt == nil {
			rt.Fatal("winning claim left the task unassigned")
		}
	})
}
