package store

import (
	"errors"
	"testing"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

func ptrUint(v uint) *uint { return &v }

func TestMemoryUserStoreLookups(t *testing.T) {
	s := NewMemoryUserStore()
	u := models.User{Name: "Alice", Email: "alice@test.com", Role: constants.RoleWorker}
	if err := s.Save(&u); err != nil {
		t.Fatalf("save: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("save did not assign an ID")
	}

	got, err := s.ByEmail("ALICE@test.com")
	if err != nil {
		t.Fatalf("ByEmail should match case-insensitively: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("ByEmail returned ID %d, want %d", got.ID, u.ID)
	}

	// Returned values are copies; mutating them must not leak into the store.
	got.Name = "Mallory"
	fresh, err := s.ByID(u.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if fresh.Name != "Alice" {
		t.Fatalf("store record mutated through a returned copy: %q", fresh.Name)
	}

	if err := s.Delete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := s.ByID(u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := s.Delete(u.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}

func TestMemoryTaskStoreVersioning(t *testing.T) {
	s := NewMemoryTaskStore()
	task := models.Task{Title: "patch router", Status: constants.TaskStatusPending, AssignedByID: 1}
	if err := s.Save(&task); err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Version != 1 {
		t.Fatalf("new task version = %d, want 1", task.Version)
	}

	fresh, err := s.ByID(task.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	stale, err := s.ByID(task.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}

	fresh.Status = constants.TaskStatusInProgress
	if err := s.Save(fresh); err != nil {
		t.Fatalf("save fresh copy: %v", err)
	}
	if fresh.Version != 2 {
		t.Fatalf("saved version = %d, want 2", fresh.Version)
	}

	stale.Status = constants.TaskStatusRejected
	if err := s.Save(stale); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("stale save: expected ErrVersionConflict, got %v", err)
	}

	stored, err := s.ByID(task.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if stored.Status != constants.TaskStatusInProgress {
		t.Fatalf("stale save leaked: status = %s", stored.Status)
	}

	missing := models.Task{ID: 999, Version: 1}
	if err := s.Save(&missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown ID, got %v", err)
	}
}

func TestMemoryTaskStoreFilters(t *testing.T) {
	s := NewMemoryTaskStore()

	unassigned := models.Task{Title: "a", AssignedByID: 1}
	mine := models.Task{Title: "b", AssignedByID: 1, AssignedToID: ptrUint(2)}
	backup := models.Task{Title: "c", AssignedByID: 3, BackupAssigneeID: ptrUint(2)}
	for _, task := range []*models.Task{&unassigned, &mine, &backup} {
		if err := s.Save(task); err != nil {
			t.Fatalf("save %q: %v", task.Title, err)
		}
	}

	open, err := s.Unassigned()
	if err != nil {
		t.Fatalf("Unassigned: %v", err)
	}
	if len(open) != 2 || open[0].ID != unassigned.ID || open[1].ID != backup.ID {
		t.Fatalf("Unassigned = %+v", open)
	}

	assigned, err := s.ByAssignee(2)
	if err != nil {
		t.Fatalf("ByAssignee: %v", err)
	}
	if len(assigned) != 1 || assigned[0].ID != mine.ID {
		t.Fatalf("ByAssignee = %+v", assigned)
	}

	created, err := s.ByCreator(1)
	if err != nil {
		t.Fatalf("ByCreator: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("ByCreator count = %d, want 2", len(created))
	}

	// User 2 appears as assignee and backup, user 3 only as creator.
	refs, err := s.ReferencingUser(2)
	if err != nil {
		t.Fatalf("ReferencingUser: %v", err)
	}
	if refs != 2 {
		t.Fatalf("references for user 2 = %d, want 2", refs)
	}
	refs, err = s.ReferencingUser(3)
	if err != nil {
		t.Fatalf("ReferencingUser: %v", err)
	}
	if refs != 1 {
		t.Fatalf("references for user 3 = %d, want 1", refs)
	}
	refs, err = s.ReferencingUser(99)
	if err != nil {
		t.Fatalf("ReferencingUser: %v", err)
	}
	if refs != 0 {
		t.Fatalf("references for user 99 = %d, want 0", refs)
	}
}

func TestMemoryNotificationStoreOrderAndRead(t *testing.T) {
	s := NewMemoryNotificationStore()
	for _, title := range []string{"first", "second", "third"} {
		n := models.Notification{UserID: 7, Title: title}
		if err := s.Record(&n); err != nil {
			t.Fatalf("record %q: %v", title, err)
		}
	}
	other := models.Notification{UserID: 8, Title: "elsewhere"}
	if err := s.Record(&other); err != nil {
		t.Fatalf("record: %v", err)
	}

	list, err := s.ByUser(7)
	if err != nil {
		t.Fatalf("ByUser: %v", err)
	}
	if len(list) != 3 || list[0].Title != "third" || list[2].Title != "first" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	count, err := s.UnreadCount(7)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 3 {
		t.Fatalf("unread = %d, want 3", count)
	}

	if err := s.MarkRead(list[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	count, err = s.UnreadCount(7)
	if err != nil {
		t.Fatalf("UnreadCount: %v", err)
	}
	if count != 2 {
		t.Fatalf("unread after MarkRead = %d, want 2", count)
	}

	if err := s.MarkRead(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown notification, got %v", err)
	}
}

func TestMemoryAuditStoreNewestFirst(t *testing.T) {
	s := NewMemoryAuditStore()
	for _, action := range []string{constants.AuditReassignTask, constants.AuditResolveTask} {
		e := models.AuditLog{Action: action, PerformedBy: "admin@test.com"}
		if err := s.Record(&e); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	entries, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 2 || entries[0].Action != constants.AuditResolveTask {
		t.Fatalf("expected newest first, got %+v", entries)
	}
}

func TestMemoryMessageStoreForUser(t *testing.T) {
	s := NewMemoryMessageStore()
	sent := models.ChatMessage{SenderID: ptrUint(5), Content: "hello", Type: "sent"}
	reply := models.ChatMessage{ReceiverID: ptrUint(5), Content: "hi", Type: "received"}
	stranger := models.ChatMessage{SenderID: ptrUint(6), Content: "other", Type: "sent"}
	for _, m := range []*models.ChatMessage{&sent, &reply, &stranger} {
		if err := s.Record(m); err != nil {
			t.Fatalf("record: %v", err)
		}
	}

	msgs, err := s.ForUser(5)
	if err != nil {
		t.Fatalf("ForUser: %v", err)
	}
	if len(msgs) != 2 || msgs[0].Content != "hello" || msgs[1].Content != "hi" {
		t.Fatalf("expected oldest first conversation, got %+v", msgs)
	}
}

func TestMemorySettingStoreUpsert(t *testing.T) {
	s := NewMemorySettingStore()
	first := models.SystemSetting{SettingKey: "platformName", SettingValue: "TaskBridge"}
	if err := s.Save(&first); err != nil {
		t.Fatalf("save: %v", err)
	}
	update := models.SystemSetting{SettingKey: "platformName", SettingValue: "TaskBridge HQ"}
	if err := s.Save(&update); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if update.ID != first.ID {
		t.Fatalf("upsert allocated a new ID: %d vs %d", update.ID, first.ID)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != 1 || list[0].SettingValue != "TaskBridge HQ" {
		t.Fatalf("settings = %+v", list)
	}
}
