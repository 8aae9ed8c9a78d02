package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DiyaJain6/Task-Bridge/models"
)

// Memory-backed store implementations. Thread-safe; used by tests and as a
// reference for the semantics the GORM implementations must match.

type MemoryUserStore struct {
	mu     sync.RWMutex
	users  map[uint]models.User
	nextID uint
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[uint]models.User), nextID: 1}
}

func (s *MemoryUserStore) ByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			out := u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) ByID(id uint) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := u
	return &out, nil
}

func (s *MemoryUserStore) List() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryUserStore) Save(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = s.nextID
		s.nextID++
		if u.CreatedAt.IsZero() {
			u.CreatedAt = time.Now()
		}
	}
	s.users[u.ID] = *u
	return nil
}

func (s *MemoryUserStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type MemoryTaskStore struct {
	mu     sync.RWMutex
	tasks  map[uint]models.Task
	nextID uint
}

func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{tasks: make(map[uint]models.Task), nextID: 1}
}

func (s *MemoryTaskStore) ByID(id uint) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := t
	return &out, nil
}

func (s *MemoryTaskStore) Save(t *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.ID == 0 {
		t.ID = s.nextID
		s.nextID++
		if t.CreatedAt.IsZero() {
			t.CreatedAt = time.Now()
		}
		t.Version = 1
		s.tasks[t.ID] = *t
		return nil
	}
	stored, ok := s.tasks[t.ID]
	if !ok {
		return ErrNotFound
	}
	if stored.Version != t.Version {
		return ErrVersionConflict
	}
	t.Version++
	s.tasks[t.ID] = *t
	return nil
}

func (s *MemoryTaskStore) List() ([]models.Task, error) {
	return s.filter(func(models.Task) bool { return true }), nil
}

func (s *MemoryTaskStore) ByAssignee(userID uint) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool {
		return t.AssignedToID != nil && *t.AssignedToID == userID
	}), nil
}

func (s *MemoryTaskStore) ByCreator(userID uint) ([]models.Task, error) {
	return s.filter(func(t models.Task) bool { return t.AssignedByID == userID }), nil
}

func (s *MemoryTaskStore) Unassigned() ([]models.Task, error) {
	return s.filter(func(t models.Task) bool { return t.AssignedToID == nil }), nil
}

func (s *MemoryTaskStore) ReferencingUser(userID uint) (int64, error) {
	refs := s.filter(func(t models.Task) bool {
		if t.AssignedByID == userID {
			return true
		}
		if t.AssignedToID != nil && *t.AssignedToID == userID {
			return true
		}
		return t.BackupAssigneeID != nil && *t.BackupAssigneeID == userID
	})
	return int64(len(refs)), nil
}

func (s *MemoryTaskStore) filter(keep func(models.Task) bool) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Task
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type MemoryNotificationStore struct {
	mu     sync.RWMutex
	notifs []models.Notification
	nextID uint
}

func NewMemoryNotificationStore() *MemoryNotificationStore {
	return &MemoryNotificationStore{nextID: 1}
}

func (s *MemoryNotificationStore) Record(n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.nextID
	s.nextID++
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	s.notifs = append(s.notifs, *n)
	return nil
}

func (s *MemoryNotificationStore) ByUser(userID uint) ([]models.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Notification
	for _, n := range s.notifs {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	// Newest first; entries are appended in creation order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *MemoryNotificationStore) UnreadCount(userID uint) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var count int64
	for _, n := range s.notifs {
		if n.UserID == userID && !n.Read {
			count++
		}
	}
	return count, nil
}

func (s *MemoryNotificationStore) MarkRead(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifs {
		if s.notifs[i].ID == id {
			s.notifs[i].Read = true
			return nil
		}
	}
	return ErrNotFound
}

type MemoryAuditStore struct {
	mu      sync.RWMutex
	entries []models.AuditLog
	nextID  uint
}

func NewMemoryAuditStore() *MemoryAuditStore {
	return &MemoryAuditStore{nextID: 1}
}

func (s *MemoryAuditStore) Record(e *models.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e.ID = s.nextID
	s.nextID++
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	s.entries = append(s.entries, *e)
	return nil
}

func (s *MemoryAuditStore) List() ([]models.AuditLog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.AuditLog, len(s.entries))
	for i, e := range s.entries {
		out[len(s.entries)-1-i] = e
	}
	return out, nil
}

type MemoryMessageStore struct {
	mu     sync.RWMutex
	msgs   []models.ChatMessage
	nextID uint
}

func NewMemoryMessageStore() *MemoryMessageStore {
	return &MemoryMessageStore{nextID: 1}
}

func (s *MemoryMessageStore) Record(m *models.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.nextID
	s.nextID++
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now()
	}
	s.msgs = append(s.msgs, *m)
	return nil
}

func (s *MemoryMessageStore) ForUser(userID uint) ([]models.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.ChatMessage
	for _, m := range s.msgs {
		if (m.SenderID != nil && *m.SenderID == userID) || (m.ReceiverID != nil && *m.ReceiverID == userID) {
			out = append(out, m)
		}
	}
	return out, nil
}

type MemorySettingStore struct {
	mu       sync.RWMutex
	settings map[string]models.SystemSetting
	nextID   uint
}

func NewMemorySettingStore() *MemorySettingStore {
	return &MemorySettingStore{settings: make(map[string]models.SystemSetting), nextID: 1}
}

func (s *MemorySettingStore) Save(setting *models.SystemSetting) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.settings[setting.SettingKey]; ok {
		setting.ID = existing.ID
	} else {
		setting.ID = s.nextID
		s.nextID++
	}
	s.settings[setting.SettingKey] = *setting
	return nil
}

func (s *MemorySettingStore) List() ([]models.SystemSetting, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SystemSetting, 0, len(s.settings))
	for _, v := range s.settings {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
