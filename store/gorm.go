package store

import (
	"errors"

	"gorm.io/gorm"

	"github.com/DiyaJain6/Task-Bridge/models"
)

// GormStores bundles the database-backed implementations wired in main.
type GormStores struct {
	Users         UserStore
	Tasks         TaskStore
	Notifications NotificationStore
	Audit         AuditStore
	Messages      MessageStore
	Settings      SettingStore
}

func NewGormStores(db *gorm.DB) GormStores {
	return GormStores{
		Users:         &gormUserStore{db: db},
		Tasks:         &gormTaskStore{db: db},
		Notifications: &gormNotificationStore{db: db},
		Audit:         &gormAuditStore{db: db},
		Messages:      &gormMessageStore{db: db},
		Settings:      &gormSettingStore{db: db},
	}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormUserStore struct {
	db *gorm.DB
}

func (s *gormUserStore) ByEmail(email string) (*models.User, error) {
	var u models.User
	if err := s.db.Where("LOWER(email) = LOWER(?)", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormUserStore) ByID(id uint) (*models.User, error) {
	var u models.User
	if err := s.db.First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *gormUserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *gormUserStore) Save(u *models.User) error {
	return s.db.Save(u).Error
}

func (s *gormUserStore) Delete(id uint) error {
	res := s.db.Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormTaskStore struct {
	db *gorm.DB
}

func (s *gormTaskStore) ByID(id uint) (*models.Task, error) {
	var t models.Task
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

// Save applies the optimistic version check with a guarded UPDATE; the row
// only changes when the version the caller read is still current.
func (s *gormTaskStore) Save(t *models.Task) error {
	if t.ID == 0 {
		t.Version = 1
		return s.db.Create(t).Error
	}

	current := t.Version
	next := *t
	next.Version = current + 1

	res := s.db.Model(&models.Task{}).
		Where("id = ? AND version = ?", t.ID, current).
		Select("*").Omit("id", "created_at").
		Updates(&next)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := s.db.Model(&models.Task{}).Where("id = ?", t.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrVersionConflict
	}
	t.Version = next.Version
	return nil
}

func (s *gormTaskStore) List() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) ByAssignee(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("assigned_to_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) ByCreator(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("assigned_by_id = ?", userID).Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) Unassigned() ([]models.Task, error) {
	var tasks []models.Task
	if err := s.db.Where("assigned_to_id IS NULL").Order("id").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *gormTaskStore) ReferencingUser(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Task{}).
		Where("assigned_by_id = ? OR assigned_to_id = ? OR backup_assignee_id = ?", userID, userID, userID).
		Count(&count).Error
	return count, err
}

type gormNotificationStore struct {
	db *gorm.DB
}

func (s *gormNotificationStore) Record(n *models.Notification) error {
	return s.db.Create(n).Error
}

func (s *gormNotificationStore) ByUser(userID uint) ([]models.Notification, error) {
	var notifs []models.Notification
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC, id DESC").Find(&notifs).Error; err != nil {
		return nil, err
	}
	return notifs, nil
}

func (s *gormNotificationStore) UnreadCount(userID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (s *gormNotificationStore) MarkRead(id uint) error {
	res := s.db.Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormAuditStore struct {
	db *gorm.DB
}

func (s *gormAuditStore) Record(e *models.AuditLog) error {
	return s.db.Create(e).Error
}

func (s *gormAuditStore) List() ([]models.AuditLog, error) {
	var entries []models.AuditLog
	if err := s.db.Order("created_at DESC, id DESC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

type gormMessageStore struct {
	db *gorm.DB
}

func (s *gormMessageStore) Record(m *models.ChatMessage) error {
	return s.db.Create(m).Error
}

func (s *gormMessageStore) ForUser(userID uint) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := s.db.Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("created_at ASC, id ASC").Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}

type gormSettingStore struct {
	db *gorm.DB
}

func (s *gormSettingStore) Save(setting *models.SystemSetting) error {
	var existing models.SystemSetting
	err := s.db.Where("setting_key = ?", setting.SettingKey).First(&existing).Error
	if err == nil {
		setting.ID = existing.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Save(setting).Error
}

func (s *gormSettingStore) List() ([]models.SystemSetting, error) {
	var settings []models.SystemSetting
	if err := s.db.Order("id").Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}
