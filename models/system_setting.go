package models

type SystemSetting struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SettingKey   string `gorm:"uniqueIndex" json:"setting_key"`
	SettingValue string `json:"setting_value"`
}
