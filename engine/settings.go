package engine

import (
	"fmt"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/models"
)

// publicSettingKeys are the only settings exposed without authentication.
var publicSettingKeys = map[string]bool{
	"platformName":    true,
	"maintenanceMode": true,
}

// UpdateSetting upserts an admin setting and audits the write.
func (e *Engine) UpdateSetting(actorEmail, key, value string) (*models.SystemSetting, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.Role != constants.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may change settings", ErrUnauthorized)
	}
	if key == "" {
		return nil, fmt.Errorf("%w: setting key is required", ErrInvalidArgument)
	}

	setting := models.SystemSetting{SettingKey: key, SettingValue: value}
	if err := e.settings.Save(&setting); err != nil {
		return nil, fmt.Errorf("%w: saving setting: %v", ErrInternal, err)
	}
	e.recordAudit(constants.AuditUpdateSetting, actor.Email,
		fmt.Sprintf("Updated system setting: %s to %s", key, value))
	return &setting, nil
}

func (e *Engine) Settings(actorEmail string) ([]models.SystemSetting, error) {
	actor, err := e.resolveActor(actorEmail)
	if err != nil {
		return nil, err
	}
	if actor.Role != constants.RoleAdmin {
		return nil, fmt.Errorf("%w: only admins may read settings", ErrUnauthorized)
	}
	settings, err := e.settings.List()
	if err != nil {
		return nil, fmt.Errorf("%w: listing settings: %v", ErrInternal, err)
	}
	return settings, nil
}

// PublicSettings returns the whitelisted subset shown on the login screen.
func (e *Engine) PublicSettings() (map[string]string, error) {
	settings, err := e.settings.List()
	if err != nil {
		return nil, fmt.Errorf("%w: listing settings: %v", ErrInternal, err)
	}
	out := make(map[string]string)
	for _, s := range settings {
		if publicSettingKeys[s.SettingKey] {
			out[s.SettingKey] = s.SettingValue
		}
	}
	return out, nil
}
