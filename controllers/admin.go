package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/middleware"
	"github.com/DiyaJain6/Task-Bridge/store"
)

type AdminController struct {
	Engine *engine.Engine
	Audit  store.AuditStore
}

func (ad *AdminController) Settings(c *gin.Context) {
	settings, err := ad.Engine.Settings(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ad *AdminController) UpdateSetting(c *gin.Context) {
	var body struct {
		SettingKey   string `json:"setting_key"`
		SettingValue string `json:"setting_value"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	setting, err := ad.Engine.UpdateSetting(middleware.ActorEmail(c), body.SettingKey, body.SettingValue)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, setting)
}

// PublicSettings is unauthenticated; only whitelisted keys come back.
func (ad *AdminController) PublicSettings(c *gin.Context) {
	settings, err := ad.Engine.PublicSettings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (ad *AdminController) Logs(c *gin.Context) {
	logs, err := ad.Audit.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
