package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/middleware"
)

type MessageController struct {
	Engine *engine.Engine
}

func (mc *MessageController) List(c *gin.Context) {
	msgs, err := mc.Engine.Messages(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (mc *MessageController) Send(c *gin.Context) {
	var body struct {
		Content string `json:"content"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := mc.Engine.SendSupportMessage(middleware.ActorEmail(c), body.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}
