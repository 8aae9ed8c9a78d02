package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/middleware"
	"github.com/DiyaJain6/Task-Bridge/store"
	"github.com/DiyaJain6/Task-Bridge/utils"
)

type NotificationController struct {
	Users         store.UserStore
	Notifications store.NotificationStore
}

func (nc *NotificationController) List(c *gin.Context) {
	user, err := nc.Users.ByEmail(utils.NormalizeEmail(middleware.ActorEmail(c)))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	notifs, err := nc.Notifications.ByUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, notifs)
}

func (nc *NotificationController) UnreadCount(c *gin.Context) {
	user, err := nc.Users.ByEmail(utils.NormalizeEmail(middleware.ActorEmail(c)))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	count, err := nc.Notifications.UnreadCount(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (nc *NotificationController) MarkRead(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid notification id"})
		return
	}
	if err := nc.Notifications.MarkRead(uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}
