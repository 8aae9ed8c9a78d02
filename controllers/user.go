package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/constants"
	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/middleware"
	"github.com/DiyaJain6/Task-Bridge/models"
	"github.com/DiyaJain6/Task-Bridge/store"
	"github.com/DiyaJain6/Task-Bridge/utils"
)

type UserController struct {
	Engine *engine.Engine
	Users  store.UserStore
}

func userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id"})
		return 0, false
	}
	return uint(id), true
}

func (uc *UserController) List(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Employees lists worker accounts, the pool tasks get assigned from.
func (uc *UserController) Employees(c *gin.Context) {
	users, err := uc.Users.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	workers := make([]models.User, 0)
	for _, u := range users {
		if u.Role == constants.RoleWorker {
			workers = append(workers, u)
		}
	}
	c.JSON(http.StatusOK, workers)
}

func (uc *UserController) Current(c *gin.Context) {
	user, err := uc.Users.ByEmail(utils.NormalizeEmail(middleware.ActorEmail(c)))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateAvailability(c *gin.Context) {
	var body struct {
		Available *bool   `json:"available"`
		Status    *string `json:"status"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Engine.UpdateAvailability(middleware.ActorEmail(c), body.Available, body.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) UpdateRole(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var body struct {
		Role string `json:"role"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := uc.Engine.UpdateUserRole(middleware.ActorEmail(c), id, body.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) ToggleStatus(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	user, err := uc.Engine.ToggleUserStatus(middleware.ActorEmail(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uc *UserController) Delete(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	if err := uc.Engine.DeleteUser(middleware.ActorEmail(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
