package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DiyaJain6/Task-Bridge/engine"
	"github.com/DiyaJain6/Task-Bridge/middleware"
)

type TaskController struct {
	Engine *engine.Engine
}

func taskID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id"})
		return 0, false
	}
	return uint(id), true
}

func (tc *TaskController) Create(c *gin.Context) {
	var in engine.CreateTaskInput
	if err := c.BindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	task, err := tc.Engine.CreateTask(middleware.ActorEmail(c), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) List(c *gin.Context) {
	tasks, err := tc.Engine.ListTasks(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) Assigned(c *gin.Context) {
	tasks, err := tc.Engine.AssignedTasks(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) Claimable(c *gin.Context) {
	tasks, err := tc.Engine.ClaimableTasks(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

func (tc *TaskController) Claim(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		ToDoPlan string `json:"to_do_plan"`
	}
	_ = c.BindJSON(&body) // body optional

	task, err := tc.Engine.ClaimTask(middleware.ActorEmail(c), id, body.ToDoPlan)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Start(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := tc.Engine.StartTask(middleware.ActorEmail(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Complete(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		Feedback *string `json:"feedback"`
		Proof    *string `json:"proof"`
	}
	_ = c.BindJSON(&body)

	task, err := tc.Engine.CompleteTask(middleware.ActorEmail(c), id, body.Feedback, body.Proof)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Reject(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		Reason string `json:"reason"`
	}
	_ = c.BindJSON(&body)

	task, err := tc.Engine.RejectTask(middleware.ActorEmail(c), id, body.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) ReRequest(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := tc.Engine.ReRequestTask(middleware.ActorEmail(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Reassign(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		AssigneeID uint `json:"assignee_id"`
	}
	if err := c.BindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := tc.Engine.ReassignTask(middleware.ActorEmail(c), id, body.AssigneeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) Resolve(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	task, err := tc.Engine.ResolveTask(middleware.ActorEmail(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) QualityScore(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		Score *int `json:"score"`
	}
	if err := c.BindJSON(&body); err != nil || body.Score == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Score must be an integer"})
		return
	}

	task, err := tc.Engine.SetQualityScore(middleware.ActorEmail(c), id, *body.Score)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) BackupAssignee(c *gin.Context) {
	id, ok := taskID(c)
	if !ok {
		return
	}
	var body struct {
		BackupUserID *uint `json:"backup_user_id"`
	}
	if err := c.BindJSON(&body); err != nil || body.BackupUserID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "backup_user_id is required"})
		return
	}

	task, err := tc.Engine.SetBackupAssignee(middleware.ActorEmail(c), id, *body.BackupUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (tc *TaskController) FinanceStats(c *gin.Context) {
	stats, err := tc.Engine.FinanceStats(middleware.ActorEmail(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
