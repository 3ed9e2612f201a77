package task

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/dto"
	"tasktracker/middleware"
	"tasktracker/services"
)

func TaskController(router *gin.Engine, taskService *services.TaskService) {
	routes := router.Group("/task", middleware.AccessTokenMiddleware())
	{
		routes.POST("", func(c *gin.Context) {
			Createtask(c, taskService)
		})
		routes.GET("", func(c *gin.Context) {
			Listtasks(c, taskService)
		})
		routes.PUT("/:taskid", func(c *gin.Context) {
			Updatetask(c, taskService)
		})
		routes.DELETE("/:taskid", func(c *gin.Context) {
			Deletetask(c, taskService)
		})
	}
}

func Createtask(c *gin.Context, taskService *services.TaskService) {
	userID := c.MustGet("userId").(string)

	var request dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := taskService.CreateTask(c.Request.Context(), userID, services.TaskInput{
		Title:       request.Title,
		Priority:    request.Priority,
		EstimateHrs: request.EstimateHrs,
		Deadline:    request.Deadline,
		Notes:       request.Notes,
		Important:   request.Important,
		Status:      request.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func Listtasks(c *gin.Context, taskService *services.TaskService) {
	userID := c.MustGet("userId").(string)

	tasks, err := taskService.ListTasks(c.Request.Context(), userID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func Updatetask(c *gin.Context, taskService *services.TaskService) {
	userID := c.MustGet("userId").(string)
	taskID := c.Param("taskid")

	var request dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := taskService.UpdateTask(c.Request.Context(), userID, taskID, services.TaskUpdateInput{
		Title:       request.Title,
		Priority:    request.Priority,
		EstimateHrs: request.EstimateHrs,
		Deadline:    request.Deadline,
		Notes:       request.Notes,
		Important:   request.Important,
		Status:      request.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func Deletetask(c *gin.Context, taskService *services.TaskService) {
	userID := c.MustGet("userId").(string)
	taskID := c.Param("taskid")

	if err := taskService.DeleteTask(c.Request.Context(), userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

func respondTaskError(c *gin.Context, err error) {
	var invalid *services.InvalidInputError
	switch {
	case errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": invalid.Error(), "field": invalid.Field})
	case errors.Is(err, services.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, services.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Task belongs to another user"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
