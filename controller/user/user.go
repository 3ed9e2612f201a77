package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/dto"
	"tasktracker/middleware"
	"tasktracker/repository"
)

func UserController(router *gin.Engine, users repository.UserRepository) {
	routes := router.Group("/user", middleware.AccessTokenMiddleware())
	{
		routes.GET("/profile", func(c *gin.Context) {
			GetProfile(c, users)
		})
	}
}

func GetProfile(c *gin.Context, users repository.UserRepository) {
	userID := c.MustGet("userId").(string)

	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{
		UserID:    user.UserID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	})
}
