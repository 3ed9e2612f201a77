package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tasktracker/middleware"
	"tasktracker/repository"
	"tasktracker/services"
)

func RefreshTokenController(router *gin.Engine, users repository.UserRepository, tokens repository.RefreshTokenRepository, tokenService *services.TokenService) {
	router.POST("/auth/refresh", middleware.RefreshTokenMiddleware(), func(c *gin.Context) {
		RefreshAccessToken(c, users, tokens, tokenService)
	})
}

func RefreshAccessToken(c *gin.Context, users repository.UserRepository, tokens repository.RefreshTokenRepository, tokenService *services.TokenService) {
	userID := c.MustGet("userId").(string)
	refreshToken := c.MustGet("refreshToken").(string)

	record, err := tokens.Find(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up refresh token"})
		return
	}
	if record == nil || record.Revoked {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is not recognized"})
		return
	}

	if err := services.CompareRefreshToken(record.TokenHash, refreshToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token does not match"})
		return
	}

	user, err := users.FindByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User no longer exists"})
		return
	}

	accessToken, err := tokenService.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": gin.H{
			"accessToken": accessToken,
		},
	})
}
