package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"tasktracker/dto"
	"tasktracker/model"
	"tasktracker/repository"
	"tasktracker/services"
)

func SignInController(router *gin.Engine, users repository.UserRepository, tokens repository.RefreshTokenRepository, tokenService *services.TokenService) {
	router.POST("/auth/signin", func(c *gin.Context) {
		Signin(c, users, tokens, tokenService)
	})
}

func Signin(c *gin.Context, users repository.UserRepository, tokens repository.RefreshTokenRepository, tokenService *services.TokenService) {
	var request dto.SigninRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := users.FindByEmail(c.Request.Context(), request.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	accessToken, err := tokenService.CreateAccessToken(user.UserID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access token"})
		return
	}

	refreshToken, err := tokenService.CreateRefreshToken(user.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create refresh token"})
		return
	}

	hashedRefreshToken, err := services.HashRefreshToken(refreshToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash refresh token"})
		return
	}

	now := time.Now()
	record := model.RefreshTokenRecord{
		UserID:    user.UserID,
		TokenHash: hashedRefreshToken,
		CreatedAt: now.Unix(),
		Revoked:   false,
		ExpiresIn: int64(tokenService.RefreshTokenDuration.Seconds()),
	}

	if err := tokens.Save(c.Request.Context(), &record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store refresh token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Successfully",
		"token": gin.H{
			"accessToken":  accessToken,
			"refreshToken": refreshToken,
		},
	})
}
