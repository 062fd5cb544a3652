// internal/handlers/auth_handler.go
package handlers

import (
	"log"
	"net/http"
	"strings"

	"smpj_backend/internal/auth"
	"smpj_backend/internal/middleware"
	"smpj_backend/internal/models"
	"smpj_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthHandler struct {
	DB     *gorm.DB
	Tokens *auth.Manager
}

func NewAuthHandler(db *gorm.DB, tokens *auth.Manager) *AuthHandler {
	return &AuthHandler{DB: db, Tokens: tokens}
}

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login accepts credentials as form fields first and falls back to a JSON
// body when they are empty. Every failure maps to the same generic message
// so callers cannot probe which usernames exist.
func (h *AuthHandler) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" {
		var body loginBody
		if err := c.ShouldBindJSON(&body); err == nil {
			username = strings.TrimSpace(body.Username)
			password = body.Password
		}
	}

	if username == "" || password == "" {
		log.Println("login failed: empty username/password")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username atau password salah"})
		return
	}

	var u models.User
	if err := h.DB.Where("username = ?", username).First(&u).Error; err != nil {
		log.Printf("login failed: user %q not found", username)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username atau password salah"})
		return
	}

	if !utils.CheckPassword(u.PasswordHash, password) {
		log.Printf("login failed: wrong password for %q", username)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username atau password salah"})
		return
	}

	signed, err := h.Tokens.Issue(u.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sign token failed"})
		return
	}

	log.Printf("login ok: %s (%s)", u.Username, u.Role)
	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "bearer",
		"role":         u.Role,
		"name":         u.Name,
	})
}

// Me returns the identity behind the presented token.
func (h *AuthHandler) Me(c *gin.Context) {
	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": u.Username,
		"name":     u.Name,
		"role":     u.Role,
	})
}

type changePasswordReq struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req changePasswordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	u, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user"})
		return
	}

	if !utils.CheckPassword(u.PasswordHash, req.OldPassword) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password lama salah"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "hash failed"})
		return
	}

	if err := h.DB.Model(&models.User{}).Where("id = ?", u.ID).
		Update("password_hash", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
