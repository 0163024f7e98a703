package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/domain/models"
	"github.com/Muhammad-AtifKhan/ZuGo2-sub000/internal/repositories"
)

const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login issues a JWT for a valid email/username + password pair.
func Login(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		var req loginRequest
		if !BindJSONOrError(c, &req) {
			return
		}

		repo := repositories.UserRepository{}
		user, err := repo.GetByLogin(req.Email)
		if err != nil {
			if domain.IsNotFound(err) {
				RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
				return
			}
			RespondDomainError(c, err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			RespondError(c, http.StatusUnauthorized, "wrong email/username or password", nil)
			return
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"user_id": user.ID,
			"role":    user.Role,
			"exp":     time.Now().Add(tokenTTL).Unix(),
		})
		tokenString, err := token.SignedString(key)
		if err != nil {
			RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": tokenString, "user": user})
	}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// Register creates a passenger account by default; driver and transporter
// accounts are provisioned with an explicit role.
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "password must be at least 8 characters", nil)
		return
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	switch role {
	case "":
		role = domain.RolePassenger
	case domain.RolePassenger, domain.RoleDriver, domain.RoleTransporter:
	default:
		RespondError(c, http.StatusBadRequest, "unknown role", nil)
		return
	}

	repo := repositories.UserRepository{}
	exists, err := repo.Exists(req.Email, req.Username)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if exists {
		RespondError(c, http.StatusConflict, "email or username already registered", nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		Role:         role,
	}
	id, err := repo.Insert(user)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	user.ID = id
	user.Status = "active"

	c.JSON(http.StatusCreated, gin.H{"message": "registration successful", "user": user})
}
