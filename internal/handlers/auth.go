package handlers

import (
	"net/http"

	"studio-backoffice/internal/middleware"
	"studio-backoffice/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Store *storage.Store
	Log   *zap.Logger
}

func NewAuthHandler(store *storage.Store, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Store: store, Log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid JSON body")
		return
	}

	user, err := h.Store.UserByEmail(req.Email)
	if err != nil {
		// same answer for unknown email and wrong password
		respondError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "unauthorized", "invalid credentials")
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	if err := sess.Save(); err != nil {
		h.Log.Error("session save failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "internal", "internal error")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	respondOK(c, http.StatusOK, gin.H{"logged_out": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required")
		return
	}
	respondOK(c, http.StatusOK, gin.H{
		"id":    actor.ID,
		"email": actor.Email,
		"role":  actor.Role,
	})
}
