package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"user-admin-service/internal/application"
	"user-admin-service/internal/interface/middleware"
	"user-admin-service/pkg/response"
	"user-admin-service/pkg/validation"
)

// UserHandler exposes the admin user lifecycle over HTTP.
type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=50"`
	Email     string   `json:"email" binding:"required,email,max=100"`
	Password  string   `json:"password" binding:"required,min=8,max=100"`
	RoleNames []string `json:"roleNames" binding:"required,min=1,dive,required"`
}

type updateRequest struct {
	Username  string   `json:"username" binding:"required,min=3,max=50"`
	Email     string   `json:"email" binding:"required,email,max=100"`
	RoleNames []string `json:"roleNames" binding:"required,min=1,dive,required"`
}

// actorFrom reads the acting administrator from the authenticated session
// plus the request metadata recorded on audit rows.
func actorFrom(c *gin.Context) application.Actor {
	id, _ := strconv.ParseInt(c.GetString(middleware.CtxUserIDKey), 10, 64)
	ip := c.GetString(middleware.CtxRealIPKey)
	if ip == "" {
		ip = c.ClientIP()
	}
	return application.Actor{
		ID:        id,
		IP:        ip,
		UserAgent: c.Request.UserAgent(),
	}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}
	res, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		RoleNames: req.RoleNames,
	}, actorFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeJSON(c, response.Success(c, http.StatusCreated, res, "user registered", nil))
}

func (h *UserHandler) Update(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid user id", nil))
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err)))
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), userID, application.UpdateInput{
		Username:  req.Username,
		Email:     req.Email,
		RoleNames: req.RoleNames,
	}, actorFrom(c))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeJSON(c, response.Success(c, http.StatusOK, res, "user updated", nil))
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid user id", nil))
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), userID, actorFrom(c)); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *UserHandler) Get(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "invalid user id", nil))
		return
	}
	u, err := h.Svc.GetUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeJSON(c, response.Success(c, http.StatusOK, gin.H{
		"id":               u.ID,
		"username":         u.Username,
		"email":            u.Email,
		"registrationDate": u.RegistrationDate,
		"lastLogin":        u.LastLogin,
		"avatarUrl":        u.AvatarURL,
		"roleNames":        u.RoleNames(),
		"lastUpdated":      u.UpdatedAt,
	}, "user", nil))
}

func (h *UserHandler) Search(c *gin.Context) {
	if h.Svc.Search == nil {
		writeJSON(c, response.Error[any](c, http.StatusServiceUnavailable, "search not configured", nil))
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	docs, err := h.Svc.Search.Search(c.Request.Context(), c.Query("username"), c.Query("email"), size)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeJSON(c, response.Success(c, http.StatusOK, docs, "users", map[string]any{"count": len(docs)}))
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	actor := actorFrom(c)
	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		writeJSON(c, response.Error[any](c, http.StatusBadRequest, "missing avatar file", nil))
		return
	}
	defer func() { _ = file.Close() }()
	url, err := h.Svc.UploadAvatar(c.Request.Context(), actor.ID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	writeJSON(c, response.Success[any](c, http.StatusOK, gin.H{"avatarUrl": url}, "avatar uploaded", nil))
}
