package handler

import (
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ClassesHandler struct {
	repo *repository.ClassesRepo
}

func NewClassesHandler(repo *repository.ClassesRepo) *ClassesHandler {
	return &ClassesHandler{repo: repo}
}

func (h *ClassesHandler) CreateClass(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var class model.Class
	if err := c.ShouldBindJSON(&class); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	class.ClassID = uuid.New().String()
	class.UserID = userID.(string)
	now := time.Now()
	class.CreatedAt = now
	class.UpdatedAt = now

	if err := h.repo.CreateClass(c.Request.Context(), &class); err != nil {
		utils.InternalError(c, "Failed to create class")
		return
	}

	utils.Created(c, class)
}

func (h *ClassesHandler) ListClasses(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	classes, err := h.repo.GetUserClasses(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch classes")
		return
	}

	utils.Success(c, gin.H{
		"classes": classes,
		"count":   len(classes),
	})
}

func (h *ClassesHandler) UpdateClass(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var updates model.Class
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.repo.UpdateClass(c.Request.Context(), c.Param("id"), userID.(string), &updates); err != nil {
		if err.Error() == "class not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to update class")
		return
	}

	utils.Success(c, gin.H{"message": "Class updated"})
}

func (h *ClassesHandler) DeleteClass(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.repo.DeleteClass(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if err.Error() == "class not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete class")
		return
	}

	utils.Success(c, gin.H{"message": "Class deleted"})
}
