package handler

import (
	"strings"

	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type ReflectionsHandler struct {
	service *usecase.ReflectionsService
}

func NewReflectionsHandler(service *usecase.ReflectionsService) *ReflectionsHandler {
	return &ReflectionsHandler{service: service}
}

func (h *ReflectionsHandler) CreateReflection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var reflection model.Reflection
	if err := c.ShouldBindJSON(&reflection); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	reflection.UserID = userID.(string)

	if err := h.service.CreateReflection(c.Request.Context(), &reflection); err != nil {
		if strings.Contains(err.Error(), "required") ||
			strings.Contains(err.Error(), "tag") {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to create reflection")
		return
	}

	utils.Created(c, reflection)
}

// ListReflections returns all reflections, or filters by ?class_id= or
// case-insensitive ?q= search over title, content and tags.
func (h *ReflectionsHandler) ListReflections(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var reflections []*model.Reflection
	var err error
	switch {
	case c.Query("q") != "":
		reflections, err = h.service.SearchReflections(c.Request.Context(), userID.(string), c.Query("q"))
	case c.Query("class_id") != "":
		reflections, err = h.service.GetByClass(c.Request.Context(), userID.(string), c.Query("class_id"))
	default:
		reflections, err = h.service.GetUserReflections(c.Request.Context(), userID.(string))
	}
	if err != nil {
		utils.InternalError(c, "Failed to fetch reflections")
		return
	}

	utils.Success(c, gin.H{
		"reflections": reflections,
		"count":       len(reflections),
	})
}

func (h *ReflectionsHandler) UpdateReflection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var updates model.Reflection
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	reflection, err := h.service.UpdateReflection(c.Request.Context(), c.Param("id"), userID.(string), &updates)
	if err != nil {
		switch {
		case err.Error() == "reflection not found":
			utils.NotFound(c, err.Error())
		case strings.Contains(err.Error(), "tag"):
			utils.BadRequest(c, err.Error())
		default:
			utils.InternalError(c, "Failed to update reflection")
		}
		return
	}

	utils.Success(c, reflection)
}

func (h *ReflectionsHandler) DeleteReflection(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeleteReflection(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if err.Error() == "reflection not found" {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to delete reflection")
		return
	}

	utils.Success(c, gin.H{"message": "Reflection deleted"})
}
