package handler

import (
	"strconv"
	"strings"

	"main/dto"
	"main/middleware"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AssignmentsHandler struct {
	service *usecase.AssignmentsService
}

func NewAssignmentsHandler(service *usecase.AssignmentsService) *AssignmentsHandler {
	return &AssignmentsHandler{service: service}
}

func (h *AssignmentsHandler) CreateAssignment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	assignment := &model.Assignment{
		UserID:     userID.(string),
		ClassID:    req.ClassID,
		Name:       req.Name,
		Category:   req.Category,
		DueDate:    req.DueDate,
		Weight:     req.Weight,
		Difficulty: req.Difficulty,
	}

	if err := h.service.CreateAssignment(c.Request.Context(), assignment); err != nil {
		if strings.Contains(err.Error(), "invalid difficulty") ||
			strings.Contains(err.Error(), "required") ||
			err.Error() == "class not found" {
			utils.BadRequest(c, err.Error())
			return
		}
		middleware.TrackError("db")
		utils.InternalError(c, err.Error())
		return
	}

	middleware.TrackAssignmentOperation("create")
	invalidateReportCache(c.Request.Context(), userID.(string))

	utils.Created(c, dto.ToAssignmentResponse(assignment, usecase.EstimatedHours(assignment)))
}

// ListAssignments supports three views: everything, pending due within
// ?upcoming=N days, or ?graded=true.
func (h *AssignmentsHandler) ListAssignments(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var assignments []*model.Assignment
	var err error
	switch {
	case c.Query("upcoming") != "":
		days, parseErr := strconv.Atoi(c.Query("upcoming"))
		if parseErr != nil || days <= 0 {
			utils.BadRequest(c, "upcoming must be a positive integer")
			return
		}
		assignments, err = h.service.GetUpcoming(c.Request.Context(), userID.(string), days)
	case c.Query("graded") == "true":
		assignments, err = h.service.GetGraded(c.Request.Context(), userID.(string))
	default:
		assignments, err = h.service.GetUserAssignments(c.Request.Context(), userID.(string))
	}
	if err != nil {
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to fetch assignments")
		return
	}

	responses := make([]dto.AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = dto.ToAssignmentResponse(a, usecase.EstimatedHours(a))
	}
	utils.Success(c, gin.H{
		"assignments": responses,
		"count":       len(responses),
	})
}

func (h *AssignmentsHandler) UpdateAssignment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Assignment{
		Name:       req.Name,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if req.DueDate != nil {
		updates.DueDate = *req.DueDate
	}
	if req.Weight != nil {
		updates.Weight = *req.Weight
	}

	assignment, err := h.service.UpdateAssignment(c.Request.Context(), c.Param("id"), userID.(string), updates)
	if err != nil {
		switch err.Error() {
		case "assignment not found":
			utils.NotFound(c, err.Error())
		case "invalid difficulty level", "class not found":
			utils.BadRequest(c, err.Error())
		default:
			middleware.TrackError("db")
			utils.InternalError(c, "Failed to update assignment")
		}
		return
	}

	middleware.TrackAssignmentOperation("update")
	invalidateReportCache(c.Request.Context(), userID.(string))

	utils.Success(c, dto.ToAssignmentResponse(assignment, usecase.EstimatedHours(assignment)))
}

// RecordGrade scores an assignment, which removes it from workload and
// risk calculations.
func (h *AssignmentsHandler) RecordGrade(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req dto.RecordGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	err := h.service.RecordGrade(c.Request.Context(), c.Param("id"), userID.(string), req.Score, req.MaxScore)
	if err != nil {
		switch err.Error() {
		case "assignment not found":
			utils.NotFound(c, err.Error())
		case "score cannot be negative", "max score must be positive":
			utils.BadRequest(c, err.Error())
		default:
			middleware.TrackError("db")
			utils.InternalError(c, "Failed to record grade")
		}
		return
	}

	middleware.TrackAssignmentOperation("grade")
	invalidateReportCache(c.Request.Context(), userID.(string))

	utils.Success(c, gin.H{"message": "Grade recorded"})
}

func (h *AssignmentsHandler) DeleteAssignment(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	if err := h.service.DeleteAssignment(c.Request.Context(), c.Param("id"), userID.(string)); err != nil {
		if err.Error() == "assignment not found" {
			utils.NotFound(c, err.Error())
			return
		}
		middleware.TrackError("db")
		utils.InternalError(c, "Failed to delete assignment")
		return
	}

	middleware.TrackAssignmentOperation("delete")
	invalidateReportCache(c.Request.Context(), userID.(string))

	utils.Success(c, gin.H{"message": "Assignment deleted"})
}
