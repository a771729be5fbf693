package handler

import (
	"context"
	"log"

	"main/middleware"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type WorkloadHandler struct {
	service *usecase.WorkloadService
	cache   *services.ReportCache
}

func NewWorkloadHandler(service *usecase.WorkloadService, cache *services.ReportCache) *WorkloadHandler {
	return &WorkloadHandler{service: service, cache: cache}
}

// GetWorkloadReport returns the 14-day projection with redistribution
// suggestions and the balance summary. Reports are cached per user per
// day; the cache is invalidated whenever assignments, sessions or
// settings change.
func (h *WorkloadHandler) GetWorkloadReport(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	today := model.Today()
	if h.cache != nil {
		cached, err := h.cache.Get(c.Request.Context(), userID.(string), today)
		if err != nil {
			log.Printf("workload: cache read failed: %v", err)
		}
		if cached != nil {
			middleware.TrackWorkloadReport("cache")
			utils.Success(c, cached)
			return
		}
	}

	dbTimer := middleware.TrackDBOperation("aggregate", "assignments")
	report, err := h.service.GetReportForDate(c.Request.Context(), userID.(string), today)
	dbTimer.ObserveDuration()
	if err != nil {
		middleware.TrackError("workload")
		utils.InternalError(c, "Failed to build workload report")
		return
	}

	if h.cache != nil {
		if err := h.cache.Set(c.Request.Context(), userID.(string), today, report); err != nil {
			log.Printf("workload: cache write failed: %v", err)
		}
	}

	middleware.TrackWorkloadReport("computed")
	utils.Success(c, report)
}

// invalidateReportCache drops a user's cached workload reports after any
// write that would change them. Failures only log; the write succeeded.
func invalidateReportCache(ctx context.Context, userID string) {
	if services.GlobalReportCache == nil {
		return
	}
	if err := services.GlobalReportCache.Invalidate(ctx, userID); err != nil {
		log.Printf("workload: cache invalidation failed for user %s: %v", userID, err)
	}
}
