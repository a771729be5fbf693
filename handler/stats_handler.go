package handler

import (
	"log"

	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	userRepo        *repository.UserRepo
	classesRepo     *repository.ClassesRepo
	assignmentsRepo *repository.AssignmentsRepo
	studyRepo       *repository.StudySessionsRepo
	streaksRepo     *repository.StreaksRepo
	warningsRepo    *repository.WarningsRepo
	sessionRepo     *repository.SessionRepo
}

func NewStatsHandler(
	userRepo *repository.UserRepo,
	classesRepo *repository.ClassesRepo,
	assignmentsRepo *repository.AssignmentsRepo,
	studyRepo *repository.StudySessionsRepo,
	streaksRepo *repository.StreaksRepo,
	warningsRepo *repository.WarningsRepo,
	sessionRepo *repository.SessionRepo,
) *StatsHandler {
	return &StatsHandler{
		userRepo:        userRepo,
		classesRepo:     classesRepo,
		assignmentsRepo: assignmentsRepo,
		studyRepo:       studyRepo,
		streaksRepo:     streaksRepo,
		warningsRepo:    warningsRepo,
		sessionRepo:     sessionRepo,
	}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	user, err := h.userRepo.FindUser(userID.(string))
	if err != nil {
		log.Printf("Error fetching user %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	var stats model.PlannerStats
	today := model.Today()

	classCount, err := h.classesRepo.CountUserClasses(ctx, userID.(string))
	if err != nil {
		log.Printf("Error counting classes: %v", err)
		utils.InternalError(c, "Failed to count classes")
		return
	}
	stats.ClassStats.Total = classCount

	pending, graded, err := h.assignmentsRepo.CountByGradedState(ctx, userID.(string))
	if err != nil {
		log.Printf("Error counting assignments: %v", err)
		utils.InternalError(c, "Failed to count assignments")
		return
	}
	stats.AssignmentStats.Pending = pending
	stats.AssignmentStats.Graded = graded
	stats.AssignmentStats.Total = pending + graded

	dueSoon, err := h.assignmentsRepo.GetPendingInRange(ctx, userID.(string), today, today.AddDays(usecase.RiskListingDays))
	if err != nil {
		log.Printf("Error fetching due-soon assignments: %v", err)
		utils.InternalError(c, "Failed to fetch due-soon assignments")
		return
	}
	stats.AssignmentStats.DueSoon = len(dueSoon)

	weekSessions, weekMinutes, err := h.studyRepo.SumAll(ctx, userID.(string), today.AddDays(-7), today)
	if err != nil {
		log.Printf("Error summing study sessions: %v", err)
		utils.InternalError(c, "Failed to sum study sessions")
		return
	}
	stats.StudyStats.SessionsThisWeek = weekSessions
	stats.StudyStats.MinutesThisWeek = weekMinutes

	streak, err := h.streaksRepo.GetStreak(ctx, userID.(string), model.StreakStudy)
	if err != nil {
		log.Printf("Error fetching streak: %v", err)
		utils.InternalError(c, "Failed to fetch streak")
		return
	}
	if streak != nil {
		stats.StudyStats.CurrentStreak = streak.CurrentStreak
		stats.StudyStats.LongestStreak = streak.LongestStreak
	}

	unread, err := h.warningsRepo.CountUnread(ctx, userID.(string))
	if err != nil {
		log.Printf("Error counting warnings: %v", err)
		utils.InternalError(c, "Failed to count warnings")
		return
	}
	stats.WarningStats.Unread = unread

	sessions, err := h.sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		log.Printf("Error getting sessions: %v", err)
		utils.InternalError(c, "Failed to get sessions")
		return
	}

	stats.ActivityStats.AccountCreated = user.CreatedAt
	stats.ActivityStats.ActiveSessions = len(sessions)

	if len(sessions) > 0 {
		lastActive := sessions[0].LastActivityAt
		for _, session := range sessions {
			if session.LastActivityAt.After(lastActive) {
				lastActive = session.LastActivityAt
			}
		}
		stats.ActivityStats.LastActive = lastActive
	}

	utils.Success(c, gin.H{
		"stats": stats,
	})
}

// GetSystemStats reports process-level health for the admin dashboard.
func (h *StatsHandler) GetSystemStats(c *gin.Context) {
	utils.Success(c, gin.H{
		"cpu_percent":    utils.GetCPUUsage(),
		"memory_percent": utils.GetMemoryUsage(),
		"mongo":          utils.GetMongoMetrics(),
	})
}
