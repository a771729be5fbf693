package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

type stubAssignmentStore struct {
	assignments []*model.Assignment
}

func (s *stubAssignmentStore) GetPendingInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.Assignment, error) {
	return s.assignments, nil
}

type stubSessionStore struct{}

func (s *stubSessionStore) GetInRange(ctx context.Context, userID string, from, to model.Date) ([]*model.StudySession, error) {
	return nil, nil
}

func (s *stubSessionStore) SumByClass(ctx context.Context, userID, classID string, from, to model.Date) (int, int, error) {
	return 0, 0, nil
}

type stubSettingsStore struct{}

func (s *stubSettingsStore) GetSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	return model.DefaultSettings(userID), nil
}

func workloadTestRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	today := model.Today()
	service := usecase.NewWorkloadService(
		&stubAssignmentStore{assignments: []*model.Assignment{
			{
				AssignmentID: "a1",
				UserID:       "user-1",
				ClassID:      "class-1",
				ClassName:    "Calculus",
				Name:         "Problem Set 1",
				DueDate:      today.AddDays(2).Time(),
				Weight:       1,
				Difficulty:   model.DifficultyMedium,
			},
		}},
		&stubSessionStore{},
		&stubSettingsStore{},
	)
	h := NewWorkloadHandler(service, nil)

	router := gin.New()
	router.GET("/api/workload/report", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", "user-1")
		}
		h.GetWorkloadReport(c)
	})
	return router
}

func TestGetWorkloadReport(t *testing.T) {
	router := workloadTestRouter(true)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/workload/report", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var response struct {
		Data model.WorkloadReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}

	if len(response.Data.WorkloadByDay) != usecase.ProjectionDays {
		t.Errorf("report has %d days, want %d", len(response.Data.WorkloadByDay), usecase.ProjectionDays)
	}
	if response.Data.Summary.TotalAssignments != 1 {
		t.Errorf("summary counts %d assignments, want 1", response.Data.Summary.TotalAssignments)
	}
	if response.Data.Summary.BalanceStatus == "" {
		t.Error("summary is missing a balance status")
	}
}

func TestGetWorkloadReportRequiresAuth(t *testing.T) {
	router := workloadTestRouter(false)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/workload/report", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401 without user context", w.Code)
	}
}
