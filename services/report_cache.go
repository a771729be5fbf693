package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

// Workload reports are pure functions of a user's data and the current
// date, so they cache cleanly: the key embeds the date and every write
// to assignments or study sessions invalidates the user's entry.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// GlobalReportCache is nil when Redis is unavailable; callers fall back
// to recomputing reports.
var GlobalReportCache *ReportCache

func NewReportCache(redisURL string, ttl time.Duration) (*ReportCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &ReportCache{client: client, ttl: ttl}, nil
}

func reportKey(userID string, day model.Date) string {
	return fmt.Sprintf("workload_report:%s:%s", userID, day)
}

// Get returns the cached report for the user and day, or nil on a miss.
func (rc *ReportCache) Get(ctx context.Context, userID string, day model.Date) (*model.WorkloadReport, error) {
	data, err := rc.client.Get(ctx, reportKey(userID, day)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached report: %w", err)
	}

	var report model.WorkloadReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached report: %w", err)
	}
	return &report, nil
}

func (rc *ReportCache) Set(ctx context.Context, userID string, day model.Date, report *model.WorkloadReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return rc.client.Set(ctx, reportKey(userID, day), data, rc.ttl).Err()
}

// Invalidate drops every cached report for the user, any day.
func (rc *ReportCache) Invalidate(ctx context.Context, userID string) error {
	pattern := fmt.Sprintf("workload_report:%s:*", userID)

	var cursor uint64
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return fmt.Errorf("failed to scan report keys: %w", err)
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete report keys: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}

func (rc *ReportCache) Close() error {
	return rc.client.Close()
}
