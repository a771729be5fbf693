package utils

import (
	"sync/atomic"
	"time"
)

type MongoMetrics struct {
	ActiveConnections int64
	LastCheckTime     time.Time
}

var mongoMetrics MongoMetrics

func IncrementActiveConnections() {
	atomic.AddInt64(&mongoMetrics.ActiveConnections, 1)
}

func DecrementActiveConnections() {
	atomic.AddInt64(&mongoMetrics.ActiveConnections, -1)
}

func GetMongoMetrics() MongoMetrics {
	return MongoMetrics{
		ActiveConnections: atomic.LoadInt64(&mongoMetrics.ActiveConnections),
		LastCheckTime:     time.Now(),
	}
}
