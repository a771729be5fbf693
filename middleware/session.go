package middleware

import (
	"fmt"
	"time"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	sessionCookie     = "session_id"
	sessionLifetime   = 24 * time.Hour
	inactivityTimeout = 48 * time.Hour
)

// SessionMiddleware resolves the session cookie, expires stale sessions
// and refreshes the activity timestamp on live ones. Requests without a
// cookie pass through; token auth still applies downstream.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			clearSessionCookie(c)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > inactivityTimeout {
			session.IsActive = false
			sessionRepo.UpdateSession(session)
			clearSessionCookie(c)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		sessionRepo.UpdateSession(session)
		c.Set("session", session)
		c.Next()
	}
}

// CreateSession records a new device session for the user and sets the
// session cookie. The display name comes from the user agent so the
// active-sessions list is readable.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) error {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)
	now := time.Now()

	session := &model.Session{
		SessionID:      uuid.New().String(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		CreatedAt:      now,
		ExpiresAt:      now.Add(sessionLifetime),
		LastActivityAt: now,
		IPAddress:      c.ClientIP(),
		IsActive:       true,
	}
	if err := sessionRepo.CreateSession(session); err != nil {
		return err
	}

	c.SetCookie(sessionCookie, session.SessionID, int(sessionLifetime.Seconds()), "/", "", true, true)
	return nil
}

func clearSessionCookie(c *gin.Context) {
	c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
}
