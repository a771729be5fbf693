package services

import (
	"context"
	"fmt"
	"time"

	"main/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

type RedisTokenBlacklist struct {
	Client *redis.Client
}

// TokenBlacklist is the global instance; nil means logout invalidation
// is disabled (tokens expire naturally).
var TokenBlacklist *RedisTokenBlacklist

func NewTokenBlacklist(redisURL string) (*RedisTokenBlacklist, error) {
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

	return &RedisTokenBlacklist{Client: client}, nil
}

// BlacklistTokens voids an access/refresh token pair until they expire.
func BlacklistTokens(accessToken, refreshToken string) error {
	if TokenBlacklist == nil {
		return fmt.Errorf("token blacklist not initialized")
	}
	if err := TokenBlacklist.blacklistToken(accessToken, "access"); err != nil {
		return err
	}
	return TokenBlacklist.blacklistToken(refreshToken, "refresh")
}

func (tb *RedisTokenBlacklist) blacklistToken(tokenString, tokenType string) error {
	// Expired tokens are fine to blacklist; parse errors beyond that are not.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(utils.JWTSecretKey), nil
	})
	if err != nil && token == nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	expiration := time.Now().Add(24 * time.Hour)
	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		if exp, ok := claims["exp"].(float64); ok {
			expiration = time.Unix(int64(exp), 0)
		}
	}

	ttl := time.Until(expiration)
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s:%s", tokenType, tokenString)
	return tb.Client.Set(context.Background(), key, "true", ttl).Err()
}

// IsTokenBlacklisted checks both blacklists in one round trip.
func IsTokenBlacklisted(tokenString string) bool {
	if TokenBlacklist == nil {
		return false
	}

	ctx := context.Background()
	pipe := TokenBlacklist.Client.Pipeline()
	accessCmd := pipe.Exists(ctx, fmt.Sprintf("blacklist:access:%s", tokenString))
	refreshCmd := pipe.Exists(ctx, fmt.Sprintf("blacklist:refresh:%s", tokenString))
	if _, err := pipe.Exec(ctx); err != nil {
		return false
	}
	return accessCmd.Val() > 0 || refreshCmd.Val() > 0
}

func (tb *RedisTokenBlacklist) Close() error {
	return tb.Client.Close()
}
