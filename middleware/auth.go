package middleware

import (
	"context"
	"net/http"
	"strings"

	customerRepo "homeserve/database/repository/customer"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// tokenHashLookup resolves the stored token hash for a subject ID.
type tokenHashLookup func(id string) (string, error)

// authMiddleware validates a Bearer token for the expected role,
// checking the Redis auth cache first and falling back to the database.
// On success the subject ID is stored in the context under ctxKey.
func authMiddleware(role, ctxKey string, lookup tokenHashLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		subjectID, tokenRole, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subjectID == "" || tokenRole != role {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + role + ":" + subjectID
		authCache := utils.GetAuthCacheClient()

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
				return
			}
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			c.Set(ctxKey, subjectID)
			c.Next()
			return
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache lookup failed; falling back to DB", zap.Error(err))
		}

		storedHash, err := lookup(subjectID)
		if err != nil || storedHash == "" || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token mismatch"})
			return
		}

		_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		c.Set(ctxKey, subjectID)
		c.Next()
	}
}

// CustomerAuthMiddleware guards customer-only endpoints.
func CustomerAuthMiddleware(repo customerRepo.CustomerRepository) gin.HandlerFunc {
	return authMiddleware("customer", "customerID", func(id string) (string, error) {
		customer, err := repo.GetByID(id)
		if err != nil || customer == nil {
			return "", err
		}
		return customer.Security.TokenHash, nil
	})
}

// ProviderAuthMiddleware guards provider-only endpoints.
func ProviderAuthMiddleware(repo providerRepo.ProviderRepository) gin.HandlerFunc {
	return authMiddleware("provider", "providerID", func(id string) (string, error) {
		provider, err := repo.GetByID(id)
		if err != nil || provider == nil {
			return "", err
		}
		return provider.Security.TokenHash, nil
	})
}
