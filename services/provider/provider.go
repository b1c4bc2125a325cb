// File: services/provider/provider.go
package provider

import (
	"context"
	"fmt"
	"time"

	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterProvider creates a new provider, generates a token, stores its
// hash, and returns an auth response.
func (s *DefaultProviderService) RegisterProvider(provider models.Provider) (*AuthResponse, error) {
	if provider.Profile.Email == "" || provider.Security.Password == "" {
		return nil, fmt.Errorf("provider email and password are required")
	}
	if provider.Profile.Name == "" {
		return nil, fmt.Errorf("provider name is required")
	}
	if len(provider.Offerings) == 0 {
		return nil, fmt.Errorf("at least one service offering is required")
	}
	for i, offering := range provider.Offerings {
		if offering.HourlyPrice <= 0 {
			return nil, fmt.Errorf("offering %d must have a positive hourly price", i)
		}
	}
	provider.Offerings = NormalizeOfferings(provider.Offerings)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(provider.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	provider.Security.PasswordHash = string(hashedPassword)
	provider.Security.Password = ""

	provider.ID = uuid.New().String()
	now := time.Now()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	existing, err := s.Repo.GetByEmail(provider.Profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing provider: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("provider with email %s already exists", provider.Profile.Email)
	}

	if err := s.Repo.Create(&provider); err != nil {
		return nil, fmt.Errorf("failed to create provider: %w", err)
	}

	token, err := utils.GenerateToken(provider.ID, "provider", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	provider.Security.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(&provider); err != nil {
		return nil, fmt.Errorf("failed to update provider with token hash: %w", err)
	}

	return &AuthResponse{ID: provider.ID, Token: token, Profile: provider.Profile}, nil
}

// AuthenticateProvider verifies credentials and issues a fresh token.
func (s *DefaultProviderService) AuthenticateProvider(email, password string) (*AuthResponse, error) {
	provider, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateProvider: failed to fetch provider", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if provider == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(provider.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(provider.ID, "provider", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}

	provider.Security.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(provider); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	// Refresh the auth cache so the middleware hits Redis first.
	cacheKey := utils.AuthCachePrefix + "provider:" + provider.ID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), cacheKey, provider.Security.TokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache provider token hash", zap.Error(err))
	}

	return &AuthResponse{ID: provider.ID, Token: token, Profile: provider.Profile}, nil
}

// GetProviderByID fetches a provider record.
func (s *DefaultProviderService) GetProviderByID(id string) (*models.Provider, error) {
	provider, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("provider %s not found", id)
	}
	return provider, nil
}

// ListProviders returns public DTOs for the browse screen, optionally
// filtered to one category.
func (s *DefaultProviderService) ListProviders(category string) ([]models.ProviderDTO, error) {
	providers, err := s.Repo.ListByCategory(category)
	if err != nil {
		return nil, err
	}
	dtos := make([]models.ProviderDTO, 0, len(providers))
	for i := range providers {
		dtos = append(dtos, providers[i].ToDTO())
	}
	return dtos, nil
}

// UpdateProfile replaces the provider's public profile fields, keeping
// rating aggregates and the verified flag server-owned.
func (s *DefaultProviderService) UpdateProfile(id string, profile models.ProviderProfile) (*models.Provider, error) {
	provider, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}

	profile.Rating = provider.Profile.Rating
	profile.RatingCount = provider.Profile.RatingCount
	profile.Verified = provider.Profile.Verified
	provider.Profile = profile

	if err := s.Repo.Update(provider); err != nil {
		return nil, err
	}
	return provider, nil
}
