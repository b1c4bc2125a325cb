// File: services/customer/customer.go
package customer

import (
	"context"
	"fmt"
	"time"

	customerRepo "homeserve/database/repository/customer"
	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID    string             `json:"id"`
	Token string             `json:"token"`
	User  models.CustomerDTO `json:"user"`
}

// CustomerService manages customer accounts.
type CustomerService interface {
	RegisterCustomer(customer models.Customer) (*AuthResponse, error)
	AuthenticateCustomer(email, password string) (*AuthResponse, error)
	GetCustomerByID(id string) (*models.Customer, error)
	UpdateCustomer(customer models.Customer) (*models.Customer, error)
	DeleteCustomer(id string) error
}

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

// RegisterCustomer creates a new customer account and issues a token.
func (s *DefaultCustomerService) RegisterCustomer(customer models.Customer) (*AuthResponse, error) {
	if customer.Email == "" || customer.Security.Password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if customer.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	existing, err := s.Repo.GetByEmail(customer.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing customer: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("customer with email %s already exists", customer.Email)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(customer.Security.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	customer.Security.PasswordHash = string(hashedPassword)
	customer.Security.Password = ""

	customer.ID = uuid.New().String()
	if err := s.Repo.Create(&customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	token, err := utils.GenerateToken(customer.ID, "customer", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	customer.Security.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(&customer); err != nil {
		return nil, fmt.Errorf("failed to update customer with token hash: %w", err)
	}

	return &AuthResponse{ID: customer.ID, Token: token, User: customer.ToDTO()}, nil
}

// AuthenticateCustomer verifies credentials and issues a fresh token.
func (s *DefaultCustomerService) AuthenticateCustomer(email, password string) (*AuthResponse, error) {
	customer, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateCustomer: failed to fetch customer", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if customer == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Security.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	token, err := utils.GenerateToken(customer.ID, "customer", 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	customer.Security.TokenHash = utils.HashToken(token)
	if err := s.Repo.Update(customer); err != nil {
		return nil, fmt.Errorf("failed to store token hash: %w", err)
	}

	cacheKey := utils.AuthCachePrefix + "customer:" + customer.ID
	authCache := utils.GetAuthCacheClient()
	if err := authCache.Set(context.Background(), cacheKey, customer.Security.TokenHash, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache customer token hash", zap.Error(err))
	}

	return &AuthResponse{ID: customer.ID, Token: token, User: customer.ToDTO()}, nil
}

// GetCustomerByID fetches a customer record.
func (s *DefaultCustomerService) GetCustomerByID(id string) (*models.Customer, error) {
	customer, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s not found", id)
	}
	return customer, nil
}

// UpdateCustomer updates mutable profile fields.
func (s *DefaultCustomerService) UpdateCustomer(customer models.Customer) (*models.Customer, error) {
	existing, err := s.GetCustomerByID(customer.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = customer.Name
	existing.PhoneNumber = customer.PhoneNumber
	if err := s.Repo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteCustomer removes a customer account.
func (s *DefaultCustomerService) DeleteCustomer(id string) error {
	return s.Repo.Delete(id)
}
