package provider

import (
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	ID      string                 `json:"id"`
	Token   string                 `json:"token"`
	Profile models.ProviderProfile `json:"profile"`
}

// ProviderService manages provider accounts, offerings, and
// verification documents.
type ProviderService interface {
	RegisterProvider(provider models.Provider) (*AuthResponse, error)
	AuthenticateProvider(email, password string) (*AuthResponse, error)
	GetProviderByID(id string) (*models.Provider, error)
	ListProviders(category string) ([]models.ProviderDTO, error)
	UpdateProfile(id string, profile models.ProviderProfile) (*models.Provider, error)
	UpdateOfferings(id string, offerings []models.ServiceOffering) (*models.Provider, error)
	SubmitDocument(id string, doc models.VerificationDocument) (*models.Provider, error)
	ListPendingVerification() ([]models.Provider, error)
	DecideVerification(id, documentName, decision, note string) (*models.Provider, error)
}

// DefaultProviderService implements ProviderService.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
