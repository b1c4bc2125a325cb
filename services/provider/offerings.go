// File: services/provider/offerings.go
package provider

import (
	"fmt"
	"strings"
	"time"

	"homeserve/models"
)

// NormalizeOfferings fills in the tier for offerings that do not carry
// one. Descriptions mentioning "consultation" historically marked the
// discounted consultation variant; that convention is resolved to the
// typed tier here, once, so nothing downstream sniffs descriptions.
func NormalizeOfferings(offerings []models.ServiceOffering) []models.ServiceOffering {
	normalized := make([]models.ServiceOffering, len(offerings))
	for i, offering := range offerings {
		switch offering.Tier {
		case models.TierStandard, models.TierConsultation:
			// Explicit tier wins.
		default:
			if strings.Contains(strings.ToLower(offering.Description), "consultation") {
				offering.Tier = models.TierConsultation
			} else {
				offering.Tier = models.TierStandard
			}
		}
		normalized[i] = offering
	}
	return normalized
}

// UpdateOfferings replaces the provider's offerings list. Existing
// session drafts keep their snapshot; new sessions index into this list.
func (s *DefaultProviderService) UpdateOfferings(id string, offerings []models.ServiceOffering) (*models.Provider, error) {
	if len(offerings) == 0 {
		return nil, fmt.Errorf("at least one service offering is required")
	}
	for i, offering := range offerings {
		if offering.HourlyPrice <= 0 {
			return nil, fmt.Errorf("offering %d must have a positive hourly price", i)
		}
	}

	provider, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}

	provider.Offerings = NormalizeOfferings(offerings)
	if err := s.Repo.Update(provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// SubmitDocument attaches a pending verification document reference.
func (s *DefaultProviderService) SubmitDocument(id string, doc models.VerificationDocument) (*models.Provider, error) {
	provider, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}

	doc.Status = models.DocumentPending
	doc.SubmittedAt = time.Now()
	provider.Documents = append(provider.Documents, doc)

	if err := s.Repo.Update(provider); err != nil {
		return nil, err
	}
	return provider, nil
}

// ListPendingVerification returns providers awaiting a document review.
func (s *DefaultProviderService) ListPendingVerification() ([]models.Provider, error) {
	return s.Repo.ListUnverified()
}

// DecideVerification approves or rejects a submitted document. A
// provider is marked verified once every document is approved and at
// least one exists.
func (s *DefaultProviderService) DecideVerification(id, documentName, decision, note string) (*models.Provider, error) {
	if decision != models.DocumentApproved && decision != models.DocumentRejected {
		return nil, fmt.Errorf("unknown verification decision %q", decision)
	}

	provider, err := s.GetProviderByID(id)
	if err != nil {
		return nil, err
	}

	found := false
	allApproved := len(provider.Documents) > 0
	for i := range provider.Documents {
		if provider.Documents[i].Name == documentName {
			provider.Documents[i].Status = decision
			provider.Documents[i].Note = note
			found = true
		}
		if provider.Documents[i].Status != models.DocumentApproved {
			allApproved = false
		}
	}
	if !found {
		return nil, fmt.Errorf("document %q not found for provider %s", documentName, id)
	}

	provider.Profile.Verified = allApproved
	if err := s.Repo.Update(provider); err != nil {
		return nil, err
	}
	return provider, nil
}
