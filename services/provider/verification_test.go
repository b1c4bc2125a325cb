package provider

import (
	"testing"

	"homeserve/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memProviderRepo keeps a single provider in memory.
type memProviderRepo struct {
	provider *models.Provider
}

func (r *memProviderRepo) Create(p *models.Provider) error { r.provider = p; return nil }
func (r *memProviderRepo) Update(p *models.Provider) error { r.provider = p; return nil }
func (r *memProviderRepo) Delete(string) error             { return nil }
func (r *memProviderRepo) GetByID(id string) (*models.Provider, error) {
	if r.provider != nil && r.provider.ID == id {
		return r.provider, nil
	}
	return nil, nil
}
func (r *memProviderRepo) GetByEmail(string) (*models.Provider, error)      { return nil, nil }
func (r *memProviderRepo) ListByCategory(string) ([]models.Provider, error) { return nil, nil }
func (r *memProviderRepo) ListUnverified() ([]models.Provider, error)       { return nil, nil }
func (r *memProviderRepo) UpdateSetDocument(string, bson.M) error           { return nil }

func newVerificationEnv(docs ...models.VerificationDocument) *DefaultProviderService {
	return &DefaultProviderService{Repo: &memProviderRepo{provider: &models.Provider{
		ID:        "prov-1",
		Profile:   models.ProviderProfile{Name: "Pipeworks"},
		Offerings: []models.ServiceOffering{{Category: models.CategoryPlumbing, HourlyPrice: 60, Tier: models.TierStandard}},
		Documents: docs,
	}}}
}

func TestSubmitDocumentForcesPendingStatus(t *testing.T) {
	svc := newVerificationEnv()

	updated, err := svc.SubmitDocument("prov-1", models.VerificationDocument{
		Name:      "trade-license",
		Reference: "store://docs/abc",
		Status:    models.DocumentApproved, // client-supplied status is ignored
	})
	require.NoError(t, err)

	require.Len(t, updated.Documents, 1)
	assert.Equal(t, models.DocumentPending, updated.Documents[0].Status)
	assert.False(t, updated.Documents[0].SubmittedAt.IsZero())
}

func TestDecideVerificationApprovalFlow(t *testing.T) {
	svc := newVerificationEnv(
		models.VerificationDocument{Name: "id-card", Status: models.DocumentPending},
		models.VerificationDocument{Name: "trade-license", Status: models.DocumentPending},
	)

	updated, err := svc.DecideVerification("prov-1", "id-card", models.DocumentApproved, "")
	require.NoError(t, err)
	assert.False(t, updated.Profile.Verified, "one document still pending")

	updated, err = svc.DecideVerification("prov-1", "trade-license", models.DocumentApproved, "looks good")
	require.NoError(t, err)
	assert.True(t, updated.Profile.Verified)
}

func TestDecideVerificationRejectionClearsVerified(t *testing.T) {
	svc := newVerificationEnv(
		models.VerificationDocument{Name: "id-card", Status: models.DocumentApproved},
	)

	updated, err := svc.DecideVerification("prov-1", "id-card", models.DocumentRejected, "illegible scan")
	require.NoError(t, err)
	assert.False(t, updated.Profile.Verified)
	assert.Equal(t, "illegible scan", updated.Documents[0].Note)
}

func TestDecideVerificationGuards(t *testing.T) {
	svc := newVerificationEnv(models.VerificationDocument{Name: "id-card", Status: models.DocumentPending})

	_, err := svc.DecideVerification("prov-1", "id-card", "MAYBE", "")
	assert.Error(t, err)

	_, err = svc.DecideVerification("prov-1", "passport", models.DocumentApproved, "")
	assert.Error(t, err)
}
