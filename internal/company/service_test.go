package company

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"onboarding-engine/internal/common/logger"
	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

type stubFetcher struct {
	record *models.CompanyRecord
	err    error
	calls  int
}

func (f *stubFetcher) FetchRecord(ctx context.Context) (*models.CompanyRecord, error) {
	f.calls++
	return f.record, f.err
}

func recordWithProfileDone() *models.CompanyRecord {
	return &models.CompanyRecord{
		ID: "company-001",
		ProfileCompletion: &models.ProfileCompletion{
			CompanyProfile: &models.CompanyProfileCompletion{
				CompanyInformation: true,
				CompanyDocument:    true,
				CompanyAddress:     true,
				CompanyCapital:     true,
			},
		},
	}
}

// ==========================
// Refresh Tests
// ==========================

func TestService_StartsWithEmptyGraph(t *testing.T) {
	svc := NewService(&stubFetcher{}, logger.NewNoOpLogger(), nil)

	assert.Nil(t, svc.Record())
	menus := svc.Menus()
	require.NotEmpty(t, menus)

	profile := menu.FindByID(menus, menu.MenuCompanyProfile)
	require.NotNil(t, profile)
	assert.Equal(t, 0, profile.Complete)
}

func TestService_Refresh_RebuildsGraphFromRecord(t *testing.T) {
	fetcher := &stubFetcher{record: recordWithProfileDone()}
	svc := NewService(fetcher, logger.NewNoOpLogger(), nil)

	err := svc.Refresh(context.Background())

	require.NoError(t, err)
	require.NotNil(t, svc.Record())
	profile := menu.FindByID(svc.Menus(), menu.MenuCompanyProfile)
	require.NotNil(t, profile)
	assert.Equal(t, 100, profile.Complete)
	assert.False(t, svc.IsCalculating())
	assert.False(t, svc.LastRefresh().IsZero())
}

func TestService_Refresh_FailureKeepsPreviousSnapshot(t *testing.T) {
	fetcher := &stubFetcher{record: recordWithProfileDone()}
	svc := NewService(fetcher, logger.NewNoOpLogger(), nil)
	require.NoError(t, svc.Refresh(context.Background()))

	fetcher.err = errors.New("upstream down")
	err := svc.Refresh(context.Background())

	require.Error(t, err)
	require.NotNil(t, svc.Record())
	profile := menu.FindByID(svc.Menus(), menu.MenuCompanyProfile)
	require.NotNil(t, profile)
	assert.Equal(t, 100, profile.Complete)
	assert.False(t, svc.IsCalculating())
}

func TestService_Refresh_NilRecordYieldsLockedGraph(t *testing.T) {
	svc := NewService(&stubFetcher{record: nil}, logger.NewNoOpLogger(), nil)

	require.NoError(t, svc.Refresh(context.Background()))

	ownership := menu.FindByID(svc.Menus(), menu.MenuOwnership)
	require.NotNil(t, ownership)
	assert.True(t, ownership.Disabled)
}

// ==========================
// SubmitStep Tests
// ==========================

func TestService_SubmitStep_RefreshesAfterSubmit(t *testing.T) {
	fetcher := &stubFetcher{record: recordWithProfileDone()}
	svc := NewService(fetcher, logger.NewNoOpLogger(), nil)

	submitted := false
	err := svc.SubmitStep(context.Background(), func(ctx context.Context) error {
		submitted = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, submitted)
	assert.Equal(t, 1, fetcher.calls)
	require.NotNil(t, svc.Record())
}

func TestService_SubmitStep_FailureSkipsRefresh(t *testing.T) {
	fetcher := &stubFetcher{record: recordWithProfileDone()}
	svc := NewService(fetcher, logger.NewNoOpLogger(), nil)

	err := svc.SubmitStep(context.Background(), func(ctx context.Context) error {
		return errors.New("validation rejected")
	})

	require.Error(t, err)
	assert.Equal(t, 0, fetcher.calls)
	assert.Nil(t, svc.Record())
}
