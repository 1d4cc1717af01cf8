package gate

import (
	"testing"

	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"

	"github.com/stretchr/testify/assert"
)

func TestPrivate(t *testing.T) {
	tests := []struct {
		name     string
		status   AuthStatus
		expected Decision
	}{
		{name: "pending shows placeholder", status: AuthPending, expected: Decision{Outcome: Loading}},
		{name: "succeeded renders", status: AuthSucceeded, expected: Decision{Outcome: Allow}},
		{name: "idle redirects to root", status: AuthIdle, expected: Decision{Outcome: Redirect, Target: routes.SignUp}},
		{name: "failed redirects to root", status: AuthFailed, expected: Decision{Outcome: Redirect, Target: routes.SignUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Private(tt.status))
		})
	}
}

func TestPublic(t *testing.T) {
	tests := []struct {
		name     string
		status   AuthStatus
		record   *models.CompanyRecord
		expected Decision
	}{
		{
			name:     "pending auth holds",
			status:   AuthPending,
			expected: Decision{Outcome: Loading},
		},
		{
			name:     "authenticated without record holds to avoid flash redirect",
			status:   AuthSucceeded,
			record:   nil,
			expected: Decision{Outcome: Loading},
		},
		{
			name:     "no submission status goes to form",
			status:   AuthSucceeded,
			record:   &models.CompanyRecord{},
			expected: Decision{Outcome: Redirect, Target: routes.Form},
		},
		{
			name:     "submission on process goes to form",
			status:   AuthSucceeded,
			record:   &models.CompanyRecord{SubmissionStatus: models.SubmissionOnProcess},
			expected: Decision{Outcome: Redirect, Target: routes.Form},
		},
		{
			name:     "pending submission goes to dashboard",
			status:   AuthSucceeded,
			record:   &models.CompanyRecord{SubmissionStatus: models.SubmissionPending},
			expected: Decision{Outcome: Redirect, Target: routes.Dashboard},
		},
		{
			name:     "approved goes to dashboard",
			status:   AuthSucceeded,
			record:   &models.CompanyRecord{SubmissionStatus: models.SubmissionApproved},
			expected: Decision{Outcome: Redirect, Target: routes.Dashboard},
		},
		{
			name:     "unauthenticated falls through to public page",
			status:   AuthIdle,
			expected: Decision{Outcome: Allow},
		},
		{
			name:     "failed auth falls through to public page",
			status:   AuthFailed,
			expected: Decision{Outcome: Allow},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Public(tt.status, tt.record))
		})
	}
}

func TestStepAccess(t *testing.T) {
	menus := menu.Build(&models.CompanyRecord{})

	// Deep link into a step of a locked menu bounces to the overview.
	dec := StepAccess(menus, routes.OwnershipPersonalAddress)
	assert.Equal(t, Redirect, dec.Outcome)
	assert.Equal(t, routes.Form, dec.Target)

	// Open step is allowed.
	assert.Equal(t, Decision{Outcome: Allow}, StepAccess(menus, routes.CompanyProfileInformation))

	// Paths outside the wizard are not the gate's business.
	assert.Equal(t, Decision{Outcome: Allow}, StepAccess(menus, routes.Dashboard))
	assert.Equal(t, Decision{Outcome: Allow}, StepAccess(nil, routes.CompanyProfileInformation))
}

func TestStepAccess_LockedSingleStepMenuNeverRedirectsToItself(t *testing.T) {
	menus := menu.Build(nil)

	// Every single-step section's resume link is the step itself, so a
	// locked menu must bounce to the overview, never back into itself.
	for _, path := range []string{
		routes.TransactionProfile,
		routes.BankOperationDetails,
		routes.ProductOfferings,
		routes.RegulatoryDeclarations,
		routes.PartnerManagement,
		routes.AddPartner,
	} {
		dec := StepAccess(menus, path)
		assert.Equal(t, Redirect, dec.Outcome, path)
		assert.Equal(t, routes.Form, dec.Target, path)
		assert.NotEqual(t, path, dec.Target, path)
	}
}

func TestStepAccess_LockedSubstepRedirectsToEnabledStep(t *testing.T) {
	record := &models.CompanyRecord{
		ProfileCompletion: &models.ProfileCompletion{
			CompanyProfile: &models.CompanyProfileCompletion{
				CompanyInformation: true,
			},
		},
	}
	menus := menu.Build(record)

	// Company Profile is enabled with the address step still gated; the
	// redirect lands on the resume step, which must itself be enabled.
	dec := StepAccess(menus, routes.CompanyProfileAddress)
	assert.Equal(t, Redirect, dec.Outcome)
	assert.Equal(t, routes.CompanyProfileDocument, dec.Target)

	follow := StepAccess(menus, dec.Target)
	assert.Equal(t, Allow, follow.Outcome)
}

func TestStepAccess_UnlockedChain(t *testing.T) {
	record := &models.CompanyRecord{
		ProfileCompletion: &models.ProfileCompletion{
			CompanyProfile: &models.CompanyProfileCompletion{
				CompanyInformation: true,
				CompanyDocument:    true,
				CompanyAddress:     true,
				CompanyCapital:     true,
			},
		},
	}
	menus := menu.Build(record)

	assert.Equal(t, Allow, StepAccess(menus, routes.OwnershipPersonalDocument).Outcome)
	// Later ownership steps are still linearly gated.
	assert.Equal(t, Redirect, StepAccess(menus, routes.OwnershipPersonalInformation).Outcome)
}
