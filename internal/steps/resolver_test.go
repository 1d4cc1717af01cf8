package steps

import (
	"testing"

	"onboarding-engine/internal/menu"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMenus() []models.Menu {
	return menu.Build(&models.CompanyRecord{})
}

func TestResolve_MiddleStep(t *testing.T) {
	res := Resolve(buildMenus(), menu.MenuCompanyProfile, routes.CompanyProfileDocument, nil)

	require.NotNil(t, res.ActiveMenu)
	assert.Equal(t, menu.MenuCompanyProfile, res.ActiveMenu.ID)

	require.NotNil(t, res.ActiveSubStep)
	assert.Equal(t, "Company Document", res.ActiveSubStep.Title)
	assert.False(t, res.IsLastStep)

	require.NotNil(t, res.NextStep)
	assert.Equal(t, routes.CompanyProfileAddress, res.NextStep.Href)

	require.NotNil(t, res.PreviousStep)
	assert.Equal(t, routes.CompanyProfileInformation, res.PreviousStep.Href)
}

func TestResolve_Boundaries(t *testing.T) {
	menus := buildMenus()

	first := Resolve(menus, menu.MenuCompanyProfile, routes.CompanyProfileInformation, nil)
	require.NotNil(t, first.ActiveSubStep)
	assert.Nil(t, first.PreviousStep)
	require.NotNil(t, first.NextStep)
	assert.Equal(t, routes.CompanyProfileDocument, first.NextStep.Href)

	last := Resolve(menus, menu.MenuCompanyProfile, routes.CompanyProfileCapital, nil)
	require.NotNil(t, last.ActiveSubStep)
	assert.True(t, last.IsLastStep)
	assert.Nil(t, last.NextStep)
	require.NotNil(t, last.PreviousStep)
	assert.Equal(t, routes.CompanyProfileAddress, last.PreviousStep.Href)
}

func TestResolve_SingleStepMenu(t *testing.T) {
	res := Resolve(buildMenus(), menu.MenuBankOperation, routes.BankOperationDetails, nil)

	require.NotNil(t, res.ActiveSubStep)
	assert.True(t, res.IsLastStep)
	assert.Nil(t, res.NextStep)
	assert.Nil(t, res.PreviousStep)
}

func TestResolve_UnknownMenu(t *testing.T) {
	res := Resolve(buildMenus(), 42, routes.CompanyProfileInformation, nil)

	assert.Nil(t, res.ActiveMenu)
	assert.Nil(t, res.ActiveSubStep)
	assert.Empty(t, res.NavigationItems)
	assert.Nil(t, res.NextStep)
	assert.Nil(t, res.PreviousStep)
}

func TestResolve_PathOutsideMenu(t *testing.T) {
	// Mid-navigation: the current path belongs to a different menu.
	res := Resolve(buildMenus(), menu.MenuCompanyProfile, routes.BankOperationDetails, nil)

	require.NotNil(t, res.ActiveMenu)
	assert.Nil(t, res.ActiveSubStep)
	assert.False(t, res.IsLastStep)
	assert.Nil(t, res.NextStep)
	assert.Nil(t, res.PreviousStep)
}

func TestResolve_OverrideNavigation(t *testing.T) {
	custom := []models.SubStep{
		{Title: "Personal Info", Href: routes.AddPartner},
		{Title: "Address", Href: routes.AddPartnerAddress, Disabled: true},
		{Title: "Documents", Href: routes.AddPartnerDocument, Disabled: true},
	}

	// The override wins even when the menu id resolves to a real menu
	// with its own substeps.
	res := Resolve(buildMenus(), menu.MenuCompanyProfile, routes.AddPartnerAddress, custom)

	assert.Equal(t, custom, res.NavigationItems)
	require.NotNil(t, res.ActiveSubStep)
	assert.Equal(t, "Address", res.ActiveSubStep.Title)
	require.NotNil(t, res.NextStep)
	assert.Equal(t, routes.AddPartnerDocument, res.NextStep.Href)
	require.NotNil(t, res.PreviousStep)
	assert.Equal(t, routes.AddPartner, res.PreviousStep.Href)
}

func TestResolve_NilMenusWithOverride(t *testing.T) {
	custom := []models.SubStep{
		{Title: "Only", Href: "/only"},
	}
	res := Resolve(nil, 0, "/only", custom)

	assert.Nil(t, res.ActiveMenu)
	require.NotNil(t, res.ActiveSubStep)
	assert.True(t, res.IsLastStep)
}
