package menu

import (
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"
)

// Resume links walk a menu's own flags from last to first and land on
// the first step whose predecessor is done but which is not itself done.
// All flags true falls through to the first step (view/edit mode); none
// true is a fresh start on the first step.

func companyProfileResumeLink(p models.CompanyProfileCompletion) string {
	switch {
	case p.CompanyCapital:
		return routes.CompanyProfileInformation
	case p.CompanyAddress:
		return routes.CompanyProfileCapital
	case p.CompanyDocument:
		return routes.CompanyProfileAddress
	case p.CompanyInformation:
		return routes.CompanyProfileDocument
	default:
		return routes.CompanyProfileInformation
	}
}

func ownershipResumeLink(o models.OwnershipCompletion) string {
	switch {
	case o.OwnerPermanentAddress:
		return routes.OwnershipPersonalDocument
	case o.PersonalInformation:
		return routes.OwnershipPersonalAddress
	case o.PersonalDocument:
		return routes.OwnershipPersonalInformation
	default:
		return routes.OwnershipPersonalDocument
	}
}
