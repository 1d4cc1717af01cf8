// Package routes holds the canonical route path table for the onboarding UI.
package routes

import "fmt"

const (
	// Auth routes
	SignUp        = "/"
	SignIn        = "/sign-in"
	OTPVerify     = "/otp-verify"
	ResetPassword = "/reset-password"

	// Dashboard routes
	Dashboard     = "/dashboard"
	PendingIssues = "/dashboard/issues"

	// Form overview
	Form = "/form"

	// Company profile
	CompanyProfileInformation = "/form/company-profile/information"
	CompanyProfileDocument    = "/form/company-profile/document"
	CompanyProfileAddress     = "/form/company-profile/address"
	CompanyProfileCapital     = "/form/company-profile/capital"

	// Ownership
	OwnershipPersonalDocument    = "/form/ownership/personal-document"
	OwnershipPersonalInformation = "/form/ownership/personal-information"
	OwnershipPersonalAddress     = "/form/ownership/personal-address"
	OwnershipAdditionalPartners  = "/form/ownership/additional-partners"

	// Partners
	PartnerManagement  = "/form/partners/management"
	AddPartner         = "/form/partners/add/info"
	AddPartnerAddress  = "/form/partners/add/address"
	AddPartnerDocument = "/form/partners/add/document"

	// Transaction
	TransactionProfile = "/form/transaction/transaction-profile"

	// Bank operation
	BankOperationDetails = "/form/bank-operation/details"

	// Product
	ProductOfferings = "/form/product/offerings"

	// Regulatory
	RegulatoryDeclarations = "/form/regulatory/regulatory-declarations"
)

// IssueDetails returns the detail route for a pending issue.
func IssueDetails(issueID string) string {
	return fmt.Sprintf("/dashboard/issues/%s", issueID)
}

// PartnerDetails returns the detail route for an existing partner.
func PartnerDetails(partnerID string) string {
	return fmt.Sprintf("/form/ownership/partner/%s", partnerID)
}
