// Package models holds the shared data model for the onboarding engine.
package models

// SubmissionStatus values reported by the backend for a company application.
const (
	SubmissionPending   = "PENDING"
	SubmissionOnProcess = "ON_PROCESS"
	SubmissionApproved  = "APPROVED"
	SubmissionRejected  = "REJECTED"
)

// SelectValue is a key/value pair used by option-backed form fields.
type SelectValue struct {
	Key   int    `json:"key"`
	Value string `json:"value"`
}

// Address is a resolved address block as returned by the server.
type Address struct {
	Division       *SelectValue `json:"division,omitempty"`
	District       *SelectValue `json:"district,omitempty"`
	Thana          *SelectValue `json:"thana,omitempty"`
	Village        string       `json:"village,omitempty"`
	AddressLine    string       `json:"address,omitempty"`
	PostCode       int          `json:"postCode,omitempty"`
	PostOffice     string       `json:"postOffice,omitempty"`
	LandLineNumber string       `json:"landLineNumber,omitempty"`
}

// CompanyProfileCompletion holds the per-step flags of the company profile menu.
type CompanyProfileCompletion struct {
	CompanyInformation bool `json:"COMPANY_INFORMATION"`
	CompanyDocument    bool `json:"COMPANY_DOCUMENT"`
	CompanyAddress     bool `json:"COMPANY_ADDRESS"`
	CompanyCapital     bool `json:"COMPANY_CAPITAL"`
}

// OwnershipCompletion holds the per-step flags of the ownership menu.
type OwnershipCompletion struct {
	PersonalDocument      bool `json:"PERSONAL_DOCUMENT"`
	PersonalInformation   bool `json:"PERSONAL_INFORMATION"`
	OwnerPermanentAddress bool `json:"OWNER_PERMANENT_ADDRESS"`
}

// TransactionCompletion holds the single transaction-details flag.
type TransactionCompletion struct {
	TransactionDetails bool `json:"TRANSACTION_DETAILS"`
}

// BankCompletion holds the single bank-details flag.
type BankCompletion struct {
	BankDetails bool `json:"BANK_DETAILS"`
}

// ProductsCompletion holds the single product-selection flag.
type ProductsCompletion struct {
	Products bool `json:"PRODUCTS"`
}

// ProfileCompletion is the server-authoritative set of completion flags.
// Every group is optional; the backend omits groups the company has never
// touched. Only the server mutates these flags, in response to a successful
// step submission.
type ProfileCompletion struct {
	CompanyProfile     *CompanyProfileCompletion `json:"COMPANY_PROFILE,omitempty"`
	CompanyOwnership   *OwnershipCompletion      `json:"COMPANY_OWNERSHIP,omitempty"`
	TransactionDetails *TransactionCompletion    `json:"TRANSACTION_DETAILS,omitempty"`
	BankDetails        *BankCompletion           `json:"BANK_DETAILS,omitempty"`
	ProductsAddOns     *ProductsCompletion       `json:"PRODUCTS_ADD_ONES,omitempty"`
}

// Nil-safe group accessors. A missing group reads as all-false.

func (p *ProfileCompletion) Profile() CompanyProfileCompletion {
	if p == nil || p.CompanyProfile == nil {
		return CompanyProfileCompletion{}
	}
	return *p.CompanyProfile
}

func (p *ProfileCompletion) Ownership() OwnershipCompletion {
	if p == nil || p.CompanyOwnership == nil {
		return OwnershipCompletion{}
	}
	return *p.CompanyOwnership
}

func (p *ProfileCompletion) Transaction() TransactionCompletion {
	if p == nil || p.TransactionDetails == nil {
		return TransactionCompletion{}
	}
	return *p.TransactionDetails
}

func (p *ProfileCompletion) Bank() BankCompletion {
	if p == nil || p.BankDetails == nil {
		return BankCompletion{}
	}
	return *p.BankDetails
}

func (p *ProfileCompletion) Products() ProductsCompletion {
	if p == nil || p.ProductsAddOns == nil {
		return ProductsCompletion{}
	}
	return *p.ProductsAddOns
}

// ProductEntry is one product or service offered by the company.
type ProductEntry struct {
	ProductOrServiceName string `json:"productOrServiceName"`
	ProductDetails       string `json:"productDetails"`
	WebsiteLink          string `json:"websiteLink,omitempty"`
}

// AdditionalPartner is a partner recorded on the ownership form itself,
// distinct from the partners managed through the add-partner wizard.
type AdditionalPartner struct {
	DocumentType    *SelectValue `json:"documentType,omitempty"`
	PassportPhoto   string       `json:"passportPhoto,omitempty"`
	WorkPermitPhoto string       `json:"workPermitPhoto,omitempty"`
	NIDFrontPhoto   string       `json:"nidFrontPhoto,omitempty"`
	NIDBackPhoto    string       `json:"nidBackPhoto,omitempty"`
	OwnerPhoto      string       `json:"ownerPhoto,omitempty"`
	Role            string       `json:"role,omitempty"`
	FullName        string       `json:"fullName,omitempty"`
	DateOfBirth     string       `json:"dateOfBirth,omitempty"`
	DateOfIssue     string       `json:"dateOfIssue,omitempty"`
	DateOfExpiry    string       `json:"dateOfExpiry,omitempty"`
	Nationality     *SelectValue `json:"nationality,omitempty"`
	Gender          *SelectValue `json:"gender,omitempty"`
	SharePercent    string       `json:"sharePercent,omitempty"`
	IDNumber        string       `json:"idNumber,omitempty"`
}

// CompanyRecord is the company/application record fetched from the backend.
// It is read-only input for the engine: the menu graph and gate decisions
// are derived from it, never written back.
type CompanyRecord struct {
	ID            string `json:"id"`
	ApplicationID string `json:"applicationId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmailAddress  string `json:"emailAddress"`
	MobileNumber  string `json:"mobileNumber"`
	BusinessName  string `json:"businessName,omitempty"`

	AccountType      *SelectValue `json:"accountType,omitempty"`
	OrganizationType *SelectValue `json:"organizationType,omitempty"`
	BusinessCategory *SelectValue `json:"businessCategory,omitempty"`

	TradeLicense               string `json:"tradeLicense,omitempty"`
	CertificateOfIncorporation string `json:"certificateOfIncorporation,omitempty"`
	TINOrBIN                   string `json:"TINorBIN,omitempty"`
	MOA                        string `json:"MOA,omitempty"`
	AOA                        string `json:"AOA,omitempty"`

	OfficeType            *SelectValue `json:"officeType,omitempty"`
	SameAsCompanyAddress  *bool        `json:"sameAsCompanyAddress,omitempty"`
	PresentCompanyAddress *Address     `json:"presentCompanyAddress,omitempty"`
	MailingAddress        *Address     `json:"mailingAddress,omitempty"`

	FullName              string       `json:"fullName,omitempty"`
	Designation           string       `json:"designation,omitempty"`
	FatherName            string       `json:"fatherName,omitempty"`
	MotherName            string       `json:"motherName,omitempty"`
	DateOfBirth           string       `json:"dateOfBirth,omitempty"`
	Nationality           *SelectValue `json:"nationality,omitempty"`
	Gender                *SelectValue `json:"gender,omitempty"`
	SharePercent          string       `json:"sharePercent,omitempty"`
	NIDNumber             string       `json:"nidNumber,omitempty"`
	OwnerPresentAddress   *Address     `json:"ownerPresentAddress,omitempty"`
	OwnerPermanentAddress *Address     `json:"ownerPermanentAddress,omitempty"`

	AdditionalPartners []AdditionalPartner `json:"additionalPartners,omitempty"`
	Partners           []Partner           `json:"partners,omitempty"`

	TransactionHighestVolume string       `json:"transactionHighestVolume,omitempty"`
	TransactionAssetRange    *SelectValue `json:"transactionAssetRange,omitempty"`
	TransactionAmount        *SelectValue `json:"transactionAmount,omitempty"`
	TransactionNumber        *SelectValue `json:"transactionNumber,omitempty"`

	BankDetailsBank    *SelectValue `json:"bankDetailsBank,omitempty"`
	BankBranch         *SelectValue `json:"bankBranch,omitempty"`
	BankAccountName    string       `json:"bankAccountName,omitempty"`
	BankAccountNumber  string       `json:"bankAccountNumber,omitempty"`
	BankAutoSettlement *bool        `json:"bankAutoSettlement,omitempty"`

	ProductList []ProductEntry `json:"productList,omitempty"`

	CapitalInvestment      *int64       `json:"capitalInvestment,omitempty"`
	SourceOfFunds          *SelectValue `json:"sourceOfFunds,omitempty"`
	AnnualTurnover         *int64       `json:"annualTurnover,omitempty"`
	ExpectedAnnualTurnover *int64       `json:"expectedAnnualTurnover,omitempty"`

	ProfileCompletion *ProfileCompletion `json:"profileCompletion,omitempty"`

	Status           bool   `json:"status"`
	SubmissionStatus string `json:"submissionStatus,omitempty"`
	CreatedDate      string `json:"createdDate,omitempty"`
	UpdatedDate      string `json:"updatedDate,omitempty"`
}

// Completion returns the profile completion flags, nil-safe on a nil record.
func (c *CompanyRecord) Completion() *ProfileCompletion {
	if c == nil {
		return nil
	}
	return c.ProfileCompletion
}

// PartnerCount returns the number of managed partners, nil-safe.
func (c *CompanyRecord) PartnerCount() int {
	if c == nil {
		return 0
	}
	return len(c.Partners)
}
