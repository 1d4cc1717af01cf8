// Package menu derives the onboarding menu graph from a company record.
//
// The graph is an ordered, hand-authored table of seven visible sections
// plus the hidden add-partner pseudo-menu, not a generic dependency
// solver: each node's disabled flag references one specific flag of the
// previous node, and each node's substeps gate linearly on the preceding
// step's flag. The whole slice is rebuilt from scratch on every record
// refresh; stale nodes are discarded wholesale.
package menu

import (
	"onboarding-engine/internal/completion"
	"onboarding-engine/internal/models"
	"onboarding-engine/internal/routes"
)

// Menu node IDs. ID 8 is the hidden add-partner pseudo-menu; it sits
// between All Partners and Transaction Details in build order.
const (
	MenuCompanyProfile = 1
	MenuOwnership      = 2
	MenuAllPartners    = 3
	MenuTransaction    = 4
	MenuBankOperation  = 5
	MenuProducts       = 6
	MenuRegulatory     = 7
	MenuAddPartner     = 8
)

// Build derives the full menu slice from record. A nil record or a
// record without completion flags yields the fresh-start graph: only the
// first menu enabled, everything at 0%.
func Build(record *models.CompanyRecord) []models.Menu {
	pc := record.Completion()
	profile := pc.Profile()
	ownership := pc.Ownership()
	transaction := pc.Transaction()
	bank := pc.Bank()
	products := pc.Products()

	submissionStatus := ""
	if record != nil {
		submissionStatus = record.SubmissionStatus
	}

	return []models.Menu{
		{
			ID:          MenuCompanyProfile,
			Name:        "Company Profile",
			Description: "Upload your Trade license and other company documents to start with an application.",
			Icon:        "building",
			Complete: completion.Percent([]bool{
				profile.CompanyInformation,
				profile.CompanyDocument,
				profile.CompanyAddress,
				profile.CompanyCapital,
			}),
			Link:       companyProfileResumeLink(profile),
			Disabled:   false,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:       "Company Information",
					Href:        routes.CompanyProfileInformation,
					Disabled:    false,
					Girding:     "Let's start with your",
					Description: "We need your company basic information to begin the application.",
				},
				{
					Title:       "Company Document",
					Href:        routes.CompanyProfileDocument,
					Disabled:    !profile.CompanyInformation,
					Description: "First we need your company basic information to begin the application",
				},
				{
					Title:       "Company Address",
					Href:        routes.CompanyProfileAddress,
					Disabled:    !profile.CompanyDocument,
					Girding:     "Let's Capture your company",
					Description: "We need address details of your company from where you are operating",
				},
				{
					Title:    "Company Capital",
					Href:     routes.CompanyProfileCapital,
					Disabled: !profile.CompanyAddress,
					Girding:  "One more step, we need your company",
				},
			},
		},
		{
			ID:          MenuOwnership,
			Name:        "Company Ownership Details",
			Description: "Add details of key individuals such as the sole proprietor, owners, and those with power of attorney (PoA).",
			Icon:        "ownership",
			Complete: completion.Percent([]bool{
				ownership.PersonalDocument,
				ownership.PersonalInformation,
				ownership.OwnerPermanentAddress,
			}),
			Link:       ownershipResumeLink(ownership),
			Disabled:   !profile.CompanyCapital,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:    "Personal Document",
					Href:     routes.OwnershipPersonalDocument,
					Disabled: !profile.CompanyCapital,
				},
				{
					Title:    "Personal Information",
					Href:     routes.OwnershipPersonalInformation,
					Disabled: !ownership.PersonalDocument,
				},
				{
					Title:    "Personal Address",
					Href:     routes.OwnershipPersonalAddress,
					Disabled: !ownership.PersonalInformation,
				},
			},
		},
		{
			ID:          MenuAllPartners,
			Name:        "All Partners",
			Description: "Manage and view details of all partners associated with your company.",
			Icon:        "ownership",
			// Outlier rule: this section is complete only once the
			// company has more than two managed partners.
			Complete: completion.Percent([]bool{
				record.PartnerCount() > 2,
			}),
			Link:       routes.PartnerManagement,
			Disabled:   !ownership.OwnerPermanentAddress,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:    "Partner Management",
					Href:     routes.PartnerManagement,
					Disabled: !ownership.OwnerPermanentAddress,
					Girding:  "Manage your",
				},
			},
		},
		{
			ID:   MenuAddPartner,
			Name: "Add New Partner",
			// Hidden pseudo-menu: reachable only through an explicit
			// action on the partner list, never from the step overview.
			Complete:   0,
			Link:       routes.AddPartner,
			Disabled:   !ownership.OwnerPermanentAddress,
			ShowInList: false,
			SubMenus: []models.SubStep{
				{
					Title:   "Personal Info",
					Href:    routes.AddPartner,
					Girding: "Let's fill your Partner",
				},
				{
					Title:   "Address",
					Href:    routes.AddPartnerAddress,
					Girding: "Fill your Partner",
				},
				{
					Title:   "Documents",
					Href:    routes.AddPartnerDocument,
					Girding: "Fill your Partner",
				},
			},
		},
		{
			ID:          MenuTransaction,
			Name:        "Transaction Details",
			Description: "Help us to know your business relations with your top customers and suppliers.",
			Icon:        "transaction",
			Complete: completion.Percent([]bool{
				transaction.TransactionDetails,
			}),
			Link:       routes.TransactionProfile,
			Disabled:   !ownership.OwnerPermanentAddress,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:    "Transaction Profile",
					Href:     routes.TransactionProfile,
					Disabled: !ownership.PersonalInformation,
					Girding:  "Let's fill your",
				},
			},
		},
		{
			ID:          MenuBankOperation,
			Name:        "Bank Operation Details",
			Description: "Define your bank account operating instructions as per the MOA and Board Resolution.",
			Icon:        "bank",
			Complete: completion.Percent([]bool{
				bank.BankDetails,
			}),
			Link:       routes.BankOperationDetails,
			Disabled:   !transaction.TransactionDetails,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:    "Bank Details",
					Href:     routes.BankOperationDetails,
					Disabled: !transaction.TransactionDetails,
					Girding:  "Let's fill your",
				},
			},
		},
		{
			ID:          MenuProducts,
			Name:        "Product Selection & Add-ons",
			Description: "Pick your suitable business banking product(s) and powerful add-ons to enjoy all our services.",
			Icon:        "product",
			Complete: completion.Percent([]bool{
				products.Products,
			}),
			Link:       routes.ProductOfferings,
			Disabled:   !bank.BankDetails,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:    "Product Offerings",
					Href:     routes.ProductOfferings,
					Disabled: !bank.BankDetails,
					Girding:  "Let's fill your",
				},
			},
		},
		{
			ID:          MenuRegulatory,
			Name:        "Regulatory Declarations",
			Description: "Provide minimum information of your FATCA, CRS, and Sanctions declarations.",
			Icon:        "regulatory",
			Complete: completion.Percent([]bool{
				submissionStatus == models.SubmissionPending,
			}),
			Link:       routes.RegulatoryDeclarations,
			Disabled:   !products.Products,
			ShowInList: true,
			SubMenus: []models.SubStep{
				{
					Title:       "Regulatory Declarations",
					Href:        routes.RegulatoryDeclarations,
					Disabled:    !products.Products,
					Girding:     "Let's declare your",
					Description: "Compliance Information",
				},
			},
		},
	}
}

// FindByID returns the menu with the given id, or nil.
func FindByID(menus []models.Menu, id int) *models.Menu {
	for i := range menus {
		if menus[i].ID == id {
			return &menus[i]
		}
	}
	return nil
}

// FindByPath returns the menu owning the substep at path, plus the
// substep itself, or nils when no menu claims the path.
func FindByPath(menus []models.Menu, path string) (*models.Menu, *models.SubStep) {
	for i := range menus {
		for j := range menus[i].SubMenus {
			if menus[i].SubMenus[j].Href == path {
				return &menus[i], &menus[i].SubMenus[j]
			}
		}
	}
	return nil, nil
}
