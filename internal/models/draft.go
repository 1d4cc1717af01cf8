package models

import "time"

// PartnerInformationDraft is the personal-info step of the add-partner
// wizard. The two date fields serialize as ISO strings and are
// reconstituted to time values when a persisted draft is hydrated.
type PartnerInformationDraft struct {
	FirstName                string     `json:"firstName"`
	LastName                 string     `json:"lastName"`
	Gender                   string     `json:"gender"`
	DateOfBirth              *time.Time `json:"dateOfBirth,omitempty"`
	Nationality              string     `json:"nationality"`
	FatherName               string     `json:"fatherName"`
	MotherName               string     `json:"motherName"`
	SpouseName               string     `json:"spouseName,omitempty"`
	ResidentStatus           string     `json:"residentStatus"`
	Occupation               string     `json:"occupation"`
	RelationWithOrganization string     `json:"relationWithOrganization"`
	SourceOfFunds            string     `json:"sourceOfFunds"`
	MonthlyIncome            string     `json:"monthlyIncome"`
	IDType                   string     `json:"IDType"`
	IDNumber                 string     `json:"idNumber"`
	IDExpiryDate             *time.Time `json:"IDExpiryDate,omitempty"`
	TIN                      string     `json:"tin"`
}

// PartnerAddressDraft is the address step of the add-partner wizard.
// Permanent fields are required only when IsSameAsPermanent is "no".
type PartnerAddressDraft struct {
	PresentDivision   string `json:"presentDivision"`
	PresentDistrict   string `json:"presentDistrict"`
	PresentThana      string `json:"presentThana"`
	PresentVillage    string `json:"presentVillage"`
	PresentPostCode   string `json:"presentPostCode"`
	PresentPostOffice string `json:"presentPostOffice"`
	PresentAddress    string `json:"presentAddress"`

	IsSameAsPermanent string `json:"isSameAsPermanent"`

	PermanentDivision   string `json:"permanentDivision,omitempty"`
	PermanentDistrict   string `json:"permanentDistrict,omitempty"`
	PermanentThana      string `json:"permanentThana,omitempty"`
	PermanentVillage    string `json:"permanentVillage,omitempty"`
	PermanentPostCode   string `json:"permanentPostCode,omitempty"`
	PermanentPostOffice string `json:"permanentPostOffice,omitempty"`
	PermanentAddress    string `json:"permanentAddress,omitempty"`
}

// PartnerDocumentDraft is the document step of the add-partner wizard.
// DocumentType "1" requires NID front/back, "2" requires passport and
// work permit; owner photo and signature are always required on submit.
type PartnerDocumentDraft struct {
	DocumentType    string    `json:"documentType"`
	PassportPhoto   *FileData `json:"passportPhoto,omitempty"`
	WorkPermitPhoto *FileData `json:"workPermitPhoto,omitempty"`
	NIDFrontPhoto   *FileData `json:"nidFrontPhoto,omitempty"`
	NIDBackPhoto    *FileData `json:"nidBackPhoto,omitempty"`
	OwnerPhoto      *FileData `json:"ownerPhoto,omitempty"`
	Signature       *FileData `json:"signature,omitempty"`
}

// PartnerDraft is the transient state of the add-partner wizard. It is
// owned by the client session and never sent to the server until the
// final step submits it as a whole.
type PartnerDraft struct {
	Information PartnerInformationDraft `json:"information"`
	Address     PartnerAddressDraft     `json:"address"`
	Document    PartnerDocumentDraft    `json:"document"`
}

// EmptyPartnerDraft returns the zero draft, with the address step's
// same-as-permanent selector defaulted to "yes" as the form does.
func EmptyPartnerDraft() PartnerDraft {
	return PartnerDraft{
		Address: PartnerAddressDraft{IsSameAsPermanent: "yes"},
	}
}
