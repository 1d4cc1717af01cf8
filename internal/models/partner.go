package models

// Partner is a committed partner record as returned by the backend, the
// result of a completed add-partner wizard run.
type Partner struct {
	UniqueID     string `json:"uniqueId"`
	IsSignatory  bool   `json:"isSignatory"`
	SharePercent int    `json:"sharePercent"`

	// Personal information
	FirstName                string       `json:"firstName"`
	LastName                 string       `json:"lastName"`
	Gender                   *SelectValue `json:"gender,omitempty"`
	DateOfBirth              string       `json:"dateOfBirth,omitempty"`
	Nationality              *SelectValue `json:"nationality,omitempty"`
	FatherName               string       `json:"fatherName,omitempty"`
	MotherName               string       `json:"motherName,omitempty"`
	SpouseName               string       `json:"spouseName,omitempty"`
	ResidentStatus           bool         `json:"residentStatus"`
	Occupation               string       `json:"occupation,omitempty"`
	RelationWithOrganization string       `json:"relationWithOrganization,omitempty"`
	SourceOfFunds            *SelectValue `json:"sourceOfFunds,omitempty"`
	MonthlyIncome            string       `json:"monthlyIncome,omitempty"`
	IDType                   *SelectValue `json:"IDType,omitempty"`
	IDNumber                 string       `json:"IDNumber,omitempty"`
	IDExpiryDate             string       `json:"IDExpiryDate,omitempty"`
	TINNumber                string       `json:"tinNumber,omitempty"`

	// Address information
	PresentAddress   *Address `json:"presentAddress,omitempty"`
	PermanentAddress *Address `json:"permanentAddress,omitempty"`
	IsSameAddress    bool     `json:"isSamePresentAndPermanentAddressPartner"`

	// Document information
	NIDFrontPhoto  string `json:"nidFrontPhoto,omitempty"`
	NIDBackPhoto   string `json:"nidBackPhoto,omitempty"`
	PassportPhoto  string `json:"passportPhoto,omitempty"`
	OwnerPhoto     string `json:"ownerPhoto,omitempty"`
	SignaturePhoto string `json:"signaturePhoto,omitempty"`
}
