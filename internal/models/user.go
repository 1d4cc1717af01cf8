package models

// User is the signed-in applicant as persisted in the session namespace.
type User struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}

// TempUser carries the partially-registered applicant across the
// sign-up / OTP-verify hop, before a real User exists.
type TempUser struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
	MobileNumber string `json:"mobileNumber,omitempty"`
}
