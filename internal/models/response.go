package models

// MetaData is the envelope header every backend response carries.
type MetaData struct {
	RequestID     string `json:"requestId,omitempty"`
	TransactionID string `json:"transactionId"`
	EventTime     string `json:"eventTime"`
	Status        bool   `json:"status"`
}

// ErrorInfo is the envelope error block; Reason is empty on success.
type ErrorInfo struct {
	Reason string `json:"reason,omitempty"`
}

// CompanyInfoData wraps the company record inside the envelope's data field.
type CompanyInfoData struct {
	Company *CompanyRecord `json:"company"`
}

// CompanyInfoEnvelope is the full get-company-info response.
type CompanyInfoEnvelope struct {
	MetaData MetaData        `json:"metaData"`
	Data     CompanyInfoData `json:"data"`
	Error    ErrorInfo       `json:"error"`
}
