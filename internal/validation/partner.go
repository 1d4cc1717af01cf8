// Package validation checks partner drafts before submission. The
// information and address steps are validated against JSON schemas; the
// document step carries file-kind and size rules a schema cannot
// express, so it is checked directly.
package validation

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"onboarding-engine/internal/models"
)

const (
	// Upload caps, in bytes.
	MaxOwnerPhotoSize = 4 << 20
	MaxSignatureSize  = 2 << 20

	DocumentTypeNID      = "1"
	DocumentTypePassport = "2"
)

type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors,omitempty"`
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// GetErrorMessages returns a simple list of error messages.
func (vr *ValidationResult) GetErrorMessages() []string {
	messages := make([]string, len(vr.Errors))
	for i, err := range vr.Errors {
		messages[i] = fmt.Sprintf("%s: %s", err.Field, err.Message)
	}
	return messages
}

// HasErrors checks if validation has errors for a specific field.
func (vr *ValidationResult) HasErrors(field string) bool {
	for _, err := range vr.Errors {
		if err.Field == field {
			return true
		}
	}
	return false
}

const informationSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"firstName": {"type": "string", "minLength": 1},
		"lastName": {"type": "string", "minLength": 1},
		"gender": {"type": "string", "minLength": 1},
		"dateOfBirth": {"type": "string", "format": "date-time"},
		"nationality": {"type": "string", "minLength": 1},
		"fatherName": {"type": "string", "minLength": 1},
		"motherName": {"type": "string", "minLength": 1},
		"spouseName": {"type": "string"},
		"residentStatus": {"type": "string", "minLength": 1},
		"occupation": {"type": "string", "minLength": 1},
		"relationWithOrganization": {"type": "string", "minLength": 1},
		"sourceOfFunds": {"type": "string", "minLength": 1},
		"monthlyIncome": {"type": "string", "minLength": 1},
		"IDType": {"type": "string", "enum": ["1", "2"]},
		"idNumber": {"type": "string", "minLength": 1},
		"IDExpiryDate": {"type": "string", "format": "date-time"},
		"tin": {"type": "string", "minLength": 1}
	},
	"required": [
		"firstName", "lastName", "gender", "dateOfBirth", "nationality",
		"fatherName", "motherName", "residentStatus", "occupation",
		"relationWithOrganization", "sourceOfFunds", "monthlyIncome",
		"IDType", "idNumber", "tin"
	],
	"if": {"properties": {"IDType": {"const": "2"}}},
	"then": {"required": ["IDExpiryDate"]}
}`

const addressSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"presentDivision": {"type": "string", "minLength": 1},
		"presentDistrict": {"type": "string", "minLength": 1},
		"presentThana": {"type": "string", "minLength": 1},
		"presentVillage": {"type": "string", "minLength": 1},
		"presentPostCode": {"type": "string", "minLength": 1},
		"presentPostOffice": {"type": "string", "minLength": 1},
		"presentAddress": {"type": "string", "minLength": 1},
		"isSameAsPermanent": {"type": "string", "enum": ["yes", "no"]},
		"permanentDivision": {"type": "string", "minLength": 1},
		"permanentDistrict": {"type": "string", "minLength": 1},
		"permanentThana": {"type": "string", "minLength": 1},
		"permanentVillage": {"type": "string", "minLength": 1},
		"permanentPostCode": {"type": "string", "minLength": 1},
		"permanentPostOffice": {"type": "string", "minLength": 1},
		"permanentAddress": {"type": "string", "minLength": 1}
	},
	"required": [
		"presentDivision", "presentDistrict", "presentThana",
		"presentVillage", "presentPostCode", "presentPostOffice",
		"presentAddress", "isSameAsPermanent"
	],
	"if": {"properties": {"isSameAsPermanent": {"const": "no"}}},
	"then": {"required": [
		"permanentDivision", "permanentDistrict", "permanentThana",
		"permanentVillage", "permanentPostCode", "permanentPostOffice",
		"permanentAddress"
	]}
}`

// ValidateInformation checks the personal-info step. A passport holder
// must carry an ID expiry date; an NID holder need not.
func ValidateInformation(draft models.PartnerInformationDraft) (*ValidationResult, error) {
	return validateAgainst(informationSchema, draft)
}

// ValidateAddress checks the address step. The permanent block is
// required only when the draft says it differs from the present one.
func ValidateAddress(draft models.PartnerAddressDraft) (*ValidationResult, error) {
	return validateAgainst(addressSchema, draft)
}

func validateAgainst(schema string, document interface{}) (*ValidationResult, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(document),
	)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	out := &ValidationResult{Valid: result.Valid()}
	for _, desc := range result.Errors() {
		field := desc.Field()
		// Required errors point at the parent object; surface the
		// missing property instead.
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		out.Errors = append(out.Errors, ValidationError{
			Field:   field,
			Message: desc.Description(),
			Code:    desc.Type(),
		})
	}
	return out, nil
}

// ValidateDocument checks the document step: the file set required by
// the document type, plus the size caps on pending uploads.
func ValidateDocument(draft models.PartnerDocumentDraft) *ValidationResult {
	var errs []ValidationError

	switch draft.DocumentType {
	case DocumentTypeNID:
		errs = append(errs, requireFile("nidFrontPhoto", draft.NIDFrontPhoto)...)
		errs = append(errs, requireFile("nidBackPhoto", draft.NIDBackPhoto)...)
	case DocumentTypePassport:
		errs = append(errs, requireFile("passportPhoto", draft.PassportPhoto)...)
		errs = append(errs, requireFile("workPermitPhoto", draft.WorkPermitPhoto)...)
	default:
		errs = append(errs, ValidationError{
			Field:   "documentType",
			Message: fmt.Sprintf("documentType must be %q or %q", DocumentTypeNID, DocumentTypePassport),
			Code:    "INVALID_ENUM_VALUE",
		})
	}

	errs = append(errs, requireFile("ownerPhoto", draft.OwnerPhoto)...)
	errs = append(errs, requireFile("signature", draft.Signature)...)
	errs = append(errs, checkFileSize("ownerPhoto", draft.OwnerPhoto, MaxOwnerPhotoSize)...)
	errs = append(errs, checkFileSize("signature", draft.Signature, MaxSignatureSize)...)

	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

// ValidateDraft checks the whole draft for submission, prefixing each
// error field with its step.
func ValidateDraft(draft models.PartnerDraft) (*ValidationResult, error) {
	info, err := ValidateInformation(draft.Information)
	if err != nil {
		return nil, err
	}
	addr, err := ValidateAddress(draft.Address)
	if err != nil {
		return nil, err
	}
	doc := ValidateDocument(draft.Document)

	var errs []ValidationError
	for _, e := range info.Errors {
		e.Field = "information." + e.Field
		errs = append(errs, e)
	}
	for _, e := range addr.Errors {
		e.Field = "address." + e.Field
		errs = append(errs, e)
	}
	for _, e := range doc.Errors {
		e.Field = "document." + e.Field
		errs = append(errs, e)
	}
	return &ValidationResult{Valid: len(errs) == 0, Errors: errs}, nil
}

func requireFile(field string, file *models.FileData) []ValidationError {
	if file.IsPending() || file.IsSubmitted() {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: "required file missing",
		Code:    "REQUIRED_FIELD_MISSING",
	}}
}

func checkFileSize(field string, file *models.FileData, max int64) []ValidationError {
	// Submitted files were sized at upload time; only pending ones count.
	if !file.IsPending() || file.Size <= max {
		return nil
	}
	return []ValidationError{{
		Field:   field,
		Message: fmt.Sprintf("file exceeds %d byte limit", max),
		Code:    "MAX_SIZE_VIOLATION",
	}}
}
