package validation

import (
	"bytes"
	"encoding/json"

	"github.com/sbilibin2017/gw-wardrobe/internal/models"
)

// Registration request field names.
const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldFullName = "full_name"
	FieldPhone    = "phone"
)

// Schema error messages.
const (
	MsgInvalidInput = "Invalid input type."
	MsgMissingField = "Missing data for required field."
	MsgNullField    = "Field may not be null."
	MsgNotString    = "Not a valid string."
	MsgUnknownField = "Unknown field."
)

var requiredRegistrationFields = []string{FieldEmail, FieldPassword, FieldFullName}

// DecodeRegistration checks the shape of a registration body: it must be a JSON
// object whose required fields are present strings, with no unknown keys.
// Content rules are not applied. A non-empty Report means the request is rejected.
func DecodeRegistration(raw []byte) (models.RegisterRequest, Report) {
	var req models.RegisterRequest
	report := Report{}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		report.Add(SchemaField, MsgInvalidInput)
		return req, report
	}

	targets := map[string]*string{
		FieldEmail:    &req.Email,
		FieldPassword: &req.Password,
		FieldFullName: &req.FullName,
	}
	for _, field := range requiredRegistrationFields {
		value, ok := obj[field]
		switch {
		case !ok:
			report.Add(field, MsgMissingField)
		case isJSONNull(value):
			report.Add(field, MsgNullField)
		default:
			if err := json.Unmarshal(value, targets[field]); err != nil {
				report.Add(field, MsgNotString)
			}
		}
	}

	if value, ok := obj[FieldPhone]; ok && !isJSONNull(value) {
		var phone string
		if err := json.Unmarshal(value, &phone); err != nil {
			report.Add(FieldPhone, MsgNotString)
		} else {
			req.Phone = &phone
		}
	}

	for key := range obj {
		if _, known := targets[key]; !known && key != FieldPhone {
			report.Add(key, MsgUnknownField)
		}
	}

	return req, report
}

// ValidateRegistration applies every content rule to req and collects all
// violations. It assumes req came from DecodeRegistration with an empty report.
func ValidateRegistration(req models.RegisterRequest) Report {
	report := Report{}
	report.Add(FieldEmail, collect(req.Email, runeLength(1, EmailMaxLength), stringRule(ValidateEmail))...)
	report.Add(FieldPassword, collect(req.Password, passwordRules()...)...)
	report.Add(FieldFullName, collect(req.FullName,
		runeLength(FullNameMinLength, FullNameMaxLength),
		stringRule(ValidateFullName),
	)...)
	return report
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
