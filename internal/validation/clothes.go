package validation

import (
	"encoding/json"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/sbilibin2017/gw-wardrobe/internal/models"
)

// Clothing item request field names.
const (
	FieldName  = "name"
	FieldColor = "color"
	FieldSize  = "size"
	FieldPhoto = "photo"
)

// DecodeClothes checks the field types of a clothing item body. Missing fields
// are left empty for ValidateClothes to report. A null color or size counts as
// omitted.
func DecodeClothes(raw []byte) (models.ClothesRequest, Report) {
	var req models.ClothesRequest
	report := Report{}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		report.Add(SchemaField, MsgInvalidInput)
		return req, report
	}

	targets := map[string]*string{
		FieldName:  &req.Name,
		FieldColor: &req.Color,
		FieldSize:  &req.Size,
		FieldPhoto: &req.Photo,
	}
	for key, value := range obj {
		target, known := targets[key]
		switch {
		case !known:
			report.Add(key, MsgUnknownField)
		case isJSONNull(value):
			if key == FieldName || key == FieldPhoto {
				report.Add(key, MsgNullField)
			}
		default:
			if err := json.Unmarshal(value, target); err != nil {
				report.Add(key, MsgNotString)
			}
		}
	}

	return req, report
}

// ValidateClothes checks a clothing item request. Color and size may be empty,
// in which case the defaults apply.
func ValidateClothes(req models.ClothesRequest) Report {
	colors := make([]interface{}, 0, len(models.Colors))
	colorNames := make([]string, 0, len(models.Colors))
	for _, c := range models.Colors {
		colors = append(colors, string(c))
		colorNames = append(colorNames, string(c))
	}
	sizes := make([]interface{}, 0, len(models.Sizes))
	sizeNames := make([]string, 0, len(models.Sizes))
	for _, s := range models.Sizes {
		sizes = append(sizes, string(s))
		sizeNames = append(sizeNames, string(s))
	}

	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name,
			validation.Required.Error(MsgMissingField),
			validation.RuneLength(1, 255).Error("Length must be between 1 and 255."),
		),
		validation.Field(&req.Color,
			validation.In(colors...).Error("Must be one of: "+strings.Join(colorNames, ", ")+"."),
		),
		validation.Field(&req.Size,
			validation.In(sizes...).Error("Must be one of: "+strings.Join(sizeNames, ", ")+"."),
		),
		validation.Field(&req.Photo,
			validation.Required.Error(MsgMissingField),
			validation.RuneLength(1, 255).Error("Length must be between 1 and 255."),
		),
	)
	return reportFromErrors(err)
}
