package validation

import (
	"errors"
	"sort"

	validation "github.com/jellydator/validation"
)

// SchemaField is the report key for errors about the body as a whole.
const SchemaField = "_schema"

// Report maps a field name to every violation found for it.
type Report map[string][]string

// Add appends msgs to field. Nothing is recorded when msgs is empty.
func (r Report) Add(field string, msgs ...string) {
	if len(msgs) == 0 {
		return
	}
	r[field] = append(r[field], msgs...)
}

// Empty reports whether no violation was recorded.
func (r Report) Empty() bool {
	return len(r) == 0
}

// Fields returns the reported field names in sorted order.
func (r Report) Fields() []string {
	fields := make([]string, 0, len(r))
	for f := range r {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// reportFromErrors converts the result of validation.ValidateStruct into a Report.
func reportFromErrors(err error) Report {
	report := Report{}
	if err == nil {
		return report
	}
	var errs validation.Errors
	if !errors.As(err, &errs) {
		report.Add(SchemaField, err.Error())
		return report
	}
	for field, fieldErr := range errs {
		report.Add(field, fieldErr.Error())
	}
	return report
}
