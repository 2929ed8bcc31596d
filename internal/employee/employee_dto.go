package employee

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Validation messages are part of the wire contract; handlers and tests
// pin the exact strings.
const (
	MsgNameRequired       = "Name is required"
	MsgEmailRequired      = "Email is required"
	MsgEmailInvalid       = "Invalid email format"
	MsgPositionRequired   = "Position is required"
	MsgDepartmentRequired = "Department is required"
	MsgSalaryRequired     = "Salary is required"
	MsgSalaryPositive     = "Salary must be a positive number"
	MsgHireDateRequired   = "Hire date is required"
	MsgHireDateInvalid    = "Invalid hire date format"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var hireDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type ValidationResult struct {
	IsValid bool
	Errors  []string
}

// Validator is the shared contract of the request DTOs.
type Validator interface {
	Validate() ValidationResult
}

// CreateEmployeeRequest is built from the raw decoded request body.
// Sanitization happens on construction: text fields are trimmed, the
// email is lowercased, salary and hire date are coerced from their
// JSON representations. A present-but-unparseable salary or hire date
// keeps its presence flag with a nil value so Validate can tell the
// difference from an absent field.
type CreateEmployeeRequest struct {
	Name       string
	Email      string
	Position   string
	Department string
	Salary     *decimal.Decimal
	HireDate   *time.Time

	salarySet   bool
	hireDateSet bool
}

func NewCreateEmployeeRequest(raw map[string]any) *CreateEmployeeRequest {
	req := &CreateEmployeeRequest{}
	if v, ok := raw["name"]; ok {
		req.Name = sanitizeText(v)
	}
	if v, ok := raw["email"]; ok {
		req.Email = strings.ToLower(sanitizeText(v))
	}
	if v, ok := raw["position"]; ok {
		req.Position = sanitizeText(v)
	}
	if v, ok := raw["department"]; ok {
		req.Department = sanitizeText(v)
	}
	if v, ok := raw["salary"]; ok {
		req.salarySet = true
		req.Salary = coerceDecimal(v)
	}
	if v, ok := raw["hireDate"]; ok {
		req.hireDateSet = true
		req.HireDate = coerceDate(v)
	}
	return req
}

// Validate collects every violation, in the fixed field order name,
// email, position, department, salary, hireDate.
func (r *CreateEmployeeRequest) Validate() ValidationResult {
	var errs []string

	if r.Name == "" {
		errs = append(errs, MsgNameRequired)
	}
	if r.Email == "" {
		errs = append(errs, MsgEmailRequired)
	} else if !emailPattern.MatchString(r.Email) {
		errs = append(errs, MsgEmailInvalid)
	}
	if r.Position == "" {
		errs = append(errs, MsgPositionRequired)
	}
	if r.Department == "" {
		errs = append(errs, MsgDepartmentRequired)
	}
	if !r.salarySet {
		errs = append(errs, MsgSalaryRequired)
	} else if r.Salary == nil || !r.Salary.IsPositive() {
		errs = append(errs, MsgSalaryPositive)
	}
	if !r.hireDateSet {
		errs = append(errs, MsgHireDateRequired)
	} else if r.HireDate == nil {
		errs = append(errs, MsgHireDateInvalid)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// UpdateEmployeeRequest carries only the fields present in the request
// body. A nil pointer means the field was not mentioned; the salary and
// hire date additionally keep presence flags so "mentioned but
// unparseable" is distinguishable from "not mentioned".
type UpdateEmployeeRequest struct {
	Name       *string
	Email      *string
	Position   *string
	Department *string
	Salary     *decimal.Decimal
	HireDate   *time.Time

	salarySet   bool
	hireDateSet bool
}

func NewUpdateEmployeeRequest(raw map[string]any) *UpdateEmployeeRequest {
	req := &UpdateEmployeeRequest{}
	if v, ok := raw["name"]; ok {
		name := sanitizeText(v)
		req.Name = &name
	}
	if v, ok := raw["email"]; ok {
		email := strings.ToLower(sanitizeText(v))
		req.Email = &email
	}
	if v, ok := raw["position"]; ok {
		position := sanitizeText(v)
		req.Position = &position
	}
	if v, ok := raw["department"]; ok {
		department := sanitizeText(v)
		req.Department = &department
	}
	if v, ok := raw["salary"]; ok {
		req.salarySet = true
		req.Salary = coerceDecimal(v)
	}
	if v, ok := raw["hireDate"]; ok {
		req.hireDateSet = true
		req.HireDate = coerceDate(v)
	}
	return req
}

// Validate checks only the fields that are present; absence is never an
// error on update.
func (r *UpdateEmployeeRequest) Validate() ValidationResult {
	var errs []string

	if r.Email != nil && *r.Email != "" && !emailPattern.MatchString(*r.Email) {
		errs = append(errs, MsgEmailInvalid)
	}
	if r.salarySet && (r.Salary == nil || !r.Salary.IsPositive()) {
		errs = append(errs, MsgSalaryPositive)
	}
	if r.hireDateSet && r.HireDate == nil {
		errs = append(errs, MsgHireDateInvalid)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// IsEmpty reports whether the request mentions no recognized field at
// all.
func (r *UpdateEmployeeRequest) IsEmpty() bool {
	return r.Name == nil &&
		r.Email == nil &&
		r.Position == nil &&
		r.Department == nil &&
		!r.salarySet &&
		!r.hireDateSet
}

// Fields builds the column/value map for the partial update from the
// present fields only.
func (r *UpdateEmployeeRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Email != nil {
		fields["email"] = *r.Email
	}
	if r.Position != nil {
		fields["position"] = *r.Position
	}
	if r.Department != nil {
		fields["department"] = *r.Department
	}
	if r.Salary != nil {
		fields["salary"] = *r.Salary
	}
	if r.HireDate != nil {
		fields["hire_date"] = *r.HireDate
	}
	return fields
}

func sanitizeText(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// coerceDecimal accepts the shapes a decoded JSON body can produce for
// the salary: json.Number when the decoder uses UseNumber, a numeric
// string, or a bare float64. Returns nil when the value is not numeric.
func coerceDecimal(v any) *decimal.Decimal {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return nil
		}
		return &d
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(n))
		if err != nil {
			return nil
		}
		return &d
	case float64:
		d := decimal.NewFromFloat(n)
		return &d
	case int:
		d := decimal.NewFromInt(int64(n))
		return &d
	default:
		return nil
	}
}

// coerceDate parses a hire date from a string in any accepted layout,
// or passes a time.Time through. Returns nil when unparseable.
func coerceDate(v any) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range hireDateLayouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return &parsed
			}
		}
		return nil
	default:
		return nil
	}
}
