// Package form implements the record-form model used by the entry screens:
// an ordered set of typed fields bound to a flat string record, with
// required-field validation and synchronous derived-field rules.
package form

import (
	"fmt"
	"math"
	"strconv"

	"github.com/auditdesk/backoffice-api/internal/domain/entity"
	"github.com/auditdesk/backoffice-api/pkg/apperror"
)

// Kind is the semantic type of a field.
type Kind int

const (
	Text Kind = iota
	Number
	Date
	Choice
)

// Field describes one input in a record form.
type Field struct {
	Name     string
	Kind     Kind
	Required bool
	// Choices restricts accepted values for Choice fields.
	Choices []string
	// Derived fields are computed by a rule, never entered directly.
	Derived bool
}

// DeriveRule recomputes Target from Source every time Source changes.
// Rules run synchronously inside Set; they never touch the network.
type DeriveRule struct {
	Source string
	Target string
	Fn     func(raw string) string
}

// Form binds field definitions to a flat key/value record.
type Form struct {
	fields []Field
	rules  []DeriveRule
	values map[string]string
}

// New creates a form from field definitions and derive rules.
func New(fields []Field, rules ...DeriveRule) *Form {
	return &Form{
		fields: fields,
		rules:  rules,
		values: make(map[string]string, len(fields)),
	}
}

func (f *Form) field(name string) *Field {
	for i := range f.fields {
		if f.fields[i].Name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// Set updates a field value and runs any derive rule sourced from it.
func (f *Form) Set(name, raw string) error {
	fld := f.field(name)
	if fld == nil {
		return apperror.NewBadRequestError(fmt.Sprintf("unknown field %q", name))
	}
	if fld.Derived {
		return apperror.NewBadRequestError(fmt.Sprintf("field %q is derived and cannot be set", name))
	}
	f.values[name] = raw
	for _, rule := range f.rules {
		if rule.Source == name {
			f.values[rule.Target] = rule.Fn(raw)
		}
	}
	return nil
}

// SetChoices replaces the accepted values of a Choice field whose options
// are only known at runtime, like the receipt form's customer picklist.
func (f *Form) SetChoices(name string, choices []string) {
	if fld := f.field(name); fld != nil {
		fld.Choices = choices
	}
}

// Get returns the current value of a field.
func (f *Form) Get(name string) string {
	return f.values[name]
}

// Reset clears every field back to its empty default.
func (f *Form) Reset() {
	f.values = make(map[string]string, len(f.fields))
}

// Validate checks required fields, value shape per kind, and choice
// membership. It reports every failing field at once.
func (f *Form) Validate() error {
	var fieldErrors []apperror.FieldError
	fail := func(name, message string) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: name, Message: message})
	}
	for _, fld := range f.fields {
		value := f.values[fld.Name]
		if value == "" {
			if fld.Required {
				fail(fld.Name, "is required")
			}
			continue
		}
		switch fld.Kind {
		case Number:
			if _, err := strconv.ParseFloat(value, 64); err != nil {
				fail(fld.Name, "must be a number")
			}
		case Date:
			if _, ok := entity.ParseDate(value); !ok {
				fail(fld.Name, "is not a valid date")
			}
		case Choice:
			if len(fld.Choices) == 0 {
				break
			}
			valid := false
			for _, choice := range fld.Choices {
				if value == choice {
					valid = true
					break
				}
			}
			if !valid {
				fail(fld.Name, "is not an accepted value")
			}
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// GST computes the 18% GST amount for a raw amount string, rounded to two
// decimals and formatted as a fixed two-decimal string. Unparseable input
// computes from zero, matching the entry screen's behavior.
func GST(raw string) string {
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		amount = 0
	}
	gst := math.Round(amount*18) / 100
	return strconv.FormatFloat(gst, 'f', 2, 64)
}
