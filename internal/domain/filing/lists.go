package filing

import (
	"fmt"
	"strings"

	"github.com/turtacn/FilingDesk/pkg/errors"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
)

// Repeated-entity list operations.
//
// Applicants, inventors, and priority claims are non-empty ordered lists:
// append adds a blank templated entry at the end, remove deletes by index and
// preserves the relative order of the rest, and removing the last remaining
// entry is rejected.  Field edits mutate a single named field of a single
// indexed entry; no per-edit validation happens here. Validation, if any,
// belongs to submission, outside this core.

// AddApplicant appends a blank applicant entry.
func (r *ApplicationRecord) AddApplicant() {
	r.Applicants = append(r.Applicants, Party{})
	r.touch()
}

// RemoveApplicant deletes the applicant at index i.  Removing the only
// remaining applicant is rejected.
func (r *ApplicationRecord) RemoveApplicant(i int) error {
	next, err := removeParty(r.Applicants, i)
	if err != nil {
		return err
	}
	r.Applicants = next
	r.touch()
	return nil
}

// UpdateApplicantField sets one named field of the applicant at index i.
func (r *ApplicationRecord) UpdateApplicantField(i int, field, value string) error {
	if i < 0 || i >= len(r.Applicants) {
		return errors.New(errors.ErrCodeEntryIndexOutOfRange, fmt.Sprintf("applicant index %d out of range", i))
	}
	if err := setPartyField(&r.Applicants[i], field, value); err != nil {
		return err
	}
	r.touch()
	return nil
}

// AddInventor appends a blank inventor entry.
func (r *ApplicationRecord) AddInventor() {
	r.Inventors = append(r.Inventors, Party{})
	r.touch()
}

// RemoveInventor deletes the inventor at index i, rejecting removal of the
// last entry.
func (r *ApplicationRecord) RemoveInventor(i int) error {
	next, err := removeParty(r.Inventors, i)
	if err != nil {
		return err
	}
	r.Inventors = next
	r.touch()
	return nil
}

// UpdateInventorField sets one named field of the inventor at index i.
func (r *ApplicationRecord) UpdateInventorField(i int, field, value string) error {
	if i < 0 || i >= len(r.Inventors) {
		return errors.New(errors.ErrCodeEntryIndexOutOfRange, fmt.Sprintf("inventor index %d out of range", i))
	}
	if err := setPartyField(&r.Inventors[i], field, value); err != nil {
		return err
	}
	r.touch()
	return nil
}

// AddPriority appends a blank priority-claim entry.
func (r *ApplicationRecord) AddPriority() {
	r.Priorities = append(r.Priorities, PriorityClaim{})
	r.touch()
}

// RemovePriority deletes the priority claim at index i, rejecting removal of
// the last entry.
func (r *ApplicationRecord) RemovePriority(i int) error {
	if len(r.Priorities) <= 1 {
		return errors.New(errors.ErrCodeLastEntryRemoval, "a record keeps at least one priority entry")
	}
	if i < 0 || i >= len(r.Priorities) {
		return errors.New(errors.ErrCodeEntryIndexOutOfRange, fmt.Sprintf("priority index %d out of range", i))
	}
	r.Priorities = append(r.Priorities[:i], r.Priorities[i+1:]...)
	r.touch()
	return nil
}

// UpdatePriorityField sets one named field of the priority claim at index i.
// The date field accepts the boundary layouts understood by textfmt.ParseDate;
// unparsable input stores a nil date, which renders as a placeholder.
func (r *ApplicationRecord) UpdatePriorityField(i int, field, value string) error {
	if i < 0 || i >= len(r.Priorities) {
		return errors.New(errors.ErrCodeEntryIndexOutOfRange, fmt.Sprintf("priority index %d out of range", i))
	}
	p := &r.Priorities[i]
	switch normalizeField(field) {
	case "country":
		p.Country = value
	case "priority_number":
		p.PriorityNumber = value
	case "priority_date":
		p.PriorityDate = textfmt.ParseDate(value)
	case "applicant_name":
		p.ApplicantName = value
	case "title_in_priority":
		p.TitleInPriority = value
	default:
		return errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("priority claim has no field %q", field))
	}
	r.touch()
	return nil
}

// removeParty implements the shared remove-by-index behavior for the two
// Party lists.
func removeParty(list []Party, i int) ([]Party, error) {
	if len(list) <= 1 {
		return nil, errors.New(errors.ErrCodeLastEntryRemoval, "a record keeps at least one entry in each party list")
	}
	if i < 0 || i >= len(list) {
		return nil, errors.New(errors.ErrCodeEntryIndexOutOfRange, fmt.Sprintf("index %d out of range", i))
	}
	return append(list[:i], list[i+1:]...), nil
}

// setPartyField assigns one named Party field.
func setPartyField(p *Party, field, value string) error {
	switch normalizeField(field) {
	case "name":
		p.Name = value
	case "nationality":
		p.Nationality = value
	case "residence_country", "residence":
		p.ResidenceCountry = value
	case "address":
		p.Address = value
	default:
		return errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("party has no field %q", field))
	}
	return nil
}

func normalizeField(field string) string {
	return strings.ToLower(strings.TrimSpace(field))
}
