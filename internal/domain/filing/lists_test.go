package filing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/turtacn/FilingDesk/pkg/errors"
)

func TestAddAndRemoveApplicants(t *testing.T) {
	r := NewApplicationRecord("D-10")
	r.Applicants[0].Name = "Acme Pharma Ltd"

	r.AddApplicant()
	r.AddApplicant()
	assert.Len(t, r.Applicants, 3)

	// Remove the middle entry; order of the rest is preserved.
	assert.NoError(t, r.UpdateApplicantField(1, "name", "Second"))
	assert.NoError(t, r.UpdateApplicantField(2, "name", "Third"))
	assert.NoError(t, r.RemoveApplicant(1))
	assert.Len(t, r.Applicants, 2)
	assert.Equal(t, "Acme Pharma Ltd", r.Applicants[0].Name)
	assert.Equal(t, "Third", r.Applicants[1].Name)
}

func TestRemoveLastEntryRejected(t *testing.T) {
	r := NewApplicationRecord("D-11")

	err := r.RemoveApplicant(0)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLastEntryRemoval))

	err = r.RemoveInventor(0)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLastEntryRemoval))

	err = r.RemovePriority(0)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLastEntryRemoval))

	assert.Len(t, r.Applicants, 1)
	assert.Len(t, r.Inventors, 1)
	assert.Len(t, r.Priorities, 1)
}

func TestRemoveOutOfRange(t *testing.T) {
	r := NewApplicationRecord("D-12")
	r.AddApplicant()

	err := r.RemoveApplicant(5)
	assert.True(t, errors.IsCode(err, errors.ErrCodeEntryIndexOutOfRange))
	assert.Len(t, r.Applicants, 2)
}

func TestUpdatePartyFields(t *testing.T) {
	r := NewApplicationRecord("D-13")

	assert.NoError(t, r.UpdateApplicantField(0, "name", "Dr. A. Sharma"))
	assert.NoError(t, r.UpdateApplicantField(0, "nationality", "India"))
	assert.NoError(t, r.UpdateApplicantField(0, "residence_country", "India"))
	assert.NoError(t, r.UpdateApplicantField(0, "address", "12 MG Road, Bengaluru"))

	a := r.Applicants[0]
	assert.Equal(t, "Dr. A. Sharma", a.Name)
	assert.Equal(t, "India", a.Nationality)
	assert.Equal(t, "India", a.ResidenceCountry)
	assert.Equal(t, "12 MG Road, Bengaluru", a.Address)

	err := r.UpdateApplicantField(0, "shoe_size", "42")
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownField))
}

func TestUpdatePriorityFields(t *testing.T) {
	r := NewApplicationRecord("D-14")

	assert.NoError(t, r.UpdatePriorityField(0, "country", "US"))
	assert.NoError(t, r.UpdatePriorityField(0, "priority_number", "US 63/123,456"))
	assert.NoError(t, r.UpdatePriorityField(0, "priority_date", "2023-06-15"))

	p := r.Priorities[0]
	assert.Equal(t, "US", p.Country)
	assert.Equal(t, "US 63/123,456", p.PriorityNumber)
	if assert.NotNil(t, p.PriorityDate) {
		assert.Equal(t, 2023, p.PriorityDate.Year())
	}

	// Unparsable dates store nil, which renders as a placeholder downstream.
	assert.NoError(t, r.UpdatePriorityField(0, "priority_date", "soon"))
	assert.Nil(t, r.Priorities[0].PriorityDate)
}
