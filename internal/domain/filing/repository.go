package filing

import (
	"context"
)

// Repository is the persistence contract: it supplies and accepts ApplicationRecords
// keyed by docket number.  The core reads records through this interface and
// treats whatever arrives as boundary input; callers of FindByDocket get a
// record that has already passed Sanitize.
type Repository interface {
	// Save persists a new record.  Saving an existing docket number fails
	// with ErrCodeFilingAlreadyExists.
	Save(ctx context.Context, r *ApplicationRecord) error

	// Update persists changes to an existing record.
	Update(ctx context.Context, r *ApplicationRecord) error

	// FindByDocket returns the record for a docket number, or an
	// ErrCodeFilingNotFound error.
	FindByDocket(ctx context.Context, docketNumber string) (*ApplicationRecord, error)

	// List returns records ordered by docket number, offset/limit paged.
	List(ctx context.Context, offset, limit int) ([]*ApplicationRecord, error)

	// Delete removes a record.
	Delete(ctx context.Context, docketNumber string) error
}

// EventPublisher publishes domain events after successful writes.  The kafka
// producer implements it in production; tests use a recording stub.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event interface{}) error
}
