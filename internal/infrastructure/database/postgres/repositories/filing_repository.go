// Package repositories contains the PostgreSQL-backed implementations of the
// domain repository interfaces.  Records persist as JSONB documents keyed by
// docket number; the schema stays stable while the record shape evolves.
package repositories

import (
	"context"
	"encoding/json"
	stderrors "errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// uniqueViolation is the PostgreSQL error code for duplicate keys.
const uniqueViolation = "23505"

// FilingRepository implements filing.Repository over a pgx pool.
type FilingRepository struct {
	pool   *pgxpool.Pool
	logger logging.Logger
}

// NewFilingRepository constructs the repository.
func NewFilingRepository(pool *pgxpool.Pool, log logging.Logger) *FilingRepository {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &FilingRepository{pool: pool, logger: log.Named("filing_repo")}
}

func (r *FilingRepository) Save(ctx context.Context, record *filing.ApplicationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "marshalling record")
	}

	const q = `
		INSERT INTO filings (docket_number, record, created_at, updated_at, version)
		VALUES ($1, $2, $3, $4, $5)`
	_, err = r.pool.Exec(ctx, q,
		record.DocketNumber, payload, record.CreatedAt, record.UpdatedAt, record.Version)
	if err != nil {
		var pgErr *pgconn.PgError
		if stderrors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return errors.New(errors.ErrCodeFilingAlreadyExists,
				"filing already exists: "+record.DocketNumber)
		}
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "inserting filing")
	}
	return nil
}

func (r *FilingRepository) Update(ctx context.Context, record *filing.ApplicationRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeInternal, "marshalling record")
	}

	const q = `
		UPDATE filings
		SET record = $2, updated_at = $3, version = $4
		WHERE docket_number = $1`
	tag, err := r.pool.Exec(ctx, q,
		record.DocketNumber, payload, record.UpdatedAt, record.Version)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "updating filing")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeFilingNotFound,
			"filing not found: "+record.DocketNumber)
	}
	return nil
}

func (r *FilingRepository) FindByDocket(ctx context.Context, docketNumber string) (*filing.ApplicationRecord, error) {
	const q = `SELECT record FROM filings WHERE docket_number = $1`

	var payload []byte
	err := r.pool.QueryRow(ctx, q, docketNumber).Scan(&payload)
	if err != nil {
		if stderrors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New(errors.ErrCodeFilingNotFound,
				"filing not found: "+docketNumber)
		}
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "querying filing")
	}

	return unmarshalRecord(payload)
}

func (r *FilingRepository) List(ctx context.Context, offset, limit int) ([]*filing.ApplicationRecord, error) {
	const q = `
		SELECT record FROM filings
		ORDER BY docket_number
		OFFSET $1 LIMIT $2`
	rows, err := r.pool.Query(ctx, q, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "listing filings")
	}
	defer rows.Close()

	var out []*filing.ApplicationRecord
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scanning filing row")
		}
		record, err := unmarshalRecord(payload)
		if err != nil {
			return nil, err
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterating filing rows")
	}
	return out, nil
}

func (r *FilingRepository) Delete(ctx context.Context, docketNumber string) error {
	const q = `DELETE FROM filings WHERE docket_number = $1`
	tag, err := r.pool.Exec(ctx, q, docketNumber)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "deleting filing")
	}
	if tag.RowsAffected() == 0 {
		return errors.New(errors.ErrCodeFilingNotFound, "filing not found: "+docketNumber)
	}
	return nil
}

// unmarshalRecord decodes a stored record and re-runs boundary sanitization,
// so rows written by earlier schema revisions still come out total.
func unmarshalRecord(payload []byte) (*filing.ApplicationRecord, error) {
	record := &filing.ApplicationRecord{}
	if err := json.Unmarshal(payload, record); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "unmarshalling record")
	}
	record.Sanitize()
	return record, nil
}
