package filing

import (
	"context"
	"fmt"
	"strings"

	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
	"github.com/turtacn/FilingDesk/pkg/textfmt"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Topic names for filing domain events.  The kafka package re-exports these
// as part of its topic registry; they are defined here so the domain stays
// broker-agnostic.
const (
	TopicFilingCreated  = "filing.created"
	TopicFilingUpdated  = "filing.updated"
	TopicFeesRecomputed = "filing.fees_recomputed"
)

// Service is the domain service for record lifecycle: creation with blank
// sub-entity lists, single-field edits with eager fee recomputation, and the
// list operations, each persisted through the Repository and announced via
// the EventPublisher.
type Service interface {
	Create(ctx context.Context, docketNumber string) (*ApplicationRecord, error)
	Get(ctx context.Context, docketNumber string) (*ApplicationRecord, error)
	List(ctx context.Context, offset, limit int) ([]*ApplicationRecord, error)
	Delete(ctx context.Context, docketNumber string) error

	// SetField applies one named scalar field edit, recomputing the fee
	// breakdown when the field is fee-dependent.  Values arrive as boundary
	// strings; counts coerce through CoerceCount, dates through
	// textfmt.ParseDate, booleans through a lenient parser.
	SetField(ctx context.Context, docketNumber, field, value string) (*ApplicationRecord, error)

	// List operations; listName is "applicants", "inventors", or "priorities".
	AddEntry(ctx context.Context, docketNumber, listName string) (*ApplicationRecord, error)
	RemoveEntry(ctx context.Context, docketNumber, listName string, index int) (*ApplicationRecord, error)
	UpdateEntry(ctx context.Context, docketNumber, listName string, index int, field, value string) (*ApplicationRecord, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	logger    logging.Logger
}

// NewService constructs the filing domain service.  A nil publisher disables
// event emission (CLI usage).
func NewService(repo Repository, publisher EventPublisher, log logging.Logger) Service {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &service{repo: repo, publisher: publisher, logger: log.Named("filing")}
}

func (s *service) Create(ctx context.Context, docketNumber string) (*ApplicationRecord, error) {
	docketNumber = strings.TrimSpace(docketNumber)
	if docketNumber == "" {
		return nil, errors.New(errors.ErrCodeDocketNumberRequired, "docket number must not be empty")
	}

	r := NewApplicationRecord(docketNumber)
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.publish(ctx, TopicFilingCreated, NewFilingCreatedEvent(r))
	s.logger.Info("filing created", logging.String("docket", docketNumber))
	return r, nil
}

func (s *service) Get(ctx context.Context, docketNumber string) (*ApplicationRecord, error) {
	return s.repo.FindByDocket(ctx, docketNumber)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]*ApplicationRecord, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.List(ctx, offset, limit)
}

func (s *service) Delete(ctx context.Context, docketNumber string) error {
	return s.repo.Delete(ctx, docketNumber)
}

func (s *service) SetField(ctx context.Context, docketNumber, field, value string) (*ApplicationRecord, error) {
	r, err := s.repo.FindByDocket(ctx, docketNumber)
	if err != nil {
		return nil, err
	}

	feeDependent, err := applyField(r, field, value)
	if err != nil {
		return nil, err
	}
	if feeDependent {
		r.RecomputeFees()
	}
	r.touch()

	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	s.publish(ctx, TopicFilingUpdated, NewFilingUpdatedEvent(r))
	if feeDependent {
		s.publish(ctx, TopicFeesRecomputed, NewFeesRecomputedEvent(r))
	}
	return r, nil
}

func (s *service) AddEntry(ctx context.Context, docketNumber, listName string) (*ApplicationRecord, error) {
	return s.mutateList(ctx, docketNumber, func(r *ApplicationRecord) error {
		switch normalizeField(listName) {
		case "applicants":
			r.AddApplicant()
		case "inventors":
			r.AddInventor()
		case "priorities":
			r.AddPriority()
		default:
			return errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("unknown list %q", listName))
		}
		return nil
	})
}

func (s *service) RemoveEntry(ctx context.Context, docketNumber, listName string, index int) (*ApplicationRecord, error) {
	return s.mutateList(ctx, docketNumber, func(r *ApplicationRecord) error {
		switch normalizeField(listName) {
		case "applicants":
			return r.RemoveApplicant(index)
		case "inventors":
			return r.RemoveInventor(index)
		case "priorities":
			return r.RemovePriority(index)
		default:
			return errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("unknown list %q", listName))
		}
	})
}

func (s *service) UpdateEntry(ctx context.Context, docketNumber, listName string, index int, field, value string) (*ApplicationRecord, error) {
	return s.mutateList(ctx, docketNumber, func(r *ApplicationRecord) error {
		switch normalizeField(listName) {
		case "applicants":
			return r.UpdateApplicantField(index, field, value)
		case "inventors":
			return r.UpdateInventorField(index, field, value)
		case "priorities":
			return r.UpdatePriorityField(index, field, value)
		default:
			return errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("unknown list %q", listName))
		}
	})
}

func (s *service) mutateList(ctx context.Context, docketNumber string, mutate func(*ApplicationRecord) error) (*ApplicationRecord, error) {
	r, err := s.repo.FindByDocket(ctx, docketNumber)
	if err != nil {
		return nil, err
	}
	if err := mutate(r); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	s.publish(ctx, TopicFilingUpdated, NewFilingUpdatedEvent(r))
	return r, nil
}

func (s *service) publish(ctx context.Context, topic string, event interface{}) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, topic, event); err != nil {
		// Event emission is best-effort; the repository write already succeeded.
		s.logger.Warn("event publish failed",
			logging.String("topic", topic), logging.Err(err))
	}
}

// applyField assigns one named scalar field from its boundary string form and
// reports whether the field participates in fee derivation.
func applyField(r *ApplicationRecord, field, value string) (bool, error) {
	switch normalizeField(field) {
	case "title":
		r.Title = value
	case "jurisdiction":
		r.Jurisdiction = ftypes.ParseJurisdiction(value)
	case "application_type":
		r.ApplicationType = ftypes.ParseApplicationType(value)
	case "applicant_category":
		r.ApplicantCategory = ftypes.ParseApplicantCategory(value)
		return true, nil
	case "international_application_number":
		r.InternationalApplicationNumber = value
	case "international_filing_date":
		r.InternationalFilingDate = textfmt.ParseDate(value)
	case "inventors_same_as_applicant":
		r.InventorsSameAsApplicant = parseBool(value)
	case "priority_claimed":
		r.PriorityClaimed = parseBool(value)
	case "description_pages":
		r.DescriptionPages = CoerceCount(value)
	case "claim_pages":
		r.ClaimPages = CoerceCount(value)
	case "drawing_pages":
		r.DrawingPages = CoerceCount(value)
	case "abstract_pages":
		r.AbstractPages = CoerceCount(value)
	case "form2_pages":
		r.Form2Pages = CoerceCount(value)
	case "number_of_drawings":
		r.NumberOfDrawings = CoerceCount(value)
	case "number_of_claims":
		r.NumberOfClaims = CoerceCount(value)
		return true, nil
	case "number_of_priorities":
		r.NumberOfPriorities = CoerceCount(value)
		return true, nil
	case "total_pages":
		r.TotalPages = CoerceCount(value)
		return true, nil
	case "request_examination":
		r.RequestExamination = parseBool(value)
		return true, nil
	case "sequence_listing":
		r.SequenceListing = parseBool(value)
	case "sequence_pages":
		r.SequencePages = CoerceCount(value)
		return true, nil
	case "deposit_date":
		r.DepositDate = textfmt.ParseDate(value)
	default:
		return false, errors.New(errors.ErrCodeUnknownField, fmt.Sprintf("application record has no field %q", field))
	}
	return false, nil
}

// parseBool accepts the lenient boolean spellings form inputs produce.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on":
		return true
	default:
		return false
	}
}
