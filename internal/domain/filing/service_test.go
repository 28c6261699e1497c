package filing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ interface{}) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.topics...)
}

func newTestService() (Service, *recordingPublisher) {
	pub := &recordingPublisher{}
	return NewService(NewMemoryRepository(), pub, logging.NewNopLogger()), pub
}

func TestServiceCreate(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, "IN-2024-0042")
	require.NoError(t, err)
	assert.Equal(t, "IN-2024-0042", r.DocketNumber)
	assert.Contains(t, pub.published(), TopicFilingCreated)

	_, err = svc.Create(ctx, "IN-2024-0042")
	assert.True(t, errors.IsCode(err, errors.ErrCodeFilingAlreadyExists))

	_, err = svc.Create(ctx, "   ")
	assert.True(t, errors.IsCode(err, errors.ErrCodeDocketNumberRequired))
}

func TestServiceSetFieldRecomputesFees(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "D-20")
	require.NoError(t, err)

	r, err := svc.SetField(ctx, "D-20", "applicant_category", "other")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), r.Fees.BasicFee)

	r, err = svc.SetField(ctx, "D-20", "total_pages", "45")
	require.NoError(t, err)
	assert.Equal(t, 15, r.Fees.ExtraPageCount)
	assert.Equal(t, int64(12000), r.Fees.ExtraPageFee)

	r, err = svc.SetField(ctx, "D-20", "request_examination", "true")
	require.NoError(t, err)
	assert.Equal(t, int64(20000), r.Fees.ExaminationFee)

	// The persisted copy agrees with the returned one.
	stored, err := svc.Get(ctx, "D-20")
	require.NoError(t, err)
	assert.Equal(t, r.Fees, stored.Fees)

	assert.Contains(t, pub.published(), TopicFeesRecomputed)
}

func TestServiceSetFieldNonDependent(t *testing.T) {
	svc, pub := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "D-21")
	require.NoError(t, err)

	before := pub.published()
	r, err := svc.SetField(ctx, "D-21", "title", "Process for Preparing Widgets")
	require.NoError(t, err)
	assert.Equal(t, "Process for Preparing Widgets", r.Title)

	// Title edits publish an update but no fee recomputation.
	after := pub.published()
	assert.Equal(t, len(before)+1, len(after))
	assert.Equal(t, TopicFilingUpdated, after[len(after)-1])
}

func TestServiceSetFieldCoercesGarbageCounts(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "D-22")
	require.NoError(t, err)

	r, err := svc.SetField(ctx, "D-22", "number_of_claims", "a dozen")
	require.NoError(t, err)
	assert.Zero(t, r.NumberOfClaims)
	assert.Zero(t, r.Fees.ExtraClaimFee)
}

func TestServiceSetFieldUnknown(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "D-23")
	require.NoError(t, err)

	_, err = svc.SetField(ctx, "D-23", "favourite_colour", "blue")
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownField))
}

func TestServiceListEntryOperations(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, "D-24")
	require.NoError(t, err)

	r, err := svc.AddEntry(ctx, "D-24", "applicants")
	require.NoError(t, err)
	assert.Len(t, r.Applicants, 2)

	r, err = svc.UpdateEntry(ctx, "D-24", "applicants", 1, "name", "Co-Applicant LLP")
	require.NoError(t, err)
	assert.Equal(t, "Co-Applicant LLP", r.Applicants[1].Name)

	r, err = svc.RemoveEntry(ctx, "D-24", "applicants", 0)
	require.NoError(t, err)
	assert.Len(t, r.Applicants, 1)
	assert.Equal(t, "Co-Applicant LLP", r.Applicants[0].Name)

	_, err = svc.RemoveEntry(ctx, "D-24", "applicants", 0)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLastEntryRemoval))

	_, err = svc.AddEntry(ctx, "D-24", "widgets")
	assert.True(t, errors.IsCode(err, errors.ErrCodeUnknownField))
}

func TestMemoryRepositoryCopies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	r := NewApplicationRecord("D-25")
	require.NoError(t, repo.Save(ctx, r))

	// Mutating the caller's copy after Save must not leak into the store.
	r.Title = "mutated"
	stored, err := repo.FindByDocket(ctx, "D-25")
	require.NoError(t, err)
	assert.Empty(t, stored.Title)

	// And mutating a fetched copy must not leak either.
	stored.Applicants[0].Name = "leak?"
	again, err := repo.FindByDocket(ctx, "D-25")
	require.NoError(t, err)
	assert.Empty(t, again.Applicants[0].Name)
}
