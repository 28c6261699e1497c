package filing

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	domain "github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

type stubRenderer struct{}

func (stubRenderer) Render(_ context.Context, vm documents.ViewModel) (*documents.Artifact, error) {
	return &documents.Artifact{
		Name:        vm.ArtifactBase + ".txt",
		ContentType: "text/plain",
		Data:        []byte(vm.Heading),
	}, nil
}

type memoryArtifactStore struct {
	mu   sync.Mutex
	keys []string
}

func (s *memoryArtifactStore) Put(_ context.Context, a *documents.Artifact) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := "artifacts/" + a.Name
	s.keys = append(s.keys, key)
	return key, nil
}

type memoryFeeCache struct {
	mu   sync.Mutex
	data map[string]fees.FeeBreakdown
	hits int
}

func (c *memoryFeeCache) Get(_ context.Context, docket string) (fees.FeeBreakdown, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fb, ok := c.data[docket]
	if ok {
		c.hits++
	}
	return fb, ok
}

func (c *memoryFeeCache) Set(_ context.Context, docket string, fb fees.FeeBreakdown) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]fees.FeeBreakdown{}
	}
	c.data[docket] = fb
}

type captureBus struct {
	mu     sync.Mutex
	topics []string
}

func (b *captureBus) Publish(_ context.Context, topic string, _ interface{}) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.topics = append(b.topics, topic)
	return nil
}

func newTestOrchestrator(t *testing.T) (*Orchestrator, domain.Service, *memoryArtifactStore, *memoryFeeCache, *captureBus) {
	t.Helper()
	bus := &captureBus{}
	records := domain.NewService(domain.NewMemoryRepository(), bus, logging.NewNopLogger())
	store := &memoryArtifactStore{}
	cache := &memoryFeeCache{}
	set := documents.NewSet(documents.FirmProfile{
		FirmName:     "Rao & Menon IP Services",
		SigningPlace: "Bengaluru",
		Agents:       []documents.Agent{{Name: "K. Rao", RegistrationNumber: "IN/PA-1234"}},
	})
	o := NewOrchestrator(records, set, stubRenderer{}, store, cache, bus, logging.NewNopLogger())
	return o, records, store, cache, bus
}

func TestComputeFeesUsesCache(t *testing.T) {
	o, records, _, cache, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := records.Create(ctx, "D-30")
	require.NoError(t, err)
	_, err = records.SetField(ctx, "D-30", "applicant_category", "other")
	require.NoError(t, err)

	fb, err := o.ComputeFees(ctx, "D-30")
	require.NoError(t, err)
	assert.Equal(t, int64(8000), fb.BasicFee)
	assert.Zero(t, cache.hits)

	again, err := o.ComputeFees(ctx, "D-30")
	require.NoError(t, err)
	assert.Equal(t, fb, again)
	assert.Equal(t, 1, cache.hits)
}

func TestGenerateDocumentPipeline(t *testing.T) {
	o, records, store, _, bus := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := records.Create(ctx, "D-31")
	require.NoError(t, err)

	artifact, key, err := o.GenerateDocument(ctx, "D-31", ftypes.DocCoverLetter)
	require.NoError(t, err)
	assert.Equal(t, "CoverLetter_D-31.txt", artifact.Name)
	assert.Equal(t, "artifacts/CoverLetter_D-31.txt", key)
	assert.Contains(t, store.keys, key)
	assert.Contains(t, bus.topics, TopicDocumentGenerated)
}

func TestGenerateDocumentMissingRecordRendersPlaceholder(t *testing.T) {
	o, _, _, _, bus := newTestOrchestrator(t)

	artifact, _, err := o.GenerateDocument(context.Background(), "no-such", ftypes.DocGrantRequest)
	require.NoError(t, err)
	assert.Equal(t, "GrantRequest_Patent.txt", artifact.Name)

	// The empty sentinel is stored but not announced as a generated document.
	assert.NotContains(t, bus.topics, TopicDocumentGenerated)
}

func TestGenerateDocumentUnknownKind(t *testing.T) {
	o, records, _, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := records.Create(ctx, "D-32")
	require.NoError(t, err)

	_, _, err = o.GenerateDocument(ctx, "D-32", ftypes.DocumentKind("fax"))
	assert.Error(t, err)
}

func TestGenerateAllCoversEveryKind(t *testing.T) {
	o, records, _, _, _ := newTestOrchestrator(t)
	ctx := context.Background()

	_, err := records.Create(ctx, "D-33")
	require.NoError(t, err)

	out, err := o.GenerateAll(ctx, "D-33")
	require.NoError(t, err)
	assert.Len(t, out, len(ftypes.AllDocumentKinds))
	for _, kind := range ftypes.AllDocumentKinds {
		assert.Contains(t, out, kind)
	}
}

func TestFormStateMachine(t *testing.T) {
	fs := NewFormState()

	_, open := fs.Current()
	assert.False(t, open)

	require.NoError(t, fs.Open(ftypes.DocGrantRequest))
	kind, open := fs.Current()
	assert.True(t, open)
	assert.Equal(t, ftypes.DocGrantRequest, kind)

	// Opening another form from an open state is a direct transition.
	require.NoError(t, fs.Open(ftypes.DocStatusReport))
	kind, _ = fs.Current()
	assert.Equal(t, ftypes.DocStatusReport, kind)

	assert.Error(t, fs.Open(ftypes.DocumentKind("carrier_pigeon")))
	kind, _ = fs.Current()
	assert.Equal(t, ftypes.DocStatusReport, kind, "failed open leaves state unchanged")

	fs.Close()
	_, open = fs.Current()
	assert.False(t, open)
	fs.Close()
}
