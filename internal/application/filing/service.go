// Package filing is the application layer over the filing domain: it
// orchestrates record access, fee computation with caching, document
// transformation, rendering, and artifact storage into the operations the
// interface layers expose.
package filing

import (
	"context"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	"github.com/turtacn/FilingDesk/internal/domain/fees"
	domain "github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/pkg/errors"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// TopicDocumentGenerated announces a stored document artifact.
const TopicDocumentGenerated = "document.generated"

// FeeCache caches the derived fee breakdown per docket number.  Misses are
// not errors; the cache is an optimization over an already-cheap pure
// computation and every write path invalidates by overwriting.
type FeeCache interface {
	Get(ctx context.Context, docketNumber string) (fees.FeeBreakdown, bool)
	Set(ctx context.Context, docketNumber string, fb fees.FeeBreakdown)
}

// ArtifactStore persists rendered document artifacts and returns the storage
// key they were written under.
type ArtifactStore interface {
	Put(ctx context.Context, artifact *documents.Artifact) (string, error)
}

// Orchestrator exposes the document and fee operations of the back office.
type Orchestrator struct {
	records      domain.Service
	transformers *documents.Set
	renderer     documents.Renderer
	artifacts    ArtifactStore
	feeCache     FeeCache
	publisher    domain.EventPublisher
	log          logging.Logger
}

// NewOrchestrator wires the application service.  feeCache, artifacts, and
// publisher may be nil; the corresponding steps are skipped.
func NewOrchestrator(
	records domain.Service,
	transformers *documents.Set,
	renderer documents.Renderer,
	artifacts ArtifactStore,
	feeCache FeeCache,
	publisher domain.EventPublisher,
	log logging.Logger,
) *Orchestrator {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Orchestrator{
		records:      records,
		transformers: transformers,
		renderer:     renderer,
		artifacts:    artifacts,
		feeCache:     feeCache,
		publisher:    publisher,
		log:          log.Named("orchestrator"),
	}
}

// ComputeFees returns the fee breakdown for a docket, consulting the cache
// first.  The stored record's derived breakdown is authoritative; the cache
// only short-circuits the repository read.
func (o *Orchestrator) ComputeFees(ctx context.Context, docketNumber string) (fees.FeeBreakdown, error) {
	if o.feeCache != nil {
		if fb, ok := o.feeCache.Get(ctx, docketNumber); ok {
			return fb, nil
		}
	}

	r, err := o.records.Get(ctx, docketNumber)
	if err != nil {
		return fees.FeeBreakdown{}, err
	}
	if o.feeCache != nil {
		o.feeCache.Set(ctx, docketNumber, r.Fees)
	}
	return r.Fees, nil
}

// Preview transforms a record into a document view model without rendering.
// A missing record is not an error here: the transformer's empty sentinel is
// the defined result for absent data.
func (o *Orchestrator) Preview(ctx context.Context, docketNumber string, kind ftypes.DocumentKind) (documents.ViewModel, error) {
	r, err := o.loadOrNil(ctx, docketNumber)
	if err != nil {
		return documents.ViewModel{}, err
	}
	var fb fees.FeeBreakdown
	if r != nil {
		fb = r.Fees
	}
	return o.transformers.Transform(kind, r, fb)
}

// GenerateDocument runs the full pipeline for one document kind: load,
// transform, render, store, announce.  It returns the artifact and the
// storage key it was written under; the key is empty when no artifact store
// is configured.
func (o *Orchestrator) GenerateDocument(ctx context.Context, docketNumber string, kind ftypes.DocumentKind) (*documents.Artifact, string, error) {
	vm, err := o.Preview(ctx, docketNumber, kind)
	if err != nil {
		return nil, "", err
	}

	artifact, err := o.renderer.Render(ctx, vm)
	if err != nil {
		return nil, "", errors.Wrap(err, errors.ErrCodeRenderFailed, "rendering "+string(kind))
	}

	var key string
	if o.artifacts != nil {
		key, err = o.artifacts.Put(ctx, artifact)
		if err != nil {
			return nil, "", errors.Wrap(err, errors.ErrCodeArtifactUploadFailed, "storing "+artifact.Name)
		}
	}

	if o.publisher != nil && !vm.IsEmpty() {
		event := domain.NewDocumentGeneratedEvent(docketNumber, kind, key)
		if err := o.publisher.Publish(ctx, TopicDocumentGenerated, event); err != nil {
			o.log.Warn("failed to publish document event",
				logging.String("docket_number", docketNumber),
				logging.String("kind", string(kind)),
				logging.Err(err))
		}
	}

	o.log.Info("document generated",
		logging.String("docket_number", docketNumber),
		logging.String("kind", string(kind)),
		logging.String("artifact", artifact.Name))
	return artifact, key, nil
}

// GenerateAll runs GenerateDocument for every kind and returns the artifacts
// keyed by kind.  The first failure aborts the batch.
func (o *Orchestrator) GenerateAll(ctx context.Context, docketNumber string) (map[ftypes.DocumentKind]*documents.Artifact, error) {
	out := make(map[ftypes.DocumentKind]*documents.Artifact, len(ftypes.AllDocumentKinds))
	for _, kind := range o.transformers.Kinds() {
		artifact, _, err := o.GenerateDocument(ctx, docketNumber, kind)
		if err != nil {
			return nil, err
		}
		out[kind] = artifact
	}
	return out, nil
}

// loadOrNil fetches the record, mapping not-found onto a nil record so the
// transformation layer can produce its empty sentinel.
func (o *Orchestrator) loadOrNil(ctx context.Context, docketNumber string) (*domain.ApplicationRecord, error) {
	r, err := o.records.Get(ctx, docketNumber)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeFilingNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r, nil
}
