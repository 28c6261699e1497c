package filing

import (
	"github.com/turtacn/FilingDesk/pkg/types/common"
	ftypes "github.com/turtacn/FilingDesk/pkg/types/filing"
)

// Domain events emitted by the filing service.  Events are published after
// the corresponding repository write succeeds; consumers (the worker, audit
// sinks) treat them as notifications, not as the system of record.

type FilingCreatedEvent struct {
	common.BaseEvent
	DocketNumber string `json:"docket_number"`
	Title        string `json:"title"`
	Version      int    `json:"version"`
}

func NewFilingCreatedEvent(r *ApplicationRecord) *FilingCreatedEvent {
	return &FilingCreatedEvent{
		BaseEvent:    common.NewBaseEvent(r.DocketNumber),
		DocketNumber: r.DocketNumber,
		Title:        r.Title,
		Version:      r.Version,
	}
}

type FilingUpdatedEvent struct {
	common.BaseEvent
	DocketNumber string `json:"docket_number"`
	Version      int    `json:"version"`
}

func NewFilingUpdatedEvent(r *ApplicationRecord) *FilingUpdatedEvent {
	return &FilingUpdatedEvent{
		BaseEvent:    common.NewBaseEvent(r.DocketNumber),
		DocketNumber: r.DocketNumber,
		Version:      r.Version,
	}
}

type FeesRecomputedEvent struct {
	common.BaseEvent
	DocketNumber string `json:"docket_number"`
	TotalFee     int64  `json:"total_fee"`
	Version      int    `json:"version"`
}

func NewFeesRecomputedEvent(r *ApplicationRecord) *FeesRecomputedEvent {
	return &FeesRecomputedEvent{
		BaseEvent:    common.NewBaseEvent(r.DocketNumber),
		DocketNumber: r.DocketNumber,
		TotalFee:     r.Fees.TotalFee,
		Version:      r.Version,
	}
}

type DocumentGeneratedEvent struct {
	common.BaseEvent
	DocketNumber string              `json:"docket_number"`
	Kind         ftypes.DocumentKind `json:"kind"`
	ArtifactKey  string              `json:"artifact_key"`
}

func NewDocumentGeneratedEvent(docketNumber string, kind ftypes.DocumentKind, artifactKey string) *DocumentGeneratedEvent {
	return &DocumentGeneratedEvent{
		BaseEvent:    common.NewBaseEvent(docketNumber),
		DocketNumber: docketNumber,
		Kind:         kind,
		ArtifactKey:  artifactKey,
	}
}
