package interfaces

import (
	"context"

	"subprofile/internal/domain"
)

// ProfileStore defines the collection ingest workers publish into
type ProfileStore interface {
	Add(p domain.Proxy) (domain.Proxy, error)
	Snapshot() []domain.Proxy
	Len() int
}

// IngestPool defines the interface for concurrent profile submission
type IngestPool interface {
	Start(context.Context) error
	Submit(context.Context, domain.Proxy) error
	Stop() error
}
