package ports

import (
	"context"

	"kernel-lifecycle/internal/types"
)

// ReleaseTablePort loads the codename -> release dates table.
type ReleaseTablePort interface {
	LoadReleaseTable(ctx context.Context) (types.ReleaseTable, error)
}

// ReleaseMetadataPort loads a release together with its ordered kernel
// point releases. found is false for an unknown codename.
type ReleaseMetadataPort interface {
	LoadReleaseMetadata(ctx context.Context, codename string) (metadata types.ReleaseMetadata, found bool, err error)
}

// CodenamePort identifies the release the host runs.
type CodenamePort interface {
	Codename(ctx context.Context) (string, error)
}
