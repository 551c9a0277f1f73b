package adapters

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/types"
)

// SnapshotFileAdapter reads a kernel snapshot exported as YAML by the
// package-manager helper.
type SnapshotFileAdapter struct {
	Path string
}

func NewSnapshotFileAdapter(path string) SnapshotFileAdapter {
	return SnapshotFileAdapter{Path: path}
}

func (a SnapshotFileAdapter) LoadSnapshot(ctx context.Context) (types.KernelSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return types.KernelSnapshot{}, err
	}
	if strings.TrimSpace(a.Path) == "" {
		return types.KernelSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("snapshot path is empty")
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.KernelSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("snapshot file not found").
			WithCause(err)
	}
	var snapshot types.KernelSnapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return types.KernelSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse snapshot yaml").
			WithCause(err)
	}
	for i, record := range snapshot.Packages {
		if strings.TrimSpace(record.Name) == "" {
			return types.KernelSnapshot{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("snapshot package entry %d has no name", i))
		}
	}
	return snapshot, nil
}

var _ ports.KernelSnapshotPort = SnapshotFileAdapter{}
