package adapters

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/types"
)

const (
	DefaultDpkgStatusPath     = "/var/lib/dpkg/status"
	DefaultExtendedStatesPath = "/var/lib/apt/extended_states"
)

// DpkgSnapshotAdapter builds a kernel snapshot straight from the dpkg
// database. Manual marks come from apt's extended_states: a package listed
// with Auto-Installed: 1 is auto, anything else is manual.
type DpkgSnapshotAdapter struct {
	StatusPath         string
	ExtendedStatesPath string
}

func NewDpkgSnapshotAdapter(statusPath string, extendedStatesPath string) DpkgSnapshotAdapter {
	if strings.TrimSpace(statusPath) == "" {
		statusPath = DefaultDpkgStatusPath
	}
	if strings.TrimSpace(extendedStatesPath) == "" {
		extendedStatesPath = DefaultExtendedStatesPath
	}
	return DpkgSnapshotAdapter{StatusPath: statusPath, ExtendedStatesPath: extendedStatesPath}
}

func (a DpkgSnapshotAdapter) LoadSnapshot(ctx context.Context) (types.KernelSnapshot, error) {
	if err := ctx.Err(); err != nil {
		return types.KernelSnapshot{}, err
	}
	autoMarked, err := a.readAutoMarks()
	if err != nil {
		return types.KernelSnapshot{}, err
	}
	file, err := os.Open(a.StatusPath)
	if err != nil {
		return types.KernelSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("dpkg status file not found").
			WithCause(err)
	}
	defer file.Close()
	stanzas, err := readControlStanzas(file)
	if err != nil {
		return types.KernelSnapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read dpkg status").
			WithCause(err)
	}
	snapshot := types.KernelSnapshot{Packages: []types.PackageRecord{}}
	for _, stanza := range stanzas {
		name := stanza.get("Package")
		if !strings.HasPrefix(name, "linux-") {
			continue
		}
		if !isInstalledStatus(stanza.get("Status")) {
			log.Debug().Str("package", name).Str("status", stanza.get("Status")).Msg("skipping package not installed")
			continue
		}
		snapshot.Packages = append(snapshot.Packages, types.PackageRecord{
			Name:        name,
			Version:     stanza.get("Version"),
			Origin:      stanza.get("Origin"),
			Installed:   true,
			Manual:      !autoMarked[name],
			Size:        installedSizeBytes(stanza.get("Installed-Size")),
			Description: firstLine(stanza.get("Description")),
		})
	}
	return snapshot, nil
}

// readAutoMarks returns the set of packages apt installed automatically. A
// missing extended_states file means nothing is auto-marked.
func (a DpkgSnapshotAdapter) readAutoMarks() (map[string]bool, error) {
	marks := map[string]bool{}
	file, err := os.Open(a.ExtendedStatesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return marks, nil
		}
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open apt extended states").
			WithCause(err)
	}
	defer file.Close()
	stanzas, err := readControlStanzas(file)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read apt extended states").
			WithCause(err)
	}
	for _, stanza := range stanzas {
		if stanza.get("Auto-Installed") == "1" {
			marks[stanza.get("Package")] = true
		}
	}
	return marks, nil
}

func isInstalledStatus(status string) bool {
	fields := strings.Fields(status)
	return len(fields) == 3 && fields[2] == "installed"
}

func installedSizeBytes(value string) int64 {
	kib, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || kib < 0 {
		return 0
	}
	return kib * 1024
}

func firstLine(value string) string {
	line, _, _ := strings.Cut(value, "\n")
	return strings.TrimSpace(line)
}

var _ ports.KernelSnapshotPort = DpkgSnapshotAdapter{}
