package adapters

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/shared"
	"kernel-lifecycle/internal/types"
)

// ReleaseFile is the on-disk release metadata document.
type ReleaseFile struct {
	VendorOrigins []string                 `yaml:"vendor_origins,omitempty"`
	Releases      map[string]ReleaseRecord `yaml:"releases"`
}

type ReleaseRecord struct {
	Version       string               `yaml:"version,omitempty"`
	ReleaseDate   string               `yaml:"release_date"`
	SupportEnd    string               `yaml:"support_end"`
	PointReleases []PointReleaseRecord `yaml:"point_releases,omitempty"`
}

// PointReleaseRecord leaves DurationMonths nil when the vendor did not
// declare a support duration.
type PointReleaseRecord struct {
	Label          string `yaml:"label"`
	Kernel         string `yaml:"kernel,omitempty"`
	DurationMonths *int   `yaml:"duration_months,omitempty"`
	Origin         string `yaml:"origin,omitempty"`
}

var defaultVendorOrigins = []string{"ubuntu"}

// ReleaseFileAdapter loads release metadata from YAML, caching the parsed
// document for the adapter's lifetime.
type ReleaseFileAdapter struct {
	Path   string
	cached ReleaseFile
	loaded bool
}

func NewReleaseFileAdapter(path string) *ReleaseFileAdapter {
	return &ReleaseFileAdapter{Path: path}
}

func (a *ReleaseFileAdapter) LoadReleaseTable(ctx context.Context) (types.ReleaseTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := a.load()
	if err != nil {
		return nil, err
	}
	table := types.ReleaseTable{}
	for codename, record := range doc.Releases {
		key := shared.NormalizeCodename(codename)
		table[key] = releaseInfo(key, record)
	}
	return table, nil
}

func (a *ReleaseFileAdapter) LoadReleaseMetadata(ctx context.Context, codename string) (types.ReleaseMetadata, bool, error) {
	if err := ctx.Err(); err != nil {
		return types.ReleaseMetadata{}, false, err
	}
	doc, err := a.load()
	if err != nil {
		return types.ReleaseMetadata{}, false, err
	}
	key := shared.NormalizeCodename(codename)
	for name, record := range doc.Releases {
		if shared.NormalizeCodename(name) != key {
			continue
		}
		vendors := shared.NormalizeSet(doc.VendorOrigins)
		if len(vendors) == 0 {
			vendors = shared.NormalizeSet(defaultVendorOrigins)
		}
		metadata := types.ReleaseMetadata{Release: releaseInfo(key, record)}
		for _, point := range record.PointReleases {
			metadata.PointReleases = append(metadata.PointReleases, pointRelease(point, vendors))
		}
		return metadata, true, nil
	}
	return types.ReleaseMetadata{}, false, nil
}

func (a *ReleaseFileAdapter) load() (ReleaseFile, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return ReleaseFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("release metadata file not found").
			WithCause(err)
	}
	var doc ReleaseFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return ReleaseFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid release metadata format").
			WithCause(err)
	}
	if doc.Releases == nil {
		doc.Releases = map[string]ReleaseRecord{}
	}
	a.cached = doc
	a.loaded = true
	return doc, nil
}

func releaseInfo(codename string, record ReleaseRecord) types.ReleaseInfo {
	return types.ReleaseInfo{
		Codename:       codename,
		Version:        record.Version,
		ReleaseDate:    parseReleaseDate(record.ReleaseDate),
		SupportEndDate: parseReleaseDate(record.SupportEnd),
	}
}

func pointRelease(record PointReleaseRecord, vendors map[string]struct{}) types.PointRelease {
	duration := types.DurationUnknown
	if record.DurationMonths != nil && *record.DurationMonths >= 0 {
		duration = *record.DurationMonths
	}
	origin := shared.NormalizeCodename(record.Origin)
	_, vendor := vendors[origin]
	return types.PointRelease{
		Label:                  strings.TrimSpace(record.Label),
		Kernel:                 strings.TrimSpace(record.Kernel),
		DeclaredDurationMonths: duration,
		FromVendor:             origin == "" || vendor,
	}
}

var (
	_ ports.ReleaseTablePort    = (*ReleaseFileAdapter)(nil)
	_ ports.ReleaseMetadataPort = (*ReleaseFileAdapter)(nil)
)
