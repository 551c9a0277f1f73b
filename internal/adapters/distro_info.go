package adapters

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/shared"
	"kernel-lifecycle/internal/types"
)

const DefaultDistroInfoPath = "/usr/share/distro-info/ubuntu.csv"

// DistroInfoAdapter reads the vendor distro-info CSV
// (version,codename,series,created,release,eol,...). Rows are keyed by
// series, e.g. "noble".
type DistroInfoAdapter struct {
	Path string
}

func NewDistroInfoAdapter(path string) DistroInfoAdapter {
	if strings.TrimSpace(path) == "" {
		path = DefaultDistroInfoPath
	}
	return DistroInfoAdapter{Path: path}
}

func (a DistroInfoAdapter) LoadReleaseTable(ctx context.Context) (types.ReleaseTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(a.Path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("distro-info file not found").
			WithCause(err)
	}
	defer file.Close()
	return parseDistroInfo(file)
}

func parseDistroInfo(r io.Reader) (types.ReleaseTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("distro-info file has no header").
			WithCause(err)
	}
	columns := map[string]int{}
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"series", "release", "eol"} {
		if _, ok := columns[required]; !ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("distro-info header missing column " + required)
		}
	}
	field := func(row []string, name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	table := types.ReleaseTable{}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid distro-info row").
				WithCause(err)
		}
		series := shared.NormalizeCodename(field(row, "series"))
		if series == "" {
			continue
		}
		eol := field(row, "eol")
		if eol == "" {
			eol = field(row, "eol-server")
		}
		info := types.ReleaseInfo{
			Codename:       series,
			Version:        field(row, "version"),
			ReleaseDate:    parseReleaseDate(field(row, "release")),
			SupportEndDate: parseReleaseDate(eol),
		}
		if info.SupportEndDate.IsZero() {
			log.Debug().Str("series", series).Msg("distro-info row without end of life date")
		}
		table[series] = info
	}
	return table, nil
}

var _ ports.ReleaseTablePort = DistroInfoAdapter{}
