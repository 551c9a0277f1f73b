package adapters

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleUbuntuCSV = `version,codename,series,created,release,eol,eol-server,eol-esm
18.04 LTS,Bionic Beaver,bionic,2017-10-19,2018-04-26,2023-05-31,2023-05-31,2028-04-26
22.04 LTS,Jammy Jellyfish,jammy,2021-10-14,2022-04-21,2027-06-01,2027-06-01,2032-04-21
24.04 LTS,Noble Numbat,noble,2023-10-26,2024-04-25,2029-05-31,2029-05-31,2034-04-25
26.04,Future,future,2025-10-16
`

func TestDistroInfoAdapterLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ubuntu.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleUbuntuCSV), 0o644))

	table, err := NewDistroInfoAdapter(path).LoadReleaseTable(t.Context())
	require.NoError(t, err)

	require.Len(t, table, 4)
	noble := table["noble"]
	assert.Equal(t, "24.04 LTS", noble.Version)
	assert.Equal(t, time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC), noble.ReleaseDate)
	assert.Equal(t, time.Date(2029, 5, 31, 0, 0, 0, 0, time.UTC), noble.SupportEndDate)
	assert.True(t, table["future"].SupportEndDate.IsZero())
}

func TestParseDistroInfoMissingColumn(t *testing.T) {
	_, err := parseDistroInfo(strings.NewReader("version,codename\n24.04,noble\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing column")
}

func TestDistroInfoAdapterMissingFile(t *testing.T) {
	_, err := NewDistroInfoAdapter(filepath.Join(t.TempDir(), "none.csv")).LoadReleaseTable(t.Context())
	require.Error(t, err)
	assert.Equal(t, DefaultDistroInfoPath, NewDistroInfoAdapter("").Path)
}
