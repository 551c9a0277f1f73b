package adapters

import (
	"bufio"
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/shared"
)

const DefaultOSReleasePath = "/etc/os-release"

// OSReleaseAdapter reads the release codename from os-release. Derivatives
// such as Linux Mint publish their base in UBUNTU_CODENAME, which wins over
// VERSION_CODENAME.
type OSReleaseAdapter struct {
	Path string
}

func NewOSReleaseAdapter(path string) OSReleaseAdapter {
	if strings.TrimSpace(path) == "" {
		path = DefaultOSReleasePath
	}
	return OSReleaseAdapter{Path: path}
}

func (a OSReleaseAdapter) Codename(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	file, err := os.Open(a.Path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("os-release file not found").
			WithCause(err)
	}
	defer file.Close()
	values := map[string]string{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values[strings.TrimSpace(key)] = unquoteOSReleaseValue(value)
	}
	if err := scanner.Err(); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read os-release").
			WithCause(err)
	}
	for _, key := range []string{"UBUNTU_CODENAME", "VERSION_CODENAME"} {
		if value := shared.NormalizeCodename(values[key]); value != "" {
			return value, nil
		}
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg("os-release has no codename")
}

func unquoteOSReleaseValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if unquoted, err := strconv.Unquote(trimmed); err == nil {
		return unquoted
	}
	return strings.Trim(trimmed, `"'`)
}

var _ ports.CodenamePort = OSReleaseAdapter{}
