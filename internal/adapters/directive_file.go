package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"kernel-lifecycle/internal/ports"
	"kernel-lifecycle/internal/types"
)

type DirectiveFormat string

const (
	DirectiveFormatYAML   DirectiveFormat = "yaml"
	DirectiveFormatScript DirectiveFormat = "script"
)

// DirectiveFileAdapter writes mark-change directives for the package
// manager, either as a YAML document or as an apt-mark script.
type DirectiveFileAdapter struct {
	Format DirectiveFormat
}

type directiveDocument struct {
	Directives []types.ChangeDirective `yaml:"directives"`
}

func NewDirectiveFileAdapter(format DirectiveFormat) DirectiveFileAdapter {
	return DirectiveFileAdapter{Format: format}
}

// ParseDirectiveFormat validates a user supplied format name; empty means
// YAML.
func ParseDirectiveFormat(value string) (DirectiveFormat, error) {
	switch DirectiveFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", DirectiveFormatYAML:
		return DirectiveFormatYAML, nil
	case DirectiveFormatScript:
		return DirectiveFormatScript, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported directive format %q", value))
	}
}

func (a DirectiveFileAdapter) WriteDirectives(path string, directives []types.ChangeDirective) error {
	if strings.TrimSpace(path) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("directive output path is empty")
	}
	var content []byte
	mode := os.FileMode(0644)
	switch a.Format {
	case DirectiveFormatScript:
		content = []byte(renderAptMarkScript(directives))
		mode = 0755
	case DirectiveFormatYAML, "":
		data, err := yaml.Marshal(directiveDocument{Directives: nonNilDirectives(directives)})
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to encode directives").
				WithCause(err)
		}
		content = data
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported directive format")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	if err := os.WriteFile(path, content, mode); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write directives").
			WithCause(err)
	}
	return nil
}

// renderAptMarkScript groups directives into one apt-mark call per target
// state, keeping directive order within each call.
func renderAptMarkScript(directives []types.ChangeDirective) string {
	var manual, auto []string
	for _, directive := range directives {
		switch directive.To {
		case types.MarkManual:
			manual = append(manual, directive.Package)
		case types.MarkAuto:
			auto = append(auto, directive.Package)
		}
	}
	lines := []string{"#!/bin/sh", "set -e"}
	if len(manual) > 0 {
		lines = append(lines, "apt-mark manual "+strings.Join(manual, " "))
	}
	if len(auto) > 0 {
		lines = append(lines, "apt-mark auto "+strings.Join(auto, " "))
	}
	return strings.Join(lines, "\n") + "\n"
}

func nonNilDirectives(directives []types.ChangeDirective) []types.ChangeDirective {
	if directives == nil {
		return []types.ChangeDirective{}
	}
	return directives
}

var _ ports.DirectiveWriterPort = DirectiveFileAdapter{}
