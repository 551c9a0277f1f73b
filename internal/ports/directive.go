package ports

import "kernel-lifecycle/internal/types"

type DirectiveWriterPort interface {
	WriteDirectives(path string, directives []types.ChangeDirective) error
}
