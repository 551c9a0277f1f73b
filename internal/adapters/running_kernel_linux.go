//go:build linux

package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"golang.org/x/sys/unix"
)

func (a RunningKernelAdapter) RunningKernel(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if override := strings.TrimSpace(a.Override); override != "" {
		return override, nil
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("uname failed").
			WithCause(err)
	}
	return unix.ByteSliceToString(uts.Release[:]), nil
}
