//go:build !linux

package adapters

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

func (a RunningKernelAdapter) RunningKernel(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if override := strings.TrimSpace(a.Override); override != "" {
		return override, nil
	}
	return "", errbuilder.New().
		WithCode(errbuilder.CodeUnimplemented).
		WithMsg("running kernel detection is only available on linux")
}
