package instrument

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"

	"go.uber.org/zap"

	"github.com/wippyai/wasm-proxy/errors"
)

// Runner executes an external tool in dir and returns its stdout.
type Runner interface {
	Run(ctx context.Context, dir, tool string, args ...string) ([]byte, error)
}

// Exec runs tools as child processes.
type Exec struct{}

// Run fails with a *errors.ToolError carrying the exit status and
// stderr. A tool that cannot be started reports exit status -1.
func (Exec) Run(ctx context.Context, dir, tool string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, tool, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	Logger().Debug("running tool", zap.String("tool", tool), zap.Strings("args", args), zap.String("dir", dir))
	if err := cmd.Run(); err != nil {
		code := -1
		var exit *exec.ExitError
		if stderrors.As(err, &exit) {
			code = exit.ExitCode()
		}
		return stdout.Bytes(), errors.NewToolError(tool, args, code, stderr.String(), err)
	}
	return stdout.Bytes(), nil
}
