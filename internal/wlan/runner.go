package wlan

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner runs an external tool and captures its output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr string, err error)
	// RunWithInput is Run with input fed to the tool's stdin. Secrets
	// belong in input, never in args.
	RunWithInput(ctx context.Context, input, name string, args ...string) (stdout, stderr string, err error)
}

// ExecRunner runs tools via os/exec.
type ExecRunner struct {
	// Timeout bounds each invocation. Zero means no limit beyond ctx.
	Timeout time.Duration

	logger *zap.Logger
}

// NewExecRunner creates a runner. A nil logger disables logging.
func NewExecRunner(timeout time.Duration, logger *zap.Logger) *ExecRunner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExecRunner{Timeout: timeout, logger: logger}
}

// Run executes name with args and returns its stdout and stderr.
// A non-zero exit status is returned as an *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	return r.run(ctx, nil, name, args...)
}

// RunWithInput executes name with args, writing input to its stdin.
// The input is never logged.
func (r *ExecRunner) RunWithInput(ctx context.Context, input, name string, args ...string) (string, string, error) {
	return r.run(ctx, strings.NewReader(input), name, args...)
}

func (r *ExecRunner) run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	startTime := time.Now()
	r.logger.Debug("running command",
		zap.String("tool", name),
		zap.Strings("args", redactArgs(args)),
		zap.Bool("stdin", stdin != nil),
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if stdin != nil {
		cmd.Stdin = stdin
	}
	err := cmd.Run()

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}
	if ctx.Err() == context.DeadlineExceeded {
		err = context.DeadlineExceeded
	}

	r.logger.Debug("command complete",
		zap.String("tool", name),
		zap.Duration("duration", time.Since(startTime)),
		zap.Int("exit_code", exitCode),
		zap.Int("stdout_size", stdoutBuf.Len()),
		zap.String("stderr", stderrBuf.String()),
	)

	return stdoutBuf.String(), stderrBuf.String(), err
}

// redactArgs hides the value following a "password" argument.
func redactArgs(args []string) []string {
	out := make([]string, len(args))
	copy(out, args)
	for i := 0; i < len(out)-1; i++ {
		if strings.EqualFold(out[i], "password") {
			out[i+1] = "********"
			i++
		}
	}
	return out
}
