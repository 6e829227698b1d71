package shx

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapture(t *testing.T) {
	res, err := New("/bin/sh", "-c", "echo out; echo err 1>&2").
		With(CaptureOutput(), CaptureError()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	assert.NoError(t, res.Err())
	assert.Equal(t, 0, res.ExitCode())
	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(out))
	errOut, err := io.ReadAll(res.Stderr())
	require.NoError(t, err)
	assert.Equal(t, "err\n", string(errOut))
}

func TestRunCaptureCombined(t *testing.T) {
	res, err := New("/bin/sh", "-c", "echo one; echo two 1>&2").
		With(CaptureCombined()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.ElementsMatch(t,
		[]string{"one", "two"},
		strings.Fields(string(out)))
}

func TestRunExitError(t *testing.T) {
	t.Run("error stays in result", func(t *testing.T) {
		res, err := New("/bin/sh", "-c", "exit 3").Run(context.Background())
		require.NoError(t, err)
		assert.Error(t, res.Err())
		assert.Equal(t, 3, res.ExitCode())
	})
	t.Run("combined error option", func(t *testing.T) {
		res, err := New("/bin/sh", "-c", "exit 3").
			With(WithCombinedError()).
			Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, 3, res.ExitCode())
	})
	t.Run("start failure", func(t *testing.T) {
		res, err := New("/nonexistent-program").Run(context.Background())
		require.Error(t, err)
		assert.Nil(t, res)
	})
}

func TestWithEnv(t *testing.T) {
	res, err := New("/bin/sh", "-c", `printf '%s' "$JRUN_TEST_VALUE"`).
		With(WithEnv("JRUN_TEST_VALUE", "hello"), CaptureOutput()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
}

func TestWithEnvInherits(t *testing.T) {
	t.Setenv("JRUN_TEST_INHERITED", "kept")
	res, err := New("/bin/sh", "-c", `printf '%s' "$JRUN_TEST_INHERITED"`).
		With(WithEnv("JRUN_TEST_OTHER", "x"), CaptureOutput()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "kept", string(out))
}

func TestWithCwd(t *testing.T) {
	dir := t.TempDir()
	res, err := New("/bin/pwd").
		With(WithCwd(dir), CaptureOutput()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	// tmp dirs may sit behind a symlink, compare resolved paths
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(string(out)))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWithStdin(t *testing.T) {
	res, err := New("/bin/cat").
		With(WithStdin(strings.NewReader("pass through")), CaptureOutput()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Equal(t, "pass through", string(out))
}

func TestStartWait(t *testing.T) {
	var started *os.Process
	p, err := New("/bin/sleep", "30").
		With(OnStarted(func(proc *os.Process) { started = proc })).
		Start(context.Background())
	require.NoError(t, err)
	require.NotNil(t, p.Process())
	assert.Same(t, p.Process(), started)

	require.NoError(t, p.Signal(syscall.SIGKILL))
	res, err := p.Wait()
	require.NoError(t, err)
	assert.Error(t, res.Err())
	assert.Equal(t, -1, res.ExitCode())

	t.Run("double wait", func(t *testing.T) {
		_, err := p.Wait()
		assert.Error(t, err)
	})
}

func TestCaptureSpill(t *testing.T) {
	const size = 3 * spillLimit
	res, err := New("/bin/sh", "-c", "head -c "+strconv.Itoa(size)+" /dev/zero").
		With(CaptureOutput()).
		Run(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { res.Close() }) //nolint:errcheck

	require.NoError(t, res.Err())
	out, err := io.ReadAll(res.Stdout())
	require.NoError(t, err)
	assert.Len(t, out, size)
}
