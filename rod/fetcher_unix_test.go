//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/wordinfo/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	// The fetcher owns exactly one launcher for its whole life.
	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)), "launcher should run while the fetcher is open")

	require.NoError(t, fetcher.Close())
	assert.Zero(t, fetcher.LauncherPID(), "closed fetcher should forget its launcher")

	// Signal 0 fails once the process is gone.
	assert.Eventually(t, func() bool {
		return syscall.Kill(pid, syscall.Signal(0)) != nil
	}, 2*time.Second, 50*time.Millisecond, "launcher should exit after Close")
}
