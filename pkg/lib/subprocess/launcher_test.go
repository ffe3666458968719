package subprocess

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/future"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/reactor"
)

func newTestLauncher(t *testing.T, opts ...LauncherOption) *Launcher {
	t.Helper()
	loop := reactor.RunNewLoop(reactor.WithName(t.Name()))
	t.Cleanup(loop.Stop)

	l, err := NewLauncher(loop, opts...)
	if err != nil {
		t.Fatalf("NewLauncher failed: %v", err)
	}
	return l
}

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func waitStatus(t *testing.T, ctx context.Context, child *ChildProcess) lib.ProcessStatus {
	t.Helper()
	st, err := child.WaitForStatus(ctx)
	if err != nil {
		t.Fatalf("WaitForStatus(pid=%d) failed: %v", child.Pid(), err)
	}
	return st
}

func TestExec_TrueExitsZero(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	child, err := l.ExecInherit(ctx, "/bin/true", nil)
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if child.Pid() <= 0 {
		t.Fatalf("expected a positive pid, got %d", child.Pid())
	}

	st := waitStatus(t, ctx, child)
	if st.ExitReason() != lib.ExitReasonExited || st.ExitCode() != 0 {
		t.Fatalf("expected exited(0), got %s", st)
	}
}

func TestExec_ExitCodes(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	for _, code := range []int{0, 1, 7, 128, 255} {
		child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", fmt.Sprintf("exit %d", code)})
		if err != nil {
			t.Fatalf("Exec failed: %v", err)
		}
		st := waitStatus(t, ctx, child)
		if !st.IsExited() || st.ExitCode() != code {
			t.Fatalf("expected exited(%d), got %s", code, st)
		}
	}
}

func TestExec_KilledBySignal(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", "kill -9 $$"})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	st := waitStatus(t, ctx, child)
	if st.ExitReason() != lib.ExitReasonSignaled || st.TermSignal() != unix.SIGKILL {
		t.Fatalf("expected signaled(SIGKILL), got %s", st)
	}
}

func TestExec_ExecutionTime(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", "sleep 0.2"})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	st := waitStatus(t, ctx, child)
	if st.ExecutionTime() < 200*time.Millisecond {
		t.Fatalf("execution time %v shorter than the child's sleep", st.ExecutionTime())
	}
}

func TestExec_StdoutRedirectAppends(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	out := filepath.Join(t.TempDir(), "stdout")
	if err := os.WriteFile(out, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("seed stdout file: %v", err)
	}

	child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", "echo hello; echo world"},
		WithStdoutFile(out))
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if st := waitStatus(t, ctx, child); st.ExitCode() != 0 {
		t.Fatalf("unexpected status %s", st)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read stdout file: %v", err)
	}
	if string(data) != "first\nhello\nworld\n" {
		t.Fatalf("unexpected stdout content %q", string(data))
	}
}

func TestExec_StderrRedirect(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	dir := t.TempDir()
	out := filepath.Join(dir, "stdout")
	errPath := filepath.Join(dir, "stderr")

	child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", "echo out; echo err 1>&2"},
		WithStdoutFile(out), WithStderrFile(errPath))
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	waitStatus(t, ctx, child)

	stdout, _ := os.ReadFile(out)
	stderr, _ := os.ReadFile(errPath)
	if string(stdout) != "out\n" || string(stderr) != "err\n" {
		t.Fatalf("unexpected output stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestExec_EnvironmentFormsAreEquivalent(t *testing.T) {
	envPath, err := exec.LookPath("env")
	if err != nil {
		t.Skip("env binary not available")
	}
	l := newTestLauncher(t)
	ctx := testContext(t)
	dir := t.TempDir()

	update := lib.EnvironmentVariablesUpdate{"PRL_TEST_A": "1", "PATH": "/nowhere"}

	run := func(name string, launch func(out string) (*ChildProcess, error)) string {
		out := filepath.Join(dir, name)
		child, err := launch(out)
		if err != nil {
			t.Fatalf("%s: Exec failed: %v", name, err)
		}
		if st := waitStatus(t, ctx, child); !st.IsExited() || st.ExitCode() != 0 {
			t.Fatalf("%s: unexpected status %s", name, st)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatalf("%s: read output: %v", name, err)
		}
		return string(data)
	}

	replaced := run("replace", func(out string) (*ChildProcess, error) {
		env := lib.CurrentEnvironmentVariables().UpdateWith(update)
		return l.Exec(ctx, envPath, nil, env, WithStdoutFile(out))
	})
	updated := run("update", func(out string) (*ChildProcess, error) {
		return l.ExecWithUpdate(ctx, envPath, nil, update, WithStdoutFile(out))
	})

	if replaced != updated {
		t.Fatalf("environments differ:\nreplace:\n%s\nupdate:\n%s", replaced, updated)
	}
	got := lib.ParseEnviron(splitLines(replaced))
	if got["PRL_TEST_A"] != "1" || got["PATH"] != "/nowhere" {
		t.Fatalf("overlay not applied: %v", got)
	}
}

func TestExec_ExplicitEnvironmentReplacesEverything(t *testing.T) {
	envPath, err := exec.LookPath("env")
	if err != nil {
		t.Skip("env binary not available")
	}
	l := newTestLauncher(t)
	ctx := testContext(t)
	out := filepath.Join(t.TempDir(), "env")

	child, err := l.Exec(ctx, envPath, nil, lib.EnvironmentVariables{"ONLY": "me"}, WithStdoutFile(out))
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	waitStatus(t, ctx, child)

	data, _ := os.ReadFile(out)
	if string(data) != "ONLY=me\n" {
		t.Fatalf("unexpected environment %q", string(data))
	}
}

func TestExec_ConcurrentLaunches(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	const n = 16
	type outcome struct {
		code int
		pid  int
		st   lib.ProcessStatus
		err  error
	}
	results := make(chan outcome, n)

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(code int) {
			defer wg.Done()
			child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", fmt.Sprintf("sleep 0.05; exit %d", code)})
			if err != nil {
				results <- outcome{code: code, err: err}
				return
			}
			st, err := child.WaitForStatus(ctx)
			results <- outcome{code: code, pid: child.Pid(), st: st, err: err}
		}(i)
	}
	wg.Wait()
	close(results)

	pids := make(map[int]bool)
	for r := range results {
		if r.err != nil {
			t.Fatalf("child %d failed: %v", r.code, r.err)
		}
		if pids[r.pid] {
			t.Fatalf("pid %d delivered twice", r.pid)
		}
		pids[r.pid] = true
		if !r.st.IsExited() || r.st.ExitCode() != r.code {
			t.Fatalf("child %d got status %s", r.code, r.st)
		}
	}
	if len(pids) != n {
		t.Fatalf("expected %d distinct pids, got %d", n, len(pids))
	}
}

func TestExec_WorkingDirectory(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)
	dir := t.TempDir()

	child, err := l.ExecInherit(ctx, "/bin/sh", []string{"-c", "echo here > marker"}, WithDir(dir))
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	waitStatus(t, ctx, child)

	if _, err := os.Stat(filepath.Join(dir, "marker")); err != nil {
		t.Fatalf("child did not run in %s: %v", dir, err)
	}
}

func TestExec_MissingBinaryIsOsError(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	_, err := l.ExecInherit(ctx, "/nonexistent/binary", nil)
	if !errors.Is(err, lib.ErrOs) {
		t.Fatalf("expected OsError, got %v", err)
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Fatalf("expected ENOENT cause, got %v", err)
	}
	var osErr *lib.OsError
	if !errors.As(err, &osErr) {
		t.Fatalf("expected *lib.OsError, got %T", err)
	}
}

func TestExec_RedirectOpenFailureIsOsError(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	bad := filepath.Join(t.TempDir(), "missing-dir", "stdout")
	if _, err := l.ExecInherit(ctx, "/bin/true", nil, WithStdoutFile(bad)); !errors.Is(err, lib.ErrOs) {
		t.Fatalf("expected OsError, got %v", err)
	}
}

func TestExec_EmptyCommand(t *testing.T) {
	l := newTestLauncher(t)

	if _, err := l.ExecInherit(testContext(t), "", nil); !errors.Is(err, lib.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestExec_StoppedLoop(t *testing.T) {
	loop := reactor.RunNewLoop()
	l, err := NewLauncher(loop)
	if err != nil {
		t.Fatalf("NewLauncher failed: %v", err)
	}
	loop.Stop()

	if _, err := l.ExecInherit(testContext(t), "/bin/true", nil); !errors.Is(err, reactor.ErrLoopStopped) {
		t.Fatalf("expected ErrLoopStopped, got %v", err)
	}
}

func TestStopLoop_FailsLiveChildren(t *testing.T) {
	loop := reactor.RunNewLoop()
	l, err := NewLauncher(loop)
	if err != nil {
		t.Fatalf("NewLauncher failed: %v", err)
	}

	child, err := l.ExecInherit(testContext(t), "/bin/sleep", []string{"10"})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	defer func() {
		_ = unix.Kill(child.Pid(), unix.SIGKILL)
		_, _ = unix.Wait4(child.Pid(), nil, 0, nil)
	}()

	loop.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := child.WaitForStatus(ctx); !errors.Is(err, reactor.ErrLoopStopped) {
		t.Fatalf("expected ErrLoopStopped, got %v", err)
	}
}

func TestStopLoop_ReapsExitedChildren(t *testing.T) {
	loop := reactor.RunNewLoop()
	l, err := NewLauncher(loop)
	if err != nil {
		t.Fatalf("NewLauncher failed: %v", err)
	}

	child, err := l.ExecInherit(testContext(t), "/bin/sh", []string{"-c", "exit 5"})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}

	// keep the loop busy so SIGCHLD is not handled before Stop
	release := make(chan struct{})
	_ = loop.RunAsync(func() { <-release })
	time.Sleep(200 * time.Millisecond)
	close(release)
	loop.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	st, err := child.WaitForStatus(ctx)
	if err != nil {
		t.Fatalf("WaitForStatus failed: %v", err)
	}
	if !st.IsExited() || st.ExitCode() != 5 {
		t.Fatalf("expected exited(5), got %s", st)
	}
}

func TestSendSignal(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	child, err := l.ExecInherit(ctx, "/bin/sleep", []string{"10"})
	if err != nil {
		t.Fatalf("Exec failed: %v", err)
	}
	if !child.SendSignal(unix.SIGTERM) {
		t.Fatalf("SendSignal to a live child must succeed")
	}

	st := waitStatus(t, ctx, child)
	if !st.IsSignaled() || st.TermSignal() != unix.SIGTERM {
		t.Fatalf("expected signaled(SIGTERM), got %s", st)
	}
	if child.SendSignal(unix.SIGKILL) {
		t.Fatalf("SendSignal after reaping must be a no-op")
	}
	if got, ok := child.Status(); !ok || got.TermSignal() != unix.SIGTERM {
		t.Fatalf("Status() must return the delivered status")
	}
}

func TestDroppedHandleIsStillReaped(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	for i := 0; i < 4; i++ {
		if _, err := l.ExecInherit(ctx, "/bin/true", nil); err != nil {
			t.Fatalf("Exec failed: %v", err)
		}
	}

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		n, err := l.Tracked(ctx)
		if err != nil {
			t.Fatalf("Tracked failed: %v", err)
		}
		if n == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("dropped children were not reaped")
}

func TestExec_RegistryConflictKillsChild(t *testing.T) {
	l := newTestLauncher(t)
	ctx := testContext(t)

	occupied := make(chan *future.Future[lib.ProcessStatus], 1)
	spawn := l.spawn
	l.spawn = func(sr *spawnRequest) (int, error) {
		pid, err := spawn(sr)
		if err != nil {
			return pid, err
		}
		// Claim the pid first so the launcher's own registration collides.
		occupant := future.NewPromise[lib.ProcessStatus]()
		if err := l.registry.Insert(pid, occupant); err != nil {
			t.Errorf("pre-registration failed: %v", err)
		}
		occupied <- occupant.Future()
		return pid, nil
	}

	_, err := l.ExecInherit(ctx, "/bin/sleep", []string{"10"})
	if !errors.Is(err, lib.ErrRegistryConflict) {
		t.Fatalf("expected ErrRegistryConflict, got %v", err)
	}

	st, err := (<-occupied).Wait(ctx)
	if err != nil {
		t.Fatalf("conflicting child was not reaped: %v", err)
	}
	if !st.IsSignaled() || st.TermSignal() != unix.SIGKILL {
		t.Fatalf("expected conflicting child to be SIGKILLed, got %s", st)
	}
}

func TestLaunch_CallerContextCancelled(t *testing.T) {
	l := newTestLauncher(t)

	// Hold the loop so the spawn cannot complete before the caller gives up.
	release := make(chan struct{})
	if err := l.loop.RunAsync(func() { <-release }); err != nil {
		t.Fatalf("RunAsync failed: %v", err)
	}
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := l.ExecInherit(ctx, "/bin/true", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
