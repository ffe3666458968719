package runner

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/reactor"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()
	runner, err := NewRunner(WithBaseDir(t.TempDir()), WithStopTimeout(2*time.Second))
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}
	t.Cleanup(runner.Close)
	return runner
}

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestStartAndOutput(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sh", Args: []string{"-c", "echo out; echo err 1>&2"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if res.Pid <= 0 {
		t.Fatalf("expected positive pid, got %d", res.Pid)
	}

	statusResult, err := runner.Wait(waitCtx(t), res.ID)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	st := statusResult.Status
	if st.State != lib.ProcessStateStopped {
		t.Fatalf("expected state Stopped, got %v", st.State)
	}
	if st.Status == nil || !st.Status.IsExited() || st.Status.ExitCode() != 0 {
		t.Fatalf("expected exit code 0, got %v", st.Status)
	}
	if st.EndTime == nil || st.EndTime.Before(st.StartTime) {
		t.Fatalf("expected end time after start time")
	}

	stdout, stderr, err := runner.Output(res.ID)
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if string(stdout) != "out\n" {
		t.Fatalf("Output: wrong stdout %q", stdout)
	}
	if string(stderr) != "err\n" {
		t.Fatalf("Output: wrong stderr %q", stderr)
	}
}

func TestStartRunningStatus(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sleep", Args: []string{"5"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if res.Status.State != lib.ProcessStateRunning {
		t.Fatalf("expected initial state Running, got %v", res.Status.State)
	}
	if res.Status.Status != nil || res.Status.EndTime != nil {
		t.Fatalf("expected no final status at start")
	}

	statusResult, err := runner.Status(res.ID)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}
	if statusResult.Command.Command != "sleep" || len(statusResult.Command.Args) != 1 {
		t.Fatalf("unexpected command %+v", statusResult.Command)
	}

	if _, err := runner.Stop(waitCtx(t), res.ID); err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
}

func TestStopKillsProcess(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sleep", Args: []string{"5"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	stopResult, err := runner.Stop(waitCtx(t), res.ID)
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	st := stopResult.Status
	if st.State != lib.ProcessStateStopped {
		t.Fatalf("expected state Stopped, got %v", st.State)
	}
	if st.Status == nil || !st.Status.IsSignaled() || st.Status.TermSignal() != unix.SIGKILL {
		t.Fatalf("expected SIGKILL termination, got %v", st.Status)
	}

	// stopping again reports the same final status
	again, err := runner.Stop(waitCtx(t), res.ID)
	if err != nil {
		t.Fatalf("second Stop failed: %v", err)
	}
	if again.Status.Status == nil || !again.Status.Status.IsSignaled() {
		t.Fatalf("expected final status on second Stop")
	}
}

func TestStartInvalidCommand(t *testing.T) {
	runner := newTestRunner(t)

	if _, err := runner.Start(waitCtx(t), StartRequest{Command: "nonexistent-command-xyz"}); err == nil {
		t.Fatalf("expected error for invalid command")
	}
	if _, err := runner.Start(waitCtx(t), StartRequest{}); err == nil {
		t.Fatalf("expected error for empty command")
	}
}

func TestUnknownID(t *testing.T) {
	runner := newTestRunner(t)

	if _, err := runner.Status("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Status: expected ErrNotExist, got %v", err)
	}
	if _, err := runner.Stop(waitCtx(t), "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Stop: expected ErrNotExist, got %v", err)
	}
	if _, err := runner.Wait(waitCtx(t), "missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Wait: expected ErrNotExist, got %v", err)
	}
	if _, _, err := runner.Output("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Output: expected ErrNotExist, got %v", err)
	}
	if _, err := runner.Owner("missing"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("Owner: expected ErrNotExist, got %v", err)
	}
}

func TestOwnerTag(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "true", Owner: "client1"})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	owner, err := runner.Owner(res.ID)
	if err != nil {
		t.Fatalf("Owner failed: %v", err)
	}
	if owner != "client1" {
		t.Fatalf("expected owner client1, got %q", owner)
	}
}

func TestStartEnvironment(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{
		Command: "sh",
		Args:    []string{"-c", `printf "%s" "$PRL_TEST_VALUE"`},
		Env:     lib.EnvironmentVariablesUpdate{"PRL_TEST_VALUE": "overlay"},
	})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := runner.Wait(waitCtx(t), res.ID); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	stdout, _, err := runner.Output(res.ID)
	if err != nil {
		t.Fatalf("Output failed: %v", err)
	}
	if string(stdout) != "overlay" {
		t.Fatalf("expected overlay value, got %q", stdout)
	}
}

func TestWaitContextCancelled(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sleep", Args: []string{"5"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer runner.Stop(context.Background(), res.ID)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := runner.Wait(ctx, res.ID); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestCloseFailsRunningProcesses(t *testing.T) {
	runner := newTestRunner(t)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sleep", Args: []string{"10"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer func() {
		_ = unix.Kill(res.Pid, unix.SIGKILL)
		_, _ = unix.Wait4(res.Pid, nil, 0, nil)
	}()

	runner.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	statusResult, err := runner.Wait(ctx, res.ID)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	st := statusResult.Status
	if st.State != lib.ProcessStateStopped || st.Status != nil {
		t.Fatalf("expected stopped without status, got %+v", st)
	}
	if !errors.Is(st.Err, reactor.ErrLoopStopped) {
		t.Fatalf("expected ErrLoopStopped, got %v", st.Err)
	}
}

func TestSubscribeExitEvents(t *testing.T) {
	runner := newTestRunner(t)

	events, err := runner.Subscribe(4)
	if err != nil {
		t.Fatalf("Subscribe failed: %v", err)
	}
	defer runner.Unsubscribe(events)

	res, err := runner.Start(waitCtx(t), StartRequest{Command: "sh", Args: []string{"-c", "exit 3"}})
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	select {
	case ev := <-events:
		if ev.ID != res.ID || ev.Pid != res.Pid {
			t.Fatalf("unexpected event %+v", ev)
		}
		if ev.Err != nil || ev.Status == nil || ev.Status.ExitCode() != 3 {
			t.Fatalf("expected exit code 3, got %+v", ev)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for exit event")
	}
}
