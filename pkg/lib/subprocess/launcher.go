package subprocess

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"

	"github.com/SanjoDeundiak/process-launcher/pkg/lib"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/future"
	"github.com/SanjoDeundiak/process-launcher/pkg/lib/reactor"
)

// Launcher spawns child processes on a reactor loop and tracks them until
// they are reaped.
type Launcher struct {
	loop        *reactor.Loop
	registry    *registry
	reaper      *reaper
	spawn       spawnFunc
	kill        killFunc
	reapOrphans bool
	logger      zerolog.Logger
}

// NewLauncher binds a launcher to loop and subscribes its reaper to SIGCHLD.
// Children launched afterwards are reaped by that loop.
func NewLauncher(loop *reactor.Loop, opts ...LauncherOption) (*Launcher, error) {
	l := &Launcher{
		loop:   loop,
		spawn:  forkExec,
		kill:   unix.Kill,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = l.logger.With().Str("component", "subprocess").Logger()

	l.registry = newRegistry(l.logger)
	l.registry.confined = loop.InLoop
	l.reaper = &reaper{
		registry: l.registry,
		orphans:  l.reapOrphans,
		wait4:    unix.Wait4,
		now:      time.Now,
		logger:   l.logger,
	}

	if err := loop.OnSignal(unix.SIGCHLD, l.reaper.reap); err != nil {
		return nil, err
	}
	if err := loop.OnStop(l.shutdown); err != nil {
		return nil, err
	}
	return l, nil
}

// shutdown runs on the loop as it stops. Children that already terminated get
// their status; the rest are failed with reactor.ErrLoopStopped since nothing
// will reap them anymore.
func (l *Launcher) shutdown() {
	l.reaper.reap()
	for _, pid := range l.registry.Pids() {
		l.logger.Warn().Int("pid", pid).Msg("loop stopped with child process still running")
		l.registry.Fail(pid, reactor.ErrLoopStopped)
	}
}

// Exec launches command with env as its complete environment.
func (l *Launcher) Exec(ctx context.Context, command string, args []string, env lib.EnvironmentVariables, opts ...ExecOption) (*ChildProcess, error) {
	req := ExecRequest{Command: command, Args: args, Env: env}
	for _, opt := range opts {
		opt(&req)
	}
	return l.Launch(ctx, req)
}

// ExecWithUpdate launches command with the current environment overlaid by update.
func (l *Launcher) ExecWithUpdate(ctx context.Context, command string, args []string, update lib.EnvironmentVariablesUpdate, opts ...ExecOption) (*ChildProcess, error) {
	env := lib.CurrentEnvironmentVariables().UpdateWith(update)
	return l.Exec(ctx, command, args, env, opts...)
}

// ExecInherit launches command with the current environment.
func (l *Launcher) ExecInherit(ctx context.Context, command string, args []string, opts ...ExecOption) (*ChildProcess, error) {
	return l.ExecWithUpdate(ctx, command, args, nil, opts...)
}

// Launch spawns req on the loop and waits until the child is registered.
//
// If ctx ends first Launch returns ctx.Err(), but a spawn already queued still
// happens; that child runs unobserved and its status is dropped when reaped.
func (l *Launcher) Launch(ctx context.Context, req ExecRequest) (*ChildProcess, error) {
	sr, err := prepareSpawn(req)
	if err != nil {
		return nil, err
	}

	logger := l.logger.With().Str("exec_id", lib.NewID()).Str("command", req.Command).Logger()
	logger.Debug().Strs("args", req.Args).Strs("env", sr.envv).
		Str("stdout", req.StdoutFile).Str("stderr", req.StderrFile).Msg("do fork/exec")

	result := future.NewPromise[*ChildProcess]()
	if err := l.loop.RunAsync(func() { l.spawnAndRegister(sr, result, logger) }); err != nil {
		sr.close()
		return nil, err
	}

	return result.Future().Wait(ctx)
}

// spawnAndRegister runs on the loop. The child is registered before the loop
// gets a chance to handle SIGCHLD, so its termination cannot be missed.
func (l *Launcher) spawnAndRegister(sr *spawnRequest, result *future.Promise[*ChildProcess], logger zerolog.Logger) {
	defer sr.close()

	pid, err := l.spawn(sr)
	if err != nil {
		logger.Warn().Err(err).Msg("spawn failed")
		_ = result.SetError(err)
		return
	}

	status := future.NewPromise[lib.ProcessStatus]()
	if err := l.registry.Insert(pid, status); err != nil {
		logger.Error().Err(err).Int("pid", pid).Msg("child process already tracked, send SIGKILL")
		_ = l.kill(pid, unix.SIGKILL)
		_ = result.SetError(err)
		return
	}

	logger.Debug().Int("pid", pid).Msg("started child process")
	_ = result.SetValue(newChildProcess(pid, status.Future(), l.kill))
}

// Tracked returns the number of launched children not yet reaped.
func (l *Launcher) Tracked(ctx context.Context) (int, error) {
	var n int
	if err := l.loop.Run(ctx, func() { n = l.registry.Len() }); err != nil {
		return 0, err
	}
	return n, nil
}
