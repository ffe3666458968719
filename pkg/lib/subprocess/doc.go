// Package subprocess launches child processes from a reactor loop and
// delivers each child's termination status through a future.
//
// All bookkeeping (spawning, the pid registry and reaping) happens on a single
// reactor.Loop goroutine. Callers submit work with Launcher.Exec and friends,
// which block only the calling goroutine until the child has been spawned and
// registered. The loop's SIGCHLD handler reaps terminated children and
// resolves their futures; ChildProcess.WaitForStatus observes the result.
//
// Output can be redirected to files opened in append mode. Pipes are not
// supported.
package subprocess
