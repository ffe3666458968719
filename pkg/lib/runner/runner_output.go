package runner

import (
	"errors"
	"os"
	"path/filepath"
)

// Output returns everything the process has written to stdout and stderr so far.
func (runner *Runner) Output(id string) ([]byte, []byte, error) {
	pe, err := runner.getProcess(id)
	if err != nil {
		return nil, nil, err
	}

	stdout, err := readOutput(filepath.Join(pe.workDir, stdoutFileName))
	if err != nil {
		return nil, nil, err
	}
	stderr, err := readOutput(filepath.Join(pe.workDir, stderrFileName))
	if err != nil {
		return nil, nil, err
	}
	return stdout, stderr, nil
}

// readOutput treats a missing file as empty output.
func readOutput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	return data, err
}

// Subscribe returns a channel receiving an ExitEvent for every process that
// terminates from now on. A subscriber that falls more than buffer events
// behind loses the oldest ones.
func (runner *Runner) Subscribe(buffer int) (chan ExitEvent, error) {
	return runner.events.Subscribe(buffer)
}

func (runner *Runner) Unsubscribe(ch chan ExitEvent) {
	runner.events.Unsubscribe(ch)
}
