package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"

	protov1 "github.com/SanjoDeundiak/process-launcher/api/v1"
)

func printStatusTable(w io.Writer, id string, st *protov1.ProcessStatus, p *protov1.Process) {
	state, pid, result := "", "", ""
	if st != nil {
		switch st.GetState() {
		case protov1.ProcessState_PROCESS_STATE_RUNNING:
			state = "Running"
		case protov1.ProcessState_PROCESS_STATE_STOPPED:
			state = "Stopped"
		default:
			state = "Unknown"
		}
		pid = strconv.Itoa(int(st.GetPid()))
		result = describeResult(st)
	}
	cmd := ""
	if p != nil {
		all := []string{p.GetCommand()}
		for _, arg := range p.GetArgs() {
			all = append(all, string(arg))
		}
		cmd = strings.TrimSpace(strings.Join(all, " "))
	}

	// Determine column widths
	idW := max(36, len(id))
	stateW := max(7, len(state))
	pidW := max(3, len(pid))
	resultW := max(6, len(result))
	cmdW := max(7, len(cmd))

	sep := fmt.Sprintf("+-%s-+-%s-+-%s-+-%s-+-%s-+\n",
		strings.Repeat("-", idW), strings.Repeat("-", stateW), strings.Repeat("-", pidW),
		strings.Repeat("-", resultW), strings.Repeat("-", cmdW))
	fmt.Fprint(w, sep)
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad("ID", idW), pad("STATE", stateW), pad("PID", pidW), pad("RESULT", resultW), pad("COMMAND", cmdW))
	fmt.Fprint(w, sep)
	fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", pad(id, idW), pad(state, stateW), pad(pid, pidW), pad(result, resultW), pad(cmd, cmdW))
	fmt.Fprint(w, sep)
}

func printEventLine(w io.Writer, ev *protov1.WatchEvent) {
	result := ""
	if ev.GetStatus() != nil {
		result = describeResult(ev.GetStatus())
	}
	fmt.Fprintf(w, "%s %s\n", ev.GetProcessIdentifier(), result)
}

// describeResult renders how a process ended, e.g. "exited 0 (12ms)".
func describeResult(st *protov1.ProcessStatus) string {
	elapsed := st.GetExecutionTime().AsDuration()
	switch {
	case st.GetError() != "":
		return "error: " + st.GetError()
	case st.GetExitReason() == protov1.ExitReason_EXIT_REASON_EXITED:
		return fmt.Sprintf("exited %d (%s)", st.GetExitCode(), elapsed)
	case st.GetExitReason() == protov1.ExitReason_EXIT_REASON_SIGNALED:
		name := unix.SignalName(syscall.Signal(st.GetSignal()))
		if name == "" {
			name = "signal " + strconv.Itoa(int(st.GetSignal()))
		}
		return fmt.Sprintf("signaled %s (%s)", name, elapsed)
	default:
		return "-"
	}
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
