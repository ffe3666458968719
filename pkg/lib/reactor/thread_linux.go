//go:build linux

package reactor

import "golang.org/x/sys/unix"

func currentThreadID() int {
	return unix.Gettid()
}
