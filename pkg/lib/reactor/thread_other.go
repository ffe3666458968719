//go:build !linux

package reactor

func currentThreadID() int {
	return -1
}
