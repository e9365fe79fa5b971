package ports

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"syscall"
)

// ListenFrom listens on host at base, or the next free port among the
// following tries-1 ports. A base of 0 asks the OS for any free port.
func ListenFrom(host string, base, tries int) (net.Listener, error) {
	if base == 0 {
		tries = 1
	}
	if tries < 1 {
		tries = 1
	}
	var lastErr error
	for i := 0; i < tries; i++ {
		port := base
		if base != 0 {
			port = base + i
		}
		l, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err == nil {
			return l, nil
		}
		lastErr = err
		if !errors.Is(err, syscall.EADDRINUSE) {
			break
		}
	}
	return nil, fmt.Errorf("listen: %w", lastErr)
}

// Port returns the TCP port l is bound to.
func Port(l net.Listener) int {
	if a, ok := l.Addr().(*net.TCPAddr); ok {
		return a.Port
	}
	return 0
}
