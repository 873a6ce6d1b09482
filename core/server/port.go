package server

import (
	"errors"
	"fmt"
	"net"
	"strconv"
)

// ErrNoAvailablePort is returned when every candidate port failed to bind.
var ErrNoAvailablePort = errors.New("no available port")

// FindAvailablePort probes ports sequentially starting at start and returns
// the first one that accepts a listening socket. The socket is released
// before returning.
func FindAvailablePort(host string, start, attempts int) (int, error) {
	cfg := Config{Port: start, MaxAttempts: attempts}
	ln, port, err := Listen(host, cfg.Candidates())
	if err != nil {
		return 0, err
	}
	_ = ln.Close()
	return port, nil
}

// Listen binds the first candidate port that is free and keeps the socket
// open for the caller. Bind failures move on to the next candidate; the
// returned error lists every port tried. The port returned is the one
// actually bound, so candidate 0 reports the port the system picked.
func Listen(host string, candidates []int) (net.Listener, int, error) {
	for _, port := range candidates {
		ln, err := net.Listen("tcp", net.JoinHostPort(host, strconv.Itoa(port)))
		if err != nil {
			continue
		}
		if addr, ok := ln.Addr().(*net.TCPAddr); ok {
			port = addr.Port
		}
		return ln, port, nil
	}
	return nil, 0, fmt.Errorf("tried %v: %w", candidates, ErrNoAvailablePort)
}
