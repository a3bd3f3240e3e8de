//go:build !unix

package transport

import "syscall"

// On Windows SO_REUSEADDR lets another process steal a bound port, so
// the option is left alone there.
func reuseAddrControl(network, address string, c syscall.RawConn) error {
	return nil
}
