package ports

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// CheckAvailable reports whether anything is already listening on the given
// host port. Best effort only: the daemon remains authoritative when the
// container is created.
func CheckAvailable(port uint16) error {
	conn, err := net.DialTimeout("tcp", "localhost:"+strconv.Itoa(int(port)), time.Second)
	if err != nil {
		return nil
	}
	_ = conn.Close()
	return fmt.Errorf("port %d already in use", port)
}
