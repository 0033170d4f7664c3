package dockhand

// Protocol is the transport protocol of an exposed port. Its string form is
// the lowercase name the daemon expects in port specifications.
type Protocol string

const (
	TCP Protocol = "tcp"
	UDP Protocol = "udp"
)

func (p Protocol) String() string {
	return string(p)
}
