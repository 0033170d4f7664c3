package dockhand

import (
	"fmt"
	"strconv"

	"github.com/docker/go-connections/nat"
)

// PortSpec identifies one exposed container port.
type PortSpec struct {
	Port     uint16
	Protocol Protocol
}

func (s PortSpec) String() string {
	return fmt.Sprintf("%d/%s", s.Port, s.Protocol)
}

// HostPort is one host socket a container port is published on. IP may be
// empty when the daemon did not report a bind address.
type HostPort struct {
	IP   string
	Port uint16
}

func (h HostPort) String() string {
	return fmt.Sprintf("%s:%d", h.IP, h.Port)
}

// Ports maps each exposed container port to the host sockets it is published
// on. Exposed-but-unpublished ports map to an empty slice. Entries the daemon
// reports in a shape this layer does not understand are skipped; RawPorts has
// the unfiltered structure.
func (c *Container) Ports() map[PortSpec][]HostPort {
	raw := c.RawPorts()
	if raw == nil {
		return nil
	}

	out := make(map[PortSpec][]HostPort, len(raw))
	for port, bindings := range raw {
		num, err := nat.ParsePort(port.Port())
		if err != nil || num < 0 || num > 0xffff {
			continue
		}
		spec := PortSpec{Port: uint16(num), Protocol: Protocol(port.Proto())}

		hosts := make([]HostPort, 0, len(bindings))
		for _, binding := range bindings {
			hostNum, err := strconv.ParseUint(binding.HostPort, 10, 16)
			if err != nil {
				continue
			}
			hosts = append(hosts, HostPort{IP: binding.HostIP, Port: uint16(hostNum)})
		}
		out[spec] = hosts
	}
	return out
}
