package network

import (
	"net"
	"slices"
)

type addresses struct {
	mac  string
	ipv4 []string
	ipv6 []string
	up   bool
}

func listAddresses() (map[string]addresses, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return nil, err
	}

	out := make(map[string]addresses, len(ifaces))
	for _, ifi := range ifaces {
		a := addresses{
			mac: ifi.HardwareAddr.String(),
			up:  ifi.Flags&net.FlagUp != 0,
		}

		ifAddrs, err := ifi.Addrs()
		if err == nil {
			for _, addr := range ifAddrs {
				ipnet, ok := addr.(*net.IPNet)
				if !ok {
					continue
				}
				if ip4 := ipnet.IP.To4(); ip4 != nil {
					a.ipv4 = append(a.ipv4, ip4.String())
				} else {
					a.ipv6 = append(a.ipv6, ipnet.IP.String())
				}
			}
		}

		slices.Sort(a.ipv4)
		slices.Sort(a.ipv6)
		out[ifi.Name] = a
	}

	return out, nil
}
