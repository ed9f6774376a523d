package domain

import (
	"maps"
	"slices"
)

// NetDevCounters is one interface row of /proc/net/dev.
type NetDevCounters struct {
	RxBytes      uint64 `json:"rx_bytes" yaml:"rx_bytes"`
	RxPackets    uint64 `json:"rx_packets" yaml:"rx_packets"`
	RxErrors     uint64 `json:"rx_errors" yaml:"rx_errors"`
	RxDropped    uint64 `json:"rx_dropped" yaml:"rx_dropped"`
	RxFIFO       uint64 `json:"rx_fifo" yaml:"rx_fifo"`
	RxFrame      uint64 `json:"rx_frame" yaml:"rx_frame"`
	RxCompressed uint64 `json:"rx_compressed" yaml:"rx_compressed"`
	RxMulticast  uint64 `json:"rx_multicast" yaml:"rx_multicast"`
	TxBytes      uint64 `json:"tx_bytes" yaml:"tx_bytes"`
	TxPackets    uint64 `json:"tx_packets" yaml:"tx_packets"`
	TxErrors     uint64 `json:"tx_errors" yaml:"tx_errors"`
	TxDropped    uint64 `json:"tx_dropped" yaml:"tx_dropped"`
	TxFIFO       uint64 `json:"tx_fifo" yaml:"tx_fifo"`
	TxCollisions uint64 `json:"tx_collisions" yaml:"tx_collisions"`
	TxCarrier    uint64 `json:"tx_carrier" yaml:"tx_carrier"`
	TxCompressed uint64 `json:"tx_compressed" yaml:"tx_compressed"`
}

type NetDevs map[string]NetDevCounters

func (n NetDevs) Names() []string {
	return slices.Sorted(maps.Keys(n))
}

// Interface carries address decoration for an interface known from NetDevs.
type Interface struct {
	Name   string   `json:"name" yaml:"name"`
	MAC    string   `json:"mac,omitempty" yaml:"mac,omitempty"`
	IPv4   []string `json:"ipv4,omitempty" yaml:"ipv4,omitempty"`
	IPv6   []string `json:"ipv6,omitempty" yaml:"ipv6,omitempty"`
	Driver string   `json:"driver,omitempty" yaml:"driver,omitempty"`
	Up     bool     `json:"up" yaml:"up"`
}
