package metrics_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sysdash/internal/domain"
	"sysdash/internal/metrics"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func disk(name string, counters *domain.IOCounters, children ...*domain.BlockDevice) *domain.BlockDevice {
	dev := &domain.BlockDevice{Name: name, Counters: counters, Children: domain.BlockDevices{}}
	for _, c := range children {
		dev.Children[c.Name] = c
	}
	return dev
}

func devices(devs ...*domain.BlockDevice) domain.BlockDevices {
	out := domain.BlockDevices{}
	for _, d := range devs {
		out[d.Name] = d
	}
	return out
}

func findDisk(reports []domain.DiskReport, name string) domain.DiskReport {
	GinkgoHelper()
	for _, r := range reports {
		if r.Name == name {
			return r
		}
	}
	Fail("no report for " + name)
	return domain.DiskReport{}
}

var _ = Describe("Engine", func() {
	var engine *metrics.Engine

	BeforeEach(func() {
		engine = metrics.NewEngine(false)
	})

	Describe("disks", func() {
		It("reports read throughput in bytes per second", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sdb", &domain.IOCounters{ReadSectors: 1000}))}
			curr := &domain.Snapshot{TakenAt: t0.Add(2 * time.Second), Block: devices(disk("sdb", &domain.IOCounters{ReadSectors: 3000}))}

			report := engine.Compute(prev, curr)
			Expect(report.Interval).To(Equal(2 * time.Second))

			sdb := findDisk(report.Disks, "sdb")
			Expect(sdb.ReadBytes).To(Equal(domain.Rate{Value: 512000, Known: true}))
			Expect(sdb.WriteBytes).To(Equal(domain.Rate{Value: 0, Known: true}))
			Expect(sdb.Reset).To(BeFalse())
		})

		It("clamps a counter that went backwards to zero", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sda", &domain.IOCounters{ReadSectors: 5000, WriteSectors: 10}))}
			curr := &domain.Snapshot{TakenAt: t0.Add(time.Second), Block: devices(disk("sda", &domain.IOCounters{ReadSectors: 100, WriteSectors: 20}))}

			sda := findDisk(engine.Compute(prev, curr).Disks, "sda")
			Expect(sda.ReadBytes.Value).To(BeZero())
			Expect(sda.ReadBytes.Known).To(BeTrue())
			Expect(sda.WriteBytes.Value).To(Equal(float64(10 * 512)))
			Expect(sda.Reset).To(BeTrue())
		})

		It("has no rate for a zero interval", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sda", &domain.IOCounters{ReadSectors: 1}))}
			curr := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sda", &domain.IOCounters{ReadSectors: 9, IOTicks: 5}))}

			sda := findDisk(engine.Compute(prev, curr).Disks, "sda")
			Expect(sda.ReadBytes.Known).To(BeFalse())
			Expect(sda.WriteBytes.Known).To(BeFalse())
			Expect(sda.Utilization.Known).To(BeFalse())
		})

		It("derives utilization from io ticks and caps it", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(
				disk("sda", &domain.IOCounters{IOTicks: 1000}),
				disk("sdb", &domain.IOCounters{IOTicks: 0}),
			)}
			curr := &domain.Snapshot{TakenAt: t0.Add(2 * time.Second), Block: devices(
				disk("sda", &domain.IOCounters{IOTicks: 1500}),
				disk("sdb", &domain.IOCounters{IOTicks: 9000}),
			)}

			report := engine.Compute(prev, curr)
			Expect(findDisk(report.Disks, "sda").Utilization.Value).To(BeNumerically("~", 25.0, 1e-9))
			Expect(findDisk(report.Disks, "sdb").Utilization.Value).To(Equal(100.0))
		})

		It("walks partitions and holders in lockstep", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(
				disk("sda", &domain.IOCounters{ReadSectors: 0},
					disk("sda1", &domain.IOCounters{WriteSectors: 100}),
					disk("sda2", &domain.IOCounters{ReadSectors: 0},
						disk("dm-0", &domain.IOCounters{ReadSectors: 0}),
					),
				),
			)}
			curr := &domain.Snapshot{TakenAt: t0.Add(time.Second), Block: devices(
				disk("sda", &domain.IOCounters{ReadSectors: 30},
					disk("sda1", &domain.IOCounters{WriteSectors: 300}),
					disk("sda2", &domain.IOCounters{ReadSectors: 10},
						disk("dm-0", &domain.IOCounters{ReadSectors: 4}),
					),
					disk("sda3", &domain.IOCounters{ReadSectors: 7}),
				),
			)}

			sda := findDisk(engine.Compute(prev, curr).Disks, "sda")
			Expect(sda.ReadBytes.Value).To(Equal(float64(30 * 512)))
			Expect(sda.Children).To(HaveLen(3))

			Expect(findDisk(sda.Children, "sda1").WriteBytes.Value).To(Equal(float64(200 * 512)))

			sda2 := findDisk(sda.Children, "sda2")
			Expect(sda2.ReadBytes.Value).To(Equal(float64(10 * 512)))
			Expect(findDisk(sda2.Children, "dm-0").ReadBytes.Value).To(Equal(float64(4 * 512)))

			By("reporting a hot-plugged partition without a rate")
			sda3 := findDisk(sda.Children, "sda3")
			Expect(sda3.ReadBytes.Known).To(BeFalse())
		})

		It("reports devices without counters without a rate", func() {
			prev := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sr0", nil))}
			curr := &domain.Snapshot{TakenAt: t0.Add(time.Second), Block: devices(disk("sr0", nil))}

			sr0 := findDisk(engine.Compute(prev, curr).Disks, "sr0")
			Expect(sr0.ReadBytes.Known).To(BeFalse())
		})

		It("has no rates on the first cycle", func() {
			curr := &domain.Snapshot{TakenAt: t0, Block: devices(disk("sda", &domain.IOCounters{ReadSectors: 9}))}

			report := engine.Compute(nil, curr)
			Expect(report.Interval).To(BeZero())
			Expect(findDisk(report.Disks, "sda").ReadBytes.Known).To(BeFalse())
		})

		It("correlates mounts and filesystem usage", func() {
			sda5 := disk("sda5", nil)
			name := "vg-root"
			dm := disk("dm-0", nil)
			dm.DeviceMapperName = &name

			curr := &domain.Snapshot{
				TakenAt: t0,
				Block:   devices(disk("sda", nil, sda5), dm),
				Mounts: domain.Mounts{
					"/dev/sda5":           {DevicePath: "/dev/sda5", MountPoint: "/home", FSType: "ext4", Options: "rw,relatime", PassNumber: 1},
					"/dev/mapper/vg-root": {DevicePath: "/dev/mapper/vg-root", MountPoint: "/", FSType: "xfs"},
				},
				Usage:       map[string]domain.FSUsage{"/home": {BlockSize: 4096, TotalBlocks: 100, AvailableBlocks: 50}},
				UsageErrors: map[string]string{"/": "statfs /: permission denied"},
			}

			report := engine.Compute(nil, curr)

			home := findDisk(findDisk(report.Disks, "sda").Children, "sda5")
			Expect(home.Path).To(Equal("/dev/sda5"))
			Expect(home.Mount.MountPoint).To(Equal("/home"))
			Expect(home.Mount.FSType).To(Equal("ext4"))
			Expect(home.Usage.PercentUsed()).To(BeNumerically("~", 50.0, 1e-9))

			root := findDisk(report.Disks, "dm-0")
			Expect(root.Path).To(Equal("/dev/mapper/vg-root"))
			Expect(root.Usage).To(BeNil())
			Expect(root.UsageError).To(ContainSubstring("permission denied"))
		})

		It("lists stacked devices only below their parent unless asked", func() {
			stacked := disk("dm-0", nil)
			curr := &domain.Snapshot{TakenAt: t0, Block: devices(
				disk("sda", nil, disk("sda2", nil, stacked)),
				disk("dm-0", nil),
			)}

			Expect(engine.Compute(nil, curr).Disks).To(HaveLen(1))
			Expect(metrics.NewEngine(true).Compute(nil, curr).Disks).To(HaveLen(2))
		})
	})

	Describe("interfaces", func() {
		It("reports receive throughput in bytes per second", func() {
			prev := &domain.Snapshot{TakenAt: t0, Net: domain.NetDevs{"eth0": {RxBytes: 0}}}
			curr := &domain.Snapshot{
				TakenAt:    t0.Add(time.Second),
				Net:        domain.NetDevs{"eth0": {RxBytes: 125000, RxPackets: 10}},
				Interfaces: map[string]domain.Interface{"eth0": {Name: "eth0", MAC: "aa:bb:cc:dd:ee:ff"}},
			}

			report := engine.Compute(prev, curr)
			Expect(report.Interfaces).To(HaveLen(1))

			eth0 := report.Interfaces[0]
			Expect(eth0.RxBytes).To(Equal(domain.Rate{Value: 125000, Known: true}))
			Expect(eth0.TxBytes).To(Equal(domain.Rate{Value: 0, Known: true}))
			Expect(eth0.RxPackets.Value).To(Equal(10.0))
			Expect(eth0.Interface.MAC).To(Equal("aa:bb:cc:dd:ee:ff"))
		})

		It("flags a counter reset and clamps the rate", func() {
			prev := &domain.Snapshot{TakenAt: t0, Net: domain.NetDevs{"eth0": {TxBytes: 900}}}
			curr := &domain.Snapshot{TakenAt: t0.Add(time.Second), Net: domain.NetDevs{"eth0": {TxBytes: 100}}}

			eth0 := engine.Compute(prev, curr).Interfaces[0]
			Expect(eth0.TxBytes.Value).To(BeZero())
			Expect(eth0.Reset).To(BeTrue())
		})

		It("reports new interfaces without a rate", func() {
			prev := &domain.Snapshot{TakenAt: t0, Net: domain.NetDevs{}}
			curr := &domain.Snapshot{TakenAt: t0.Add(time.Second), Net: domain.NetDevs{"wg0": {RxBytes: 7}}}

			wg0 := engine.Compute(prev, curr).Interfaces[0]
			Expect(wg0.Name).To(Equal("wg0"))
			Expect(wg0.RxBytes.Known).To(BeFalse())
			Expect(wg0.Counters.RxBytes).To(Equal(uint64(7)))
		})

		It("has no rate for a zero interval", func() {
			prev := &domain.Snapshot{TakenAt: t0, Net: domain.NetDevs{"eth0": {RxBytes: 0}}}
			curr := &domain.Snapshot{TakenAt: t0, Net: domain.NetDevs{"eth0": {RxBytes: 10}}}

			Expect(engine.Compute(prev, curr).Interfaces[0].RxBytes.Known).To(BeFalse())
		})
	})

	Describe("cpu", func() {
		stats := domain.CPUStats{
			"cpu":  {User: 100, Nice: 10, System: 50, Idle: 800, IOWait: 40},
			"cpu0": {User: 50, Nice: 5, System: 25, Idle: 400, IOWait: 20},
			"cpu1": {User: 50, Nice: 5, System: 25, Idle: 400, IOWait: 20},
		}

		It("is exactly 0% for identical samples", func() {
			usage := engine.Compute(
				&domain.Snapshot{TakenAt: t0, CPU: stats},
				&domain.Snapshot{TakenAt: t0.Add(time.Second), CPU: stats},
			).CPU

			Expect(usage).To(HaveLen(3))
			for _, u := range usage {
				Expect(u.Known).To(BeTrue())
				Expect(u.Busy).To(BeZero())
			}
		})

		It("divides work by all ten categories", func() {
			next := domain.CPUStats{
				"cpu":  {User: 130, Nice: 10, System: 70, Idle: 840, IOWait: 50},
				"cpu0": {User: 50, Nice: 5, System: 25, Idle: 500, IOWait: 20},
			}

			usage := engine.Compute(
				&domain.Snapshot{TakenAt: t0, CPU: stats},
				&domain.Snapshot{TakenAt: t0.Add(time.Second), CPU: next},
			).CPU

			Expect(usage).To(HaveLen(2))
			Expect(usage[0].Label).To(Equal("cpu"))
			// work 50 over total 100
			Expect(usage[0].Busy).To(BeNumerically("~", 50.0, 1e-9))
			Expect(usage[1].Label).To(Equal("cpu0"))
			Expect(usage[1].Busy).To(BeZero())
		})

		It("does not know cores missing from the previous sample", func() {
			usage := engine.Compute(
				&domain.Snapshot{TakenAt: t0, CPU: domain.CPUStats{"cpu": {}}},
				&domain.Snapshot{TakenAt: t0.Add(time.Second), CPU: domain.CPUStats{"cpu": {}, "cpu0": {User: 5}}},
			).CPU

			Expect(usage[0].Known).To(BeTrue())
			Expect(usage[1].Label).To(Equal("cpu0"))
			Expect(usage[1].Known).To(BeFalse())
		})

		It("never goes negative after a reset", func() {
			usage := engine.Compute(
				&domain.Snapshot{TakenAt: t0, CPU: domain.CPUStats{"cpu": {User: 500, Idle: 500}}},
				&domain.Snapshot{TakenAt: t0.Add(time.Second), CPU: domain.CPUStats{"cpu": {User: 10, Idle: 10}}},
			).CPU

			Expect(usage[0].Busy).To(BeZero())
			Expect(usage[0].Reset).To(BeTrue())
		})
	})

	It("passes through memory and system info", func() {
		curr := &domain.Snapshot{
			TakenAt: t0,
			Memory:  &domain.MemInfo{MemTotal: 10},
			System:  domain.SystemInfo{Hostname: "box"},
		}

		report := engine.Compute(nil, curr)
		Expect(report.Memory.MemTotal).To(Equal(uint64(10)))
		Expect(report.System.Hostname).To(Equal("box"))
		Expect(report.TakenAt).To(Equal(t0))
	})
})
