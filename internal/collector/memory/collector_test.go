package memory_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sysdash/internal/collector/memory"
	"sysdash/internal/logger"
)

const meminfo = `MemTotal:        8000000 kB
MemFree:         1000000 kB
MemAvailable:    2000000 kB
Buffers:          100000 kB
HugePages_Total:       0
SwapTotal:       1000000 kB
SwapFree:         750000 kB
Broken:              abc kB
`

var _ = Describe("Collector", func() {
	It("reads meminfo in bytes", func() {
		procRoot := GinkgoT().TempDir()
		Expect(os.WriteFile(filepath.Join(procRoot, "meminfo"), []byte(meminfo), 0o644)).To(Succeed())

		info, err := memory.NewCollector(procRoot, logger.Discard()).Collect(context.Background())
		Expect(err).NotTo(HaveOccurred())

		Expect(info.MemTotal).To(Equal(uint64(8000000 * 1024)))
		Expect(info.MemFree).To(Equal(uint64(1000000 * 1024)))
		Expect(info.MemUsed()).To(Equal(uint64(6000000 * 1024)))
		Expect(info.MemPercent()).To(BeNumerically("~", 75.0, 1e-9))
		Expect(info.SwapUsed()).To(Equal(uint64(250000 * 1024)))
		Expect(info.SwapPercent()).To(BeNumerically("~", 25.0, 1e-9))
	})

	It("fails without meminfo", func() {
		_, err := memory.NewCollector(GinkgoT().TempDir(), logger.Discard()).Collect(context.Background())
		Expect(err).To(HaveOccurred())
	})
})
