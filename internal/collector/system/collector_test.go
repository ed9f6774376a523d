package system_test

import (
	"context"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"sysdash/internal/collector/system"
	"sysdash/internal/domain"
	"sysdash/internal/logger"
)

func writeFile(path, content string) {
	GinkgoHelper()
	Expect(os.MkdirAll(filepath.Dir(path), 0o755)).To(Succeed())
	Expect(os.WriteFile(path, []byte(content), 0o644)).To(Succeed())
}

var _ = Describe("Collector", func() {
	It("reads uptime and the os pretty name", func() {
		dir := GinkgoT().TempDir()
		writeFile(filepath.Join(dir, "uptime"), "12345.67 54321.00\n")
		osRelease := filepath.Join(dir, "os-release")
		writeFile(osRelease, "NAME=Fake\nPRETTY_NAME=\"Fake Linux 1.0\"\nID=fake\n")

		info, err := system.NewCollector(dir, dir, osRelease, logger.Discard()).Collect(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(info.UptimeSeconds).To(BeNumerically("~", 12345.67, 1e-9))
		Expect(info.OS).To(Equal("Fake Linux 1.0"))
		Expect(info.KernelVersion).NotTo(BeEmpty())
		Expect(info.Arch).NotTo(BeEmpty())
		Expect(info.Hostname).NotTo(BeEmpty())
	})

	It("reads board and bios identity from the dmi tables", func() {
		sysRoot := GinkgoT().TempDir()
		id := filepath.Join(sysRoot, "class", "dmi", "id")
		writeFile(filepath.Join(id, "board_vendor"), "ASUSTeK COMPUTER INC.\n")
		writeFile(filepath.Join(id, "board_name"), "PRIME X570-P\n")
		writeFile(filepath.Join(id, "board_version"), "Rev X.0x\n")
		writeFile(filepath.Join(id, "bios_vendor"), "American Megatrends Inc.\n")
		writeFile(filepath.Join(id, "bios_version"), "4021\n")
		writeFile(filepath.Join(id, "bios_date"), "08/09/2021\n")

		dir := GinkgoT().TempDir()
		info, err := system.NewCollector(dir, sysRoot, filepath.Join(dir, "os-release"), logger.Discard()).Collect(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Board).To(Equal(domain.BoardInfo{Vendor: "ASUSTeK COMPUTER INC.", Name: "PRIME X570-P", Version: "Rev X.0x"}))
		Expect(info.BIOS).To(Equal(domain.BIOSInfo{Vendor: "American Megatrends Inc.", Version: "4021", Date: "08/09/2021"}))
	})

	It("leaves unreadable fields empty", func() {
		dir := GinkgoT().TempDir()
		info, err := system.NewCollector(dir, dir, filepath.Join(dir, "missing"), logger.Discard()).Collect(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(info.UptimeSeconds).To(BeZero())
		Expect(info.OS).To(BeEmpty())
		Expect(info.Board.Empty()).To(BeTrue())
		Expect(info.BIOS.Empty()).To(BeTrue())
	})
})
