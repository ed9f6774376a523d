package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"sysdash/internal/config"
)

var _ = Describe("Load", func() {
	It("applies defaults", func() {
		GinkgoT().Setenv("SCRAPE_INTERVAL", "")
		GinkgoT().Setenv("SYSDASH_SYS", "")
		GinkgoT().Setenv("SYSDASH_MOUNTS", "")

		cfg := config.Load()
		Expect(cfg.Interval).To(Equal(time.Second))
		Expect(cfg.BlockRoot()).To(Equal("/sys/block"))
		Expect(cfg.CPURoot()).To(Equal("/sys/devices/system/cpu"))
		Expect(cfg.MountTablePath()).To(Equal(cfg.ProcRoot + "/self/mounts"))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("reads the environment", func() {
		GinkgoT().Setenv("SCRAPE_INTERVAL", "2s")
		GinkgoT().Setenv("LOG_LEVEL", "DEBUG")
		GinkgoT().Setenv("SYSDASH_SYS", "/host/sys")
		GinkgoT().Setenv("SYSDASH_PROC", "/host/proc")
		GinkgoT().Setenv("SYSDASH_MOUNTS", "/etc/mtab")
		GinkgoT().Setenv("SYSDASH_SHOW_STACKED", "true")

		cfg := config.Load()
		Expect(cfg.Interval).To(Equal(2 * time.Second))
		Expect(cfg.LogLevel).To(Equal("debug"))
		Expect(cfg.BlockRoot()).To(Equal("/host/sys/block"))
		Expect(cfg.MountTablePath()).To(Equal("/etc/mtab"))
		Expect(cfg.ShowStacked).To(BeTrue())
	})

	It("ignores a malformed interval", func() {
		GinkgoT().Setenv("SCRAPE_INTERVAL", "soon")
		Expect(config.Load().Interval).To(Equal(time.Second))
	})
})

var _ = Describe("BindFlags", func() {
	It("lets flags override the environment", func() {
		GinkgoT().Setenv("SCRAPE_INTERVAL", "5s")
		cfg := config.Load()

		fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
		cfg.BindFlags(fs)
		Expect(fs.Parse([]string{"-i", "250ms", "--proc", "/tmp/proc", "--show-stacked"})).To(Succeed())

		Expect(cfg.Interval).To(Equal(250 * time.Millisecond))
		Expect(cfg.ProcRoot).To(Equal("/tmp/proc"))
		Expect(cfg.ShowStacked).To(BeTrue())
	})
})

var _ = Describe("Validate", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.Load()
	})

	DescribeTable("rejects bad values",
		func(mutate func(*config.Config), msg string) {
			mutate(cfg)
			Expect(cfg.Validate()).To(MatchError(ContainSubstring(msg)))
		},
		Entry("short interval", func(c *config.Config) { c.Interval = time.Millisecond }, "interval must be at least 100ms"),
		Entry("log level", func(c *config.Config) { c.LogLevel = "loud" }, "loglevel must be one of"),
		Entry("log format", func(c *config.Config) { c.LogFormat = "xml" }, "logformat must be one of"),
		Entry("output", func(c *config.Config) { c.Output = "csv" }, "output must be one of"),
		Entry("sys root", func(c *config.Config) { c.SysRoot = "" }, "sysroot is required"),
		Entry("mode", func(c *config.Config) { c.Mode = "serve" }, "mode must be one of"),
	)
})
