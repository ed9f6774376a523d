package cpu

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Frequencies returns the current clock of cores 0..n-1 in MHz, 0 where
// cpufreq is not exposed.
func (c *Collector) Frequencies(n int) []int {
	if n <= 0 {
		return nil
	}

	out := make([]int, n)
	for i := range out {
		path := filepath.Join(c.cpuRoot, "cpu"+strconv.Itoa(i), "cpufreq", "scaling_cur_freq")
		out[i] = readFreqByPath(path)
	}
	return out
}

func readFreqByPath(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0
	}
	return n / 1000
}
