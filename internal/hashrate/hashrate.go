// internal/hashrate/hashrate.go
package hashrate

import "fmt"

var units = []string{"H/s", "KH/s", "MH/s", "GH/s", "TH/s", "PH/s", "EH/s"}

// Readable renders a hashes-per-second value with a 1000-based unit suffix.
func Readable(hps uint64) string {
	rate := float64(hps)
	i := 0
	for rate >= 1000 && i < len(units)-1 {
		rate /= 1000
		i++
	}
	return fmt.Sprintf("%.2f %s", rate, units[i])
}
