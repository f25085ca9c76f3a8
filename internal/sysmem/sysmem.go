// Package sysmem probes host memory to size the model budget when no
// budget is configured.
package sysmem

import (
	"github.com/shirou/gopsutil/v3/mem"
)

// fallbackBudgetBytes is used when the host cannot be probed: the desktop
// application's 2 GB ceiling.
const fallbackBudgetBytes int64 = 2_000_000_000

// TotalBytes returns total physical memory of the host.
func TotalBytes() (uint64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, err
	}
	return vm.Total, nil
}

// DefaultBudgetBytes derives a budget from the host: half of physical
// memory, falling back to the application default when probing fails.
func DefaultBudgetBytes() int64 {
	total, err := TotalBytes()
	if err != nil || total == 0 {
		return fallbackBudgetBytes
	}
	return int64(total / 2)
}
