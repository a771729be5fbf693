package utils

import (
	"log"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// GetCPUUsage samples CPU usage over one second as a percentage for the
// stats endpoint's system block.
func GetCPUUsage() float64 {
	percentages, err := cpu.Percent(time.Second, false)
	if err != nil || len(percentages) == 0 {
		log.Printf("system: CPU sample failed: %v", err)
		return 0
	}
	return percentages[0]
}

// GetMemoryUsage reports host memory utilization as a percentage.
func GetMemoryUsage() float64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		log.Printf("system: memory sample failed: %v", err)
		return 0
	}
	return vm.UsedPercent
}
