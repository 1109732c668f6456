package usecase

import (
	"math"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

var minimalAllocation = entity.BudgetAllocation{
	entity.CategoryCPU:         constants.MinimalCPUBudget,
	entity.CategoryGPU:         constants.MinimalGPUBudget,
	entity.CategoryMemory:      constants.MinimalMemoryBudget,
	entity.CategoryStorage:     constants.MinimalStorageBudget,
	entity.CategoryMotherboard: constants.MinimalMotherboardBudget,
	entity.CategoryPSU:         constants.MinimalPSUBudget,
	entity.CategoryCooler:      constants.MinimalCoolerBudget,
	entity.CategoryCase:        constants.MinimalCaseBudget,
}

var fixedShares = []struct {
	cat   entity.Category
	share float64
}{
	{entity.CategoryMemory, constants.MemoryBudgetShare},
	{entity.CategoryStorage, constants.StorageBudgetShare},
	{entity.CategoryMotherboard, constants.MotherboardBudgetShare},
	{entity.CategoryPSU, constants.PSUBudgetShare},
	{entity.CategoryCooler, constants.CoolerBudgetShare},
	{entity.CategoryCase, constants.CaseBudgetShare},
}

// AllocateBudget splits available across the required categories.
// minimal reports whether the fixed minimal-mode table was used.
// The sum never exceeds available.
func AllocateBudget(available int, profile entity.UsageProfile) (alloc entity.BudgetAllocation, minimal bool) {
	if available <= 0 {
		alloc = make(entity.BudgetAllocation, len(entity.RequiredCategories))
		for _, cat := range entity.RequiredCategories {
			alloc[cat] = 0
		}
		return alloc, true
	}
	if available < constants.MinimalModeThreshold {
		return minimalBudgetAllocation(available), true
	}
	return weightedBudgetAllocation(available, profile), false
}

func minimalBudgetAllocation(available int) entity.BudgetAllocation {
	alloc := minimalAllocation.Clone()
	total := minimalAllocation.Sum()
	if available >= total {
		return alloc
	}
	for cat, v := range alloc {
		alloc[cat] = v * available / total
	}
	return alloc
}

func weightedBudgetAllocation(available int, profile entity.UsageProfile) entity.BudgetAllocation {
	totalShare := profile.CPUWeight + profile.GPUWeight
	for _, fs := range fixedShares {
		totalShare += fs.share
	}
	scale := 1.0
	if totalShare > 1 {
		scale = 1 / totalShare
	}

	avail := float64(available)
	alloc := entity.BudgetAllocation{
		entity.CategoryCPU: int(math.Floor(avail * profile.CPUWeight * scale)),
		entity.CategoryGPU: int(math.Floor(avail * profile.GPUWeight * scale)),
	}
	for _, fs := range fixedShares {
		alloc[fs.cat] = int(math.Floor(avail * fs.share * scale))
	}

	remaining := available - alloc.Sum()
	gpuExtra := int(math.Floor(float64(remaining) * constants.RemainderGPUShare))
	alloc[entity.CategoryGPU] += gpuExtra
	alloc[entity.CategoryCPU] += remaining - gpuExtra
	return alloc
}

// adjustForCPUOverage takes an X3D CPU's overage from gpu, storage, cooler and case.
// A category already at or below its floor is left alone.
func adjustForCPUOverage(alloc entity.BudgetAllocation, cpuPrice int) {
	overage := cpuPrice - alloc[entity.CategoryCPU]
	if overage <= 0 {
		return
	}
	shrink := func(cat entity.Category, share float64, floor int) {
		current := alloc[cat]
		if current <= floor {
			return
		}
		reduced := current - int(math.Floor(float64(overage)*share))
		if reduced < floor {
			reduced = floor
		}
		alloc[cat] = reduced
	}
	shrink(entity.CategoryGPU, constants.X3DGPUOverageShare, constants.X3DGPUFloor)
	shrink(entity.CategoryStorage, constants.X3DOtherOverageShare, constants.X3DStorageFloor)
	shrink(entity.CategoryCooler, constants.X3DOtherOverageShare, constants.X3DCoolerFloor)
	shrink(entity.CategoryCase, constants.X3DOtherOverageShare, constants.X3DCaseFloor)
}
