package usecase

import (
	"sort"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// usageStrategy selection behaviour behind a profile's SpecialLogic.
// adjustAllocation may be nil.
type usageStrategy struct {
	selectCPU        func(e *RecommendationEngine, run *runState, budget int) *entity.Part
	selectGPU        func(e *RecommendationEngine, run *runState, budget int) *entity.Part
	adjustAllocation func(alloc entity.BudgetAllocation, cpu *entity.Part)
	cpuUpgradePool   func(e *RecommendationEngine, run *runState) []entity.Part
}

var strategies = map[entity.SpecialLogic]usageStrategy{
	entity.LogicGeneral: {
		selectCPU:      selectCPUGeneral,
		selectGPU:      selectGPUGeneral,
		cpuUpgradePool: brandCPUPool,
	},
	entity.LogicX3DCPU: {
		selectCPU:        selectCPUX3D,
		selectGPU:        selectGPUGeneral,
		adjustAllocation: adjustX3DAllocation,
		cpuUpgradePool:   x3dCPUPool,
	},
	entity.LogicHighVRAMGPU: {
		selectCPU:      selectCPUGeneral,
		selectGPU:      selectGPUHighVRAM,
		cpuUpgradePool: brandCPUPool,
	},
}

func strategyFor(logic entity.SpecialLogic) usageStrategy {
	if s, ok := strategies[logic]; ok {
		return s
	}
	return strategies[entity.LogicGeneral]
}

// selectCPUGeneral priciest brand CPU within budget, else the cheapest brand CPU
func selectCPUGeneral(_ *RecommendationEngine, run *runState, budget int) *entity.Part {
	if best := bestAffordable(run.cpus, budget); best != nil {
		return best
	}
	return cheapestPart(run.cpus)
}

// selectCPUX3D 7800X3D baseline, stepping up only with enough buffer
func selectCPUX3D(e *RecommendationEngine, run *runState, budget int) *entity.Part {
	candidates := x3dCandidates(e, run)
	if len(candidates) == 0 {
		run.warn("no X3D CPU matches the brand filter, using general CPU selection")
		return selectCPUGeneral(e, run, budget)
	}
	return selectOptimalX3D(e, run, candidates, budget)
}

// x3dCandidates brand-matching X3D CPUs, ascending by price
func x3dCandidates(e *RecommendationEngine, run *runState) []entity.Part {
	out := filterParts(run.cpus, e.brands.IsX3DCPU)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	return out
}

func selectOptimalX3D(e *RecommendationEngine, run *runState, candidates []entity.Part, budget int) *entity.Part {
	var baseline *entity.Part
	for i := range candidates {
		if e.brands.IsSpecificX3DCPU(&candidates[i], constants.X3DBaselineModel) {
			baseline = &candidates[i]
			break
		}
	}

	if baseline == nil {
		run.warn("no 7800X3D in the catalog, choosing among available X3D CPUs")
		limit := float64(budget) * constants.X3DNoBaselineTolerance
		var pick *entity.Part
		for i := range candidates {
			if float64(candidates[i].Price) <= limit {
				pick = &candidates[i]
			}
		}
		if pick != nil {
			return pick
		}
		return &candidates[0]
	}

	selected := baseline
	buffer := budget - baseline.Price
	run.log.Debug().Str("baseline", baseline.Name).Int("buffer", buffer).Msg("x3d baseline")
	if buffer <= constants.X3DMinimumBuffer {
		return selected
	}

	for i := range candidates {
		c := &candidates[i]
		if c.Price <= baseline.Price {
			continue
		}
		gap := c.Price - baseline.Price
		if buffer < gap {
			continue
		}
		switch {
		case e.brands.IsSpecificX3DCPU(c, constants.X3DMidTierModel):
			if buffer >= gap+constants.X3DMidTierMargin {
				selected = c
			}
		case e.brands.IsSpecificX3DCPU(c, constants.X3DTopTierModel):
			if buffer >= gap+constants.X3DTopTierMargin {
				selected = c
			}
		}
	}
	return selected
}

func adjustX3DAllocation(alloc entity.BudgetAllocation, cpu *entity.Part) {
	if cpu == nil {
		return
	}
	adjustForCPUOverage(alloc, cpu.Price)
}

func brandCPUPool(_ *RecommendationEngine, run *runState) []entity.Part {
	return run.cpus
}

// x3dCPUPool upgrades stay inside the X3D line when it exists
func x3dCPUPool(e *RecommendationEngine, run *runState) []entity.Part {
	if candidates := x3dCandidates(e, run); len(candidates) > 0 {
		return candidates
	}
	return run.cpus
}

// selectGPUGeneral best brand GPU within budget, else the cheapest brand GPU
func selectGPUGeneral(e *RecommendationEngine, run *runState, budget int) *entity.Part {
	affordable := filterParts(run.gpus, func(p *entity.Part) bool { return p.Price <= budget })
	if len(affordable) == 0 {
		return cheapestPart(run.gpus)
	}
	return e.selector.SelectBestGPU(affordable, budget, run.req.GPUBrand)
}

// selectGPUHighVRAM priciest >8GB GPU within budget, else general selection
func selectGPUHighVRAM(e *RecommendationEngine, run *runState, budget int) *entity.Part {
	var best *entity.Part
	for i := range run.gpus {
		g := &run.gpus[i]
		if g.Price > budget || !e.brands.IsHighVRAMGPU(g) {
			continue
		}
		if best == nil || g.Price > best.Price {
			best = g
		}
	}
	if best != nil {
		run.log.Debug().Str("gpu", best.Name).Int("vram_gb", e.brands.VRAMCapacity(best)).Msg("high vram gpu")
		return best
	}
	run.log.Debug().Int("budget", budget).Msg("no high vram gpu within budget")
	return selectGPUGeneral(e, run, budget)
}
