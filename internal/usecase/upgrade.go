package usecase

import (
	"sort"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// upgrade spends the leftover budget in the profile's priority order.
// Each step takes the cheapest strictly pricier part that still fits.
func (e *RecommendationEngine) upgrade(run *runState) {
	remaining := run.available - run.cfg.TotalPrice()
	steps := 0
	for _, cat := range run.profile.UpgradePriorities {
		for remaining > 0 && steps < constants.MaxUpgradeSteps {
			delta, ok := e.upgradeStep(run, cat, remaining)
			if !ok {
				break
			}
			remaining -= delta
			steps++
		}
	}
	run.log.Debug().Int("steps", steps).Int("remaining", remaining).Msg("upgrade finished")
}

// upgradeStep tries one upgrade of cat; returns the total price delta
func (e *RecommendationEngine) upgradeStep(run *runState, cat entity.Category, remaining int) (int, bool) {
	current := run.cfg.Get(cat)
	if current == nil {
		return 0, false
	}
	limit := current.Price + remaining
	candidates := filterParts(e.upgradePool(run, cat), func(p *entity.Part) bool {
		return p.Price > current.Price && p.Price <= limit
	})
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].Price < candidates[j].Price })

	before := run.cfg.TotalPrice()
	for i := range candidates {
		cand := &candidates[i]
		run.beginTrial()
		trial, ok := e.tryUpgrade(run, cat, cand)
		delta := trial.TotalPrice() - before
		if !ok || delta > remaining {
			run.endTrial(false)
			continue
		}
		run.endTrial(true)
		run.log.Debug().
			Str("category", string(cat)).
			Str("from", current.Name).
			Str("to", cand.Name).
			Int("delta", delta).
			Msg("upgraded")
		run.cfg = trial
		return delta, true
	}
	return 0, false
}

// tryUpgrade configuration with cand in cat and its dependants re-selected.
// ok is false when the swap would break socket or memory compatibility.
func (e *RecommendationEngine) tryUpgrade(run *runState, cat entity.Category, cand *entity.Part) (*entity.Configuration, bool) {
	trial := run.cfg.Clone()
	trial.Set(cat, cand)
	switch cat {
	case entity.CategoryCPU:
		// parts already matching the new socket are kept
		if !e.checker.SameSocket(trial.Motherboard.Socket, cand.Socket) {
			trial.Motherboard = e.motherboardFor(run, cand)
		}
		if !e.checker.SameSocket(trial.Motherboard.Socket, cand.Socket) {
			return trial, false
		}
		memoryWasCompatible := e.checker.IsMemoryCompatible(run.cfg.Memory, run.cfg.CPU.Socket)
		if !e.checker.IsMemoryCompatible(trial.Memory, cand.Socket) {
			trial.Memory = e.memoryFor(run, cand)
		}
		if memoryWasCompatible && !e.checker.IsMemoryCompatible(trial.Memory, cand.Socket) {
			return trial, false
		}
		trial.PSU = e.psuFor(run, cand, trial.GPU)
	case entity.CategoryGPU:
		trial.PSU = e.psuFor(run, trial.CPU, cand)
	}
	return trial, true
}

func (e *RecommendationEngine) upgradePool(run *runState, cat entity.Category) []entity.Part {
	switch cat {
	case entity.CategoryCPU:
		return filterParts(run.strategy.cpuUpgradePool(e, run), func(p *entity.Part) bool {
			return e.hasMotherboardFor(run, p)
		})
	case entity.CategoryGPU:
		return run.gpus
	case entity.CategoryMemory:
		memType := e.checker.CompatibleMemoryType(run.cfg.CPU.Socket)
		return filterParts(run.catalog.Memory, func(p *entity.Part) bool {
			return strings.Contains(strings.ToUpper(p.Type), memType)
		})
	case entity.CategoryMotherboard:
		return filterParts(run.catalog.Motherboard, func(p *entity.Part) bool {
			return e.checker.SameSocket(p.Socket, run.cfg.CPU.Socket)
		})
	case entity.CategoryPSU:
		need := e.checker.SystemPowerRequirement(run.cfg.CPU, run.cfg.GPU)
		return filterParts(run.catalog.PSU, func(p *entity.Part) bool { return ParseWattage(p.Wattage) >= need })
	case entity.CategoryCase:
		return e.casePool(run)
	}
	return run.catalog.Parts(cat)
}
