package usecase

import (
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// downgrade steps GPU and CPU down in turns until the build fits.
// Odd iterations start with the GPU, even ones with the CPU; an exhausted axis hands over to the other.
func (e *RecommendationEngine) downgrade(run *runState) {
	axes := [2]func(*runState) bool{e.stepDownGPU, e.stepDownCPU}
	var exhausted [2]bool

	for i := 0; i < e.maxDowngradeIterations; i++ {
		if run.cfg.TotalPrice() <= run.available {
			break
		}
		stepped := false
		for k := 0; k < len(axes) && !stepped; k++ {
			axis := (i + k) % len(axes)
			if exhausted[axis] {
				continue
			}
			if axes[axis](run) {
				stepped = true
			} else {
				exhausted[axis] = true
			}
		}
		if !stepped {
			break
		}
	}

	if run.cfg.TotalPrice() > run.available {
		e.downgradeAccessories(run)
	}
	if over := run.cfg.TotalPrice() - run.available; over > 0 {
		run.log.Info().Int("overage", over).Msg("still over budget after downgrade")
	}
}

// stepDownGPU next cheaper brand GPU, PSU re-selected
func (e *RecommendationEngine) stepDownGPU(run *runState) bool {
	current := run.cfg.GPU
	next := nextCheaper(run.gpus, current.Price, nil)
	if next == nil {
		return false
	}
	run.cfg.GPU = next
	run.cfg.PSU = e.psuFor(run, run.cfg.CPU, next)
	run.log.Debug().Str("from", current.Name).Str("to", next.Name).Int("total", run.cfg.TotalPrice()).Msg("gpu downgraded")
	return true
}

// stepDownCPU next cheaper brand CPU that some board takes; the socket may change,
// so board, memory and PSU are re-selected
func (e *RecommendationEngine) stepDownCPU(run *runState) bool {
	current := run.cfg.CPU
	next := nextCheaper(run.cpus, current.Price, func(p *entity.Part) bool {
		return e.hasMotherboardFor(run, p)
	})
	if next == nil {
		return false
	}
	run.cfg.CPU = next
	run.cfg.Motherboard = e.motherboardFor(run, next)
	run.cfg.Memory = e.memoryFor(run, next)
	run.cfg.PSU = e.psuFor(run, next, run.cfg.GPU)
	run.log.Debug().Str("from", current.Name).Str("to", next.Name).Int("total", run.cfg.TotalPrice()).Msg("cpu downgraded")
	return true
}

// downgradeAccessories last resort: cheapest cooler and case
func (e *RecommendationEngine) downgradeAccessories(run *runState) {
	if cooler := cheapestPart(run.catalog.Cooler); cooler != nil && cooler.Price < entity.PriceOf(run.cfg.Cooler) {
		run.cfg.Cooler = cooler
	}
	if pc := cheapestPart(e.casePool(run)); pc != nil && pc.Price < entity.PriceOf(run.cfg.Case) {
		run.cfg.Case = pc
	}
}

// nextCheaper priciest part strictly cheaper than price (optionally filtered)
func nextCheaper(parts []entity.Part, price int, keep func(*entity.Part) bool) *entity.Part {
	var best *entity.Part
	for i := range parts {
		p := &parts[i]
		if p.Price >= price {
			continue
		}
		if keep != nil && !keep(p) {
			continue
		}
		if best == nil || p.Price > best.Price {
			best = p
		}
	}
	return best
}
