package constants

import "github.com/yourusername/pc-configurator/internal/domain/entity"

// DefaultUsageProfiles built-in profiles keyed by usage name. Returns fresh values each call.
func DefaultUsageProfiles() map[string]entity.UsageProfile {
	return map[string]entity.UsageProfile{
		"gaming": {
			Name:         "gaming",
			CPUWeight:    0.25,
			GPUWeight:    0.55,
			RAMMin:       16,
			StorageType:  "ssd",
			PSUMin:       650,
			SpecialLogic: entity.LogicGeneral,
			UpgradePriorities: []entity.Category{
				entity.CategoryGPU, entity.CategoryCPU, entity.CategoryStorage, entity.CategoryCooler, entity.CategoryCase,
			},
		},
		"tarkov": {
			Name:         "tarkov",
			CPUWeight:    0.4,
			GPUWeight:    0.4,
			RAMMin:       32,
			StorageType:  "ssd",
			PSUMin:       750,
			SpecialLogic: entity.LogicX3DCPU,
			UpgradePriorities: []entity.Category{
				entity.CategoryCPU, entity.CategoryMemory, entity.CategoryGPU, entity.CategoryStorage, entity.CategoryCooler,
			},
		},
		"vrchat": {
			Name:         "vrchat",
			CPUWeight:    0.2,
			GPUWeight:    0.65,
			RAMMin:       16,
			StorageType:  "ssd",
			PSUMin:       800,
			SpecialLogic: entity.LogicHighVRAMGPU,
			UpgradePriorities: []entity.Category{
				entity.CategoryGPU, entity.CategoryMemory, entity.CategoryCPU, entity.CategoryStorage, entity.CategoryCooler,
			},
		},
	}
}
