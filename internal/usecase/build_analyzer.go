package usecase

import (
	"math"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// BuildAnalysis tayyor konfiguratsiya tahlili
type BuildAnalysis struct {
	CPUTDP          int `json:"cpuTdp"`
	GPUPower        int `json:"gpuPower"`
	RequiredWattage int `json:"requiredWattage"`
	PSUWattage      int `json:"psuWattage"`

	// PSUHeadroomPercent (psu - required) / required * 100; negative when undersized
	PSUHeadroomPercent float64 `json:"psuHeadroomPercent"`
	PSUEfficiency      string  `json:"psuEfficiency"`
	PSUEfficiencyRank  int     `json:"psuEfficiencyRank"`

	CaseFitsMotherboard bool `json:"caseFitsMotherboard"`

	CPUScore     float64 `json:"cpuScore"`
	CPUTier      string  `json:"cpuTier"`
	GPUScore     float64 `json:"gpuScore"`
	GPUTier      string  `json:"gpuTier"`
	RAMGB        int     `json:"ramGb"`
	RAMScore     float64 `json:"ramScore"`
	StorageType  string  `json:"storageType"`
	StorageScore float64 `json:"storageScore"`

	Bottleneck   string  `json:"bottleneck"`
	OverallScore float64 `json:"overallScore"`
	OverallLabel string  `json:"overallLabel"`
}

var psuEfficiencyRanks = []struct {
	token string
	rank  int
}{
	{"titanium", 5},
	{"platinum", 4},
	{"gold", 3},
	{"silver", 2},
	{"bronze", 2},
	{"standard", 1},
}

// AnalyzeBuild quvvat, PSU zaxirasi, korpus mosligi va tier baholari
func (e *RecommendationEngine) AnalyzeBuild(cfg *entity.Configuration) *BuildAnalysis {
	return AnalyzeBuild(cfg, e.checker)
}

// AnalyzeBuild nil checker uses the default power settings
func AnalyzeBuild(cfg *entity.Configuration, checker *CompatibilityChecker) *BuildAnalysis {
	if checker == nil {
		checker = NewCompatibilityChecker(0, 0, nopLogger)
	}
	if cfg == nil {
		cfg = &entity.Configuration{}
	}

	a := &BuildAnalysis{
		CPUTDP:          checker.EstimateCPUTDP(cfg.CPU),
		GPUPower:        checker.EstimateGPUPower(cfg.GPU),
		RequiredWattage: checker.SystemPowerRequirement(cfg.CPU, cfg.GPU),
	}
	if cfg.PSU != nil {
		a.PSUWattage = ParseWattage(cfg.PSU.Wattage)
		a.PSUEfficiency = cfg.PSU.Efficiency
		a.PSUEfficiencyRank = psuEfficiencyRank(cfg.PSU.Efficiency)
	}
	if a.RequiredWattage > 0 && a.PSUWattage > 0 {
		headroom := float64(a.PSUWattage-a.RequiredWattage) / float64(a.RequiredWattage) * 100
		a.PSUHeadroomPercent = math.Round(headroom*10) / 10
	}

	a.CaseFitsMotherboard = cfg.Case != nil && cfg.Motherboard != nil &&
		caseFits(cfg.Case.FormFactor, cfg.Motherboard.FormFactor)

	a.CPUScore, a.CPUTier = scoreCPU(entity.NameOf(cfg.CPU))
	a.GPUScore, a.GPUTier = scoreGPU(entity.NameOf(cfg.GPU))
	if cfg.Memory != nil {
		a.RAMGB = parseMemoryCapacity(cfg.Memory.Capacity)
	}
	a.RAMScore = scoreRAM(a.RAMGB)
	if cfg.Storage != nil {
		a.StorageScore, a.StorageType = scoreStorage(cfg.Storage.Interface + " " + cfg.Storage.Type + " " + cfg.Storage.Name)
	} else {
		a.StorageScore, a.StorageType = scoreStorage("")
	}

	a.Bottleneck = bottleneck(a.CPUScore, a.GPUScore)
	overall := a.CPUScore*0.3 + a.GPUScore*0.4 + a.RAMScore*0.15 + a.StorageScore*0.15
	a.OverallScore = math.Round(clampScore(overall)*10) / 10
	a.OverallLabel = scoreDescription(a.OverallScore)
	return a
}

func psuEfficiencyRank(efficiency string) int {
	lower := strings.ToLower(efficiency)
	for _, r := range psuEfficiencyRanks {
		if strings.Contains(lower, r.token) {
			return r.rank
		}
	}
	return 0
}

func bottleneck(cpuScore, gpuScore float64) string {
	switch diff := cpuScore - gpuScore; {
	case diff <= -2:
		return "CPU"
	case diff >= 2:
		return "GPU"
	}
	return "None"
}

func scoreDescription(score float64) string {
	switch {
	case score >= 8.5:
		return "Excellent"
	case score >= 7.0:
		return "Very good"
	case score >= 5.5:
		return "Good"
	case score >= 4.0:
		return "Average"
	default:
		return "Weak"
	}
}

func scoreCPU(name string) (float64, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "x3d"):
		return 9.3, "Gaming X3D"
	case containsAny(lower, "ryzen 9", "i9", "ultra 9"):
		return 9.0, "High"
	case containsAny(lower, "ryzen 7", "i7", "ultra 7"):
		return 7.8, "Upper"
	case containsAny(lower, "ryzen 5", "i5", "ultra 5"):
		return 6.5, "Mid"
	case containsAny(lower, "ryzen 3", "i3"):
		return 5.0, "Entry"
	case containsAny(lower, "pentium", "celeron", "athlon"):
		return 3.5, "Low"
	case strings.TrimSpace(lower) == "" || lower == "-":
		return 4.5, "Unknown"
	}
	return 5.5, "Mid"
}

func scoreGPU(name string) (float64, string) {
	lower := strings.ToLower(name)
	switch {
	case strings.TrimSpace(lower) == "" || lower == "-":
		return 3.5, "Unknown"
	case containsAny(lower, "rtx 5090", "rtx 4090"):
		return 10.0, "Flagship"
	case containsAny(lower, "rtx 5080", "rtx 4080", "rx 7900 xtx"):
		return 9.2, "High"
	case containsAny(lower, "rtx 5070 ti", "rx 9070 xt", "rx 7900 xt", "rtx 4070 ti"):
		return 8.6, "Upper"
	case containsAny(lower, "rtx 5070", "rx 9070", "rtx 4070", "rx 7800", "rx 7700", "rtx 3080"):
		return 8.0, "Upper-mid"
	case containsAny(lower, "rtx 5060 ti", "rx 9060 xt", "rtx 4060 ti", "rtx 3070"):
		return 7.0, "Mid"
	case containsAny(lower, "rtx 5060", "rtx 4060", "rx 7600", "rtx 3060"):
		return 6.3, "Mid"
	case containsAny(lower, "rtx 3050", "gtx 1660", "rx 6500"):
		return 5.0, "Entry"
	}
	return 5.5, "Mid"
}

func scoreRAM(ramGB int) float64 {
	switch {
	case ramGB >= 128:
		return 10.0
	case ramGB >= 64:
		return 9.2
	case ramGB >= 32:
		return 8.3
	case ramGB >= 16:
		return 6.8
	case ramGB >= 8:
		return 5.2
	case ramGB > 0:
		return 3.8
	default:
		return 5.0
	}
}

func scoreStorage(desc string) (float64, string) {
	lower := strings.ToLower(desc)
	switch {
	case strings.Contains(lower, "gen5"):
		return 9.5, "NVMe Gen5"
	case strings.Contains(lower, "gen4"):
		return 9.0, "NVMe Gen4"
	case strings.Contains(lower, "gen3"):
		return 8.0, "NVMe Gen3"
	case containsAny(lower, "nvme", "m.2", "pcie"):
		return 8.2, "NVMe"
	case strings.Contains(lower, "ssd"):
		return 6.5, "SATA SSD"
	case strings.Contains(lower, "hdd"):
		return 3.5, "HDD"
	case strings.TrimSpace(lower) == "":
		return 5.0, "Storage"
	}
	return 5.5, "Storage"
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func containsAny(haystack string, tokens ...string) bool {
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}
