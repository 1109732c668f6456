package usecase

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// powerRule name substring -> watts. Tables are ordered: the first match wins,
// so more specific keys ("rtx 5070 ti") precede their prefixes ("rtx 5070").
type powerRule struct {
	key   string
	watts int
}

var gpuPowerTable = []powerRule{
	{"rtx 5090", 575},
	{"rtx 5080", 360},
	{"rtx 5070 ti", 285},
	{"rtx 5070", 220},
	{"rtx 5060 ti", 180},
	{"rtx 5060", 115},
	{"rtx 4090", 450},
	{"rtx 4080", 320},
	{"rtx 4070 ti", 285},
	{"rtx 4070", 200},
	{"rtx 4060 ti", 165},
	{"rtx 4060", 115},
	{"rtx 3080", 320},
	{"rtx 3070", 220},
	{"rtx 3060", 170},
	{"rx 9070 xt", 315},
	{"rx 9070", 260},
	{"rx 9060 xt", 190},
	{"rx 7900 xtx", 355},
	{"rx 7900 xt", 315},
	{"rx 7800 xt", 263},
	{"rx 7700 xt", 245},
	{"rx 7600", 165},
}

// generation averages when no exact model matched
var gpuTierPowerTable = []powerRule{
	{"rtx 50", 300},
	{"rtx 40", 250},
	{"rtx 30", 220},
	{"rx 90", 300},
	{"rx 70", 250},
	{"rx 60", 180},
}

var cpuTDPTable = []powerRule{
	{"i9", 125},
	{"i7", 125},
	{"i5", 65},
	{"i3", 65},
	{"ryzen 9", 170},
	{"ryzen 7", 105},
	{"ryzen 5", 105},
	{"ryzen 3", 65},
}

var socketAliases = map[string]string{
	"lga1700":     "lga1700",
	"lga 1700":    "lga1700",
	"socket 1700": "lga1700",
	"lga1851":     "lga1851",
	"lga 1851":    "lga1851",
	"socket 1851": "lga1851",
	"socket am5":  "socket am5",
	"am5":         "socket am5",
	"socket am4":  "socket am4",
	"am4":         "socket am4",
}

// socketMemoryTable keys are raw labels; lookups normalize both sides.
var socketMemoryTable = []struct {
	socket string
	memory string
}{
	{"LGA1700", "DDR4"},
	{"LGA1851", "DDR5"},
	{"Socket AM5", "DDR5"},
	{"Socket AM4", "DDR4"},
}

const defaultMemoryType = "DDR4"

// CompatibilityChecker socket, memory and power compatibility
type CompatibilityChecker struct {
	safetyMargin    float64
	baseSystemPower int
	log             zerolog.Logger

	mu          sync.Mutex
	socketCache map[string]string
}

// NewCompatibilityChecker zero margin/base power fall back to the defaults (1.3, 100W)
func NewCompatibilityChecker(safetyMargin float64, baseSystemPower int, log zerolog.Logger) *CompatibilityChecker {
	if safetyMargin <= 0 {
		safetyMargin = constants.DefaultPSUSafetyMargin
	}
	if baseSystemPower <= 0 {
		baseSystemPower = constants.DefaultBaseSystemPower
	}
	return &CompatibilityChecker{
		safetyMargin:    safetyMargin,
		baseSystemPower: baseSystemPower,
		log:             log,
		socketCache:     make(map[string]string),
	}
}

// NormalizeSocket "LGA 1700" -> "lga1700", "AM5" -> "socket am5"
func (c *CompatibilityChecker) NormalizeSocket(socket string) string {
	if socket == "" {
		return ""
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.socketCache[socket]; ok {
		return v
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(socket)), " ")
	if alias, ok := socketAliases[normalized]; ok {
		normalized = alias
	}
	c.socketCache[socket] = normalized
	return normalized
}

// SameSocket normalized equality
func (c *CompatibilityChecker) SameSocket(a, b string) bool {
	return c.NormalizeSocket(a) == c.NormalizeSocket(b)
}

// CompatibleMemoryType DDR4 for unknown sockets
func (c *CompatibilityChecker) CompatibleMemoryType(cpuSocket string) string {
	normalized := c.NormalizeSocket(cpuSocket)
	for _, row := range socketMemoryTable {
		if c.NormalizeSocket(row.socket) == normalized {
			return row.memory
		}
	}
	return defaultMemoryType
}

// IsMemoryCompatible memory type contains the DDR token the CPU socket needs
func (c *CompatibilityChecker) IsMemoryCompatible(mem *entity.Part, cpuSocket string) bool {
	if mem == nil {
		return false
	}
	return strings.Contains(strings.ToUpper(mem.Type), c.CompatibleMemoryType(cpuSocket))
}

// SelectCompatibleMotherboard same-socket boards ranked by score; cheapest board when none match
func (c *CompatibilityChecker) SelectCompatibleMotherboard(boards []entity.Part, cpu *entity.Part) *entity.Part {
	if len(boards) == 0 || cpu == nil {
		return nil
	}
	cpuSocket := c.NormalizeSocket(cpu.Socket)

	var compatible []*entity.Part
	for i := range boards {
		if c.NormalizeSocket(boards[i].Socket) == cpuSocket {
			compatible = append(compatible, &boards[i])
		}
	}
	if len(compatible) == 0 {
		c.log.Warn().Str("socket", cpuSocket).Str("cpu", cpu.Name).Msg("no motherboard for cpu socket, falling back to cheapest board")
		return cheapestPart(boards)
	}

	sort.SliceStable(compatible, func(i, j int) bool {
		return motherboardScore(compatible[i]) > motherboardScore(compatible[j])
	})
	return compatible[0]
}

func motherboardScore(mb *entity.Part) float64 {
	score := 0.0
	if mb.Price > 0 {
		score += 1000 / (float64(mb.Price) / 1000)
	} else {
		score += math.MaxFloat32
	}

	switch normalizeFormFactor(mb.FormFactor) {
	case formATX:
		score += 10
	case formMicroATX:
		score += 5
	}

	chipset := strings.ToLower(mb.Chipset)
	if strings.Contains(chipset, "z") || strings.Contains(chipset, "x") {
		score += 15
	} else if strings.Contains(chipset, "b") {
		score += 10
	}
	return score
}

// EstimateCPUTDP nom asosida TDP (W)
func (c *CompatibilityChecker) EstimateCPUTDP(cpu *entity.Part) int {
	if cpu == nil {
		return constants.DefaultCPUTDP
	}
	lower := strings.ToLower(cpu.Name)
	if w, ok := lookupPower(cpuTDPTable, lower); ok {
		return w
	}
	switch {
	case strings.Contains(lower, "intel"):
		return constants.DefaultCPUTDP
	case strings.Contains(lower, "amd"):
		return constants.DefaultAMDCPUTDP
	}
	return constants.DefaultCPUTDP
}

// EstimateGPUPower model table, then generation tier, then 200W; nil GPU draws nothing
func (c *CompatibilityChecker) EstimateGPUPower(gpu *entity.Part) int {
	if gpu == nil {
		return 0
	}
	lower := strings.ToLower(gpu.Name)
	if w, ok := lookupPower(gpuPowerTable, lower); ok {
		return w
	}
	if w, ok := lookupPower(gpuTierPowerTable, lower); ok {
		return w
	}
	return constants.DefaultGPUPower
}

func lookupPower(table []powerRule, lowerName string) (int, bool) {
	for _, rule := range table {
		if strings.Contains(lowerName, rule.key) {
			return rule.watts, true
		}
	}
	return 0, false
}

// SystemPowerRequirement round((cpu + gpu + base) * margin)
func (c *CompatibilityChecker) SystemPowerRequirement(cpu, gpu *entity.Part) int {
	cpuW := c.EstimateCPUTDP(cpu)
	gpuW := c.EstimateGPUPower(gpu)
	total := float64(cpuW+gpuW+c.baseSystemPower) * c.safetyMargin
	required := int(math.Round(total))
	c.log.Debug().
		Int("cpu_w", cpuW).
		Int("gpu_w", gpuW).
		Int("base_w", c.baseSystemPower).
		Float64("margin", c.safetyMargin).
		Int("required_w", required).
		Msg("system power requirement")
	return required
}

// SelectPSUForSystem enough wattage, best watts-per-yen minus the overspec penalty;
// the highest-wattage PSU when nothing is enough
func (c *CompatibilityChecker) SelectPSUForSystem(psus []entity.Part, cpu, gpu *entity.Part) *entity.Part {
	if len(psus) == 0 {
		return nil
	}
	required := c.SystemPowerRequirement(cpu, gpu)

	var suitable []*entity.Part
	for i := range psus {
		if ParseWattage(psus[i].Wattage) >= required {
			suitable = append(suitable, &psus[i])
		}
	}
	if len(suitable) == 0 {
		c.log.Warn().Int("required_w", required).Msg("no psu meets the requirement, using the highest wattage")
		return maxWattagePSU(psus)
	}

	sort.SliceStable(suitable, func(i, j int) bool {
		return psuSystemScore(suitable[i], required) > psuSystemScore(suitable[j], required)
	})
	return suitable[0]
}

func psuSystemScore(psu *entity.Part, required int) float64 {
	w := float64(ParseWattage(psu.Wattage))
	overspec := math.Max(0, (w-float64(required))/float64(required)-constants.PSUOverspecAllowance)
	if psu.Price <= 0 {
		return math.MaxFloat32 - overspec
	}
	return w/float64(psu.Price) - overspec
}

func maxWattagePSU(psus []entity.Part) *entity.Part {
	var best *entity.Part
	for i := range psus {
		if best == nil || ParseWattage(psus[i].Wattage) > ParseWattage(best.Wattage) {
			best = &psus[i]
		}
	}
	return best
}

// ClearCache socket keshini tozalash
func (c *CompatibilityChecker) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.socketCache = make(map[string]string)
}

// CacheSize socket keshidagi yozuvlar soni
func (c *CompatibilityChecker) CacheSize() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.socketCache)
}
