package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// BrandKeywords brand -> name keywords, checked in order
type BrandKeywords struct {
	Kind   string
	Brands []BrandRule
}

// BrandRule bitta brend va uning kalit so'zlari
type BrandRule struct {
	Brand    string
	Keywords []string
}

// CPUBrandKeywords intel is checked before amd
var CPUBrandKeywords = BrandKeywords{
	Kind: "cpu",
	Brands: []BrandRule{
		{Brand: entity.BrandIntel, Keywords: []string{"intel", "core"}},
		{Brand: entity.BrandAMD, Keywords: []string{"amd", "ryzen"}},
	},
}

// GPUBrandKeywords nvidia is checked before amd, so "rtx" never falls through to "rx"
var GPUBrandKeywords = BrandKeywords{
	Kind: "gpu",
	Brands: []BrandRule{
		{Brand: entity.BrandNvidia, Keywords: []string{"geforce", "rtx", "gtx"}},
		{Brand: entity.BrandAMD, Keywords: []string{"radeon", "rx"}},
	},
}

var vramRe = regexp.MustCompile(`(\d+)GB`)

// BrandDetector nomdan brendni aniqlaydi (memoized)
type BrandDetector struct {
	mu    sync.Mutex
	cache map[string]string
}

// NewBrandDetector creates a detector with an empty cache
func NewBrandDetector() *BrandDetector {
	return &BrandDetector{cache: make(map[string]string)}
}

// GetBrand first brand whose keyword occurs in the lowercased name, "" if none
func (d *BrandDetector) GetBrand(name string, keywords BrandKeywords) string {
	key := keywords.Kind + "\x00" + name

	d.mu.Lock()
	defer d.mu.Unlock()
	if brand, ok := d.cache[key]; ok {
		return brand
	}

	lower := strings.ToLower(name)
	brand := ""
	for _, rule := range keywords.Brands {
		if containsAny(lower, rule.Keywords...) {
			brand = rule.Brand
			break
		}
	}
	d.cache[key] = brand
	return brand
}

// IsCPUBrand "" va "any" har doim true
func (d *BrandDetector) IsCPUBrand(cpu *entity.Part, target string) bool {
	if target == "" || target == entity.BrandAny {
		return true
	}
	if cpu == nil {
		return false
	}
	return d.GetBrand(cpu.Name, CPUBrandKeywords) == target
}

// IsGPUBrand "" va "any" har doim true
func (d *BrandDetector) IsGPUBrand(gpu *entity.Part, target string) bool {
	if target == "" || target == entity.BrandAny {
		return true
	}
	if gpu == nil {
		return false
	}
	return d.GetBrand(gpu.Name, GPUBrandKeywords) == target
}

// IsX3DCPU matches "x3d" and also the bare "3d" substring.
// The bare match is broad (any name containing "3d" qualifies); X3D routing depends on it.
func (d *BrandDetector) IsX3DCPU(cpu *entity.Part) bool {
	if cpu == nil {
		return false
	}
	lower := strings.ToLower(cpu.Name)
	return strings.Contains(lower, "x3d") || strings.Contains(lower, "3d")
}

// IsSpecificX3DCPU model e.g. "7800x3d"
func (d *BrandDetector) IsSpecificX3DCPU(cpu *entity.Part, model string) bool {
	if cpu == nil || model == "" {
		return false
	}
	return strings.Contains(strings.ToLower(cpu.Name), strings.ToLower(model))
}

// VRAMCapacity first "<N>GB" in the memory field, 0 when absent
func (d *BrandDetector) VRAMCapacity(gpu *entity.Part) int {
	if gpu == nil {
		return 0
	}
	m := vramRe.FindStringSubmatch(gpu.Memory)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// IsHighVRAMGPU VRAM > 8GB
func (d *BrandDetector) IsHighVRAMGPU(gpu *entity.Part) bool {
	return d.VRAMCapacity(gpu) > constants.HighVRAMThresholdGB
}

// ClearCache keshni tozalash
func (d *BrandDetector) ClearCache() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cache = make(map[string]string)
}

// CacheSize keshdagi yozuvlar soni
func (d *BrandDetector) CacheSize() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.cache)
}
