package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func tarkovRun(t *testing.T, e *RecommendationEngine, catalog *entity.Catalog, cpuBrand string) *runState {
	t.Helper()
	req := baseRequirements()
	req.Usage = "tarkov"
	req.CPUBrand = cpuBrand
	req, err := ValidateRequirements(req)
	require.NoError(t, err)
	return e.newRun(req, catalog)
}

func TestSelectCPUX3D_StagedSelection(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()

	cases := []struct {
		budget int
		want   string
	}{
		{60000, "AMD Ryzen 7 7800X3D"},
		// buffer of exactly 20000 is not enough to step up
		{72800, "AMD Ryzen 7 7800X3D"},
		// buffer 31561 = gap 21561 + 10000
		{84361, "AMD Ryzen 7 9800X3D"},
		{130000, "AMD Ryzen 7 9800X3D"},
		// buffer 87200 >= gap 57180 + 30000
		{140000, "AMD Ryzen 9 9950X3D"},
	}
	for _, tc := range cases {
		run := tarkovRun(t, e, catalog, entity.BrandAMD)
		cpu := selectCPUX3D(e, run, tc.budget)
		require.NotNil(t, cpu)
		assert.Equal(t, tc.want, cpu.Name, "budget %d", tc.budget)
		assert.Empty(t, run.warnings)
	}
}

func TestSelectCPUX3D_WithoutBaseline(t *testing.T) {
	catalog := loadTestCatalog(t)
	catalog.CPU = filterParts(catalog.CPU, func(p *entity.Part) bool {
		return p.Name != "AMD Ryzen 7 7800X3D"
	})
	e := NewRecommendationEngine()

	cases := []struct {
		budget int
		want   string
	}{
		{70000, "AMD Ryzen 7 9800X3D"},
		// nothing within budget*1.2: cheapest X3D
		{50000, "AMD Ryzen 7 9800X3D"},
		{95000, "AMD Ryzen 9 9950X3D"},
	}
	for _, tc := range cases {
		run := tarkovRun(t, e, catalog, entity.BrandAny)
		cpu := selectCPUX3D(e, run, tc.budget)
		require.NotNil(t, cpu)
		assert.Equal(t, tc.want, cpu.Name, "budget %d", tc.budget)
		assert.Contains(t, run.warnings, "no 7800X3D in the catalog, choosing among available X3D CPUs")
	}
}

func TestSelectCPUX3D_IntelFallsBackToGeneral(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()
	run := tarkovRun(t, e, catalog, entity.BrandIntel)

	cpu := selectCPUX3D(e, run, 50000)
	require.NotNil(t, cpu)
	assert.Equal(t, "Intel Core i7 14700F", cpu.Name)
	assert.Len(t, run.warnings, 1)
}

func TestSelectCPUGeneral(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()
	req := baseRequirements()
	req.CPUBrand = entity.BrandIntel
	run := e.newRun(req, catalog)

	cpu := selectCPUGeneral(e, run, 30000)
	require.NotNil(t, cpu)
	assert.Equal(t, "Intel Core i5 14400F", cpu.Name)

	cpu = selectCPUGeneral(e, run, 1000)
	require.NotNil(t, cpu)
	assert.Equal(t, 22000, cpu.Price)
}

func TestSelectGPUHighVRAM(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()
	req := baseRequirements()
	req.Usage = "vrchat"
	run := e.newRun(req, catalog)

	gpu := selectGPUHighVRAM(e, run, 70000)
	require.NotNil(t, gpu)
	assert.Equal(t, "ASRock Challenger Radeon RX 9060 XT", gpu.Name)

	// no >8GB card within budget: general selection
	gpu = selectGPUHighVRAM(e, run, 50000)
	require.NotNil(t, gpu)
	assert.Equal(t, "ASUS Dual GeForce RTX 5060", gpu.Name)
}

func TestSelectGPUGeneral_BrandPool(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()
	req := baseRequirements()
	req.GPUBrand = entity.BrandNvidia
	run := e.newRun(req, catalog)

	gpu := selectGPUGeneral(e, run, 45000)
	require.NotNil(t, gpu)
	// RX 7600 is cheaper but filtered out by brand; cheapest nvidia card instead
	assert.Equal(t, "ASUS Dual GeForce RTX 5060", gpu.Name)
}

func TestStrategyFor(t *testing.T) {
	assert.NotNil(t, strategyFor(entity.LogicX3DCPU).adjustAllocation)
	assert.Nil(t, strategyFor(entity.LogicGeneral).adjustAllocation)
	assert.Nil(t, strategyFor(entity.SpecialLogic(99)).adjustAllocation)
	assert.NotNil(t, strategyFor(entity.SpecialLogic(99)).selectCPU)
}

func TestX3DCPUPool(t *testing.T) {
	catalog := loadTestCatalog(t)
	e := NewRecommendationEngine()
	run := tarkovRun(t, e, catalog, entity.BrandAMD)

	pool := x3dCPUPool(e, run)
	require.Len(t, pool, 3)
	assert.Equal(t, "AMD Ryzen 7 7800X3D", pool[0].Name)
	assert.Equal(t, "AMD Ryzen 9 9950X3D", pool[2].Name)
}
