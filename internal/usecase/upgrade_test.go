package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// am5Catalog one AM5 platform: 7600 + B650 + DDR5 + RTX 4060 comes to ¥126,000
func am5Catalog() *entity.Catalog {
	return &entity.Catalog{
		CPU: []entity.Part{
			{Name: "AMD Ryzen 5 7600", Price: 30000, Socket: "Socket AM5"},
		},
		Motherboard: []entity.Part{
			{Name: "B650 Board", Price: 18000, Socket: "Socket AM5", FormFactor: "Micro-ATX"},
		},
		Memory: []entity.Part{
			{Name: "DDR5 16GB Kit", Price: 8000, Capacity: "8GB×2", Type: "DDR5 SDRAM"},
			{Name: "DDR4 16GB Kit", Price: 6000, Capacity: "8GB×2", Type: "DDR4 SDRAM"},
		},
		Storage: []entity.Part{
			{Name: "NVMe 1TB", Price: 8000, Capacity: "1TB", Type: "SSD"},
		},
		GPU: []entity.Part{
			{Name: "MSI GeForce RTX 4060 VENTUS", Price: 45000, Chip: "GeForce RTX 4060", Memory: "8GB GDDR6"},
		},
		PSU: []entity.Part{
			{Name: "650W PSU", Price: 8000, Wattage: "650W"},
		},
		Cooler: []entity.Part{{Name: "Air Cooler", Price: 3000, Type: "Air"}},
		Case:   []entity.Part{{Name: "Mid Tower", Price: 6000, FormFactor: "ATX, Micro-ATX, Mini-ITX"}},
	}
}

func recommendFrom(t *testing.T, catalog *entity.Catalog, req entity.Requirements) (*RecommendationEngine, *entity.Result) {
	t.Helper()
	e := NewRecommendationEngine()
	res, err := e.Recommend(context.Background(), req, catalog)
	require.NoError(t, err)
	assertBuildInvariants(t, e, catalog, res)
	return e, res
}

func TestUpgrade_SkipsCPUWithoutMotherboard(t *testing.T) {
	catalog := am5Catalog()
	// above the CPU allocation, inside the leftover; no LGA2066 board exists
	catalog.CPU = append(catalog.CPU, entity.Part{Name: "Intel Core i7 7820X", Price: 60000, Socket: "LGA2066"})

	req := baseRequirements()
	req.Budget = 200000
	e, res := recommendFrom(t, catalog, req)

	cfg := res.Recommendations
	assert.Equal(t, "AMD Ryzen 5 7600", cfg.CPU.Name)
	assert.True(t, e.Checker().SameSocket(cfg.CPU.Socket, cfg.Motherboard.Socket))
	assert.Equal(t, "DDR5 16GB Kit", cfg.Memory.Name)
	assert.Equal(t, 126000, res.TotalPrice)
	assert.Empty(t, res.Warnings)
}

func TestUpgrade_RejectedTrialLeavesNoWarning(t *testing.T) {
	catalog := am5Catalog()
	// the 5090 fits the leftover alone, but no PSU reaches its draw and the largest one breaks the budget
	catalog.GPU = append(catalog.GPU, entity.Part{Name: "ASUS GeForce RTX 5090", Price: 100000, Chip: "GeForce RTX 5090", Memory: "32GB GDDR7"})
	catalog.PSU = append(catalog.PSU, entity.Part{Name: "850W PSU", Price: 40000, Wattage: "850W"})

	req := baseRequirements()
	req.Budget = 200000
	_, res := recommendFrom(t, catalog, req)

	assert.Equal(t, "MSI GeForce RTX 4060 VENTUS", res.Recommendations.GPU.Name)
	assert.Equal(t, "650W PSU", res.Recommendations.PSU.Name)
	assert.Empty(t, res.Warnings)
}

func TestRunState_TrialWarnings(t *testing.T) {
	run := &runState{seen: make(map[string]bool)}

	run.beginTrial()
	run.warn("rolled back %d", 1)
	run.endTrial(false)
	assert.Empty(t, run.warnings)

	run.beginTrial()
	run.warn("kept")
	run.warn("kept")
	run.endTrial(true)
	assert.Equal(t, []string{"kept"}, run.warnings)

	run.warn("direct")
	assert.Equal(t, []string{"kept", "direct"}, run.warnings)
}
