package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func loadTestCatalog(t testing.TB) *entity.Catalog {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "catalog.json"))
	require.NoError(t, err)

	var catalog entity.Catalog
	require.NoError(t, json.Unmarshal(data, &catalog))
	return &catalog
}

func baseRequirements() entity.Requirements {
	return entity.Requirements{
		Budget:   150000,
		RAM:      "16GB",
		Storage:  entity.StorageRequirement{Capacity: "1TB"},
		CPUBrand: entity.BrandAny,
		GPUBrand: entity.BrandAny,
		Usage:    "gaming",
	}
}

func findPart(t testing.TB, parts []entity.Part, name string) *entity.Part {
	t.Helper()
	for i := range parts {
		if parts[i].Name == name {
			return &parts[i]
		}
	}
	t.Fatalf("part %q not in fixture", name)
	return nil
}

func maxWattage(psus []entity.Part) int {
	best := 0
	for _, p := range psus {
		if w := ParseWattage(p.Wattage); w > best {
			best = w
		}
	}
	return best
}

// assertBuildInvariants socket, memory, PSU and budget arithmetic checks shared by scenario tests
func assertBuildInvariants(t testing.TB, e *RecommendationEngine, catalog *entity.Catalog, res *entity.Result) {
	t.Helper()
	cfg := res.Recommendations
	require.True(t, cfg.IsComplete(), "missing %v", cfg.Missing())

	c := e.Checker()
	require.Equal(t, c.NormalizeSocket(cfg.CPU.Socket), c.NormalizeSocket(cfg.Motherboard.Socket), "socket mismatch")
	require.Contains(t, cfg.Memory.Type, c.CompatibleMemoryType(cfg.CPU.Socket), "memory type")

	need := c.SystemPowerRequirement(cfg.CPU, cfg.GPU)
	got := ParseWattage(cfg.PSU.Wattage)
	require.True(t, got >= need || got == maxWattage(catalog.PSU), "psu %dW below %dW", got, need)

	require.Equal(t, cfg.TotalPrice(), res.TotalPrice)
	require.Equal(t, res.TotalPrice+entity.PriceOf(cfg.OS), res.GrandTotal)
	remaining := res.Budget - res.GrandTotal
	if remaining < 0 {
		remaining = 0
	}
	require.Equal(t, remaining, res.RemainingBudget)
	if res.GrandTotal <= res.Budget {
		require.Equal(t, entity.WithinBudget, res.BudgetStatus)
		require.Zero(t, res.Overage)
	} else {
		require.Equal(t, entity.OverBudget, res.BudgetStatus)
		require.Equal(t, res.GrandTotal-res.Budget, res.Overage)
	}
}
