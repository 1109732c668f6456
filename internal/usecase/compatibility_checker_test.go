package usecase

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func newTestChecker() *CompatibilityChecker {
	return NewCompatibilityChecker(0, 0, zerolog.Nop())
}

func TestNormalizeSocket(t *testing.T) {
	c := newTestChecker()

	cases := map[string]string{
		"LGA1700":          "lga1700",
		"LGA 1700":         "lga1700",
		"Socket 1700":      "lga1700",
		"lga 1851":         "lga1851",
		"AM5":              "socket am5",
		"  Socket   AM5  ": "socket am5",
		"AM4":              "socket am4",
		"BGA 1234":         "bga 1234",
		"":                 "",
	}
	for in, want := range cases {
		assert.Equal(t, want, c.NormalizeSocket(in), "socket %q", in)
	}
}

func TestNormalizeSocket_Memoized(t *testing.T) {
	c := newTestChecker()
	c.NormalizeSocket("LGA 1700")
	c.NormalizeSocket("LGA 1700")
	c.NormalizeSocket("AM5")
	assert.Equal(t, 2, c.CacheSize())

	c.ClearCache()
	assert.Zero(t, c.CacheSize())
}

func TestCompatibleMemoryType(t *testing.T) {
	c := newTestChecker()

	assert.Equal(t, "DDR4", c.CompatibleMemoryType("LGA 1700"))
	assert.Equal(t, "DDR5", c.CompatibleMemoryType("LGA1851"))
	assert.Equal(t, "DDR5", c.CompatibleMemoryType("AM5"))
	assert.Equal(t, "DDR5", c.CompatibleMemoryType("Socket AM5"))
	assert.Equal(t, "DDR4", c.CompatibleMemoryType("socket am4"))
	assert.Equal(t, "DDR4", c.CompatibleMemoryType("sTR5"))
}

func TestSelectCompatibleMotherboard(t *testing.T) {
	catalog := loadTestCatalog(t)
	c := newTestChecker()

	// AM5 spelled without "Socket" still finds the Socket AM5 boards; the cheap B650 wins on score
	mb := c.SelectCompatibleMotherboard(catalog.Motherboard, &entity.Part{Name: "AMD Ryzen 7 7700", Socket: "AM5"})
	require.NotNil(t, mb)
	assert.Equal(t, "ASRock B650M Pro RS", mb.Name)

	mb = c.SelectCompatibleMotherboard(catalog.Motherboard, &entity.Part{Name: "Intel Core i7 14700F", Socket: "LGA 1700"})
	require.NotNil(t, mb)
	assert.Equal(t, "ASRock B760M-HDV/M.2 D4", mb.Name)
}

func TestSelectCompatibleMotherboard_FallsBackToCheapest(t *testing.T) {
	catalog := loadTestCatalog(t)
	c := newTestChecker()

	mb := c.SelectCompatibleMotherboard(catalog.Motherboard, &entity.Part{Name: "Old CPU", Socket: "LGA1200"})
	require.NotNil(t, mb)
	assert.Equal(t, 13000, mb.Price)

	assert.Nil(t, c.SelectCompatibleMotherboard(nil, &entity.Part{Socket: "AM5"}))
}

func TestMotherboardScore(t *testing.T) {
	atxZ := &entity.Part{Price: 20000, FormFactor: "ATX", Chipset: "Z790"}
	matxB := &entity.Part{Price: 20000, FormFactor: "mATX", Chipset: "B760"}
	plain := &entity.Part{Price: 20000, FormFactor: "Mini-ITX", Chipset: "H610"}

	assert.InDelta(t, 50+10+15, motherboardScore(atxZ), 1e-9)
	assert.InDelta(t, 50+5+10, motherboardScore(matxB), 1e-9)
	assert.InDelta(t, 50, motherboardScore(plain), 1e-9)
	assert.Greater(t, motherboardScore(&entity.Part{Price: 0}), motherboardScore(atxZ))
}

func TestEstimateCPUTDP(t *testing.T) {
	c := newTestChecker()

	cases := map[string]int{
		"Intel Core i9 14900K": 125,
		"Intel Core i7 14700F": 125,
		"Intel Core i5 14400F": 65,
		"Intel Core i3 14100":  65,
		"AMD Ryzen 9 9950X3D":  170,
		"AMD Ryzen 7 7800X3D":  105,
		"AMD Ryzen 5 7500F":    105,
		"AMD Ryzen 3 8300G":    65,
		"Intel Core Ultra 7":   65,
		"AMD Athlon 3000G":     105,
		"Mystery Silicon":      65,
	}
	for name, want := range cases {
		assert.Equal(t, want, c.EstimateCPUTDP(&entity.Part{Name: name}), name)
	}
	assert.Equal(t, 65, c.EstimateCPUTDP(nil))
}

func TestEstimateGPUPower(t *testing.T) {
	c := newTestChecker()

	cases := map[string]int{
		"GeForce RTX 5090":        575,
		"GeForce RTX 5070 Ti":     285,
		"GeForce RTX 5070":        220,
		"GeForce RTX 4060 Ti":     165,
		"Radeon RX 7900 XTX":      355,
		"Radeon RX 7900 XT":       315,
		"Radeon RX 9070 XT":       315,
		"Radeon RX 9070":          260,
		"GeForce RTX 4050 Laptop": 250,
		"GeForce RTX 3050":        220,
		"Radeon RX 9050":          300,
		"GeForce GTX 1660":        200,
	}
	for name, want := range cases {
		assert.Equal(t, want, c.EstimateGPUPower(&entity.Part{Name: name}), name)
	}
	assert.Zero(t, c.EstimateGPUPower(nil))
}

func TestSystemPowerRequirement(t *testing.T) {
	cpu := &entity.Part{Name: "AMD Ryzen 7 7700"}
	gpu := &entity.Part{Name: "GeForce RTX 5070 Ti"}

	// (105 + 285 + 100) * 1.3
	assert.Equal(t, 637, newTestChecker().SystemPowerRequirement(cpu, gpu))

	custom := NewCompatibilityChecker(1.0, 50, zerolog.Nop())
	assert.Equal(t, 440, custom.SystemPowerRequirement(cpu, gpu))

	// no GPU: (65 + 0 + 100) * 1.3
	assert.Equal(t, 215, newTestChecker().SystemPowerRequirement(nil, nil))
}

func TestSelectPSUForSystem(t *testing.T) {
	catalog := loadTestCatalog(t)
	c := newTestChecker()

	cpu := &entity.Part{Name: "AMD Ryzen 7 7700"}
	gpu := &entity.Part{Name: "GeForce RTX 5070 Ti"}
	psu := c.SelectPSUForSystem(catalog.PSU, cpu, gpu)
	require.NotNil(t, psu)
	assert.Equal(t, "Corsair RM650e", psu.Name)
	assert.GreaterOrEqual(t, ParseWattage(psu.Wattage), c.SystemPowerRequirement(cpu, gpu))
}

func TestSelectPSUForSystem_FallsBackToMaxWattage(t *testing.T) {
	catalog := loadTestCatalog(t)
	c := newTestChecker()

	small := filterParts(catalog.PSU, func(p *entity.Part) bool { return ParseWattage(p.Wattage) <= 1000 })
	psu := c.SelectPSUForSystem(small, &entity.Part{Name: "AMD Ryzen 9 9950X3D"}, &entity.Part{Name: "GeForce RTX 5090"})
	require.NotNil(t, psu)
	assert.Equal(t, "Corsair RM1000x", psu.Name)

	assert.Nil(t, c.SelectPSUForSystem(nil, nil, nil))
}

func TestSelectPSUForSystem_PenalizesOverspec(t *testing.T) {
	c := newTestChecker()
	psus := []entity.Part{
		{Name: "huge cheap", Price: 10000, Wattage: "1600W"},
		{Name: "right size", Price: 10000, Wattage: "650W"},
	}
	// requirement 481W: 1600W is >50% over and loses despite more watts per yen
	psu := c.SelectPSUForSystem(psus, &entity.Part{Name: "AMD Ryzen 5 7500F"}, &entity.Part{Name: "GeForce RTX 4060 Ti"})
	require.NotNil(t, psu)
	assert.Equal(t, "right size", psu.Name)
}

func TestIsMemoryCompatible(t *testing.T) {
	c := newTestChecker()
	assert.True(t, c.IsMemoryCompatible(&entity.Part{Type: "DDR5 SDRAM"}, "AM5"))
	assert.False(t, c.IsMemoryCompatible(&entity.Part{Type: "DDR4 SDRAM"}, "AM5"))
	assert.False(t, c.IsMemoryCompatible(nil, "AM5"))
}
