package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func TestAnalyzeBuild(t *testing.T) {
	catalog := loadTestCatalog(t)
	cfg := &entity.Configuration{
		CPU:         findPart(t, catalog.CPU, "AMD Ryzen 5 7500F"),
		Motherboard: findPart(t, catalog.Motherboard, "ASRock B650M Pro RS"),
		GPU:         findPart(t, catalog.GPU, "MSI GeForce RTX 4060 Ti VENTUS 2X"),
		Memory:      findPart(t, catalog.Memory, "Crucial DDR5-5600 16GB Kit"),
		Storage:     findPart(t, catalog.Storage, "WD Blue SN580 1TB"),
		PSU:         findPart(t, catalog.PSU, "KRPW-BK550W/85+"),
		Cooler:      findPart(t, catalog.Cooler, "DeepCool AK400"),
		Case:        findPart(t, catalog.Case, "NZXT H5 Flow"),
	}

	a := NewRecommendationEngine().AnalyzeBuild(cfg)
	require.NotNil(t, a)

	assert.Equal(t, 105, a.CPUTDP)
	assert.Equal(t, 165, a.GPUPower)
	assert.Equal(t, 481, a.RequiredWattage)
	assert.Equal(t, 550, a.PSUWattage)
	assert.InDelta(t, 14.3, a.PSUHeadroomPercent, 1e-9)
	assert.Equal(t, 2, a.PSUEfficiencyRank)
	assert.True(t, a.CaseFitsMotherboard)

	assert.Equal(t, "Mid", a.CPUTier)
	assert.Equal(t, 16, a.RAMGB)
	assert.Equal(t, "NVMe", a.StorageType)
	assert.Equal(t, "None", a.Bottleneck)
	assert.InDelta(t, 7.0, a.OverallScore, 1e-9)
	assert.Equal(t, "Very good", a.OverallLabel)
}

func TestAnalyzeBuild_CaseTooSmall(t *testing.T) {
	cfg := &entity.Configuration{
		Motherboard: &entity.Part{Name: "big board", FormFactor: "ATX"},
		Case:        &entity.Part{Name: "tiny case", FormFactor: "Mini-ITX"},
	}
	assert.False(t, AnalyzeBuild(cfg, nil).CaseFitsMotherboard)
}

func TestAnalyzeBuild_Empty(t *testing.T) {
	a := AnalyzeBuild(nil, nil)
	assert.Equal(t, "Unknown", a.CPUTier)
	assert.Equal(t, "Unknown", a.GPUTier)
	assert.Zero(t, a.PSUWattage)
	assert.Zero(t, a.PSUHeadroomPercent)
	assert.False(t, a.CaseFitsMotherboard)
}

func TestBottleneck(t *testing.T) {
	assert.Equal(t, "GPU", bottleneck(9.3, 6.3))
	assert.Equal(t, "CPU", bottleneck(5.0, 8.6))
	assert.Equal(t, "None", bottleneck(7.8, 8.0))
}

func TestPSUEfficiencyRank(t *testing.T) {
	assert.Equal(t, 4, psuEfficiencyRank("80 PLUS Platinum"))
	assert.Equal(t, 3, psuEfficiencyRank("GOLD"))
	assert.Equal(t, 0, psuEfficiencyRank(""))
}

func TestScoreGPU_SpecificBeforeGeneric(t *testing.T) {
	score, tier := scoreGPU("GIGABYTE GeForce RTX 5070 Ti WINDFORCE")
	assert.Equal(t, 8.6, score)
	assert.Equal(t, "Upper", tier)

	score, _ = scoreGPU("ZOTAC GeForce RTX 5070 Twin Edge")
	assert.Equal(t, 8.0, score)
}
