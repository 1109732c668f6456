package usecase

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func newTestSelector() *PartSelector {
	return NewPartSelector(nil, nil, zerolog.Nop())
}

func TestSelectBestPart(t *testing.T) {
	catalog := loadTestCatalog(t)
	s := newTestSelector()

	best := s.SelectBestPart(catalog.Storage, 10000)
	require.NotNil(t, best)
	assert.Equal(t, 9000, best.Price)

	// nothing affordable: cheapest
	best = s.SelectBestPart(catalog.Storage, 1000)
	require.NotNil(t, best)
	assert.Equal(t, 5000, best.Price)

	assert.Nil(t, s.SelectBestPart(nil, 10000))
}

func TestSelectBestGPU_AMDTieBreak(t *testing.T) {
	catalog := loadTestCatalog(t)
	s := newTestSelector()

	gpu := s.SelectBestGPU(catalog.GPU, 70000, entity.BrandAny)
	require.NotNil(t, gpu)
	assert.Equal(t, "ASRock Challenger Radeon RX 9060 XT", gpu.Name)

	gpu = s.SelectBestGPU(catalog.GPU, 70000, "")
	require.NotNil(t, gpu)
	assert.Equal(t, "ASRock Challenger Radeon RX 9060 XT", gpu.Name)

	// explicit brand keeps the first part at the top price
	gpu = s.SelectBestGPU(catalog.GPU, 70000, entity.BrandNvidia)
	require.NotNil(t, gpu)
	assert.Equal(t, "MSI GeForce RTX 4060 Ti VENTUS 2X", gpu.Name)

	gpu = s.SelectBestGPU(catalog.GPU, 1000, entity.BrandAny)
	require.NotNil(t, gpu)
	assert.Equal(t, 40000, gpu.Price)
}

func TestSelectCheapestPart(t *testing.T) {
	parts := []entity.Part{{Name: "a", Price: 300}, {Name: "b", Price: 100}, {Name: "c", Price: 100}}
	s := newTestSelector()

	p := s.SelectCheapestPart(parts)
	require.NotNil(t, p)
	assert.Equal(t, "b", p.Name)
	assert.Nil(t, s.SelectCheapestPart(nil))
}

func TestParseMemoryCapacity(t *testing.T) {
	s := newTestSelector()

	cases := map[string]int{
		"16GB×2":   32,
		"16GBx2":   32,
		"8 GB * 2": 16,
		"16GB":     16,
		"32gb":     32,
		"64":       64,
		"":         0,
		"lots":     0,
	}
	for in, want := range cases {
		assert.Equal(t, want, s.ParseMemoryCapacity(in), "capacity %q", in)
	}
	assert.Equal(t, len(cases), s.CacheSize())

	s.ClearCache()
	assert.Zero(t, s.CacheSize())
}

func TestSelectMemory(t *testing.T) {
	catalog := loadTestCatalog(t)
	s := newTestSelector()

	cases := []struct {
		name   string
		target string
		budget int
		socket string
		want   string
	}{
		{"exact capacity", "16GB", 20000, "AM5", "Crucial DDR5-5600 16GB Kit"},
		{"32GB kit", "32GB", 20000, "Socket AM5", "G.Skill Flare X5 DDR5-6000 32GB Kit"},
		{"too small budget for target, largest smaller kit", "64GB", 20000, "AM5", "G.Skill Flare X5 DDR5-6000 32GB Kit"},
		{"nothing affordable, cheapest compatible", "32GB", 5000, "AM5", "Crucial DDR5-5600 16GB Kit"},
		{"DDR4 platform", "16GB", 20000, "LGA1700", "Crucial DDR4-3200 16GB Kit"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mem := s.SelectMemory(catalog.Memory, tc.target, tc.budget, tc.socket)
			require.NotNil(t, mem)
			assert.Equal(t, tc.want, mem.Name)
		})
	}
}

func TestSelectMemory_NoCompatibleType(t *testing.T) {
	s := newTestSelector()
	ddr4Only := []entity.Part{
		{Name: "big", Price: 9000, Capacity: "16GB×2", Type: "DDR4"},
		{Name: "small", Price: 4000, Capacity: "8GB×2", Type: "DDR4"},
	}

	mem := s.SelectMemory(ddr4Only, "16GB", 20000, "AM5")
	require.NotNil(t, mem)
	assert.Equal(t, "small", mem.Name)
	assert.Nil(t, s.SelectMemory(nil, "16GB", 20000, "AM5"))
}

func TestSelectStorage(t *testing.T) {
	catalog := loadTestCatalog(t)
	s := newTestSelector()

	cases := []struct {
		capacity string
		budget   int
		want     string
	}{
		{"1TB", 10000, "WD Blue SN580 1TB"},
		// no affordable 2TB SSD, the HDD meets the capacity
		{"2TB", 10000, "Seagate BarraCuda 2TB"},
		// nothing big enough, priciest affordable drive
		{"4TB", 10000, "WD Blue SN580 1TB"},
		{"1TB", 1000, "Crucial P3 500GB"},
		{"2TB", 30000, "Samsung 990 PRO 2TB"},
	}
	for _, tc := range cases {
		req := entity.Requirements{Storage: entity.StorageRequirement{Capacity: tc.capacity}}
		st := s.SelectStorage(catalog.Storage, req, tc.budget)
		require.NotNil(t, st, tc.capacity)
		assert.Equal(t, tc.want, st.Name, "%s within %d", tc.capacity, tc.budget)
	}
	assert.Nil(t, s.SelectStorage(nil, entity.Requirements{}, 10000))
}

func TestSelectPSU(t *testing.T) {
	catalog := loadTestCatalog(t)
	s := newTestSelector()

	psu := s.SelectPSU(catalog.PSU, 700, 20000)
	require.NotNil(t, psu)
	assert.Equal(t, "Corsair RM750e", psu.Name)

	// over budget: cheapest meeting the wattage
	psu = s.SelectPSU(catalog.PSU, 700, 5000)
	require.NotNil(t, psu)
	assert.Equal(t, "Corsair RM750e", psu.Name)

	// nothing big enough: cheapest overall
	psu = s.SelectPSU(catalog.PSU, 2000, 5000)
	require.NotNil(t, psu)
	assert.Equal(t, "KRPW-BK550W/85+", psu.Name)
}

func TestParseCapacityToGB(t *testing.T) {
	assert.Equal(t, 1000.0, ParseCapacityToGB("1TB"))
	assert.Equal(t, 500.0, ParseCapacityToGB("500GB"))
	assert.Equal(t, 1500.0, ParseCapacityToGB("1.5 tb"))
	assert.Zero(t, ParseCapacityToGB("big"))
}

func TestParseWattage(t *testing.T) {
	assert.Equal(t, 850, ParseWattage("850W"))
	assert.Equal(t, 550, ParseWattage("KRPW 550W/85+"))
	assert.Zero(t, ParseWattage(""))
}
