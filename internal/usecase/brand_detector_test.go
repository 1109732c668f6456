package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func TestGetBrand(t *testing.T) {
	d := NewBrandDetector()

	cases := []struct {
		name     string
		keywords BrandKeywords
		want     string
	}{
		{"Intel Core i5 14400F", CPUBrandKeywords, entity.BrandIntel},
		{"Core Ultra 7 265K", CPUBrandKeywords, entity.BrandIntel},
		{"AMD Ryzen 7 7800X3D", CPUBrandKeywords, entity.BrandAMD},
		{"Ryzen 5 5600", CPUBrandKeywords, entity.BrandAMD},
		{"ASUS Dual GeForce RTX 5060", GPUBrandKeywords, entity.BrandNvidia},
		{"GTX 1660 SUPER", GPUBrandKeywords, entity.BrandNvidia},
		{"Sapphire PULSE Radeon RX 7600", GPUBrandKeywords, entity.BrandAMD},
		{"Mystery Accelerator", GPUBrandKeywords, ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, d.GetBrand(tc.name, tc.keywords), tc.name)
	}
}

func TestGetBrand_RTXIsNotRX(t *testing.T) {
	d := NewBrandDetector()
	assert.Equal(t, entity.BrandNvidia, d.GetBrand("ZOTAC RTX 5070", GPUBrandKeywords))
}

func TestGetBrand_CacheKeyedByKind(t *testing.T) {
	d := NewBrandDetector()

	// the same name resolves independently per keyword table
	assert.Equal(t, "", d.GetBrand("Radeon RX 9070", CPUBrandKeywords))
	assert.Equal(t, entity.BrandAMD, d.GetBrand("Radeon RX 9070", GPUBrandKeywords))
	assert.Equal(t, 2, d.CacheSize())

	d.GetBrand("Radeon RX 9070", GPUBrandKeywords)
	assert.Equal(t, 2, d.CacheSize())

	d.ClearCache()
	assert.Zero(t, d.CacheSize())
}

func TestIsCPUBrand(t *testing.T) {
	d := NewBrandDetector()
	ryzen := &entity.Part{Name: "AMD Ryzen 5 7500F"}

	assert.True(t, d.IsCPUBrand(ryzen, entity.BrandAny))
	assert.True(t, d.IsCPUBrand(ryzen, ""))
	assert.True(t, d.IsCPUBrand(ryzen, entity.BrandAMD))
	assert.False(t, d.IsCPUBrand(ryzen, entity.BrandIntel))
	assert.False(t, d.IsCPUBrand(nil, entity.BrandAMD))
	assert.True(t, d.IsCPUBrand(nil, entity.BrandAny))
}

func TestIsGPUBrand(t *testing.T) {
	d := NewBrandDetector()
	rtx := &entity.Part{Name: "GeForce RTX 5070 Ti"}

	assert.True(t, d.IsGPUBrand(rtx, entity.BrandNvidia))
	assert.False(t, d.IsGPUBrand(rtx, entity.BrandAMD))
	assert.True(t, d.IsGPUBrand(rtx, entity.BrandAny))
}

func TestIsX3DCPU(t *testing.T) {
	d := NewBrandDetector()

	assert.True(t, d.IsX3DCPU(&entity.Part{Name: "AMD Ryzen 7 7800X3D"}))
	assert.True(t, d.IsX3DCPU(&entity.Part{Name: "Ryzen 9 9950x3d"}))
	assert.False(t, d.IsX3DCPU(&entity.Part{Name: "AMD Ryzen 7 7700"}))
	assert.False(t, d.IsX3DCPU(nil))
}

// The bare "3d" match is broad on purpose; this pins the known false positive.
func TestIsX3DCPU_BareThreeDMatchesTooBroadly(t *testing.T) {
	d := NewBrandDetector()
	assert.True(t, d.IsX3DCPU(&entity.Part{Name: "Core i3Duo"}))
}

func TestIsSpecificX3DCPU(t *testing.T) {
	d := NewBrandDetector()
	cpu := &entity.Part{Name: "AMD Ryzen 7 9800X3D"}

	assert.True(t, d.IsSpecificX3DCPU(cpu, "9800x3d"))
	assert.True(t, d.IsSpecificX3DCPU(cpu, "9800X3D"))
	assert.False(t, d.IsSpecificX3DCPU(cpu, "7800x3d"))
	assert.False(t, d.IsSpecificX3DCPU(cpu, ""))
}

func TestVRAMCapacity(t *testing.T) {
	d := NewBrandDetector()

	require.Equal(t, 16, d.VRAMCapacity(&entity.Part{Memory: "16GB GDDR6"}))
	require.Equal(t, 8, d.VRAMCapacity(&entity.Part{Memory: "8GB GDDR7"}))
	require.Equal(t, 0, d.VRAMCapacity(&entity.Part{Memory: "unknown"}))
	require.Equal(t, 0, d.VRAMCapacity(nil))

	assert.True(t, d.IsHighVRAMGPU(&entity.Part{Memory: "12GB GDDR7"}))
	assert.False(t, d.IsHighVRAMGPU(&entity.Part{Memory: "8GB GDDR6"}))
}
