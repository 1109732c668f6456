package entity

// Brand preference values
const (
	BrandAny    = "any"
	BrandIntel  = "intel"
	BrandAMD    = "amd"
	BrandNvidia = "nvidia"
)

// StorageRequirement target storage
type StorageRequirement struct {
	Capacity string `json:"capacity" yaml:"capacity" validate:"required,storagecapacity"`
}

// Requirements foydalanuvchi talablari
type Requirements struct {
	Budget    int                `json:"budget" yaml:"budget" validate:"gt=0"`
	RAM       string             `json:"ram" yaml:"ram" validate:"required,ramcapacity"`
	Storage   StorageRequirement `json:"storage" yaml:"storage"`
	CPUBrand  string             `json:"cpuBrand" yaml:"cpuBrand" validate:"oneof=intel amd any"`
	GPUBrand  string             `json:"gpuBrand" yaml:"gpuBrand" validate:"oneof=nvidia amd any"`
	Usage     string             `json:"usage" yaml:"usage" validate:"required"`
	IncludeOS bool               `json:"includeOS" yaml:"includeOS"`
}
