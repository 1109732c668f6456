package entity

// Category catalog kategoriyasi (cpu, gpu, ...)
type Category string

const (
	CategoryCPU         Category = "cpu"
	CategoryMotherboard Category = "motherboard"
	CategoryMemory      Category = "memory"
	CategoryStorage     Category = "storage"
	CategoryGPU         Category = "gpu"
	CategoryPSU         Category = "psu"
	CategoryCooler      Category = "cooler"
	CategoryCase        Category = "case"
	CategoryOS          Category = "os"
)

// RequiredCategories every successful configuration holds one part of each
var RequiredCategories = []Category{
	CategoryCPU,
	CategoryMotherboard,
	CategoryMemory,
	CategoryStorage,
	CategoryGPU,
	CategoryPSU,
	CategoryCooler,
	CategoryCase,
}

// AllCategories required categories plus the optional OS
var AllCategories = append(append([]Category{}, RequiredCategories...), CategoryOS)

// ParseCategory maps a loose label ("CPU", "Motherboard", "cases") to a Category.
func ParseCategory(raw string) (Category, bool) {
	switch normalizeLabel(raw) {
	case "cpu", "processor", "cpus":
		return CategoryCPU, true
	case "motherboard", "mb", "mobo", "motherboards":
		return CategoryMotherboard, true
	case "memory", "ram", "memories":
		return CategoryMemory, true
	case "storage", "ssd", "storages":
		return CategoryStorage, true
	case "gpu", "videocard", "graphics", "gpus":
		return CategoryGPU, true
	case "psu", "power", "powersupply", "psus":
		return CategoryPSU, true
	case "cooler", "cooling", "cpucooler", "coolers":
		return CategoryCooler, true
	case "case", "cases", "chassis":
		return CategoryCase, true
	case "os", "operatingsystem":
		return CategoryOS, true
	}
	return "", false
}

// Part catalog yozuvi. Category-specific fields are empty when unused.
type Part struct {
	Name  string `json:"name" yaml:"name"`
	Price int    `json:"price" yaml:"price"`

	// cpu
	Socket    string `json:"socket,omitempty" yaml:"socket,omitempty"`
	Cores     string `json:"cores,omitempty" yaml:"cores,omitempty"`
	Frequency string `json:"frequency,omitempty" yaml:"frequency,omitempty"`

	// motherboard, case, storage
	Chipset    string `json:"chipset,omitempty" yaml:"chipset,omitempty"`
	FormFactor string `json:"formFactor,omitempty" yaml:"formFactor,omitempty"`

	// memory, storage
	Capacity string `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Type     string `json:"type,omitempty" yaml:"type,omitempty"`
	Speed    string `json:"speed,omitempty" yaml:"speed,omitempty"`

	// storage, gpu
	Interface string `json:"interface,omitempty" yaml:"interface,omitempty"`

	// gpu
	Chip   string `json:"gpu,omitempty" yaml:"gpu,omitempty"`
	Memory string `json:"memory,omitempty" yaml:"memory,omitempty"`

	// psu
	Wattage    string `json:"wattage,omitempty" yaml:"wattage,omitempty"`
	Efficiency string `json:"efficiency,omitempty" yaml:"efficiency,omitempty"`
	Modular    string `json:"modular,omitempty" yaml:"modular,omitempty"`

	// case
	Size string `json:"size,omitempty" yaml:"size,omitempty"`
}

// PriceOf nil-safe narx
func PriceOf(p *Part) int {
	if p == nil {
		return 0
	}
	return p.Price
}

// NameOf nil-safe nom
func NameOf(p *Part) string {
	if p == nil {
		return "-"
	}
	return p.Name
}

func normalizeLabel(raw string) string {
	b := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c >= 'A' && c <= 'Z' {
			c += 32
		}
		if c == ' ' || c == '_' || c == '-' {
			continue
		}
		b = append(b, c)
	}
	return string(b)
}

// PartMatch katalog qidiruvi natijasi
type PartMatch struct {
	Category Category `json:"category"`
	Part     Part     `json:"part"`
	Score    int      `json:"score"`
}
