package entity

// Catalog parts per category. The engine treats it as read-only.
type Catalog struct {
	LastUpdated string `json:"lastUpdated,omitempty" yaml:"lastUpdated,omitempty"`

	CPU         []Part `json:"cpu" yaml:"cpu"`
	Cooler      []Part `json:"cooler" yaml:"cooler"`
	Motherboard []Part `json:"motherboard" yaml:"motherboard"`
	Memory      []Part `json:"memory" yaml:"memory"`
	Storage     []Part `json:"storage" yaml:"storage"`
	GPU         []Part `json:"gpu" yaml:"gpu"`
	PSU         []Part `json:"psu" yaml:"psu"`
	Case        []Part `json:"case" yaml:"case"`
	OS          []Part `json:"os,omitempty" yaml:"os,omitempty"`
}

// Parts kategoriya bo'yicha partlar
func (c *Catalog) Parts(cat Category) []Part {
	if c == nil {
		return nil
	}
	switch cat {
	case CategoryCPU:
		return c.CPU
	case CategoryCooler:
		return c.Cooler
	case CategoryMotherboard:
		return c.Motherboard
	case CategoryMemory:
		return c.Memory
	case CategoryStorage:
		return c.Storage
	case CategoryGPU:
		return c.GPU
	case CategoryPSU:
		return c.PSU
	case CategoryCase:
		return c.Case
	case CategoryOS:
		return c.OS
	}
	return nil
}

// SetParts kategoriya partlarini almashtirish (loaders only)
func (c *Catalog) SetParts(cat Category, parts []Part) {
	switch cat {
	case CategoryCPU:
		c.CPU = parts
	case CategoryCooler:
		c.Cooler = parts
	case CategoryMotherboard:
		c.Motherboard = parts
	case CategoryMemory:
		c.Memory = parts
	case CategoryStorage:
		c.Storage = parts
	case CategoryGPU:
		c.GPU = parts
	case CategoryPSU:
		c.PSU = parts
	case CategoryCase:
		c.Case = parts
	case CategoryOS:
		c.OS = parts
	}
}

// AddPart appends one part to its category.
func (c *Catalog) AddPart(cat Category, p Part) {
	c.SetParts(cat, append(c.Parts(cat), p))
}

// Size jami partlar soni
func (c *Catalog) Size() int {
	n := 0
	for _, cat := range AllCategories {
		n += len(c.Parts(cat))
	}
	return n
}

// Clone deep copy; repositories hand out clones so callers cannot mutate shared state.
func (c *Catalog) Clone() *Catalog {
	if c == nil {
		return nil
	}
	out := &Catalog{LastUpdated: c.LastUpdated}
	for _, cat := range AllCategories {
		src := c.Parts(cat)
		if src == nil {
			continue
		}
		dst := make([]Part, len(src))
		copy(dst, src)
		out.SetParts(cat, dst)
	}
	return out
}
