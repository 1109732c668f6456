package entity

// Configuration tanlangan partlar, one per category. Nil means not selected.
type Configuration struct {
	CPU         *Part `json:"cpu,omitempty"`
	Motherboard *Part `json:"motherboard,omitempty"`
	Memory      *Part `json:"memory,omitempty"`
	Storage     *Part `json:"storage,omitempty"`
	GPU         *Part `json:"gpu,omitempty"`
	PSU         *Part `json:"psu,omitempty"`
	Cooler      *Part `json:"cooler,omitempty"`
	Case        *Part `json:"case,omitempty"`
	OS          *Part `json:"os,omitempty"`
}

// Get kategoriya bo'yicha tanlangan part
func (c *Configuration) Get(cat Category) *Part {
	switch cat {
	case CategoryCPU:
		return c.CPU
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
	case CategoryCooler:
		return c.Cooler
	case CategoryCase:
		return c.Case
	case CategoryOS:
		return c.OS
	}
	return nil
}

// Set kategoriya uchun partni o'rnatish
func (c *Configuration) Set(cat Category, p *Part) {
	switch cat {
	case CategoryCPU:
		c.CPU = p
	case CategoryMotherboard:
		c.Motherboard = p
	case CategoryMemory:
		c.Memory = p
	case CategoryStorage:
		c.Storage = p
	case CategoryGPU:
		c.GPU = p
	case CategoryPSU:
		c.PSU = p
	case CategoryCooler:
		c.Cooler = p
	case CategoryCase:
		c.Case = p
	case CategoryOS:
		c.OS = p
	}
}

// TotalPrice sum of the required parts, OS excluded
func (c *Configuration) TotalPrice() int {
	total := 0
	for _, cat := range RequiredCategories {
		total += PriceOf(c.Get(cat))
	}
	return total
}

// IsComplete barcha majburiy komponentlar tanlanganmi?
func (c *Configuration) IsComplete() bool {
	return len(c.Missing()) == 0
}

// Missing required categories that hold no part
func (c *Configuration) Missing() []Category {
	var missing []Category
	for _, cat := range RequiredCategories {
		if c.Get(cat) == nil {
			missing = append(missing, cat)
		}
	}
	return missing
}

// ComponentList "cpu: name" lines in category order
func (c *Configuration) ComponentList() []string {
	components := []string{}
	for _, cat := range AllCategories {
		if p := c.Get(cat); p != nil {
			components = append(components, string(cat)+": "+p.Name)
		}
	}
	return components
}

// Clone shallow copy of the slot pointers; parts themselves are shared read-only.
func (c *Configuration) Clone() *Configuration {
	cp := *c
	return &cp
}
