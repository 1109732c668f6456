package entity

import "fmt"

// SpecialLogic selection strategy tag of a usage profile
type SpecialLogic int

const (
	LogicGeneral SpecialLogic = iota
	LogicX3DCPU
	LogicHighVRAMGPU
)

var specialLogicNames = map[SpecialLogic]string{
	LogicGeneral:     "general",
	LogicX3DCPU:      "x3d_cpu",
	LogicHighVRAMGPU: "high_vram_gpu",
}

func (l SpecialLogic) String() string {
	if name, ok := specialLogicNames[l]; ok {
		return name
	}
	return fmt.Sprintf("SpecialLogic(%d)", int(l))
}

// ParseSpecialLogic "x3d_cpu" -> LogicX3DCPU
func ParseSpecialLogic(raw string) (SpecialLogic, error) {
	for logic, name := range specialLogicNames {
		if name == raw {
			return logic, nil
		}
	}
	return LogicGeneral, fmt.Errorf("unknown special logic %q", raw)
}

// MarshalText encodes the tag name.
func (l SpecialLogic) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the tag name.
func (l *SpecialLogic) UnmarshalText(b []byte) error {
	parsed, err := ParseSpecialLogic(string(b))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// UsageProfile foydalanish profili: budget weights + selection strategy
type UsageProfile struct {
	Name              string       `json:"name" yaml:"name"`
	CPUWeight         float64      `json:"cpuWeight" yaml:"cpu_weight"`
	GPUWeight         float64      `json:"gpuWeight" yaml:"gpu_weight"`
	RAMMin            int          `json:"ramMin" yaml:"ram_min"`
	StorageType       string       `json:"storageType" yaml:"storage_type"`
	PSUMin            int          `json:"psuMin" yaml:"psu_min"`
	SpecialLogic      SpecialLogic `json:"specialLogic" yaml:"special_logic"`
	UpgradePriorities []Category   `json:"upgradePriorities" yaml:"upgrade_priorities"`
}
