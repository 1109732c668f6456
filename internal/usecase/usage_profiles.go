package usecase

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// ProfileRegistry usage -> profile; unknown usage resolves to gaming
type ProfileRegistry struct {
	mu       sync.RWMutex
	profiles map[string]entity.UsageProfile
}

// NewProfileRegistry built-in profiles bilan
func NewProfileRegistry() *ProfileRegistry {
	return &ProfileRegistry{profiles: constants.DefaultUsageProfiles()}
}

// Lookup the profile for usage; ok is false when the gaming fallback was used
func (r *ProfileRegistry) Lookup(usage string) (entity.UsageProfile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.profiles[strings.ToLower(strings.TrimSpace(usage))]; ok {
		return p, true
	}
	if p, ok := r.profiles[constants.DefaultUsage]; ok {
		return p, false
	}
	return constants.DefaultUsageProfiles()[constants.DefaultUsage], false
}

// Names sorted profile names
func (r *ProfileRegistry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Register adds or replaces a profile
func (r *ProfileRegistry) Register(p entity.UsageProfile) error {
	if err := validateProfile(p); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[strings.ToLower(p.Name)] = p
	return nil
}

// LoadFile merges profiles from a YAML file into the registry
func (r *ProfileRegistry) LoadFile(path string) error {
	profiles, err := LoadUsageProfiles(path)
	if err != nil {
		return err
	}
	for _, p := range profiles {
		if err := r.Register(p); err != nil {
			return err
		}
	}
	return nil
}

type usageProfilesFile struct {
	Profiles map[string]entity.UsageProfile `yaml:"profiles"`
}

// LoadUsageProfiles reads
//
//	profiles:
//	  streaming:
//	    cpu_weight: 0.35
//	    gpu_weight: 0.45
//	    special_logic: general
//	    upgrade_priorities: [cpu, gpu, memory]
func LoadUsageProfiles(path string) ([]entity.UsageProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read usage profiles: %w", err)
	}
	var file usageProfilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse usage profiles %s: %w", path, err)
	}

	names := make([]string, 0, len(file.Profiles))
	for name := range file.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]entity.UsageProfile, 0, len(names))
	for _, name := range names {
		p := file.Profiles[name]
		if p.Name == "" {
			p.Name = name
		}
		if err := validateProfile(p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func validateProfile(p entity.UsageProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("usage profile: empty name")
	}
	if p.CPUWeight <= 0 || p.GPUWeight <= 0 || p.CPUWeight+p.GPUWeight >= 1 {
		return fmt.Errorf("usage profile %s: cpu/gpu weights must be positive and sum below 1", p.Name)
	}
	if _, ok := strategies[p.SpecialLogic]; !ok {
		return fmt.Errorf("usage profile %s: unsupported special logic %s", p.Name, p.SpecialLogic)
	}
	for _, cat := range p.UpgradePriorities {
		if cat == entity.CategoryOS || !isRequiredCategory(cat) {
			return fmt.Errorf("usage profile %s: unknown upgrade category %q", p.Name, cat)
		}
	}
	return nil
}

func isRequiredCategory(cat entity.Category) bool {
	for _, c := range entity.RequiredCategories {
		if c == cat {
			return true
		}
	}
	return false
}
