package storage

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// partField entity.Part string atributi: SQL ustuni, xlsx sarlavhasi va muqobil nomlari
type partField struct {
	column  string
	label   string
	aliases []string
	ref     func(p *entity.Part) *string
}

var partFields = []partField{
	{column: "socket", label: "socket", ref: func(p *entity.Part) *string { return &p.Socket }},
	{column: "cores", label: "cores", ref: func(p *entity.Part) *string { return &p.Cores }},
	{column: "frequency", label: "frequency", aliases: []string{"clock"}, ref: func(p *entity.Part) *string { return &p.Frequency }},
	{column: "chipset", label: "chipset", ref: func(p *entity.Part) *string { return &p.Chipset }},
	{column: "form_factor", label: "formFactor", ref: func(p *entity.Part) *string { return &p.FormFactor }},
	{column: "capacity", label: "capacity", ref: func(p *entity.Part) *string { return &p.Capacity }},
	{column: "part_type", label: "type", ref: func(p *entity.Part) *string { return &p.Type }},
	{column: "speed", label: "speed", ref: func(p *entity.Part) *string { return &p.Speed }},
	{column: "bus_interface", label: "interface", ref: func(p *entity.Part) *string { return &p.Interface }},
	{column: "chip", label: "gpu", aliases: []string{"chip"}, ref: func(p *entity.Part) *string { return &p.Chip }},
	{column: "memory", label: "memory", aliases: []string{"vram"}, ref: func(p *entity.Part) *string { return &p.Memory }},
	{column: "wattage", label: "wattage", aliases: []string{"watts"}, ref: func(p *entity.Part) *string { return &p.Wattage }},
	{column: "efficiency", label: "efficiency", ref: func(p *entity.Part) *string { return &p.Efficiency }},
	{column: "modular", label: "modular", ref: func(p *entity.Part) *string { return &p.Modular }},
	{column: "size", label: "size", ref: func(p *entity.Part) *string { return &p.Size }},
}

const (
	headerName  = "name"
	headerPrice = "price"
)

// headerKey "Form Factor", "form_factor", "FORMFACTOR" -> "formfactor"
func headerKey(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		if r == ' ' || r == '_' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

var fieldByHeader = func() map[string]int {
	m := make(map[string]int, len(partFields)*2)
	for i, f := range partFields {
		m[headerKey(f.column)] = i
		m[headerKey(f.label)] = i
		for _, a := range f.aliases {
			m[headerKey(a)] = i
		}
	}
	return m
}()

// usedFields fields at least one part fills, in partFields order
func usedFields(parts []entity.Part) []partField {
	var out []partField
	for _, f := range partFields {
		for i := range parts {
			if *f.ref(&parts[i]) != "" {
				out = append(out, f)
				break
			}
		}
	}
	return out
}

// parsePrice "29800", "29,800", "¥29,800", "29800円", "29800.0"
func parsePrice(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	s = strings.NewReplacer(",", "", "¥", "", "￥", "", "円", "", " ", "").Replace(s)
	if s == "" {
		return 0, fmt.Errorf("empty price")
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid price %q", raw)
	}
	return int(math.Round(f)), nil
}
