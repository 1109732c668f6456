package telegram

import (
	"strings"
	"testing"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

func TestParseBudget_Formats(t *testing.T) {
	cases := map[string]int{
		"150000":    150000,
		"150,000":   150000,
		"¥150000":   150000,
		"￥150,000":  150000,
		"150000円":   150000,
		"15万":       150000,
		"15.5万":     155000,
		"150k":      150000,
		"150K":      150000,
		"1_200_000": 1200000,
	}
	for in, want := range cases {
		got, err := parseBudget(in)
		if err != nil {
			t.Fatalf("parseBudget(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("parseBudget(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBudget_Rejects(t *testing.T) {
	for _, in := range []string{"", "abc", "¥", "0", "-5000", "万"} {
		if _, err := parseBudget(in); err == nil {
			t.Fatalf("parseBudget(%q) expected error", in)
		}
	}
}

func TestParseBuildCommand_KeyValue(t *testing.T) {
	req, err := ParseBuildCommand("budget=150000 ram=32gb storage=2tb cpu=AMD gpu=NVIDIA usage=Tarkov os=yes")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := entity.Requirements{
		Budget:    150000,
		RAM:       "32GB",
		Storage:   entity.StorageRequirement{Capacity: "2TB"},
		CPUBrand:  "amd",
		GPUBrand:  "nvidia",
		Usage:     "tarkov",
		IncludeOS: true,
	}
	if req != want {
		t.Fatalf("ParseBuildCommand() = %+v, want %+v", req, want)
	}
}

func TestParseBuildCommand_BareBudgetAndDefaults(t *testing.T) {
	req, err := ParseBuildCommand("15万 gpu:amd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Budget != 150000 || req.GPUBrand != "amd" {
		t.Fatalf("got %+v", req)
	}
	if req.RAM != "16GB" || req.Storage.Capacity != "1TB" || req.CPUBrand != entity.BrandAny || req.Usage != "gaming" || req.IncludeOS {
		t.Fatalf("defaults not applied: %+v", req)
	}
}

func TestParseBuildCommand_Errors(t *testing.T) {
	cases := map[string]string{
		"":                    "budget is required",
		"ram=32GB":            "budget is required",
		"150000 monitor=4k":   "unknown option",
		"150000 os=maybe":     "os must be yes or no",
		"150000 32GB":         "expected key=value",
		"budget=lots":         "not a number",
	}
	for in, wantErr := range cases {
		_, err := ParseBuildCommand(in)
		if err == nil || !strings.Contains(err.Error(), wantErr) {
			t.Fatalf("ParseBuildCommand(%q) error = %v, want %q", in, err, wantErr)
		}
	}
}
