package telegram

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

const buildUsage = "/build budget=150000 ram=16GB storage=1TB cpu=amd gpu=nvidia usage=gaming os=yes"

// ParseBuildCommand "/build" argumentlarini Requirements ga aylantirish.
// A bare first token is the budget ("/build 15万"). Omitted keys take defaults.
func ParseBuildCommand(args string) (entity.Requirements, error) {
	req := entity.Requirements{
		RAM:      "16GB",
		Storage:  entity.StorageRequirement{Capacity: "1TB"},
		CPUBrand: entity.BrandAny,
		GPUBrand: entity.BrandAny,
		Usage:    "gaming",
	}

	hasBudget := false
	for i, token := range strings.Fields(args) {
		key, value, ok := splitKeyValue(token)
		if !ok {
			if i == 0 {
				key, value = "budget", token
			} else {
				return req, fmt.Errorf("expected key=value, got %q", token)
			}
		}

		switch key {
		case "budget", "b", "yosan":
			budget, err := parseBudget(value)
			if err != nil {
				return req, err
			}
			req.Budget = budget
			hasBudget = true
		case "ram", "memory":
			req.RAM = strings.ToUpper(value)
		case "storage", "ssd":
			req.Storage.Capacity = strings.ToUpper(value)
		case "cpu":
			req.CPUBrand = strings.ToLower(value)
		case "gpu":
			req.GPUBrand = strings.ToLower(value)
		case "usage", "use":
			req.Usage = strings.ToLower(value)
		case "os":
			include, err := parseYesNo(value)
			if err != nil {
				return req, err
			}
			req.IncludeOS = include
		default:
			return req, fmt.Errorf("unknown option %q", key)
		}
	}
	if !hasBudget {
		return req, fmt.Errorf("budget is required, e.g. %s", buildUsage)
	}
	return req, nil
}

func splitKeyValue(token string) (string, string, bool) {
	idx := strings.IndexAny(token, "=:")
	if idx <= 0 || idx == len(token)-1 {
		return "", "", false
	}
	return strings.ToLower(token[:idx]), strings.TrimSpace(token[idx+1:]), true
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "true", "yes", "y", "on", "ha":
		return true, nil
	case "0", "false", "no", "n", "off", "yoq", "yo'q":
		return false, nil
	}
	return false, fmt.Errorf("os must be yes or no, got %q", raw)
}

// parseBudget 150000, 150,000, ¥150000, 15万, 15.5万, 150k
func parseBudget(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.NewReplacer("¥", "", "￥", "", "円", "", "yen", "", ",", "", "_", "", " ", "").Replace(s)

	multiplier := 1.0
	switch {
	case strings.HasSuffix(s, "万"):
		multiplier = 10000
		s = strings.TrimSuffix(s, "万")
	case strings.HasSuffix(s, "k"):
		multiplier = 1000
		s = strings.TrimSuffix(s, "k")
	}
	if s == "" {
		return 0, fmt.Errorf("budget %q is not a number", raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("budget %q is not a number", raw)
	}
	budget := int(math.Round(v * multiplier))
	if budget <= 0 {
		return 0, fmt.Errorf("budget must be positive, got %q", raw)
	}
	return budget, nil
}
