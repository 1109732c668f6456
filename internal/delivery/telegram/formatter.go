package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/usecase"
)

var categoryLabels = map[entity.Category]string{
	entity.CategoryCPU:         "CPU",
	entity.CategoryMotherboard: "Motherboard",
	entity.CategoryMemory:      "Memory",
	entity.CategoryStorage:     "Storage",
	entity.CategoryGPU:         "GPU",
	entity.CategoryPSU:         "PSU",
	entity.CategoryCooler:      "Cooler",
	entity.CategoryCase:        "Case",
	entity.CategoryOS:          "OS",
}

// formatYen 150000 -> ¥150,000
func formatYen(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "¥" + b.String()
}

// FormatResult natijani chat uchun matnga aylantirish. analysis may be nil.
func FormatResult(res *entity.Result, analysis *usecase.BuildAnalysis) string {
	if res == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "🖥 PC build (%s)\n\n", res.Usage)
	for _, cat := range entity.AllCategories {
		if p := res.Recommendations.Get(cat); p != nil {
			fmt.Fprintf(&b, "%s: %s - %s\n", categoryLabels[cat], p.Name, formatYen(p.Price))
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %s\n", formatYen(res.GrandTotal))
	fmt.Fprintf(&b, "Budget: %s\n", formatYen(res.Budget))
	if res.BudgetStatus == entity.OverBudget {
		fmt.Fprintf(&b, "⚠️ Over budget by %s\n", formatYen(res.Overage))
	} else {
		fmt.Fprintf(&b, "Remaining: %s\n", formatYen(res.RemainingBudget))
	}

	if analysis != nil {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Power: %dW needed, PSU %dW (%+.1f%%)\n", analysis.RequiredWattage, analysis.PSUWattage, analysis.PSUHeadroomPercent)
		fmt.Fprintf(&b, "Tier: CPU %s, GPU %s, bottleneck %s\n", analysis.CPUTier, analysis.GPUTier, analysis.Bottleneck)
		fmt.Fprintf(&b, "Score: %.1f/10 (%s)\n", analysis.OverallScore, analysis.OverallLabel)
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\nNotes:\n")
		for _, w := range res.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatProfiles /profiles javobi
func FormatProfiles(names []string) string {
	if len(names) == 0 {
		return "No usage profiles."
	}
	var b strings.Builder
	b.WriteString("Usage profiles:\n")
	for _, n := range names {
		fmt.Fprintf(&b, "- %s\n", n)
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatParts /parts javobi, at most limit lines
func formatParts(title string, parts []entity.Part, limit int) string {
	if len(parts) == 0 {
		return "Nothing found."
	}
	var b strings.Builder
	b.WriteString(title + "\n")
	for i, p := range parts {
		if i == limit {
			fmt.Fprintf(&b, "... and %d more", len(parts)-limit)
			break
		}
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, p.Name, formatYen(p.Price))
	}
	return strings.TrimRight(b.String(), "\n")
}

const helpText = `PC configurator bot

/build budget=150000 ram=16GB storage=1TB cpu=amd gpu=nvidia usage=gaming os=yes
  budget accepts 150000, 150,000, ¥150000, 15万 or 150k
  cpu: intel, amd, any; gpu: nvidia, amd, any
/parts <category or name> - browse the catalog
/profiles - usage profiles
/help - this message`
