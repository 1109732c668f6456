package gemini

import (
	"fmt"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// CommentaryInstruction tayyor konfiguratsiya izohi uchun system instruction
const CommentaryInstruction = `You are a PC building advisor at a Japanese parts shop.
You receive a finished parts list chosen by the configurator. Do not replace parts and do not invent prices.

Write 2 to 4 short sentences:
1. What the build is good at for the stated usage.
2. The one weakest point, if any.
3. One concrete upgrade to consider when the customer has more budget.

Plain text only. No lists, no emoji, no markdown.
Answer in the language of the usage line (Japanese when unsure).`

// buildCommentPrompt konfiguratsiyani AI uchun matnga aylantirish
func buildCommentPrompt(req entity.Requirements, result *entity.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Usage: %s\n", result.Usage)
	fmt.Fprintf(&b, "Budget: ¥%d (RAM %s, storage %s, cpu %s, gpu %s)\n",
		req.Budget, req.RAM, req.Storage.Capacity, req.CPUBrand, req.GPUBrand)
	b.WriteString("Parts:\n")
	for _, cat := range entity.AllCategories {
		if p := result.Recommendations.Get(cat); p != nil {
			fmt.Fprintf(&b, "- %s: %s (¥%d)\n", cat, p.Name, p.Price)
		}
	}
	fmt.Fprintf(&b, "Total: ¥%d, status: %s\n", result.GrandTotal, result.BudgetStatus)
	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "Configurator warnings: %s\n", strings.Join(result.Warnings, "; "))
	}
	return b.String()
}
