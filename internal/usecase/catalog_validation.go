package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

// CatalogIssue bitta part muammosi
type CatalogIssue struct {
	Category entity.Category `json:"category"`
	Index    int             `json:"index"`
	Name     string          `json:"name"`
	Problem  string          `json:"problem"`
}

func (i CatalogIssue) String() string {
	return fmt.Sprintf("%s[%d] %s: %s", i.Category, i.Index, i.Name, i.Problem)
}

// CatalogReport katalog tekshiruvi natijasi
type CatalogReport struct {
	EmptyCategories []entity.Category `json:"emptyCategories,omitempty"`
	Issues          []CatalogIssue    `json:"issues,omitempty"`
	PartCount       int               `json:"partCount"`
}

// OK no empty required category
func (r *CatalogReport) OK() bool {
	return len(r.EmptyCategories) == 0
}

// Err PARTS_NOT_FOUND for the first empty category, nil otherwise
func (r *CatalogReport) Err() error {
	if r.OK() {
		return nil
	}
	return newError(KindPartsNotFound, r.EmptyCategories[0], "no parts in category")
}

// ValidateCatalog reports empty required categories and parts missing name, price
// or the attribute their category relies on. The catalog is not modified.
func ValidateCatalog(catalog *entity.Catalog) *CatalogReport {
	report := &CatalogReport{}
	if catalog == nil {
		report.EmptyCategories = append(report.EmptyCategories, entity.RequiredCategories...)
		return report
	}

	for _, cat := range entity.AllCategories {
		parts := catalog.Parts(cat)
		report.PartCount += len(parts)
		if len(parts) == 0 {
			if cat != entity.CategoryOS {
				report.EmptyCategories = append(report.EmptyCategories, cat)
			}
			continue
		}
		for i := range parts {
			for _, problem := range partProblems(cat, &parts[i]) {
				report.Issues = append(report.Issues, CatalogIssue{
					Category: cat,
					Index:    i,
					Name:     parts[i].Name,
					Problem:  problem,
				})
			}
		}
	}
	return report
}

func partProblems(cat entity.Category, p *entity.Part) []string {
	var problems []string
	if strings.TrimSpace(p.Name) == "" {
		problems = append(problems, "name is missing")
	}
	if p.Price <= 0 {
		problems = append(problems, "price is missing or not positive")
	}

	switch cat {
	case entity.CategoryCPU, entity.CategoryMotherboard:
		if strings.TrimSpace(p.Socket) == "" {
			problems = append(problems, "socket is missing")
		}
	case entity.CategoryMemory:
		if strings.TrimSpace(p.Type) == "" {
			problems = append(problems, "type is missing")
		}
		if strings.TrimSpace(p.Capacity) == "" {
			problems = append(problems, "capacity is missing")
		}
	case entity.CategoryStorage:
		if ParseCapacityToGB(p.Capacity) == 0 {
			problems = append(problems, "capacity is missing or unparseable")
		}
	case entity.CategoryPSU:
		if ParseWattage(p.Wattage) == 0 {
			problems = append(problems, "wattage is missing or unparseable")
		}
	}
	return problems
}
