package storage

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
	"github.com/yourusername/pc-configurator/internal/usecase"
)

var errCatalogNotLoaded = errors.New("catalog not loaded")

// MemoryCatalogRepository in-memory katalog. Load and the getters hand out copies.
type MemoryCatalogRepository struct {
	mu      sync.RWMutex
	catalog *entity.Catalog
}

// NewMemoryCatalogRepository bo'sh in-memory repository yaratish
func NewMemoryCatalogRepository() *MemoryCatalogRepository {
	return &MemoryCatalogRepository{}
}

// Replace butun katalogni almashtirish
func (m *MemoryCatalogRepository) Replace(catalog *entity.Catalog) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = catalog.Clone()
}

// SaveCatalog Replace for the CatalogWriter contract
func (m *MemoryCatalogRepository) SaveCatalog(ctx context.Context, catalog *entity.Catalog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.Replace(catalog)
	return nil
}

// Load katalog nusxasi
func (m *MemoryCatalogRepository) Load(ctx context.Context) (*entity.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.catalog == nil {
		return nil, usecase.WrapDataLoading(errCatalogNotLoaded, "memory")
	}
	return m.catalog.Clone(), nil
}

// Close no-op
func (m *MemoryCatalogRepository) Close() error { return nil }

// Clear katalogni o'chirish
func (m *MemoryCatalogRepository) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.catalog = nil
}

// GetByCategory kategoriya bo'yicha partlar, cheapest first. The label is matched loosely ("CPU", "cases").
func (m *MemoryCatalogRepository) GetByCategory(ctx context.Context, category string) ([]entity.Part, error) {
	cat, ok := entity.ParseCategory(category)
	if !ok {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	catalog, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}

	parts := catalog.Parts(cat)
	sort.SliceStable(parts, func(i, j int) bool { return parts[i].Price < parts[j].Price })
	return parts, nil
}

var searchNormalizeRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

func normalizeSearchText(input string) string {
	input = strings.ToLower(input)
	input = searchNormalizeRe.ReplaceAllString(input, " ")
	return strings.TrimSpace(input)
}

func compactSearchText(input string) string {
	return searchNormalizeRe.ReplaceAllString(strings.ToLower(input), "")
}

func buildPartSearchText(cat entity.Category, p entity.Part) string {
	var b strings.Builder
	b.WriteString(p.Name)
	b.WriteString(" ")
	b.WriteString(string(cat))
	for _, f := range partFields {
		if v := *f.ref(&p); v != "" {
			b.WriteString(" ")
			b.WriteString(v)
		}
	}
	return b.String()
}

func ngramSet(input string, n int) map[string]struct{} {
	runes := []rune(input)
	if n <= 0 || len(runes) == 0 {
		return nil
	}
	if len(runes) < n {
		return map[string]struct{}{string(runes): {}}
	}
	set := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i <= len(runes)-n; i++ {
		set[string(runes[i:i+n])] = struct{}{}
	}
	return set
}

func ngramSimilarity(a, b string, n int) float64 {
	setA := ngramSet(a, n)
	setB := ngramSet(b, n)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	inter := 0
	for gram := range setA {
		if _, ok := setB[gram]; ok {
			inter++
		}
	}
	union := len(setA) + len(setB) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func hasLetter(token string) bool {
	for _, r := range token {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func maxEditDistance(token string) int {
	l := len([]rune(token))
	switch {
	case l <= 3:
		return 0
	case l <= 5:
		return 1
	case l <= 8:
		return 2
	default:
		return 3
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// editDistanceWithin Levenshtein masofasi, max dan oshsa ok=false
func editDistanceWithin(a, b string, max int) (int, bool) {
	if a == b {
		return 0, true
	}
	ra := []rune(a)
	rb := []rune(b)
	if absInt(len(ra)-len(rb)) > max {
		return 0, false
	}
	if len(rb) > len(ra) {
		ra, rb = rb, ra
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i, ca := range ra {
		curr[0] = i + 1
		minRow := curr[0]
		for j, cb := range rb {
			cost := 1
			if ca == cb {
				cost = 0
			}
			v := min(prev[j+1]+1, curr[j]+1, prev[j]+cost)
			curr[j+1] = v
			if v < minRow {
				minRow = v
			}
		}
		if minRow > max {
			return 0, false
		}
		prev, curr = curr, prev
	}

	if dist := prev[len(rb)]; dist <= max {
		return dist, true
	}
	return 0, false
}

// scoreTokens per query token: exact 12, prefix 8, substring 4, typo 6+
func scoreTokens(queryTokens, textTokens []string) int {
	score := 0
	for _, qt := range queryTokens {
		if len(qt) < 2 {
			continue
		}
		best := 0
		for _, tt := range textTokens {
			switch {
			case tt == qt:
				best = max(best, 12)
			case strings.HasPrefix(tt, qt):
				best = max(best, 8)
			case len(qt) >= 3 && strings.Contains(tt, qt):
				best = max(best, 4)
			}
		}
		if best == 0 && hasLetter(qt) {
			if maxEdits := maxEditDistance(qt); maxEdits > 0 {
				for _, tt := range textTokens {
					if dist, ok := editDistanceWithin(qt, tt, maxEdits); ok {
						best = max(best, 6+maxEdits-dist)
					}
				}
			}
		}
		score += best
	}
	return score
}

// Search part qidirish. Hits are ordered by score, then price, then name.
func (m *MemoryCatalogRepository) Search(ctx context.Context, query string) ([]entity.PartMatch, error) {
	catalog, err := m.Load(ctx)
	if err != nil {
		return nil, err
	}

	normalizedQuery := normalizeSearchText(query)
	compactQuery := compactSearchText(query)
	if normalizedQuery == "" {
		return nil, nil
	}
	queryTokens := strings.Fields(normalizedQuery)

	var matches []entity.PartMatch
	for _, cat := range entity.AllCategories {
		for _, part := range catalog.Parts(cat) {
			text := buildPartSearchText(cat, part)
			textNorm := normalizeSearchText(text)
			nameNorm := normalizeSearchText(part.Name)
			nameCompact := compactSearchText(part.Name)

			score := 0
			switch {
			case strings.Contains(nameNorm, normalizedQuery):
				score += 120
			case strings.Contains(textNorm, normalizedQuery):
				score += 100
			case strings.Contains(nameCompact, compactQuery):
				score += 110
			case strings.Contains(compactSearchText(text), compactQuery):
				score += 90
			}
			if len([]rune(compactQuery)) >= 4 {
				if sim := ngramSimilarity(compactQuery, nameCompact, 2); sim >= 0.35 {
					score += int(sim * 80)
				}
			}
			score += scoreTokens(queryTokens, strings.Fields(textNorm))

			if score > 0 {
				matches = append(matches, entity.PartMatch{Category: cat, Part: part, Score: score})
			}
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		if matches[i].Part.Price != matches[j].Part.Price {
			return matches[i].Part.Price < matches[j].Part.Price
		}
		return matches[i].Part.Name < matches[j].Part.Name
	})
	return matches, nil
}
