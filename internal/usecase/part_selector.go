package usecase

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

var (
	memoryKitRe  = regexp.MustCompile(`(?i)(\d+)\s*GB\s*[×x*]\s*(\d+)`)
	memorySizeRe = regexp.MustCompile(`(?i)(\d+)\s*GB`)
	capacityRe   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(TB|GB)`)
	digitsRe     = regexp.MustCompile(`\d+`)
)

var ssdKeywords = []string{"nvme", "m.2", "ssd"}

// PartSelector narx/byudjet asosida part tanlash
type PartSelector struct {
	brands  *BrandDetector
	checker *CompatibilityChecker
	log     zerolog.Logger

	mu            sync.Mutex
	capacityCache map[string]int
}

// NewPartSelector nil detector/checker get fresh defaults
func NewPartSelector(brands *BrandDetector, checker *CompatibilityChecker, log zerolog.Logger) *PartSelector {
	if brands == nil {
		brands = NewBrandDetector()
	}
	if checker == nil {
		checker = NewCompatibilityChecker(0, 0, log)
	}
	return &PartSelector{
		brands:        brands,
		checker:       checker,
		log:           log,
		capacityCache: make(map[string]int),
	}
}

// SelectBestPart highest price within budget, else the cheapest part. Nil only for an empty list.
func (s *PartSelector) SelectBestPart(parts []entity.Part, budget int) *entity.Part {
	if best := bestAffordable(parts, budget); best != nil {
		return best
	}
	return cheapestPart(parts)
}

// SelectBestGPU SelectBestPart with an AMD tie-break at the top price when brand is "any"
func (s *PartSelector) SelectBestGPU(gpus []entity.Part, budget int, brand string) *entity.Part {
	best := bestAffordable(gpus, budget)
	if best == nil {
		return cheapestPart(gpus)
	}
	if brand != "" && brand != entity.BrandAny {
		return best
	}
	for i := range gpus {
		if gpus[i].Price == best.Price && s.brands.GetBrand(gpus[i].Name, GPUBrandKeywords) == entity.BrandAMD {
			return &gpus[i]
		}
	}
	return best
}

// SelectCheapestPart min narx; first one wins on ties
func (s *PartSelector) SelectCheapestPart(parts []entity.Part) *entity.Part {
	return cheapestPart(parts)
}

// ParseMemoryCapacity "16GB×2" -> 32, "16GB" -> 16, "32" -> 32, unparseable -> 0
func (s *PartSelector) ParseMemoryCapacity(capacity string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.capacityCache[capacity]; ok {
		return v
	}
	v := parseMemoryCapacity(capacity)
	s.capacityCache[capacity] = v
	return v
}

func parseMemoryCapacity(capacity string) int {
	if m := memoryKitRe.FindStringSubmatch(capacity); m != nil {
		size, _ := strconv.Atoi(m[1])
		count, _ := strconv.Atoi(m[2])
		return size * count
	}
	if m := memorySizeRe.FindStringSubmatch(capacity); m != nil {
		size, _ := strconv.Atoi(m[1])
		return size
	}
	digits := strings.Join(digitsRe.FindAllString(capacity, -1), "")
	if digits == "" {
		return 0
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return v
}

// SelectMemory CPU socketiga mos xotira tanlash
func (s *PartSelector) SelectMemory(memories []entity.Part, targetCapacity string, budget int, cpuSocket string) *entity.Part {
	if len(memories) == 0 {
		return nil
	}
	memType := s.checker.CompatibleMemoryType(cpuSocket)

	var compatible []*entity.Part
	for i := range memories {
		if strings.Contains(strings.ToUpper(memories[i].Type), memType) {
			compatible = append(compatible, &memories[i])
		}
	}
	if len(compatible) == 0 {
		s.log.Warn().Str("memory_type", memType).Str("socket", cpuSocket).Msg("no memory of the required type, falling back to cheapest module")
		return cheapestPart(memories)
	}

	target := s.ParseMemoryCapacity(targetCapacity)

	var enough []*entity.Part
	for _, m := range compatible {
		if m.Price <= budget && s.ParseMemoryCapacity(m.Capacity) >= target {
			enough = append(enough, m)
		}
	}
	if len(enough) > 0 {
		sort.SliceStable(enough, func(i, j int) bool {
			di := s.ParseMemoryCapacity(enough[i].Capacity) - target
			dj := s.ParseMemoryCapacity(enough[j].Capacity) - target
			if di != dj {
				return di < dj
			}
			return enough[i].Price > enough[j].Price
		})
		return enough[0]
	}

	var smaller *entity.Part
	smallerCap := -1
	for _, m := range compatible {
		if m.Price > budget {
			continue
		}
		c := s.ParseMemoryCapacity(m.Capacity)
		if c > target {
			continue
		}
		if c > smallerCap || (c == smallerCap && m.Price > smaller.Price) {
			smaller, smallerCap = m, c
		}
	}
	if smaller != nil {
		return smaller
	}
	return cheapestPtr(compatible)
}

// SelectStorage SSD with enough capacity preferred, then any drive with enough capacity
func (s *PartSelector) SelectStorage(storages []entity.Part, req entity.Requirements, budget int) *entity.Part {
	if len(storages) == 0 {
		return nil
	}
	var affordable []*entity.Part
	for i := range storages {
		if storages[i].Price <= budget {
			affordable = append(affordable, &storages[i])
		}
	}
	if len(affordable) == 0 {
		return cheapestPart(storages)
	}

	target := ParseCapacityToGB(req.Storage.Capacity)
	var ssd, sized []*entity.Part
	for _, st := range affordable {
		if ParseCapacityToGB(st.Capacity) < target {
			continue
		}
		sized = append(sized, st)
		if isSSDLike(st) {
			ssd = append(ssd, st)
		}
	}
	if len(ssd) > 0 {
		return priciestPtr(ssd)
	}
	if len(sized) > 0 {
		return priciestPtr(sized)
	}
	return priciestPtr(affordable)
}

func isSSDLike(p *entity.Part) bool {
	text := strings.ToLower(p.Interface + " " + p.FormFactor + " " + p.Type)
	return containsAny(text, ssdKeywords...)
}

// SelectPSU best watts per yen among PSUs within budget and wattage;
// then the cheapest meeting the wattage, then the cheapest overall
func (s *PartSelector) SelectPSU(psus []entity.Part, minWattage, budget int) *entity.Part {
	if len(psus) == 0 {
		return nil
	}
	var best *entity.Part
	bestRatio := -1.0
	var cheapestEnough *entity.Part
	for i := range psus {
		p := &psus[i]
		w := ParseWattage(p.Wattage)
		if w < minWattage {
			continue
		}
		if cheapestEnough == nil || p.Price < cheapestEnough.Price {
			cheapestEnough = p
		}
		if p.Price > budget {
			continue
		}
		ratio := math.Inf(1)
		if p.Price > 0 {
			ratio = float64(w) / float64(p.Price)
		}
		if ratio > bestRatio {
			best, bestRatio = p, ratio
		}
	}
	if best != nil {
		return best
	}
	if cheapestEnough != nil {
		return cheapestEnough
	}
	return cheapestPart(psus)
}

// ClearCache sig'im keshini tozalash
func (s *PartSelector) ClearCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.capacityCache = make(map[string]int)
}

// CacheSize sig'im keshidagi yozuvlar soni
func (s *PartSelector) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.capacityCache)
}

// ParseCapacityToGB "1TB" -> 1000, "500GB" -> 500, "1.5TB" -> 1500
func ParseCapacityToGB(capacity string) float64 {
	m := capacityRe.FindStringSubmatch(capacity)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	if strings.EqualFold(m[2], "TB") {
		v *= 1000
	}
	return v
}

// ParseWattage first number of "850W", 0 if none
func ParseWattage(wattage string) int {
	m := digitsRe.FindString(wattage)
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

func bestAffordable(parts []entity.Part, budget int) *entity.Part {
	var best *entity.Part
	for i := range parts {
		if parts[i].Price > budget {
			continue
		}
		if best == nil || parts[i].Price > best.Price {
			best = &parts[i]
		}
	}
	return best
}

func cheapestPart(parts []entity.Part) *entity.Part {
	var cheapest *entity.Part
	for i := range parts {
		if cheapest == nil || parts[i].Price < cheapest.Price {
			cheapest = &parts[i]
		}
	}
	return cheapest
}

func cheapestPtr(parts []*entity.Part) *entity.Part {
	var cheapest *entity.Part
	for _, p := range parts {
		if cheapest == nil || p.Price < cheapest.Price {
			cheapest = p
		}
	}
	return cheapest
}

func priciestPtr(parts []*entity.Part) *entity.Part {
	var best *entity.Part
	for _, p := range parts {
		if best == nil || p.Price > best.Price {
			best = p
		}
	}
	return best
}

// filterParts copy of the parts matching keep, catalog order preserved
func filterParts(parts []entity.Part, keep func(p *entity.Part) bool) []entity.Part {
	var out []entity.Part
	for i := range parts {
		if keep(&parts[i]) {
			out = append(out, parts[i])
		}
	}
	return out
}
