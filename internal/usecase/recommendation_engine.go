package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yourusername/pc-configurator/internal/domain/constants"
	"github.com/yourusername/pc-configurator/internal/domain/entity"
)

var nopLogger = zerolog.Nop()

// RecommendationEngine byudjet va talablar asosida PC konfiguratsiyasini tuzadi.
// Safe for concurrent use: per-run state lives in runState, caches are mutex guarded.
type RecommendationEngine struct {
	brands   *BrandDetector
	checker  *CompatibilityChecker
	selector *PartSelector
	profiles *ProfileRegistry
	log      zerolog.Logger

	maxDowngradeIterations int
}

type engineOptions struct {
	log                    zerolog.Logger
	safetyMargin           float64
	baseSystemPower        int
	maxDowngradeIterations int
	profiles               *ProfileRegistry
}

// Option engine sozlamasi
type Option func(*engineOptions)

// WithLogger engine va uning yordamchilari uchun logger
func WithLogger(l zerolog.Logger) Option {
	return func(o *engineOptions) { o.log = l }
}

// WithSafetyMargin PSU wattage multiplier (default 1.3)
func WithSafetyMargin(m float64) Option {
	return func(o *engineOptions) { o.safetyMargin = m }
}

// WithBaseSystemPower watts for everything but CPU and GPU (default 100)
func WithBaseSystemPower(w int) Option {
	return func(o *engineOptions) { o.baseSystemPower = w }
}

// WithMaxDowngradeIterations downgrade loop bound (default 20)
func WithMaxDowngradeIterations(n int) Option {
	return func(o *engineOptions) { o.maxDowngradeIterations = n }
}

// WithProfiles custom usage profile registry
func WithProfiles(r *ProfileRegistry) Option {
	return func(o *engineOptions) { o.profiles = r }
}

// NewRecommendationEngine yangi engine
func NewRecommendationEngine(opts ...Option) *RecommendationEngine {
	o := engineOptions{
		log:                    nopLogger,
		safetyMargin:           constants.DefaultPSUSafetyMargin,
		baseSystemPower:        constants.DefaultBaseSystemPower,
		maxDowngradeIterations: constants.DefaultMaxDowngradeIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxDowngradeIterations <= 0 {
		o.maxDowngradeIterations = constants.DefaultMaxDowngradeIterations
	}
	if o.profiles == nil {
		o.profiles = NewProfileRegistry()
	}

	brands := NewBrandDetector()
	checker := NewCompatibilityChecker(o.safetyMargin, o.baseSystemPower, o.log)
	return &RecommendationEngine{
		brands:                 brands,
		checker:                checker,
		selector:               NewPartSelector(brands, checker, o.log),
		profiles:               o.profiles,
		log:                    o.log,
		maxDowngradeIterations: o.maxDowngradeIterations,
	}
}

// Profiles usage profile registry
func (e *RecommendationEngine) Profiles() *ProfileRegistry { return e.profiles }

// Checker compatibility checker the engine selects with
func (e *RecommendationEngine) Checker() *CompatibilityChecker { return e.checker }

// ClearAllCaches brand, socket va sig'im keshlarini tozalash
func (e *RecommendationEngine) ClearAllCaches() {
	e.brands.ClearCache()
	e.checker.ClearCache()
	e.selector.ClearCache()
}

// runState bitta Recommend chaqiruvi holati
type runState struct {
	id       string
	log      zerolog.Logger
	req      entity.Requirements
	catalog  *entity.Catalog
	profile  entity.UsageProfile
	strategy usageStrategy

	// brand-filtered pools; the whole category when nothing matches the brand
	cpus []entity.Part
	gpus []entity.Part

	os        *entity.Part
	available int
	alloc     entity.BudgetAllocation
	minimal   bool
	cfg       *entity.Configuration

	warnings []string
	seen     map[string]bool

	// inTrial while an upgrade candidate is tried; its warnings wait in pending
	inTrial bool
	pending []string
}

func (r *runState) warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if r.inTrial {
		r.pending = append(r.pending, msg)
		return
	}
	if r.seen[msg] {
		return
	}
	r.seen[msg] = true
	r.warnings = append(r.warnings, msg)
	r.log.Warn().Msg(msg)
}

func (r *runState) beginTrial() {
	r.inTrial = true
	r.pending = r.pending[:0]
}

// endTrial keeps the trial's warnings only when the trial is committed
func (r *runState) endTrial(commit bool) {
	r.inTrial = false
	pending := r.pending
	r.pending = nil
	if !commit {
		return
	}
	for _, msg := range pending {
		r.warn("%s", msg)
	}
}

type phase struct {
	name string
	run  func(*RecommendationEngine, *runState) error
}

var phases = []phase{
	{"os", (*RecommendationEngine).handleOS},
	{"allocation", (*RecommendationEngine).allocate},
	{"selection", (*RecommendationEngine).selectBase},
	{"budget", (*RecommendationEngine).reconcileBudget},
}

// Recommend talablar va katalog bo'yicha konfiguratsiya.
// Over-budget results are returned with BudgetStatus over_budget, not as errors.
func (e *RecommendationEngine) Recommend(ctx context.Context, req entity.Requirements, catalog *entity.Catalog) (*entity.Result, error) {
	req, err := ValidateRequirements(req)
	if err != nil {
		return nil, err
	}
	if err := ValidateCatalog(catalog).Err(); err != nil {
		return nil, err
	}

	run := e.newRun(req, catalog)
	run.log.Debug().Int("budget", req.Budget).Str("usage", req.Usage).Msg("run started")

	for _, ph := range phases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("recommend %s: %w", ph.name, err)
		}
		if err := ph.run(e, run); err != nil {
			return nil, err
		}
	}

	result := e.assemble(run)
	run.log.Info().
		Int("budget", result.Budget).
		Int("grand_total", result.GrandTotal).
		Str("status", string(result.BudgetStatus)).
		Bool("minimal_mode", result.MinimalMode).
		Int("warnings", len(result.Warnings)).
		Msg("recommendation ready")
	return result, nil
}

func (e *RecommendationEngine) newRun(req entity.Requirements, catalog *entity.Catalog) *runState {
	id := uuid.NewString()
	run := &runState{
		id:      id,
		log:     e.log.With().Str("run_id", id).Logger(),
		req:     req,
		catalog: catalog,
		cfg:     &entity.Configuration{},
		seen:    make(map[string]bool),
	}

	profile, known := e.profiles.Lookup(req.Usage)
	if !known {
		run.warn("unknown usage %q, using the %s profile", req.Usage, profile.Name)
	}
	run.profile = profile
	run.strategy = strategyFor(profile.SpecialLogic)

	run.cpus = filterParts(catalog.CPU, func(p *entity.Part) bool { return e.brands.IsCPUBrand(p, req.CPUBrand) })
	if len(run.cpus) == 0 {
		run.warn("no %s CPU in the catalog, ignoring the CPU brand preference", req.CPUBrand)
		run.cpus = catalog.CPU
	}
	// a CPU no board takes is only kept when nothing else is left
	if socketed := filterParts(run.cpus, func(p *entity.Part) bool { return e.hasMotherboardFor(run, p) }); len(socketed) > 0 {
		run.cpus = socketed
	}
	run.gpus = filterParts(catalog.GPU, func(p *entity.Part) bool { return e.brands.IsGPUBrand(p, req.GPUBrand) })
	if len(run.gpus) == 0 {
		run.warn("no %s GPU in the catalog, ignoring the GPU brand preference", req.GPUBrand)
		run.gpus = catalog.GPU
	}
	return run
}

// handleOS OS narxini ayirish; fails when nothing can fit in what is left
func (e *RecommendationEngine) handleOS(run *runState) error {
	run.available = run.req.Budget
	if run.req.IncludeOS {
		if len(run.catalog.OS) == 0 {
			run.warn("OS requested but the catalog has none")
		} else {
			run.os = &run.catalog.OS[0]
			run.available -= run.os.Price
		}
	}
	if run.available <= 0 {
		return newError(KindBudgetTooLow, entity.CategoryOS, "budget %d does not cover the OS (%d)", run.req.Budget, entity.PriceOf(run.os))
	}

	floor := catalogFloorPrice(run.catalog)
	if run.available < floor {
		return newError(KindBudgetTooLow, "", "available budget %d is below the cheapest possible build %d", run.available, floor)
	}
	return nil
}

// catalogFloorPrice sum of the cheapest part of every required category
func catalogFloorPrice(catalog *entity.Catalog) int {
	total := 0
	for _, cat := range entity.RequiredCategories {
		total += entity.PriceOf(cheapestPart(catalog.Parts(cat)))
	}
	return total
}

func (e *RecommendationEngine) allocate(run *runState) error {
	if run.req.Budget < constants.RecommendedMinimumBudget {
		run.warn("budget %d is below the recommended minimum %d", run.req.Budget, constants.RecommendedMinimumBudget)
	}
	run.alloc, run.minimal = AllocateBudget(run.available, run.profile)
	if run.minimal {
		run.log.Debug().Int("available", run.available).Msg("minimal mode allocation")
	}
	run.log.Debug().Interface("allocation", run.alloc).Msg("budget allocated")
	return nil
}

func (e *RecommendationEngine) selectBase(run *runState) error {
	cfg := run.cfg
	cfg.CPU = run.strategy.selectCPU(e, run, run.alloc[entity.CategoryCPU])
	if cfg.CPU == nil {
		return newError(KindPartsNotFound, entity.CategoryCPU, "no CPU could be selected")
	}
	if run.strategy.adjustAllocation != nil {
		run.strategy.adjustAllocation(run.alloc, cfg.CPU)
	}

	cfg.Motherboard = e.motherboardFor(run, cfg.CPU)
	cfg.GPU = run.strategy.selectGPU(e, run, run.alloc[entity.CategoryGPU])
	cfg.Memory = e.memoryFor(run, cfg.CPU)
	cfg.Storage = e.selector.SelectStorage(run.catalog.Storage, run.req, run.alloc[entity.CategoryStorage])
	cfg.PSU = e.psuFor(run, cfg.CPU, cfg.GPU)
	cfg.Cooler = e.selector.SelectBestPart(run.catalog.Cooler, run.alloc[entity.CategoryCooler])
	cfg.Case = e.selector.SelectBestPart(e.casePool(run), run.alloc[entity.CategoryCase])

	if missing := cfg.Missing(); len(missing) > 0 {
		return newError(KindPartsNotFound, missing[0], "no part selected")
	}
	if want := run.profile.RAMMin; want > 0 && e.selector.ParseMemoryCapacity(run.req.RAM) < want {
		run.warn("%s builds usually want at least %dGB of memory", run.profile.Name, want)
	}
	run.log.Debug().Strs("parts", cfg.ComponentList()).Int("total", cfg.TotalPrice()).Msg("base selection")
	return nil
}

func (e *RecommendationEngine) motherboardFor(run *runState, cpu *entity.Part) *entity.Part {
	mb := e.checker.SelectCompatibleMotherboard(run.catalog.Motherboard, cpu)
	if mb != nil && !e.checker.SameSocket(mb.Socket, cpu.Socket) {
		run.warn("no motherboard with socket %s, using the cheapest board %s", cpu.Socket, mb.Name)
	}
	return mb
}

// hasMotherboardFor some catalog board takes the CPU's socket
func (e *RecommendationEngine) hasMotherboardFor(run *runState, cpu *entity.Part) bool {
	for i := range run.catalog.Motherboard {
		if e.checker.SameSocket(run.catalog.Motherboard[i].Socket, cpu.Socket) {
			return true
		}
	}
	return false
}

func (e *RecommendationEngine) memoryFor(run *runState, cpu *entity.Part) *entity.Part {
	mem := e.selector.SelectMemory(run.catalog.Memory, run.req.RAM, run.alloc[entity.CategoryMemory], cpu.Socket)
	if mem != nil && !e.checker.IsMemoryCompatible(mem, cpu.Socket) {
		run.warn("no %s memory in the catalog, using %s", e.checker.CompatibleMemoryType(cpu.Socket), mem.Name)
	}
	return mem
}

func (e *RecommendationEngine) psuFor(run *runState, cpu, gpu *entity.Part) *entity.Part {
	psu := e.checker.SelectPSUForSystem(run.catalog.PSU, cpu, gpu)
	if psu != nil {
		if need := e.checker.SystemPowerRequirement(cpu, gpu); ParseWattage(psu.Wattage) < need {
			run.warn("no PSU reaches %dW, using the largest one %s", need, psu.Name)
		}
	}
	return psu
}

// casePool cases that take the selected motherboard, every case when none does
func (e *RecommendationEngine) casePool(run *runState) []entity.Part {
	mb := run.cfg.Motherboard
	if mb == nil {
		return run.catalog.Case
	}
	fitting := filterParts(run.catalog.Case, func(p *entity.Part) bool { return caseFits(p.FormFactor, mb.FormFactor) })
	if len(fitting) == 0 {
		run.warn("no case lists the %s form factor of %s", mb.FormFactor, mb.Name)
		return run.catalog.Case
	}
	return fitting
}

func (e *RecommendationEngine) reconcileBudget(run *runState) error {
	total := run.cfg.TotalPrice()
	switch {
	case total > run.available:
		e.downgrade(run)
	case run.available-total > 0:
		e.upgrade(run)
	}
	return nil
}

func (e *RecommendationEngine) assemble(run *runState) *entity.Result {
	cfg := run.cfg.Clone()
	cfg.OS = run.os

	total := cfg.TotalPrice()
	grand := total + entity.PriceOf(run.os)
	result := &entity.Result{
		ID:              run.id,
		Recommendations: *cfg,
		TotalPrice:      total,
		GrandTotal:      grand,
		Budget:          run.req.Budget,
		BudgetStatus:    entity.WithinBudget,
		Usage:           run.profile.Name,
		MinimalMode:     run.minimal,
		Allocation:      run.alloc.Clone(),
		Warnings:        append([]string(nil), run.warnings...),
	}
	if grand > run.req.Budget {
		result.BudgetStatus = entity.OverBudget
		result.Overage = grand - run.req.Budget
	} else {
		result.RemainingBudget = run.req.Budget - grand
	}
	return result
}
