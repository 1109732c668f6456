package constants

import "time"

// Budget allocation constants
const (
	// MinimalModeThreshold below this available budget fixed sub-budgets are used
	MinimalModeThreshold = 130000

	// RecommendedMinimumBudget requested budgets below this get a warning
	RecommendedMinimumBudget = 125000

	// MemoryBudgetShare memory ulushi
	MemoryBudgetShare = 0.10

	// StorageBudgetShare storage ulushi
	StorageBudgetShare = 0.08

	// MotherboardBudgetShare motherboard ulushi
	MotherboardBudgetShare = 0.06

	// PSUBudgetShare psu ulushi
	PSUBudgetShare = 0.05

	// CoolerBudgetShare cooler ulushi
	CoolerBudgetShare = 0.03

	// CaseBudgetShare case ulushi
	CaseBudgetShare = 0.03

	// RemainderGPUShare rounding remainder going to the GPU, the rest goes to the CPU
	RemainderGPUShare = 0.7
)

// Minimal mode sub-budgets, tuned to the cheapest known-good parts
const (
	MinimalCPUBudget         = 20000
	MinimalGPUBudget         = 47000
	MinimalMemoryBudget      = 6000
	MinimalStorageBudget     = 9000
	MinimalMotherboardBudget = 13000
	MinimalPSUBudget         = 6000
	MinimalCoolerBudget      = 3500
	MinimalCaseBudget        = 6000
)

// X3D CPU allocation adjustment: share of the CPU overage taken from a category and its floor
const (
	X3DGPUOverageShare   = 0.7
	X3DGPUFloor          = 30000
	X3DOtherOverageShare = 0.1
	X3DStorageFloor      = 8000
	X3DCoolerFloor       = 3000
	X3DCaseFloor         = 5000
)

// X3D staged selection constants
const (
	// X3DBaselineModel reference model; pricier X3D parts are only considered relative to it
	X3DBaselineModel = "7800x3d"

	// X3DMidTierModel mid-tier step
	X3DMidTierModel = "9800x3d"

	// X3DTopTierModel top-tier step
	X3DTopTierModel = "9950x3d"

	// X3DMinimumBuffer budget buffer over the baseline required before any step up
	X3DMinimumBuffer = 20000

	// X3DMidTierMargin extra buffer over the price gap for the mid-tier step
	X3DMidTierMargin = 10000

	// X3DTopTierMargin extra buffer over the price gap for the top-tier step
	X3DTopTierMargin = 30000

	// X3DNoBaselineTolerance without a baseline, X3D parts up to budget*1.2 are acceptable
	X3DNoBaselineTolerance = 1.2
)

// Power constants
const (
	// DefaultPSUSafetyMargin system wattage multiplier
	DefaultPSUSafetyMargin = 1.3

	// DefaultBaseSystemPower motherboard, memory, drives, fans (W)
	DefaultBaseSystemPower = 100

	// DefaultCPUTDP fallback CPU TDP (W)
	DefaultCPUTDP = 65

	// DefaultAMDCPUTDP fallback TDP for unrecognized AMD CPUs (W)
	DefaultAMDCPUTDP = 105

	// DefaultGPUPower fallback GPU board power (W)
	DefaultGPUPower = 200

	// PSUOverspecAllowance over-provisioning ratio tolerated before the penalty starts
	PSUOverspecAllowance = 0.5

	// HighVRAMThresholdGB VRAM strictly above this counts as high
	HighVRAMThresholdGB = 8
)

// Engine loop constants
const (
	// DefaultMaxDowngradeIterations downgrade loop bound
	DefaultMaxDowngradeIterations = 20

	// MaxUpgradeSteps upper bound on accepted upgrade steps in one run
	MaxUpgradeSteps = 500
)

// Delivery constants
const (
	// DefaultUsage fallback usage profile
	DefaultUsage = "gaming"

	// GeminiModelName Gemini AI model nomi
	GeminiModelName = "gemini-2.5-flash"

	// AITemperature AI javob aniqlik darajasi (0.0-1.0)
	AITemperature = 0.3

	// AIRequestTimeout commentary request timeout
	AIRequestTimeout = 20 * time.Second

	// AIMaxRetries Gemini so'rovi urinishlari
	AIMaxRetries = 3

	// AIRetryDelay urinishlar orasidagi kutish
	AIRetryDelay = 2 * time.Second

	// PostgresConnectAttempts DSN ulanish urinishlari
	PostgresConnectAttempts = 20

	// PostgresConnectDelay urinishlar orasidagi kutish
	PostgresConnectDelay = 2 * time.Second
)

// Catalog manbalari (CATALOG_SOURCE)
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
	CatalogSourceSQLite   = "sqlite"
)
