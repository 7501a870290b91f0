package hydraulics

// FlowPattern is the flow regime a correlation reports for a step.
type FlowPattern string

const (
	PatternSinglePhase FlowPattern = "single-phase"
	PatternBubble      FlowPattern = "bubble"
	PatternSlug        FlowPattern = "slug"
	PatternChurn       FlowPattern = "churn"
	PatternTransition  FlowPattern = "transition"
	PatternAnnular     FlowPattern = "annular"
	PatternMist        FlowPattern = "mist"
	PatternStratified  FlowPattern = "stratified"
	PatternStatic      FlowPattern = "static"
)

// FluidDescription is the surface description of the produced stream.
// Rates are stock-tank: oil/water in STB/d, gas in Mscf/d.
type FluidDescription struct {
	OilRate   float64 `json:"oilRate"`
	WaterRate float64 `json:"waterRate"`
	GasRate   float64 `json:"gasRate"`

	OilGravity   float64 `json:"oilGravity"`   // °API
	WaterGravity float64 `json:"waterGravity"` // water=1
	GasGravity   float64 `json:"gasGravity"`   // air=1

	BubblePoint         float64 `json:"bubblePoint"`         // psia
	SurfaceTemperature  float64 `json:"surfaceTemperature"`  // °F
	TemperatureGradient float64 `json:"temperatureGradient"` // °F/ft
}

// Validate checks physical plausibility of the surface description.
func (f FluidDescription) Validate() error {
	if f.OilRate < 0 || f.WaterRate < 0 || f.GasRate < 0 {
		return &ValidationError{Field: "rates", Reason: "production rates must be non-negative"}
	}
	if f.GasGravity <= 0 || f.GasGravity >= 1.5 {
		return &ValidationError{Field: "gasGravity", Reason: "must be in (0, 1.5)"}
	}
	if f.WaterGravity <= 0 {
		return &ValidationError{Field: "waterGravity", Reason: "must be positive"}
	}
	if f.OilGravity <= 0 || f.OilGravity >= 60 {
		return &ValidationError{Field: "oilGravity", Reason: "°API must be in (0, 60)"}
	}
	return nil
}

// TemperatureAt returns the fluid temperature (°F) at measured depth md (ft).
func (f FluidDescription) TemperatureAt(md float64) float64 {
	return f.SurfaceTemperature + f.TemperatureGradient*md
}

// FluidProperties are the in-situ PVT values a property port supplies for one
// pressure/temperature point.
type FluidProperties struct {
	OilFVF       float64 // Bo, bbl/STB
	WaterFVF     float64 // Bw, bbl/STB
	GasFVF       float64 // Bg, ft³/scf
	OilViscosity float64 // cp
	WaterVisc    float64 // cp
	GasViscosity float64 // cp
	SolutionGOR  float64 // Rs, scf/STB
	ZFactor      float64
}

// PropertyPort supplies in-situ fluid properties for a surface description at
// a given pressure (psia) and temperature (°F). Implementations must be safe
// for concurrent use.
type PropertyPort interface {
	Properties(fluid FluidDescription, pressure, temperature float64) (FluidProperties, error)
}

// StepControl tunes the marching solver. Zero values fall back to defaults.
type StepControl struct {
	Tolerance            float64 // relative per-step pressure tolerance
	MaxIterations        int     // per-step fixed-point cap
	AccelThreshold       float64 // ft/s; gas velocity change below this drops the acceleration term
	AbortOnDomainError   bool
	ZFactorTolerance     float64
	ZFactorMaxIterations int
}

func (c StepControl) normalized() StepControl {
	if c.Tolerance <= 0 {
		c.Tolerance = 1e-4
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = 20
	}
	if c.AccelThreshold <= 0 {
		c.AccelThreshold = 1e-3
	}
	if c.ZFactorTolerance <= 0 {
		c.ZFactorTolerance = 1e-6
	}
	if c.ZFactorMaxIterations <= 0 {
		c.ZFactorMaxIterations = 30
	}
	return c
}

// PressureProfilePoint is one evaluated station of the traverse.
type PressureProfilePoint struct {
	Depth       float64 `json:"depth"`       // measured depth, ft
	TVD         float64 `json:"tvd"`         // true vertical depth, ft
	Pressure    float64 `json:"pressure"`    // psia
	Temperature float64 `json:"temperature"` // °F

	FlowPattern      FlowPattern `json:"flowPattern"`
	LiquidHoldup     float64     `json:"liquidHoldup"`
	MixtureDensity   float64     `json:"mixtureDensity"` // lbm/ft³
	MixtureViscosity float64     `json:"mixtureViscosity"`
	SuperficialVL    float64     `json:"superficialLiquidVelocity"` // ft/s
	SuperficialVG    float64     `json:"superficialGasVelocity"`    // ft/s
	MixtureVelocity  float64     `json:"mixtureVelocity"`
	Reynolds         float64     `json:"reynoldsNumber"`
	FrictionFactor   float64     `json:"frictionFactor"`
	Converged        bool        `json:"converged"`

	ElevationGradient    float64 `json:"elevationGradient"` // psi/ft
	FrictionGradient     float64 `json:"frictionGradient"`
	AccelerationGradient float64 `json:"accelerationGradient"`
	TotalGradient        float64 `json:"totalGradient"`
}

// PatternInterval is a contiguous run of one flow pattern along the traverse.
type PatternInterval struct {
	Pattern    FlowPattern `json:"pattern"`
	StartDepth float64     `json:"startDepth"`
	EndDepth   float64     `json:"endDepth"`
}

// TraverseResult is the outcome of a pressure-traverse calculation.
type TraverseResult struct {
	Method  string                 `json:"method"`
	Profile []PressureProfilePoint `json:"profile"`

	SurfacePressure    float64 `json:"surfacePressure"`
	BottomholePressure float64 `json:"bottomholePressure"`
	TotalPressureDrop  float64 `json:"totalPressureDrop"`

	// Depth-integrated contributions, percent of total drop.
	ElevationPct    float64 `json:"elevationPct"`
	FrictionPct     float64 `json:"frictionPct"`
	AccelerationPct float64 `json:"accelerationPct"`

	FlowPatterns []PatternInterval     `json:"flowPatterns"`
	Warnings     []*ConvergenceWarning `json:"warnings,omitempty"`
	DomainErrors []*DomainError        `json:"domainErrors,omitempty"`
}

// Descriptor identifies a correlation for listings and dispatch.
type Descriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
