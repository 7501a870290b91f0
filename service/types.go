package service

import (
	"github.com/codevance-sas/Nodal-API/hydraulics"
)

// TraverseRequest describes one wellbore pressure-traverse calculation.
// Either Segments (plus an optional Survey or constant Deviation) or WellID
// must be given; with a WellID the directional survey is loaded from the
// database.
type TraverseRequest struct {
	Method          string                      `json:"method"`
	Segments        []hydraulics.PipeSegment    `json:"segments"`
	Survey          []hydraulics.SurveyStation  `json:"survey,omitempty"`
	Deviation       float64                     `json:"deviation,omitempty"` // degrees from vertical
	WellID          string                      `json:"wellId,omitempty"`
	DepthSteps      int                         `json:"depthSteps,omitempty"`
	SurfacePressure float64                     `json:"surfacePressure"`
	TargetBHP       float64                     `json:"targetBhp,omitempty"` // psia; >0 switches to target mode
	Salinity        float64                     `json:"salinity,omitempty"`  // weight percent
	Fluid           hydraulics.FluidDescription `json:"fluid"`
	Control         hydraulics.StepControl      `json:"-"`
}

// TargetSolution reports the surface pressure found for a target bottomhole
// pressure, with the traverse recomputed at that surface pressure.
type TargetSolution struct {
	SurfacePressure    float64                    `json:"surfacePressure"`
	BottomholePressure float64                    `json:"bottomholePressure"`
	TargetBHP          float64                    `json:"targetBhp"`
	Error              float64                    `json:"error"` // psi, achieved minus target
	Iterations         int                        `json:"iterations"`
	Converged          bool                       `json:"converged"`
	Result             *hydraulics.TraverseResult `json:"result"`
}

// MethodComparison summarizes one correlation inside a comparison run.
type MethodComparison struct {
	Method             string  `json:"method"`
	BottomholePressure float64 `json:"bottomholePressure"`
	PressureDrop       float64 `json:"pressureDrop"`
	ElevationPct       float64 `json:"elevationPct"`
	FrictionPct        float64 `json:"frictionPct"`
	AccelerationPct    float64 `json:"accelerationPct"`
	Success            bool    `json:"success"`
	Error              string  `json:"error,omitempty"`
}

// ComparisonStats aggregates the successful methods of a comparison.
type ComparisonStats struct {
	AverageBHP   float64 `json:"averageBhp"`
	MinBHP       float64 `json:"minBhp"`
	MaxBHP       float64 `json:"maxBhp"`
	StdDevBHP    float64 `json:"stdDevBhp"`
	BHPRange     float64 `json:"bhpRange"`     // psi, max minus min
	PercentRange float64 `json:"percentRange"` // range as percent of average
}

type ComparisonResult struct {
	Methods []MethodComparison `json:"methods"`
	Stats   *ComparisonStats   `json:"stats,omitempty"`
}

// RecommendRequest carries the well conditions the method recommendation
// decision tree works from.
type RecommendRequest struct {
	Deviation float64 `json:"deviation"` // degrees from vertical
	OilRate   float64 `json:"oilRate"`   // STB/d
	WaterRate float64 `json:"waterRate"` // STB/d
	GasRate   float64 `json:"gasRate"`   // Mscf/d
	TubingID  float64 `json:"tubingId"`  // inches
}

type Recommendation struct {
	Method string  `json:"method"`
	Reason string  `json:"reason"`
	GLR    float64 `json:"glr"` // scf per bbl liquid
}

// FlowRateSensitivityRequest sweeps the oil rate while holding water cut and
// GOR constant at the base request's values.
type FlowRateSensitivityRequest struct {
	Base       TraverseRequest `json:"base"`
	MinOilRate float64         `json:"minOilRate"`
	MaxOilRate float64         `json:"maxOilRate"`
	Steps      int             `json:"steps,omitempty"`
}

type FlowRatePoint struct {
	OilRate      float64 `json:"oilRate"`
	TotalLiquid  float64 `json:"totalLiquid"`
	BHP          float64 `json:"bhp"`
	PressureDrop float64 `json:"pressureDrop"`
	ElevationPct float64 `json:"elevationPct"`
	FrictionPct  float64 `json:"frictionPct"`
	Success      bool    `json:"success"`
}

// TubingSensitivityRequest sweeps the tubing inner diameter across every
// segment of the base geometry.
type TubingSensitivityRequest struct {
	Base        TraverseRequest `json:"base"`
	MinTubingID float64         `json:"minTubingId"`
	MaxTubingID float64         `json:"maxTubingId"`
	Steps       int             `json:"steps,omitempty"`
}

type TubingPoint struct {
	TubingID     float64 `json:"tubingId"`
	FlowArea     float64 `json:"flowArea"` // ft²
	BHP          float64 `json:"bhp"`
	PressureDrop float64 `json:"pressureDrop"`
	ElevationPct float64 `json:"elevationPct"`
	FrictionPct  float64 `json:"frictionPct"`
	Success      bool    `json:"success"`
}

// GasPipelineRequest extends the flow-equation input with terrain and gas
// composition so elevation and Joule-Thomson corrections can be applied.
type GasPipelineRequest struct {
	hydraulics.PipelineInput
	ElevationChange float64 `json:"elevationChange,omitempty"` // ft, outlet above inlet
	CO2Fraction     float64 `json:"co2Fraction,omitempty"`
	H2SFraction     float64 `json:"h2sFraction,omitempty"`
	N2Fraction      float64 `json:"n2Fraction,omitempty"`
}

type GasPipelineResult struct {
	hydraulics.PipelineResult

	FrictionComponent  float64 `json:"frictionComponent"`  // psi
	ElevationComponent float64 `json:"elevationComponent"` // psi

	OutletTemperature    float64 `json:"outletTemperature"` // °F
	TemperatureDrop      float64 `json:"temperatureDrop"`
	JTCoefficient        float64 `json:"jtCoefficient"` // °F/psi
	HydrateRisk          bool    `json:"hydrateRisk"`
	HydrateFormationTemp float64 `json:"hydrateFormationTemp"`
	HydrateMargin        float64 `json:"hydrateMargin"` // °F above formation temp
}

// DiameterRequest sizes a pipe for a rate between two terminal pressures.
type DiameterRequest struct {
	Equation       string    `json:"equation"`
	Length         float64   `json:"length"`  // ft
	GasRate        float64   `json:"gasRate"` // Mscf/d
	InletPressure  float64   `json:"inletPressure"`
	OutletPressure float64   `json:"outletPressure"`
	GasGravity     float64   `json:"gasGravity"`
	Temperature    float64   `json:"temperature"`
	ZFactor        float64   `json:"zFactor,omitempty"`
	Efficiency     float64   `json:"efficiency,omitempty"`
	VelocityLimit  float64   `json:"velocityLimit,omitempty"` // ft/s
	AvailableSizes []float64 `json:"availableSizes,omitempty"`
}

type DiameterResult struct {
	CalculatedDiameter  float64   `json:"calculatedDiameter"`
	RecommendedDiameter float64   `json:"recommendedDiameter"`
	FinalDiameter       float64   `json:"finalDiameter"`
	FlowVelocity        float64   `json:"flowVelocity"`
	VelocityLimit       float64   `json:"velocityLimit"`
	VelocityLimited     bool      `json:"velocityLimited"`
	AvailableSizes      []float64 `json:"availableSizes"`
}

// GasSensitivityRequest sweeps one pipeline design variable.
type GasSensitivityRequest struct {
	Base     GasPipelineRequest `json:"base"`
	Variable string             `json:"variable"` // diameter | length | flowRate | pressure
	MinValue float64            `json:"minValue,omitempty"`
	MaxValue float64            `json:"maxValue,omitempty"`
	Steps    int                `json:"steps,omitempty"`
}

type GasSensitivityPoint struct {
	Value           float64 `json:"value"`
	OutletPressure  float64 `json:"outletPressure"`
	PressureDrop    float64 `json:"pressureDrop"`
	FlowVelocity    float64 `json:"flowVelocity"`
	TemperatureDrop float64 `json:"temperatureDrop"`
	HydrateRisk     bool    `json:"hydrateRisk"`
}

type GasSensitivityResult struct {
	Variable string                `json:"variable"`
	Points   []GasSensitivityPoint `json:"points"`
}

// CompressorRequest sizes a compressor station between two pressures.
type CompressorRequest struct {
	InletPressure    float64 `json:"inletPressure"`    // psia
	OutletPressure   float64 `json:"outletPressure"`   // psia
	GasRate          float64 `json:"gasRate"`          // MMscf/d
	GasGravity       float64 `json:"gasGravity"`       // air=1
	InletTemperature float64 `json:"inletTemperature"` // °F
	CompressorType   string  `json:"compressorType,omitempty"`
	MaxRatioPerStage float64 `json:"maxRatioPerStage,omitempty"`
	Efficiency       float64 `json:"efficiency,omitempty"`
	ZAvg             float64 `json:"zAvg,omitempty"`
	HeatRatio        float64 `json:"heatRatio,omitempty"` // cp/cv
}

type CompressorStage struct {
	InletPressure  float64 `json:"inletPressure"`
	OutletPressure float64 `json:"outletPressure"`
	DischargeTempF float64 `json:"dischargeTemperature"`
	PowerHP        float64 `json:"powerHp"`
}

type CompressorEconomics struct {
	InstalledCostUSD     float64 `json:"installedCostUsd"`
	AnnualFuelCostUSD    float64 `json:"annualFuelCostUsd"`
	AnnualMaintenanceUSD float64 `json:"annualMaintenanceUsd"`
}

type CompressorResult struct {
	Stages               int                 `json:"stages"`
	CompressionRatio     float64             `json:"compressionRatio"`
	DischargeTempF       float64             `json:"dischargeTemperature"`
	PowerRequiredHP      float64             `json:"powerRequiredHp"`
	PowerRequiredKW      float64             `json:"powerRequiredKw"`
	StageDetails         []CompressorStage   `json:"stageDetails"`
	FuelConsumptionMMScf float64             `json:"fuelConsumptionMmscfd"`
	SpecificPowerHP      float64             `json:"specificPower"` // hp per MMscf/d
	PipelineCooling      *GasPipelineCooling `json:"pipelineCooling"`
	Economics            CompressorEconomics `json:"economics"`
}

// GasPipelineCooling is the Joule-Thomson temperature estimate downstream of
// a compressor discharge.
type GasPipelineCooling struct {
	InletTemperature     float64 `json:"inletTemperature"`
	OutletTemperature    float64 `json:"outletTemperature"`
	TemperatureDrop      float64 `json:"temperatureDrop"`
	JTCoefficient        float64 `json:"jtCoefficient"`
	HydrateFormationTemp float64 `json:"hydrateFormationTemp"`
	HydrateRisk          bool    `json:"hydrateRisk"`
	HydrateMargin        float64 `json:"hydrateMargin"`
}

type ImportSurveysResult struct {
	ImportedRows int `json:"importedRows"`
}
