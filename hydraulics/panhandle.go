package hydraulics

import "math"

// Panhandle A: long-distance transmission at partial turbulence,
// Re 5e6 to 1.5e7.
var panhandleAEq = gasEquation{
	descriptor: Descriptor{
		ID:          "panhandle-a",
		Name:        "Panhandle A",
		Description: "Long-distance gas transmission pipelines at partial turbulence",
	},
	flowConst:  435.87,
	diamExp:    2.53,
	gravExp:    0.147,
	defaultEff: 0.92,
	friction: func(re, _ float64) float64 {
		return 0.032 * math.Pow(re, -0.147)
	},
}

// Panhandle B: modern high-pressure lines, Re above 1.5e7.
var panhandleBEq = gasEquation{
	descriptor: Descriptor{
		ID:          "panhandle-b",
		Name:        "Panhandle B",
		Description: "Modern high-pressure gas transmission pipelines at full turbulence",
	},
	flowConst:  737.0,
	diamExp:    2.53,
	gravExp:    0.039,
	defaultEff: 0.95,
	friction: func(re, _ float64) float64 {
		return 0.0085 * math.Pow(re, -0.039)
	},
}

var gasEquations = []gasEquation{weymouthEq, panhandleAEq, panhandleBEq}
