package hydraulics

// Weymouth: fully turbulent transmission lines, 2-60 in diameters.
var weymouthEq = gasEquation{
	descriptor: Descriptor{
		ID:          "weymouth",
		Name:        "Weymouth",
		Description: "High-pressure fully turbulent gas transmission pipelines",
	},
	flowConst:  433.5,
	diamExp:    2.667,
	gravExp:    0,
	defaultEff: 1.0,
}
