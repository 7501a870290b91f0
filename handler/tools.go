package handler

import (
	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pkg/conf"
)

// stepControl builds the solver tuning from configuration.
func stepControl() hydraulics.StepControl {
	return hydraulics.StepControl{
		Tolerance:            conf.Conf.GetFloat64("solver.step_tolerance"),
		MaxIterations:        conf.Conf.GetInt("solver.step_max_iterations"),
		ZFactorTolerance:     conf.Conf.GetFloat64("solver.zfactor_tolerance"),
		ZFactorMaxIterations: conf.Conf.GetInt("solver.zfactor_max_iterations"),
	}
}
