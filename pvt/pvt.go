// Package pvt supplies black-oil fluid properties for the traverse engine:
// Standing for solution gas and oil FVF, Beggs-Robinson for oil viscosity,
// Sutton pseudo-criticals with the Dranchuk-Abou-Kassem equation of state
// for the gas z-factor, McCain and Van Wingen for the water phase.
package pvt

import (
	"math"

	"github.com/codevance-sas/Nodal-API/hydraulics"
)

// BlackOil implements hydraulics.PropertyPort. The zero value is ready to
// use; Salinity (weight percent dissolved solids) refines water viscosity.
type BlackOil struct {
	Salinity float64
}

type rangeError struct{ msg string }

func (e *rangeError) Error() string { return e.msg }

// Properties evaluates the black-oil property set at pressure (psia) and
// temperature (°F).
func (b BlackOil) Properties(fluid hydraulics.FluidDescription, pressure, temperature float64) (hydraulics.FluidProperties, error) {
	if pressure <= 0 {
		return hydraulics.FluidProperties{}, &rangeError{msg: "pressure must be positive"}
	}
	if temperature <= -460 {
		return hydraulics.FluidProperties{}, &rangeError{msg: "temperature below absolute zero"}
	}

	api := fluid.OilGravity
	gg := fluid.GasGravity

	var gor float64
	if fluid.OilRate > 0 {
		gor = fluid.GasRate * 1000 / fluid.OilRate
	}

	pb := fluid.BubblePoint
	if pb <= 0 {
		pb = standingPb(gor, gg, temperature, api)
	}

	// above the bubble point all produced gas stays in solution
	rs := gor
	if pressure < pb {
		rs = standingRs(pressure, gg, temperature, api)
		rs = math.Min(math.Max(rs, 0), gor)
	}

	z := zFactor(pressure, temperature, gg)
	bg := 0.00504 * z * (temperature + 460) / pressure
	bg = math.Min(math.Max(bg, 0.0001), 0.5)

	props := hydraulics.FluidProperties{
		OilFVF:       standingBo(rs, gg, api, temperature),
		WaterFVF:     WaterFVF(temperature),
		GasFVF:       bg,
		OilViscosity: beggsRobinsonMuO(rs, api, temperature, pressure, pb),
		WaterVisc:    WaterViscosity(temperature, b.Salinity),
		GasViscosity: 0.02,
		SolutionGOR:  rs,
		ZFactor:      z,
	}
	return props, nil
}

// standingPb is Standing's bubble point, capped to [14.7, 10000] psia.
func standingPb(gor, gg, t, api float64) float64 {
	if gor <= 0 || gg <= 0 {
		return 14.7
	}
	pb := 18.2*math.Pow(gor/gg, 0.83)*math.Pow(10, 0.00091*t-0.0125*api) - 1.4
	return math.Min(math.Max(pb, 14.7), 10000)
}

// standingRs is Standing's solution gas-oil ratio in scf/STB.
func standingRs(p, gg, t, api float64) float64 {
	if p <= 0 {
		return 0
	}
	return gg * math.Pow(p/18.2/math.Pow(10, 0.00091*t-0.0125*api)+1.4, 1/0.83)
}

// standingBo is Standing's saturated oil formation volume factor.
func standingBo(rs, gg, api, t float64) float64 {
	gammaOil := 141.5 / (131.5 + api)
	return 0.972 + 1.47e-4*math.Pow(rs*math.Sqrt(gg/gammaOil)+1.25*t, 1.175)
}

// beggsRobinsonMuO is the Beggs-Robinson live oil viscosity in cp, with the
// Vazquez-Beggs undersaturated correction above the bubble point.
func beggsRobinsonMuO(rs, api, t, p, pb float64) float64 {
	zz := 3.0324 - 0.02023*api
	muDead := math.Pow(10, math.Pow(10, zz)*math.Pow(t, -1.163)) - 1
	a := 10.715 * math.Pow(rs+100, -0.515)
	bb := 5.44 * math.Pow(rs+150, -0.338)
	muSat := a * math.Pow(muDead, bb)
	if p > pb && pb > 0 {
		m := 2.6 * math.Pow(p, 1.187) * math.Exp(-11.513-8.98e-5*p)
		return muSat * math.Pow(p/pb, m)
	}
	return muSat
}

// WaterFVF is McCain's water formation volume factor in bbl/STB.
func WaterFVF(t float64) float64 {
	bw := 1 + 1.2e-4*(t-60) + 1e-6*(t-60)*(t-60)
	return math.Min(math.Max(bw, 1), 2)
}

// WaterViscosity is Van Wingen's water viscosity in cp with the Collins
// salinity correction, bounded to [0.2, 10].
func WaterViscosity(t, salinity float64) float64 {
	mu := 0.02414 * math.Pow(10, 248.37/(t+133.15))
	if salinity > 0 {
		mu *= 1 + 0.00087*salinity + 0.00000456*salinity*salinity
	}
	return math.Min(math.Max(mu, 0.2), 10)
}

// WaterDensity is the in-situ water density in lb/ft³.
func WaterDensity(t, waterGravity float64) float64 {
	return 62.4 * waterGravity * (1 - 0.0001*(t-60))
}

// dakCoeffs are the Dranchuk-Abou-Kassem equation-of-state constants.
var dakCoeffs = [11]float64{
	0.3265, -1.0700, -0.5339, 0.01569, -0.05165,
	0.5475, -0.7361, 0.1844, 0.1056, 0.6134, 0.7210,
}

// zFactor solves the DAK equation of state at Sutton pseudo-reduced
// conditions via damped Newton iteration.
func zFactor(p, t, gg float64) float64 {
	tpc := 169.2 + 349.5*gg - 74.0*gg*gg
	ppc := 756.8 - 131.0*gg - 3.6*gg*gg
	tpr := (t + 460) / tpc
	ppr := p / ppc

	if ppr < 0.1 {
		return 1
	}
	if ppr > 30 {
		ppr = 30
	}
	if tpr < 1 {
		tpr = 1
	}

	a := dakCoeffs
	c1 := a[0] + a[1]/tpr + a[2]/math.Pow(tpr, 3) + a[3]/math.Pow(tpr, 4) + a[4]/math.Pow(tpr, 5)
	c2 := a[5] + a[6]/tpr + a[7]/(tpr*tpr)
	c3 := a[8] * (a[6]/tpr + a[7]/(tpr*tpr))

	z := 1.0
	if ppr > 5 {
		z = 0.5
	}
	const (
		maxIter = 100
		tol     = 1e-6
		damping = 0.7
	)
	for i := 0; i < maxIter; i++ {
		rho := 0.27 * ppr / (z * tpr)
		if rho > 3 || rho < 0 {
			return math.Max(0.3, math.Min(1.2, 0.27*ppr/tpr))
		}
		expTerm := math.Exp(-a[10] * rho * rho)
		f := 1 + c1*rho + c2*rho*rho - c3*math.Pow(rho, 5) +
			a[9]*(1+a[10]*rho*rho)*rho*rho*expTerm - z
		dfdRho := c1 + 2*c2*rho - 5*c3*math.Pow(rho, 4) +
			a[9]*(2*rho+4*a[10]*math.Pow(rho, 3))*expTerm -
			2*a[9]*a[10]*math.Pow(rho, 4)*expTerm
		dRhodZ := -0.27 * ppr / (z * z * tpr)
		dfdZ := dRhodZ*dfdRho - 1

		delta := -f / dfdZ
		if math.Abs(delta) > 0.5 {
			delta = math.Copysign(0.5, delta)
		}
		delta *= damping

		next := z + delta
		if next <= 0 {
			next = 0.05
		}
		if math.Abs(next-z) < tol {
			return math.Max(0.2, math.Min(next, 1.5))
		}
		z = next
	}
	return math.Max(0.2, math.Min(z, 1.5))
}
