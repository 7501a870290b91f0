package hydraulics

import (
	"math"
	"sort"
)

// PipeSegment is one constant-diameter run of the flow path. Depths are
// measured depth in ft, diameter and roughness in inches.
type PipeSegment struct {
	StartDepth float64 `json:"startDepth"`
	EndDepth   float64 `json:"endDepth"`
	Diameter   float64 `json:"diameter"`
	Roughness  float64 `json:"roughness"`
}

// SurveyStation is a directional survey point: measured depth in ft,
// inclination from vertical and azimuth in degrees.
type SurveyStation struct {
	MD          float64 `json:"md"`
	Inclination float64 `json:"inclination"`
	Azimuth     float64 `json:"azimuth"`
}

// FlowPathGeometry describes the wellbore: contiguous pipe segments plus an
// optional directional survey, with the traverse discretization count.
type FlowPathGeometry struct {
	segments []PipeSegment
	stations []SurveyStation
	steps    int
	length   float64
	tvd      []float64 // cumulative TVD at each station
}

// NewFlowPathGeometry validates and assembles a flow path. Segments must start
// at zero, be contiguous and have positive diameters. Stations, if any, must
// be sorted by MD with inclinations in [0, 180). steps is the number of
// discretization points and must be at least 2.
func NewFlowPathGeometry(segments []PipeSegment, stations []SurveyStation, steps int) (*FlowPathGeometry, error) {
	if len(segments) == 0 {
		return nil, &ValidationError{Field: "segments", Reason: "at least one pipe segment required"}
	}
	if steps < 2 {
		return nil, &ValidationError{Field: "steps", Reason: "at least 2 discretization points required"}
	}
	if math.Abs(segments[0].StartDepth) > 1e-9 {
		return nil, &ValidationError{Field: "segments", Reason: "first segment must start at depth 0"}
	}
	for i, s := range segments {
		if s.EndDepth <= s.StartDepth {
			return nil, &ValidationError{Field: "segments", Reason: "segment end depth must exceed start depth"}
		}
		if s.Diameter <= 0 {
			return nil, &ValidationError{Field: "segments", Reason: "segment diameter must be positive"}
		}
		if s.Roughness < 0 {
			return nil, &ValidationError{Field: "segments", Reason: "segment roughness must be non-negative"}
		}
		if i > 0 && math.Abs(s.StartDepth-segments[i-1].EndDepth) > 1e-6 {
			return nil, &ValidationError{Field: "segments", Reason: "segments must be contiguous"}
		}
	}
	for i, st := range stations {
		if st.Inclination < 0 || st.Inclination >= 180 {
			return nil, &ValidationError{Field: "survey", Reason: "inclination must be in [0, 180)"}
		}
		if i > 0 && st.MD < stations[i-1].MD {
			return nil, &ValidationError{Field: "survey", Reason: "stations must be sorted by measured depth"}
		}
	}

	g := &FlowPathGeometry{
		segments: append([]PipeSegment(nil), segments...),
		stations: append([]SurveyStation(nil), stations...),
		steps:    steps,
		length:   segments[len(segments)-1].EndDepth,
	}
	g.buildTVD()
	return g, nil
}

// NewSimpleGeometry builds a single-segment path with constant deviation.
// depth in ft, tubingID and roughness in inches, deviation in degrees from
// vertical.
func NewSimpleGeometry(depth, deviation, tubingID, roughness float64, steps int) (*FlowPathGeometry, error) {
	if depth <= 0 {
		return nil, &ValidationError{Field: "depth", Reason: "must be positive"}
	}
	seg := PipeSegment{StartDepth: 0, EndDepth: depth, Diameter: tubingID, Roughness: roughness}
	stations := []SurveyStation{
		{MD: 0, Inclination: deviation},
		{MD: depth, Inclination: deviation},
	}
	return NewFlowPathGeometry([]PipeSegment{seg}, stations, steps)
}

// buildTVD precomputes cumulative true vertical depth at each station with a
// trapezoid rule on cos(inclination).
func (g *FlowPathGeometry) buildTVD() {
	g.tvd = make([]float64, len(g.stations))
	for i := 1; i < len(g.stations); i++ {
		dmd := g.stations[i].MD - g.stations[i-1].MD
		c0 := math.Cos(g.stations[i-1].Inclination * math.Pi / 180)
		c1 := math.Cos(g.stations[i].Inclination * math.Pi / 180)
		g.tvd[i] = g.tvd[i-1] + dmd*(c0+c1)/2
	}
}

// TotalLength returns the measured length of the flow path in ft.
func (g *FlowPathGeometry) TotalLength() float64 { return g.length }

// Steps returns the number of discretization points.
func (g *FlowPathGeometry) Steps() int { return g.steps }

// Segments returns a copy of the pipe segments.
func (g *FlowPathGeometry) Segments() []PipeSegment {
	return append([]PipeSegment(nil), g.segments...)
}

// SegmentAt returns the pipe segment covering measured depth md.
func (g *FlowPathGeometry) SegmentAt(md float64) (PipeSegment, error) {
	if md < -1e-9 || md > g.length+1e-9 {
		return PipeSegment{}, &GeometryError{Depth: md, Reason: "outside flow path"}
	}
	idx := sort.Search(len(g.segments), func(i int) bool { return g.segments[i].EndDepth >= md })
	if idx == len(g.segments) {
		idx = len(g.segments) - 1
	}
	return g.segments[idx], nil
}

// InclinationAt returns the inclination from vertical (degrees) at md,
// linearly interpolated between stations. Without a survey the path is
// treated as vertical.
func (g *FlowPathGeometry) InclinationAt(md float64) (float64, error) {
	if md < -1e-9 || md > g.length+1e-9 {
		return 0, &GeometryError{Depth: md, Reason: "outside flow path"}
	}
	if len(g.stations) == 0 {
		return 0, nil
	}
	if md <= g.stations[0].MD {
		return g.stations[0].Inclination, nil
	}
	last := len(g.stations) - 1
	if md >= g.stations[last].MD {
		return g.stations[last].Inclination, nil
	}
	idx := sort.Search(len(g.stations), func(i int) bool { return g.stations[i].MD >= md })
	lo, hi := g.stations[idx-1], g.stations[idx]
	if hi.MD == lo.MD {
		return hi.Inclination, nil
	}
	t := (md - lo.MD) / (hi.MD - lo.MD)
	return lo.Inclination + t*(hi.Inclination-lo.Inclination), nil
}

// TVDAt returns the true vertical depth at measured depth md.
func (g *FlowPathGeometry) TVDAt(md float64) (float64, error) {
	if md < -1e-9 || md > g.length+1e-9 {
		return 0, &GeometryError{Depth: md, Reason: "outside flow path"}
	}
	if len(g.stations) == 0 {
		return md, nil
	}
	if md <= g.stations[0].MD {
		// above the first station the path continues at its inclination
		inc := g.stations[0].Inclination * math.Pi / 180
		return md * math.Cos(inc), nil
	}
	last := len(g.stations) - 1
	if md >= g.stations[last].MD {
		inc := g.stations[last].Inclination * math.Pi / 180
		return g.tvd[last] + g.stationOffset(0) + (md-g.stations[last].MD)*math.Cos(inc), nil
	}
	idx := sort.Search(len(g.stations), func(i int) bool { return g.stations[i].MD >= md })
	lo := g.stations[idx-1]
	incLo := lo.Inclination * math.Pi / 180
	incAt, _ := g.InclinationAt(md)
	cAt := math.Cos(incAt * math.Pi / 180)
	return g.tvd[idx-1] + g.stationOffset(0) + (md-lo.MD)*(math.Cos(incLo)+cAt)/2, nil
}

// stationOffset is the TVD accumulated above the first station.
func (g *FlowPathGeometry) stationOffset(_ int) float64 {
	if len(g.stations) == 0 || g.stations[0].MD <= 0 {
		return 0
	}
	inc := g.stations[0].Inclination * math.Pi / 180
	return g.stations[0].MD * math.Cos(inc)
}
