package service

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/model"
	"github.com/codevance-sas/Nodal-API/pkg/logger"
)

// ImportSurveys loads a directional survey workbook for a well. The first
// sheet must carry MD, inclination and azimuth in its first three columns
// after a header row; trajectory quantities are recomputed with the minimum
// curvature method before storage.
func (s *Service) ImportSurveys(file io.Reader, wellID string) (*ImportSurveysResult, error) {
	xlsx, err := excelize.OpenReader(file)
	if err != nil {
		logger.Logger.Errorf("open excel file error: %v", err)
		return nil, err
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, errors.New("workbook has no survey rows")
	}

	var stations []model.Survey
	for rowNum, row := range rows[1:] {
		if len(row) < 3 {
			logger.Logger.Warnf("row %d has %d columns, need 3, skipping", rowNum+2, len(row))
			continue
		}
		md := cast.ToFloat64(row[0])
		inc := cast.ToFloat64(row[1])
		azm := cast.ToFloat64(row[2])
		if len(stations) > 0 && md <= stations[len(stations)-1].MD {
			return nil, fmt.Errorf("row %d: measured depth %.1f not increasing", rowNum+2, md)
		}
		if inc < 0 || inc >= 180 {
			return nil, fmt.Errorf("row %d: inclination %.1f out of range", rowNum+2, inc)
		}
		stations = append(stations, model.Survey{
			ID:     uuid.NewString(),
			WellID: wellID,
			Survey: len(stations) + 1,
			MD:     md,
			Inc:    inc,
			Azm:    azm,
		})
	}
	if len(stations) == 0 {
		return nil, errors.New("no valid survey rows found")
	}
	minimumCurvature(stations)

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()
	if err := tx.Where("well_id = ?", wellID).Delete(&model.Survey{}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.CreateInBatches(stations, batchSize).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return &ImportSurveysResult{ImportedRows: len(stations)}, nil
}

// minimumCurvature fills TVD, NS, EW, DLS and stepout for stations ordered by
// measured depth.
func minimumCurvature(st []model.Survey) {
	rad := math.Pi / 180
	for i := 1; i < len(st); i++ {
		p, c := &st[i-1], &st[i]
		dmd := c.MD - p.MD
		i1, i2 := p.Inc*rad, c.Inc*rad
		a1, a2 := p.Azm*rad, c.Azm*rad

		cosB := math.Cos(i2-i1) - math.Sin(i1)*math.Sin(i2)*(1-math.Cos(a2-a1))
		cosB = math.Max(-1, math.Min(1, cosB))
		beta := math.Acos(cosB)

		rf := 1.0
		if beta > 1e-9 {
			rf = 2 / beta * math.Tan(beta/2)
		}
		c.B = beta
		c.RF = rf

		c.TVD = p.TVD + dmd/2*(math.Cos(i1)+math.Cos(i2))*rf
		c.NS = p.NS + dmd/2*(math.Sin(i1)*math.Cos(a1)+math.Sin(i2)*math.Cos(a2))*rf
		c.EW = p.EW + dmd/2*(math.Sin(i1)*math.Sin(a1)+math.Sin(i2)*math.Sin(a2))*rf
		if dmd > 0 {
			c.DLS = beta / rad * 100 / dmd
		}
		c.Stepout = math.Hypot(c.NS, c.EW)
	}
}

// ListWells returns all registered wells.
func (s *Service) ListWells() ([]model.Well, error) {
	var wells []model.Well
	if err := s.db.Order("well_name").Find(&wells).Error; err != nil {
		return nil, err
	}
	return wells, nil
}

// ListSurveys returns the stored survey for a well ordered by depth.
func (s *Service) ListSurveys(wellID string) ([]model.Survey, error) {
	var surveys []model.Survey
	if err := s.db.Where("well_id = ?", wellID).Order("md").Find(&surveys).Error; err != nil {
		return nil, err
	}
	return surveys, nil
}

// SurveyStations converts a stored survey into traverse geometry stations.
func (s *Service) SurveyStations(wellID string) ([]hydraulics.SurveyStation, error) {
	surveys, err := s.ListSurveys(wellID)
	if err != nil {
		return nil, err
	}
	if len(surveys) == 0 {
		return nil, errors.New("no survey stored for well " + wellID)
	}
	stations := make([]hydraulics.SurveyStation, len(surveys))
	for i, sv := range surveys {
		stations[i] = hydraulics.SurveyStation{MD: sv.MD, Inclination: sv.Inc, Azimuth: sv.Azm}
	}
	return stations, nil
}

// ExportProfile renders a traverse profile as a spreadsheet.
func (s *Service) ExportProfile(res *hydraulics.TraverseResult) (*excelize.File, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"Depth (ft)", "TVD (ft)", "Pressure (psia)", "Temperature (F)",
		"Flow Pattern", "Liquid Holdup", "Mixture Density (lb/ft3)",
		"Elevation (psi/ft)", "Friction (psi/ft)", "Acceleration (psi/ft)", "Total (psi/ft)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, p := range res.Profile {
		values := []any{p.Depth, p.TVD, p.Pressure, p.Temperature,
			string(p.FlowPattern), p.LiquidHoldup, p.MixtureDensity,
			p.ElevationGradient, p.FrictionGradient, p.AccelerationGradient, p.TotalGradient}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}
