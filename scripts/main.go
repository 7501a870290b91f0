// Command batch runs pressure traverses for every scenario row of a workbook
// and writes the results to a second sheet-per-column layout. Expected input
// columns: method, depth, deviation, tubing ID, roughness, oil rate, water
// rate, gas rate, API, water gravity, gas gravity, bubble point, surface
// temperature, gradient, surface pressure.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/codevance-sas/Nodal-API/hydraulics"
	"github.com/codevance-sas/Nodal-API/pvt"
)

const columnCount = 15

func main() {
	input := flag.String("i", "", "scenario workbook (.xlsx)")
	output := flag.String("o", "results.xlsx", "output workbook")
	steps := flag.Int("n", 100, "depth discretization points")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		return
	}

	xlsx, err := excelize.OpenFile(*input)
	if err != nil {
		fmt.Printf("open %s failed: %v\n", *input, err)
		return
	}
	defer xlsx.Close()

	rows, err := xlsx.GetRows(xlsx.GetSheetName(0))
	if err != nil {
		fmt.Printf("read rows failed: %v\n", err)
		return
	}
	if len(rows) < 2 {
		fmt.Println("workbook has no scenario rows")
		return
	}

	out := excelize.NewFile()
	defer out.Close()
	sheet := out.GetSheetName(0)
	headers := []string{"Method", "BHP (psia)", "Drop (psi)",
		"Elevation %", "Friction %", "Acceleration %", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		out.SetCellValue(sheet, cell, h)
	}

	port := pvt.BlackOil{}
	start := time.Now()
	var ran, failed int
	for rowNum, row := range rows[1:] {
		if len(row) < columnCount {
			fmt.Printf("row %d has %d columns, need %d, skipping\n", rowNum+2, len(row), columnCount)
			continue
		}

		method := row[0]
		fluid := hydraulics.FluidDescription{
			OilRate:             cast.ToFloat64(row[5]),
			WaterRate:           cast.ToFloat64(row[6]),
			GasRate:             cast.ToFloat64(row[7]),
			OilGravity:          cast.ToFloat64(row[8]),
			WaterGravity:        cast.ToFloat64(row[9]),
			GasGravity:          cast.ToFloat64(row[10]),
			BubblePoint:         cast.ToFloat64(row[11]),
			SurfaceTemperature:  cast.ToFloat64(row[12]),
			TemperatureGradient: cast.ToFloat64(row[13]),
		}
		surfacePressure := cast.ToFloat64(row[14])

		outRow := rowNum + 2
		setCell := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, outRow)
			out.SetCellValue(sheet, cell, v)
		}
		setCell(1, method)

		res, err := runScenario(method, row, fluid, surfacePressure, *steps, port)
		ran++
		if err != nil {
			failed++
			setCell(7, err.Error())
			continue
		}
		setCell(2, res.BottomholePressure)
		setCell(3, res.TotalPressureDrop)
		setCell(4, res.ElevationPct)
		setCell(5, res.FrictionPct)
		setCell(6, res.AccelerationPct)
	}

	if err := out.SaveAs(*output); err != nil {
		fmt.Printf("write %s failed: %v\n", *output, err)
		return
	}
	fmt.Printf("ran %d scenarios (%d failed) in %.2fs, results in %s\n",
		ran, failed, time.Since(start).Seconds(), *output)
}

func runScenario(method string, row []string, fluid hydraulics.FluidDescription,
	surfacePressure float64, steps int, port hydraulics.PropertyPort) (*hydraulics.TraverseResult, error) {

	corr, err := hydraulics.New(method)
	if err != nil {
		return nil, err
	}
	geom, err := hydraulics.NewSimpleGeometry(
		cast.ToFloat64(row[1]), // depth
		cast.ToFloat64(row[2]), // deviation
		cast.ToFloat64(row[3]), // tubing ID
		cast.ToFloat64(row[4]), // roughness
		steps)
	if err != nil {
		return nil, err
	}
	return hydraulics.CalculatePressureProfile(context.Background(), corr, geom,
		fluid, port, surfacePressure, true, hydraulics.StepControl{})
}
