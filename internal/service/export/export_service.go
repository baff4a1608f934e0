package export

import (
	"context"
	"fmt"
	"github.com/ougirez/forestwatch/internal/domain"
	"github.com/ougirez/forestwatch/internal/pkg/constants"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
	"io"
	"strings"
)

const (
	SheetLossTrend = "Loss_Trend"
	SheetDrivers   = "Drivers"
	SheetEmissions = "Emissions"
)

type Source interface {
	LossTrend(ctx context.Context, country string) ([]domain.LossTrendPoint, error)
	Drivers(ctx context.Context, country string) ([]domain.DriverBreakdown, error)
	Emissions(ctx context.Context, country string) ([]domain.EmissionsPoint, error)
}

type Service struct {
	src Source
}

func NewExportService(src Source) *Service {
	return &Service{src: src}
}

// Workbook builds a spreadsheet with the loss trend, driver breakdown and
// emissions of one country. Any failed load fails the export.
func (s *Service) Workbook(ctx context.Context, country string) (*excelize.File, error) {
	if strings.TrimSpace(country) == "" {
		return nil, constants.ErrBadRequest
	}

	var (
		trend     []domain.LossTrendPoint
		drivers   []domain.DriverBreakdown
		emissions []domain.EmissionsPoint
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		trend, err = s.src.LossTrend(egCtx, country)
		return err
	})
	eg.Go(func() (err error) {
		drivers, err = s.src.Drivers(egCtx, country)
		return err
	})
	eg.Go(func() (err error) {
		emissions, err = s.src.Emissions(egCtx, country)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("export %s: %w", country, err)
	}

	lossRows := make([][]interface{}, 0, len(trend))
	for _, p := range trend {
		var primary interface{}
		if p.PrimaryForestLossHa != nil {
			primary = *p.PrimaryForestLossHa
		}
		lossRows = append(lossRows, []interface{}{p.Year, p.TreeCoverLossHa, primary})
	}

	driverRows := make([][]interface{}, 0, len(drivers))
	for _, d := range drivers {
		var pct interface{}
		if d.Percentage != nil {
			pct = *d.Percentage
		}
		driverRows = append(driverRows, []interface{}{d.Driver, d.Hectares, pct})
	}

	emissionRows := make([][]interface{}, 0, len(emissions))
	for _, e := range emissions {
		emissionRows = append(emissionRows, []interface{}{e.Year, e.TreeCoverLossHa, e.CarbonGrossEmissionsMgCO})
	}

	return newWorkbook([]sheet{
		{name: SheetLossTrend, header: []string{"Year", "Tree cover loss (ha)", "Primary forest loss (ha)"}, rows: lossRows},
		{name: SheetDrivers, header: []string{"Driver", "Hectares", "Percentage"}, rows: driverRows},
		{name: SheetEmissions, header: []string{"Year", "Tree cover loss (ha)", "Gross emissions (MgCO2e)"}, rows: emissionRows},
	})
}

type sheet struct {
	name   string
	header []string
	rows   [][]interface{}
}

// newWorkbook writes sheets in order, the first one replacing the default
// sheet. The file is closed when any step fails.
func newWorkbook(sheets []sheet) (f *excelize.File, err error) {
	f = excelize.NewFile()
	defer func() {
		if err != nil {
			_ = f.Close()
			f = nil
		}
	}()

	for i, sh := range sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sh.name); err != nil {
				return f, fmt.Errorf("SetSheetName: %w", err)
			}
		} else if _, err := f.NewSheet(sh.name); err != nil {
			return f, fmt.Errorf("NewSheet: %w", err)
		}
		if err := writeSheet(f, sh.name, sh.header, sh.rows); err != nil {
			return f, err
		}
	}
	return f, nil
}

// Write streams the workbook of country to w.
func (s *Service) Write(ctx context.Context, country string, w io.Writer) error {
	f, err := s.Workbook(ctx, country)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("excelize.WriteTo: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []string, rows [][]interface{}) error {
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("SetCellValue %s!%s: %w", sheet, cell, err)
		}
		if err := f.SetColWidth(sheet, cell[:len(cell)-1], cell[:len(cell)-1], 22); err != nil {
			return fmt.Errorf("SetColWidth: %w", err)
		}
	}

	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("SetSheetRow %s!%s: %w", sheet, cell, err)
		}
	}
	return nil
}
