// ABOUTME: HTTP handler exporting a rack elevation as an Excel workbook
// ABOUTME: One row per unit, top of rack first, with merged cells for multi-unit devices

package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/markalston/assetdex-dcim/models"
)

const (
	elevationSheet = "Elevation"
	freeSpaceSheet = "Free Space"
	xlsxMediaType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ExportRack streams the rack elevation as .xlsx.
func (h *Handler) ExportRack(w http.ResponseWriter, r *http.Request) {
	occupancy, err := h.loadOccupancy(r)
	if err != nil {
		h.writeStoreError(w, err)
		return
	}

	f, err := buildElevationWorkbook(occupancy)
	if err != nil {
		slog.Error("Failed to build rack workbook", "rack", occupancy.Rack.Name, "error", err)
		h.writeError(w, "Failed to export rack", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Type", xlsxMediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", occupancy.Rack.Name+"-elevation.xlsx"))
	w.WriteHeader(http.StatusOK)
	if _, err := f.WriteTo(w); err != nil {
		slog.Error("Failed to write rack workbook", "rack", occupancy.Rack.Name, "error", err)
	}
}

// elevationRow maps a unit to its worksheet row; row 1 holds headers and the
// top unit sits on row 2.
func elevationRow(totalUnits, unit int) int {
	return totalUnits - unit + 2
}

func buildElevationWorkbook(occ models.RackOccupancy) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", elevationSheet); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeElevationSheet(f, occ); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeFreeSpaceSheet(f, occ.FreeSpaces); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func writeElevationSheet(f *excelize.File, occ models.RackOccupancy) error {
	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	device, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#CFE2F3"}},
		Alignment: &excelize.Alignment{Vertical: "center"},
		Border: []excelize.Border{
			{Type: "top", Color: "#6D9EEB", Style: 1},
			{Type: "bottom", Color: "#6D9EEB", Style: 1},
		},
	})
	if err != nil {
		return err
	}

	if err := f.SetSheetRow(elevationSheet, "A1", &[]any{"Unit", "Device", "Height", "Server ID", "Model"}); err != nil {
		return err
	}
	if err := f.SetCellStyle(elevationSheet, "A1", "E1", header); err != nil {
		return err
	}

	total := occ.Rack.TotalUnits
	for unit := total; unit >= 1; unit-- {
		cell, _ := excelize.CoordinatesToCellName(1, elevationRow(total, unit))
		if err := f.SetCellValue(elevationSheet, cell, models.FormatUnit(unit)); err != nil {
			return err
		}
	}

	for _, srv := range occ.Servers {
		if !srv.Racked() {
			continue
		}
		top := elevationRow(total, srv.Interval().EndUnit())
		bottom := elevationRow(total, srv.Unit)

		topCell, _ := excelize.CoordinatesToCellName(2, top)
		bottomCell, _ := excelize.CoordinatesToCellName(2, bottom)
		if err := f.SetSheetRow(elevationSheet, topCell, &[]any{srv.Hostname, srv.UnitHeight, srv.ID, srv.Model}); err != nil {
			return err
		}
		if bottom > top {
			if err := f.MergeCell(elevationSheet, topCell, bottomCell); err != nil {
				return err
			}
		}
		lastCell, _ := excelize.CoordinatesToCellName(5, bottom)
		if err := f.SetCellStyle(elevationSheet, topCell, lastCell, device); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(elevationSheet, "A", "A", 8); err != nil {
		return err
	}
	if err := f.SetColWidth(elevationSheet, "B", "B", 32); err != nil {
		return err
	}
	if err := f.SetColWidth(elevationSheet, "D", "D", 38); err != nil {
		return err
	}
	return f.SetPanes(elevationSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeFreeSpaceSheet(f *excelize.File, spaces []models.FreeSpace) error {
	if _, err := f.NewSheet(freeSpaceSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(freeSpaceSheet, "A1", &[]any{"From", "To", "Size (U)"}); err != nil {
		return err
	}
	for i, space := range spaces {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{models.FormatUnit(space.StartUnit), models.FormatUnit(space.EndUnit), space.Size}
		if err := f.SetSheetRow(freeSpaceSheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
