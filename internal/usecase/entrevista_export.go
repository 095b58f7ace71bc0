package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/security"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"VACANTE", "AREA", "SUELDO", "PROSPECTO", "NOMBRE", "CORREO", "FECHA ENTREVISTA", "RECLUTADO", "NOTAS",
}

func exportRow(d domain.EntrevistaDetail) []interface{} {
	var area, nombre, correo string
	var sueldo interface{} = ""
	if d.Vacante != nil {
		if d.Vacante.Area != nil {
			area = *d.Vacante.Area
		}
		if d.Vacante.Sueldo != nil {
			sueldo = *d.Vacante.Sueldo
		}
	}
	if d.Prospecto != nil {
		nombre = d.Prospecto.Nombre
		correo = d.Prospecto.Correo
	}
	reclutado := "NO"
	if d.Reclutado {
		reclutado = "SI"
	}
	var notas string
	if d.Notas != nil {
		notas = *d.Notas
	}
	return []interface{}{
		d.VacanteID, area, sueldo, d.ProspectoID, nombre, correo, d.FechaEntrevista.String(), reclutado, notas,
	}
}

func (u *entrevistaUsecase) Export(ctx context.Context, format string) ([]byte, string, error) {
	entrevistas, err := u.list(ctx, domain.EntrevistaFilter{})
	if err != nil {
		return nil, "", err
	}

	var (
		data []byte
		ext  string
	)
	switch format {
	case "xlsx", "":
		data, err = exportExcel(entrevistas)
		ext = "xlsx"
	case "csv":
		data, err = exportCSV(entrevistas)
		ext = "csv"
	default:
		return nil, "", apperror.BadRequest(fmt.Sprintf("Unsupported export format: %s", format))
	}
	if err != nil {
		return nil, "", internalError(ctx, "Error exporting the entrevistas", err)
	}

	security.DefaultLogger().Log(ctx, security.SecurityEvent{
		Event:        security.EventDataExport,
		SubjectType:  "user_id",
		SubjectValue: logger.UserID(ctx),
		RequestID:    logger.RequestID(ctx),
		Details:      map[string]interface{}{"rows": len(entrevistas), "format": ext},
	})

	filename := fmt.Sprintf("entrevistas_%s.%s", time.Now().Format("20060102_150405"), ext)
	return data, filename, nil
}

func exportExcel(entrevistas []domain.EntrevistaDetail) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Entrevistas"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(exportHeaders))
	for i, h := range exportHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	if err := f.SetCellStyle(sheet, "A1", endCell, headerStyle); err != nil {
		return nil, err
	}

	for i, d := range entrevistas {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := exportRow(d)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(exportHeaders))
	if err := f.SetColWidth(sheet, "A", lastCol, 20); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(entrevistas []domain.EntrevistaDetail) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeaders); err != nil {
		return nil, err
	}
	for _, d := range entrevistas {
		row := exportRow(d)
		record := make([]string, len(row))
		for i, v := range row {
			switch val := v.(type) {
			case float64:
				record[i] = strconv.FormatFloat(val, 'f', -1, 64)
			default:
				record[i] = fmt.Sprint(val)
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
