package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

// StockReportPDFGenerator puerto para la representación PDF del reporte de movimientos.
type StockReportPDFGenerator interface {
	GenerateMovementReport(ctx context.Context, rows []*entity.MovementReportRow) ([]byte, error)
}

// ReportUseCase consultas de solo lectura: reporte de movimientos (JSON, CSV,
// PDF), dashboard y bitácora.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
	auditRepo  repository.AuditRepository
	pdfGen     StockReportPDFGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reportRepo repository.ReportRepository, auditRepo repository.AuditRepository, pdfGen StockReportPDFGenerator) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, auditRepo: auditRepo, pdfGen: pdfGen}
}

// MovementReport join movimientos × productos, más reciente primero.
func (uc *ReportUseCase) MovementReport(page dto.PageRequest) ([]*dto.MovementReportRow, error) {
	page.DefaultPage()
	rows, err := uc.reportRepo.MovementReport(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.MovementReportRow, 0, len(rows))
	for _, r := range rows {
		out = append(out, toReportRow(r))
	}
	return out, nil
}

// ExportCSV serializa el reporte como texto delimitado para descarga.
func (uc *ReportUseCase) ExportCSV(page dto.PageRequest) ([]byte, error) {
	page.DefaultPage()
	rows, err := uc.reportRepo.MovementReport(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	header := []string{"fecha", "producto", "categoria", "unidad", "tipo", "cantidad", "precio_unitario", "usuario", "motivo"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("csv: escribir encabezado: %w", err)
	}
	for _, r := range rows {
		record := []string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ProductName,
			r.Category,
			r.Unit,
			r.Kind,
			r.Quantity.String(),
			r.UnitPrice.String(),
			r.Username,
			r.Reason,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("csv: escribir fila: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: flush: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportPDF renderiza el reporte como PDF.
func (uc *ReportUseCase) ExportPDF(ctx context.Context, page dto.PageRequest) ([]byte, error) {
	page.DefaultPage()
	rows, err := uc.reportRepo.MovementReport(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateMovementReport(ctx, rows)
}

// Dashboard agregados de la pantalla principal.
func (uc *ReportUseCase) Dashboard() (*dto.DashboardResponse, error) {
	s, err := uc.reportRepo.DashboardSummary()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		ProductCount:  s.ProductCount,
		MovementCount: s.MovementCount,
		ReorderCount:  s.ReorderCount,
		StockValue:    s.StockValue,
	}, nil
}

// AuditLog bitácora de acciones, más reciente primero (pantalla solo ADMIN).
func (uc *ReportUseCase) AuditLog(page dto.PageRequest) ([]*dto.AuditEntryResponse, error) {
	page.DefaultPage()
	entries, err := uc.auditRepo.ListRecent(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, &dto.AuditEntryResponse{
			ID:        e.ID,
			Username:  e.Username,
			Action:    e.Action,
			Detail:    e.Detail,
			CreatedAt: e.CreatedAt,
		})
	}
	return out, nil
}

func toReportRow(r *entity.MovementReportRow) *dto.MovementReportRow {
	return &dto.MovementReportRow{
		MovementID:  r.MovementID,
		ProductName: r.ProductName,
		Category:    r.Category,
		Unit:        r.Unit,
		Kind:        r.Kind,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		Username:    r.Username,
		Reason:      r.Reason,
		CreatedAt:   r.CreatedAt,
	}
}
