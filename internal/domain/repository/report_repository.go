package repository

import "github.com/gacc-hospital/snd-stock/internal/domain/entity"

// ReportRepository consultas de solo lectura para reportes y dashboard.
type ReportRepository interface {
	// MovementReport join movimientos × productos, más reciente primero.
	MovementReport(limit, offset int) ([]*entity.MovementReportRow, error)
	// DashboardSummary agregados de la pantalla principal en una sola consulta.
	DashboardSummary() (*entity.DashboardSummary, error)
}
