package postgres

import (
	"context"
	"fmt"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para reportes y dashboard.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// MovementReport join movimientos × productos ordenado por recencia.
func (r *ReportRepo) MovementReport(limit, offset int) ([]*entity.MovementReportRow, error) {
	query := `
		SELECT m.id, p.name, p.category, p.unit, m.kind, m.quantity, m.unit_price, m.username, m.reason, m.created_at
		FROM movements m
		JOIN products p ON p.id = m.product_id
		ORDER BY m.created_at DESC, m.id DESC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("movement report: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovementReportRow
	for rows.Next() {
		var row entity.MovementReportRow
		if err := rows.Scan(&row.MovementID, &row.ProductName, &row.Category, &row.Unit,
			&row.Kind, &row.Quantity, &row.UnitPrice, &row.Username, &row.Reason, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// DashboardSummary agregados de la pantalla principal en una sola consulta.
func (r *ReportRepo) DashboardSummary() (*entity.DashboardSummary, error) {
	query := `
		SELECT
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM movements),
			(SELECT count(*) FROM products WHERE balance <= min_threshold),
			COALESCE((SELECT sum(balance * unit_price) FROM products), 0)`
	var s entity.DashboardSummary
	err := r.q.QueryRow(context.Background(), query).Scan(
		&s.ProductCount, &s.MovementCount, &s.ReorderCount, &s.StockValue,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard summary: %w", err)
	}
	return &s, nil
}
