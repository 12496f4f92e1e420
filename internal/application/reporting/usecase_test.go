package reporting_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gacc-hospital/snd-stock/internal/application/dto"
	"github.com/gacc-hospital/snd-stock/internal/application/reporting"
	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
)

type fakeReportRepo struct {
	rows    []*entity.MovementReportRow
	summary *entity.DashboardSummary

	gotLimit  int
	gotOffset int
}

func (r *fakeReportRepo) MovementReport(limit, offset int) ([]*entity.MovementReportRow, error) {
	r.gotLimit, r.gotOffset = limit, offset
	return r.rows, nil
}

func (r *fakeReportRepo) DashboardSummary() (*entity.DashboardSummary, error) {
	return r.summary, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditEntry
}

func (r *fakeAuditRepo) Append(e *entity.AuditEntry) error {
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeAuditRepo) ListRecent(limit, offset int) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

type fakePDFGen struct {
	gotRows int
}

func (g *fakePDFGen) GenerateMovementReport(ctx context.Context, rows []*entity.MovementReportRow) ([]byte, error) {
	g.gotRows = len(rows)
	return []byte("%PDF-1.7"), nil
}

func sampleRows() []*entity.MovementReportRow {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []*entity.MovementReportRow{
		{
			MovementID:  2,
			ProductName: "Arroz",
			Category:    "Secos",
			Unit:        "kg",
			Kind:        entity.MovementKindOUT,
			Quantity:    decimal.RequireFromString("45"),
			UnitPrice:   decimal.RequireFromString("2.0"),
			Username:    "nutricion1",
			Reason:      "servicio almuerzo",
			CreatedAt:   at.Add(time.Hour),
		},
		{
			MovementID:  1,
			ProductName: "Arroz",
			Category:    "Secos",
			Unit:        "kg",
			Kind:        entity.MovementKindIN,
			Quantity:    decimal.RequireFromString("50"),
			UnitPrice:   decimal.RequireFromString("2.0"),
			Username:    "admin",
			CreatedAt:   at,
		},
	}
}

func TestExportCSV(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows()}
	uc := reporting.NewReportUseCase(repo, &fakeAuditRepo{}, &fakePDFGen{})

	out, err := uc.ExportCSV(dto.PageRequest{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(out), "\n"), "\n")
	require.Len(t, lines, 3, "encabezado + dos filas")
	assert.Equal(t, "fecha,producto,categoria,unidad,tipo,cantidad,precio_unitario,usuario,motivo", lines[0])
	assert.Equal(t, "2025-03-14 10:30:00,Arroz,Secos,kg,OUT,45,2,nutricion1,servicio almuerzo", lines[1])
	assert.Equal(t, "2025-03-14 09:30:00,Arroz,Secos,kg,IN,50,2,admin,", lines[2])
}

func TestExportCSV_SinFilas(t *testing.T) {
	uc := reporting.NewReportUseCase(&fakeReportRepo{}, &fakeAuditRepo{}, &fakePDFGen{})

	out, err := uc.ExportCSV(dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, "fecha,producto,categoria,unidad,tipo,cantidad,precio_unitario,usuario,motivo\n", string(out))
}

func TestMovementReport_PaginacionPorDefecto(t *testing.T) {
	repo := &fakeReportRepo{rows: sampleRows()}
	uc := reporting.NewReportUseCase(repo, &fakeAuditRepo{}, &fakePDFGen{})

	rows, err := uc.MovementReport(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 50, repo.gotLimit, "límite por defecto")
	assert.Equal(t, 0, repo.gotOffset)
	assert.Equal(t, int64(2), rows[0].MovementID, "más reciente primero, tal como lo entrega el repo")
}

func TestExportPDF_DelegaAlGenerador(t *testing.T) {
	gen := &fakePDFGen{}
	uc := reporting.NewReportUseCase(&fakeReportRepo{rows: sampleRows()}, &fakeAuditRepo{}, gen)

	out, err := uc.ExportPDF(context.Background(), dto.PageRequest{Limit: 10})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
	assert.Equal(t, 2, gen.gotRows)
}

func TestDashboard(t *testing.T) {
	repo := &fakeReportRepo{summary: &entity.DashboardSummary{
		ProductCount:  3,
		MovementCount: 12,
		ReorderCount:  1,
		StockValue:    decimal.RequireFromString("145.50"),
	}}
	uc := reporting.NewReportUseCase(repo, &fakeAuditRepo{}, &fakePDFGen{})

	out, err := uc.Dashboard()
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.ProductCount)
	assert.Equal(t, int64(12), out.MovementCount)
	assert.Equal(t, int64(1), out.ReorderCount)
	assert.Equal(t, "145.5", out.StockValue.String())
}

func TestAuditLog(t *testing.T) {
	auditRepo := &fakeAuditRepo{entries: []*entity.AuditEntry{
		{ID: 1, Username: "admin", Action: entity.AuditLogin, CreatedAt: time.Now()},
		{ID: 2, Username: "admin", Action: entity.AuditMovement, Detail: "IN 50 de Arroz (saldo: 50)", CreatedAt: time.Now()},
	}}
	uc := reporting.NewReportUseCase(&fakeReportRepo{}, auditRepo, &fakePDFGen{})

	entries, err := uc.AuditLog(dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.AuditLogin, entries[0].Action)
	assert.Equal(t, "IN 50 de Arroz (saldo: 50)", entries[1].Detail)
}
