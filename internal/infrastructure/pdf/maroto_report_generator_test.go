package pdf_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/infrastructure/pdf"
)

func sampleRows() []*entity.MovementReportRow {
	at := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	return []*entity.MovementReportRow{
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
		{
			MovementID:  2,
			ProductName: "Leche",
			Category:    "Perecederos",
			Unit:        "litro",
			Kind:        entity.MovementKindOUT,
			Quantity:    decimal.RequireFromString("12.5"),
			UnitPrice:   decimal.RequireFromString("1.5"),
			Username:    "nutricion1",
			Reason:      "servicio desayuno",
			CreatedAt:   at.Add(2 * time.Hour),
		},
	}
}

// El generador debe producir un documento PDF válido con las filas del reporte.
func TestGenerateMovementReport(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	out, err := gen.GenerateMovementReport(context.Background(), sampleRows())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"), "los bytes deben iniciar con la firma PDF")
}

// Un reporte sin movimientos también se genera: encabezado + tabla vacía + pie.
func TestGenerateMovementReport_SinFilas(t *testing.T) {
	gen := pdf.NewMarotoReportGenerator()

	out, err := gen.GenerateMovementReport(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(out), "%PDF"))
}
