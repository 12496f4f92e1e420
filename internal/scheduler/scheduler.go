package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gacc-hospital/snd-stock/internal/domain/entity"
	"github.com/gacc-hospital/snd-stock/internal/domain/repository"
	"github.com/gacc-hospital/snd-stock/pkg/logger"
)

// Scheduler barrido periódico de stock bajo: registra en el log un aviso por
// producto bajo el umbral y una entrada resumen en la bitácora.
type Scheduler struct {
	cron        *cron.Cron
	spec        string
	productRepo repository.ProductRepository
	auditRepo   repository.AuditRepository
	log         *logger.Logger
}

// New construye el scheduler. spec es una expresión cron de 5 campos
// (min, hora, día, mes, día-semana); vacía desactiva el barrido.
func New(spec string, productRepo repository.ProductRepository, auditRepo repository.AuditRepository, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		spec:        spec,
		productRepo: productRepo,
		auditRepo:   auditRepo,
		log:         log.Component("scheduler"),
	}
}

// Start programa el barrido y arranca el cron. No hace nada si spec está vacío.
func (s *Scheduler) Start() error {
	if s.spec == "" {
		s.log.Info().Msg("barrido de stock bajo desactivado")
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.sweepLowStock); err != nil {
		return fmt.Errorf("programar barrido de stock bajo: %w", err)
	}
	s.cron.Start()
	s.log.Info().Str("cron", s.spec).Msg("barrido de stock bajo programado")
	return nil
}

// Stop detiene el cron y espera a que termine el barrido en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// sweepLowStock lista los productos con saldo <= umbral, avisa por log y deja
// una sola entrada resumen en la bitácora.
func (s *Scheduler) sweepLowStock() {
	products, err := s.productRepo.ListLowStock()
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de stock bajo")
		return
	}
	for _, p := range products {
		s.log.Warn().
			Int64("product_id", p.ID).
			Str("product", p.Name).
			Str("balance", p.Balance.String()).
			Str("min_threshold", p.MinThreshold.String()).
			Msg("producto en nivel de reposición")
	}
	if err := s.auditRepo.Append(&entity.AuditEntry{
		Username:  "system",
		Action:    entity.AuditLowStockSweep,
		Detail:    fmt.Sprintf("productos en nivel de reposición: %d", len(products)),
		CreatedAt: time.Now(),
	}); err != nil {
		s.log.Error().Err(err).Msg("registrar barrido en bitácora")
	}
}
