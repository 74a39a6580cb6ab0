package batch

import (
	"context"
	"sync"
	"time"

	"github.com/batmanhot/logistica-inventario/pkg/logger"
)

// Sweeper ejecuta un barrido de estados de lotes.
type Sweeper interface {
	Sweep(ctx context.Context) (int, error)
}

// Scheduler recalcula periódicamente el estado de los lotes para que "por vencer" y
// "vencido" avancen con el calendario aunque nadie edite los lotes.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
	wg     sync.WaitGroup
}

// NewScheduler construye el scheduler. interval <= 0 lo deja deshabilitado.
func NewScheduler(sweeper Sweeper, interval time.Duration, log *logger.Logger) *Scheduler {
	return &Scheduler{sweeper: sweeper, interval: interval, log: log.Component("batch-scheduler")}
}

// Start lanza el barrido inmediato y luego uno por intervalo.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.interval <= 0 {
		s.log.Info().Msg("scheduler de lotes deshabilitado")
		return
	}
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(s.interval)
	s.stop = make(chan struct{})
	s.wg.Add(1)
	go s.run(s.ticker, s.stop)
	s.log.Info().Dur("interval", s.interval).Msg("scheduler de lotes iniciado")
}

// Stop detiene el scheduler y espera al barrido en curso.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.wg.Wait()
	s.ticker = nil
	s.log.Info().Msg("scheduler de lotes detenido")
}

func (s *Scheduler) run(ticker *time.Ticker, stop <-chan struct{}) {
	defer s.wg.Done()
	s.sweep()
	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-stop:
			return
		}
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := s.sweeper.Sweep(ctx); err != nil {
		s.log.Error().Err(err).Msg("error recalculando lotes")
	}
}
