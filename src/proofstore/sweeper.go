package proofstore

import (
	"time"

	"github.com/robfig/cron"

	"github.com/KaushikKC/VeilPay/src/logger"
)

const sweeperName = "ProofTTLSweeper"

// Sweeper expires registry entries past their TTL. Expiry is an explicit
// retrievability policy: a retrieve after the TTL reports NotFound.
type Sweeper struct {
	store Store
	ttl   time.Duration
	cron  *cron.Cron
}

func NewSweeper(store Store, ttl time.Duration) *Sweeper {
	return &Sweeper{
		store: store,
		ttl:   ttl,
		cron:  cron.New(),
	}
}

func (s *Sweeper) StartService() {
	err := s.cron.AddFunc("@every 10m", func() { s.sweep() })
	if err != nil {
		logger.Default().Errorf(err, "Could not add function to %s", sweeperName)
		return
	}
	s.cron.Start()
}

func (s *Sweeper) Stop() {
	s.cron.Stop()
}

func (s *Sweeper) sweep() {
	removed := s.store.Sweep(time.Now().Add(-s.ttl))
	if removed > 0 {
		logger.Default().Infof("%s removed %d expired proofs", sweeperName, removed)
	}
}
