package maintenance

import (
	"context"
	"log"
	"time"
)

// Scheduler runs the reconciler on a fixed interval, replacing the cron
// service the deployment used to depend on. A run that overlaps the next
// tick is harmless; the reconciler is idempotent.
type Scheduler struct {
	reconciler *Reconciler
	interval   time.Duration
}

func NewScheduler(reconciler *Reconciler, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		reconciler: reconciler,
		interval:   interval,
	}
}

// Start launches the tick loop; it stops when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				report, err := s.reconciler.Run(ctx)
				if err != nil {
					log.Printf("maintenance run failed: %v", err)
					continue
				}
				log.Printf(
					"maintenance run %s: purged=%d skipped=%d created=%d updated=%d errors=%d",
					report.RunID, report.Purged, report.PurgeSkipped,
					report.Created, report.Updated, len(report.Errors),
				)
			}
		}
	}()
}
