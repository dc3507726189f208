package worker

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"veriface-backend/internal/models"
	"veriface-backend/internal/services"
)

// Pool drains the sheet-export queue. Export rides behind the ledger: jobs
// are enqueued only after a successful attendance write, and a failed export
// is logged and dropped rather than retried into the ledger's failure domain.
type Pool struct {
	redis       *redis.Client
	exporter    *services.SheetsExporter
	workerCount int
	stopChan    chan struct{}
}

func NewPool(redisClient *redis.Client, exporter *services.SheetsExporter, workerCount int) *Pool {
	return &Pool{
		redis:       redisClient,
		exporter:    exporter,
		workerCount: workerCount,
		stopChan:    make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.workerCount; i++ {
		go p.worker(i)
	}
	log.Printf("Started %d export worker goroutines", p.workerCount)
}

func (p *Pool) Stop() {
	close(p.stopChan)
}

func (p *Pool) worker(id int) {
	for {
		select {
		case <-p.stopChan:
			log.Printf("Export worker %d shutting down", id)
			return
		default:
		}

		ctx := context.Background()

		// BLPOP with 30s timeout
		result, err := p.redis.BLPop(ctx, 30*time.Second, services.ExportQueue).Result()
		if err != nil {
			continue // Timeout or error, retry
		}

		if len(result) < 2 {
			continue
		}

		var job models.ExportJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			log.Printf("Export worker %d: failed to parse job: %v", id, err)
			continue
		}

		appendCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
		if err := p.exporter.Append(appendCtx, job.Roll, job.FullName, job.VerifiedAt); err != nil {
			log.Printf("Export worker %d: %v", id, err)
		}
		cancel()
	}
}
