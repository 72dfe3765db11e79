package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"atsoptimizer/ats-backend/internal/models"
	"atsoptimizer/ats-backend/internal/repositories"
)

// Worker drives document parsing in the background. Freshly uploaded
// documents are enqueued directly by the upload handler; the poller also
// sweeps the documents table for UPLOADED rows so nothing is lost across
// restarts.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueDocument(documentID uuid.UUID)
}

type worker struct {
	docRepo      repositories.DocumentRepository
	docService   DocumentService
	jobQueue     chan uuid.UUID
	concurrency  int
	pollInterval time.Duration
	wg           sync.WaitGroup
	stopChan     chan struct{}
}

func NewWorker(
	docRepo repositories.DocumentRepository,
	docService DocumentService,
	concurrency int,
	pollInterval time.Duration,
) Worker {
	return &worker{
		docRepo:      docRepo,
		docService:   docService,
		jobQueue:     make(chan uuid.UUID, 100),
		concurrency:  concurrency,
		pollInterval: pollInterval,
		stopChan:     make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processDocuments(ctx, i+1)
	}

	w.wg.Add(1)
	go w.pollUploadedDocuments(ctx)

	log.Println("✅ Worker started successfully")
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker stopped")
}

// EnqueueDocument implements Worker.
func (w *worker) EnqueueDocument(documentID uuid.UUID) {
	select {
	case w.jobQueue <- documentID:
		log.Printf("📥 Document %s enqueued for parsing\n", documentID)
	case <-w.stopChan:
		log.Printf("⚠️  Worker stopped, cannot enqueue document %s\n", documentID)
	}
}

func (w *worker) processDocuments(ctx context.Context, workerID int) {
	defer w.wg.Done()
	log.Printf("🚀 Worker %d started processing documents\n", workerID)

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case documentID := <-w.jobQueue:
			log.Printf("👷 Worker #%d parsing document %s\n", workerID, documentID)
			if err := w.docService.Parse(ctx, documentID); err != nil {
				log.Printf("❌ Worker #%d failed to parse document %s: %v\n", workerID, documentID, err)
			} else {
				log.Printf("✅ Worker #%d completed document %s\n", workerID, documentID)
			}
		}
	}
}

func (w *worker) pollUploadedDocuments(ctx context.Context) {
	defer w.wg.Done()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	log.Println("🔄 Starting uploaded documents poller")

	for {
		select {
		case <-w.stopChan:
			log.Println("🔄 Uploaded documents poller stopped")
			return
		case <-ticker.C:
			pending, err := w.docRepo.FindByStatus(models.DocumentUploaded, 10)
			if err != nil {
				log.Printf("⚠️  Failed to fetch uploaded documents: %v\n", err)
				continue
			}

			if len(pending) > 0 {
				log.Printf("📋 Found %d uploaded documents awaiting parsing\n", len(pending))
			}

			for _, doc := range pending {
				w.EnqueueDocument(doc.ID)
			}
		}
	}
}
