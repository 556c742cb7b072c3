package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/gemdown/internal/docstore"
	"github.com/dgallion1/gemdown/internal/gemtext"
	"github.com/dgallion1/gemdown/internal/render"
	"github.com/dgallion1/gemdown/internal/stats"
)

// Worker processes a single conversion job.
type Worker struct {
	store *docstore.Client // nil when no document store is configured
	log   *slog.Logger
	stats *stats.ConvertStats
}

func NewWorker(store *docstore.Client, log *slog.Logger, st *stats.ConvertStats) *Worker {
	return &Worker{
		store: store,
		log:   log,
		stats: st,
	}
}

// Process runs the full conversion pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)
	start := time.Now()
	data := job.FileData()

	// Phase 1: Convert to Markdown.
	job.SetStatus(StatusConverting, "converting")
	md, err := (&render.MarkdownRenderer{}).Render(bytes.NewReader(data))
	if err != nil {
		var me *gemtext.MalformedError
		if errors.As(err, &me) {
			log.Error("malformed gemtext", "kind", me.Kind, "line", me.Line)
		} else {
			log.Error("conversion failed", "error", err)
		}
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}
	job.SetContentHash(ContentHashHex(data))
	job.SetOutputBytes(int64(len(md)))

	// Phase 1.5: Dedup check against the store.
	if w.store != nil {
		existingID, err := w.store.FindByHash(ctx, job.ContentHash)
		if err != nil {
			log.Warn("dedup check failed, proceeding", "error", err)
		} else if existingID != "" {
			log.Info("duplicate document, skipping", "existing_doc_id", existingID)
			job.SetStatus(StatusDupSkipped, "dedup")
			return
		}
	}

	// Phase 2: Render HTML alongside the Markdown.
	job.SetStatus(StatusRendering, "rendering html")
	htmlOut, err := (&render.HTMLRenderer{}).Render(bytes.NewReader(data))
	if err != nil {
		log.Error("html render failed", "error", err)
		job.AddError(fmt.Sprintf("render html: %s", err))
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	title := job.Title
	if title == "" {
		if title = render.Title(htmlOut); title == "" {
			title = job.Filename
		}
	}

	// Phase 3: Store the converted document.
	job.SetStatus(StatusStoring, "storing")
	if w.store == nil {
		job.SetResult(&Result{Title: title, Markdown: md, HTML: htmlOut})
	} else if err := w.storeDocument(ctx, job, title, md, htmlOut); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	w.stats.Record(time.Since(start), int64(len(data)))
	job.SetStatus(StatusCompleted, "done")
	log.Info("conversion complete", "input_bytes", len(data), "output_bytes", len(md))
}

// storeDocument writes the converted document, retrying transient store
// failures with backoff.
func (w *Worker) storeDocument(ctx context.Context, job *Job, title string, md, htmlOut []byte) error {
	doc := docstore.Document{
		Title:       title,
		Filename:    job.Filename,
		ContentHash: job.ContentHash,
		Markdown:    string(md),
		HTML:        string(htmlOut),
		ConvertedAt: time.Now().Format(time.RFC3339),
	}

	var lastErr error
	for attempt := 0; attempt < MaxRetries; attempt++ {
		lastErr = w.store.PutDocument(ctx, job.DocID, doc)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		w.log.Warn("retryable store error", "doc_id", job.DocID, "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
