package scheduling

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	classRepo "pirouette/database/repository/class"
	"pirouette/models"
	"pirouette/utils"
)

// submit persists the batch using the configured strategy and reports the
// aggregate outcome. Succeeded creates are never rolled back on partial
// failure; the caller is always told how many drafts were attempted and how
// many landed. On any success the studio's class-list cache is invalidated
// and reminders are enqueued for the created classes.
func (e *DefaultSchedulingEngine) submit(ctx context.Context, studioID string, drafts []models.ClassDraft) (*models.BatchResult, error) {
	now := time.Now().UTC()
	records := make([]models.Class, len(drafts))
	for i, d := range drafts {
		records[i] = d.Record(now)
	}

	var (
		result  *models.BatchResult
		created []models.Class
		err     error
	)
	switch {
	case len(records) == 1:
		// A one-instance batch goes through the single-create call.
		result, created, err = e.submitSingle(ctx, records[0])
	case e.Strategy == "concurrent":
		result, created = e.submitConcurrent(ctx, records)
	default:
		result, created, err = e.submitBulk(ctx, records)
	}

	e.Logger.Info("schedule batch submitted",
		zap.String("studioId", studioID),
		zap.String("strategy", e.Strategy),
		zap.Int("submitted", result.Submitted),
		zap.Int("succeeded", result.Succeeded),
		zap.Int("failed", result.Failed))

	if result.Succeeded > 0 {
		utils.InvalidateClassList(ctx, studioID)
		if e.Reminders != nil {
			if remErr := e.Reminders.ScheduleClassReminders(ctx, created); remErr != nil {
				e.Logger.Warn("failed to schedule class reminders", zap.Error(remErr))
			}
		}
	}
	return result, err
}

func (e *DefaultSchedulingEngine) submitSingle(ctx context.Context, record models.Class) (*models.BatchResult, []models.Class, error) {
	result := &models.BatchResult{Submitted: 1}
	if err := e.Repo.Create(ctx, &record); err != nil {
		result.Failed = 1
		result.Failures = []string{err.Error()}
		return result, nil, fmt.Errorf("class creation failed: %w", err)
	}
	result.Succeeded = 1
	return result, []models.Class{record}, nil
}

// submitBulk issues one unordered bulk create. The persistence layer either
// accepts the whole batch or reports structured per-index failures.
func (e *DefaultSchedulingEngine) submitBulk(ctx context.Context, records []models.Class) (*models.BatchResult, []models.Class, error) {
	result := &models.BatchResult{Submitted: len(records)}

	inserted, failures, err := e.Repo.CreateMany(ctx, records)
	if err != nil {
		result.Failed = len(records)
		result.Failures = []string{err.Error()}
		return result, nil, fmt.Errorf("bulk class creation failed: %w", err)
	}

	failedIdx := make(map[int]bool, len(failures))
	for _, f := range failures {
		failedIdx[f.Index] = true
		result.Failures = append(result.Failures, fmt.Sprintf("class %d: %s", f.Index+1, f.Message))
	}

	result.Succeeded = inserted
	result.Failed = len(failures)

	created := make([]models.Class, 0, inserted)
	for i, rec := range records {
		if !failedIdx[i] {
			created = append(created, rec)
		}
	}
	return result, created, nil
}

// submitConcurrent issues N independent creates, all fired before any is
// awaited, to bound latency. Completion order is irrelevant: each record is
// self-contained and failures are tallied per index.
func (e *DefaultSchedulingEngine) submitConcurrent(ctx context.Context, records []models.Class) (*models.BatchResult, []models.Class) {
	result := &models.BatchResult{Submitted: len(records)}
	failures := make([]classRepo.BulkFailure, 0)

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for i := range records {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			rec := records[idx]
			if err := e.Repo.Create(ctx, &rec); err != nil {
				mu.Lock()
				failures = append(failures, classRepo.BulkFailure{Index: idx, Message: err.Error()})
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()

	failedIdx := make(map[int]bool, len(failures))
	for _, f := range failures {
		failedIdx[f.Index] = true
		result.Failures = append(result.Failures, fmt.Sprintf("class %d: %s", f.Index+1, f.Message))
	}
	result.Failed = len(failures)
	result.Succeeded = len(records) - len(failures)

	created := make([]models.Class, 0, result.Succeeded)
	for i, rec := range records {
		if !failedIdx[i] {
			created = append(created, rec)
		}
	}
	return result, created
}
