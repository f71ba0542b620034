package verification

import (
	"context"
	"time"

	"careconnect-api/core/logger"
	"careconnect-api/core/worker"
	"careconnect-api/modules/verification/service"

	"github.com/hibiken/asynq"
)

const TaskExpireDocuments = "verification:expire_documents"

// RegisterTasks wires the periodic expiry sweep into the background worker.
// Pending submissions older than expiryDays are flipped to expired once a day.
func RegisterTasks(w *worker.Worker, svc service.VerificationServiceInterface, expiryDays int) error {
	w.HandleFunc(TaskExpireDocuments, func(ctx context.Context, _ *asynq.Task) error {
		olderThan := time.Duration(expiryDays) * 24 * time.Hour
		n, err := svc.ExpireStale(ctx, olderThan)
		if err != nil {
			logger.Error("Verification:ExpireDocumentsTask", err)
			return err
		}
		logger.Info("Verification:ExpireDocumentsTask", "expired", n)
		return nil
	})

	return w.Schedule("@daily", asynq.NewTask(TaskExpireDocuments, nil))
}
