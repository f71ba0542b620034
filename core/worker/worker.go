package worker

import (
	"fmt"

	"careconnect-api/core/config"
	"careconnect-api/core/logger"

	"github.com/hibiken/asynq"
)

// Worker wraps the asynq server and its periodic scheduler. Modules register
// handlers and cron entries before Start.
type Worker struct {
	srv       *asynq.Server
	scheduler *asynq.Scheduler
	mux       *asynq.ServeMux
}

func NewWorker(redisCfg config.RedisConfig, workerCfg config.WorkerConfig) *Worker {
	redisOpt := asynq.RedisClientOpt{
		Addr:     fmt.Sprintf("%s:%d", redisCfg.Host, redisCfg.Port),
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	}

	srv := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: workerCfg.Concurrency,
	})

	return &Worker{
		srv:       srv,
		scheduler: asynq.NewScheduler(redisOpt, nil),
		mux:       asynq.NewServeMux(),
	}
}

func (w *Worker) HandleFunc(taskType string, handler asynq.HandlerFunc) {
	w.mux.HandleFunc(taskType, handler)
}

// Schedule registers a periodic task; spec uses cron syntax or "@every ...".
func (w *Worker) Schedule(spec string, task *asynq.Task) error {
	entryID, err := w.scheduler.Register(spec, task)
	if err != nil {
		logger.Error("Worker:Schedule:Register", err)
		return err
	}
	logger.Info("Worker:Schedule:Registered", "task", task.Type(), "spec", spec, "entry_id", entryID)
	return nil
}

func (w *Worker) Start() error {
	if err := w.srv.Start(w.mux); err != nil {
		return fmt.Errorf("start worker server: %w", err)
	}
	if err := w.scheduler.Start(); err != nil {
		w.srv.Shutdown()
		return fmt.Errorf("start scheduler: %w", err)
	}
	logger.Info("Worker started")
	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.srv.Shutdown()
	logger.Info("Worker stopped")
}
