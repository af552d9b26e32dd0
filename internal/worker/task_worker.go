package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"go-away-ticket-notifier/internal/taskqueue"
	"go-away-ticket-notifier/pkg/logger"
)

const (
	pollInterval    = time.Second
	popBatchSize    = 10
	redeliveryDelay = 30 * time.Second
	requestTimeout  = 30 * time.Second
)

// TaskWorker 輪詢到期任務並對 TargetURL 發出 HTTP 回呼
// 這裡只管投遞；發送端自己靠 (ticketId, type) 冪等，重複投遞無害
type TaskWorker interface {
	Start(ctx context.Context) error
}

type TaskWorkerImpl struct {
	source taskqueue.TaskSource
	client *http.Client
}

func NewTaskWorker(source taskqueue.TaskSource) TaskWorker {
	return &TaskWorkerImpl{
		source: source,
		client: &http.Client{Timeout: requestTimeout},
	}
}

func (w *TaskWorkerImpl) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(pollInterval)
		defer ticker.Stop()

		log := logger.WithComponent("task_worker")
		log.Info("task worker started", zap.Duration("poll_interval", pollInterval))

		for {
			select {
			case <-ctx.Done():
				log.Info("task worker stopped")
				return
			case <-ticker.C:
				w.dispatchDue(ctx)
			}
		}
	}()
	return nil
}

func (w *TaskWorkerImpl) dispatchDue(ctx context.Context) {
	log := logger.WithComponent("task_worker")

	tasks, err := w.source.PopDue(ctx, time.Now(), popBatchSize)
	if err != nil {
		log.Error("pop due tasks failed", zap.Error(err))
		return
	}

	for _, task := range tasks {
		err := w.fire(ctx, task)
		if err != nil && !errors.Is(err, errPermanent) {
			log.Warn("callback failed, will redeliver",
				zap.String("task_id", task.TaskID),
				zap.Duration("redelivery_delay", redeliveryDelay),
				zap.Error(err))
			if err := w.source.Retry(ctx, task, time.Now().Add(redeliveryDelay)); err != nil {
				log.Error("requeue failed", zap.String("task_id", task.TaskID), zap.Error(err))
			}
			continue
		}
		if err != nil {
			// 4xx 表示接收端明確拒絕，重投也不會變好
			log.Warn("callback rejected, dropping task",
				zap.String("task_id", task.TaskID), zap.Error(err))
		}

		if err := w.source.Complete(ctx, task.TaskID); err != nil {
			log.Warn("complete task failed", zap.String("task_id", task.TaskID), zap.Error(err))
		}
	}
}

// errPermanent 標記不值得重投的回呼結果
var errPermanent = errors.New("permanent callback failure")

func (w *TaskWorkerImpl) fire(ctx context.Context, task taskqueue.Task) error {
	body, err := json.Marshal(task.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, task.TargetURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("post callback: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return fmt.Errorf("%w: status %d", errPermanent, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("callback returned status %d", resp.StatusCode)
	}

	return nil
}
