package taskqueue

import (
	"context"
	"encoding/json"
	"fmt"
	"go-away-ticket-notifier/pkg/logger"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	apperrors "go-away-ticket-notifier/pkg/app_errors"
)

const (
	// 到期時間排序用的 ZSET，member 為 taskID、score 為 unix milli
	dueSetKey = "notify:tasks:due"
	// 任務內容的 hash key prefix
	taskKeyPrefix = "notify:task:"
)

// RedisTaskQueueImpl 以 Redis ZSET 實作的延遲任務佇列
// 同一 taskID 重複 Enqueue 會覆寫，佇列端因此天然去重
type RedisTaskQueueImpl struct {
	client *redis.Client
}

func NewRedisTaskQueue(client *redis.Client) *RedisTaskQueueImpl {
	return &RedisTaskQueueImpl{
		client: client,
	}
}

func taskKey(taskID string) string {
	return taskKeyPrefix + taskID
}

func (q *RedisTaskQueueImpl) Enqueue(ctx context.Context, task Task) (string, error) {
	if !task.ScheduledAt.After(time.Now()) {
		return "", apperrors.ErrScheduledInPast
	}

	payloadJSON, err := json.Marshal(task.Payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	pipe := q.client.TxPipeline()
	pipe.HSet(ctx, taskKey(task.TaskID), map[string]interface{}{
		"payload":      string(payloadJSON),
		"target_url":   task.TargetURL,
		"scheduled_at": task.ScheduledAt.UTC().Format(time.RFC3339Nano),
	})
	pipe.ZAdd(ctx, dueSetKey, redis.Z{
		Score:  float64(task.ScheduledAt.UnixMilli()),
		Member: task.TaskID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("enqueue task: %w", err)
	}

	return task.TaskID, nil
}

func (q *RedisTaskQueueImpl) Dequeue(ctx context.Context, externalTaskID string) error {
	removed, err := q.client.ZRem(ctx, dueSetKey, externalTaskID).Result()
	if err != nil {
		return fmt.Errorf("zrem task: %w", err)
	}
	if removed == 0 {
		return apperrors.ErrTaskNotFound
	}

	if err := q.client.Del(ctx, taskKey(externalTaskID)).Err(); err != nil {
		return fmt.Errorf("del task data: %w", err)
	}

	return nil
}

func (q *RedisTaskQueueImpl) PopDue(ctx context.Context, now time.Time, limit int) ([]Task, error) {
	ids, err := q.client.ZRangeByScore(ctx, dueSetKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", now.UnixMilli()),
		Count: int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("zrangebyscore: %w", err)
	}

	tasks := make([]Task, 0, len(ids))

	for _, id := range ids {
		// ZREM 回傳 1 才算認領成功，其他 worker 先搶到就跳過
		removed, err := q.client.ZRem(ctx, dueSetKey, id).Result()
		if err != nil {
			return tasks, fmt.Errorf("claim task: %w", err)
		}
		if removed == 0 {
			continue
		}

		task, err := q.loadTask(ctx, id)
		if err != nil {
			logger.WithComponent("taskqueue").Warn("drop unreadable task",
				zap.String("task_id", id), zap.Error(err))
			_ = q.client.Del(ctx, taskKey(id)).Err()
			continue
		}
		tasks = append(tasks, *task)
	}

	return tasks, nil
}

func (q *RedisTaskQueueImpl) Retry(ctx context.Context, task Task, retryAt time.Time) error {
	err := q.client.ZAdd(ctx, dueSetKey, redis.Z{
		Score:  float64(retryAt.UnixMilli()),
		Member: task.TaskID,
	}).Err()
	if err != nil {
		return fmt.Errorf("requeue task: %w", err)
	}
	return nil
}

func (q *RedisTaskQueueImpl) Complete(ctx context.Context, taskID string) error {
	if err := q.client.Del(ctx, taskKey(taskID)).Err(); err != nil {
		return fmt.Errorf("del task data: %w", err)
	}
	return nil
}

func (q *RedisTaskQueueImpl) loadTask(ctx context.Context, taskID string) (*Task, error) {
	values, err := q.client.HGetAll(ctx, taskKey(taskID)).Result()
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, apperrors.ErrTaskNotFound
	}

	var payload CallbackPayload
	if err := json.Unmarshal([]byte(values["payload"]), &payload); err != nil {
		return nil, fmt.Errorf("unmarshal payload: %w", err)
	}

	scheduledAt, err := time.Parse(time.RFC3339Nano, values["scheduled_at"])
	if err != nil {
		return nil, fmt.Errorf("parse scheduled_at: %w", err)
	}

	return &Task{
		TaskID:      taskID,
		Payload:     payload,
		ScheduledAt: scheduledAt,
		TargetURL:   values["target_url"],
	}, nil
}
