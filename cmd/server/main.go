package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"go-away-ticket-notifier/config"
	"go-away-ticket-notifier/internal/channel"
	"go-away-ticket-notifier/internal/database"
	"go-away-ticket-notifier/internal/handler"
	"go-away-ticket-notifier/internal/repository"
	"go-away-ticket-notifier/internal/service"
	"go-away-ticket-notifier/internal/taskqueue"
	"go-away-ticket-notifier/internal/worker"
)

func main() {
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	loc, err := time.LoadLocation(cfg.Notifier.Timezone)
	if err != nil {
		log.Fatalf("Failed to load timezone %q: %v", cfg.Notifier.Timezone, err)
	}

	ticketRepo := repository.NewTicketRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	taskQueue := taskqueue.NewRedisTaskQueue(rdb)

	channels := make([]channel.Channel, 0, len(cfg.Notifier.ChannelWebhookURLs))
	for i, url := range cfg.Notifier.ChannelWebhookURLs {
		channels = append(channels, channel.NewWebhookChannel(
			fmt.Sprintf("webhook-%d", i+1), url))
	}
	alerter := channel.NewWebhookAlerter(cfg.Notifier.AlertWebhookURL)

	schedulingService := service.NewSchedulingService(loc)
	schedulerService := service.NewSchedulerService(notificationRepo, taskQueue, cfg.Notifier.CallbackURL)
	notificationService := service.NewNotificationService(
		ticketRepo, notificationRepo, channels, alerter, loc, cfg.Notifier)
	ingestService := service.NewTicketIngestService(
		ticketRepo, notificationRepo, schedulingService, schedulerService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	taskWorker := worker.NewTaskWorker(taskQueue)
	if err := taskWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start task worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewTicketHandler(ingestService, ticketRepo).RegisterRoutes(router)
	handler.NewNotificationHandler(notificationService).RegisterRoutes(router)

	router.Run() // デフォルトで0.0.0.0:8080で待機します
}
