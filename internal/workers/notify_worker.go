package workers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/zhiren/talenthub/internal/models"
	"github.com/zhiren/talenthub/internal/services"
)

// NotifyWorkerPool consumes HR events from a Redis stream and turns them into
// persisted (and pushed) notifications. Consumers run until ctx is cancelled.
type NotifyWorkerPool struct {
	Redis         *redis.Client
	Notifications services.NotificationService
	NumWorkers    int

	Logger *logrus.Logger

	Stream         string
	Group          string
	ConsumerPrefix string
}

func (p *NotifyWorkerPool) Start(ctx context.Context) error {
	if p.Redis == nil || p.Notifications == nil {
		return errors.New("NotifyWorkerPool missing dependency: Redis/Notifications must be set")
	}
	if p.Stream == "" {
		p.Stream = DefaultEventStream
	}
	if p.Group == "" {
		p.Group = "notify-workers"
	}
	if p.ConsumerPrefix == "" {
		p.ConsumerPrefix = "n"
	}
	if p.NumWorkers <= 0 {
		p.NumWorkers = 2
	}
	if p.Logger == nil {
		p.Logger = logrus.New()
	}

	_ = p.Redis.XGroupCreateMkStream(ctx, p.Stream, p.Group, "0").Err() // ignore BUSYGROUP

	for i := 0; i < p.NumWorkers; i++ {
		consumer := p.ConsumerPrefix + "-" + strconv.Itoa(i+1)
		go p.runConsumer(ctx, consumer)
	}
	return nil
}

func (p *NotifyWorkerPool) runConsumer(ctx context.Context, consumer string) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		res, err := p.Redis.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    p.Group,
			Consumer: consumer,
			Streams:  []string{p.Stream, ">"},
			Count:    10,
			Block:    5 * time.Second,
		}).Result()

		if err != nil {
			if err == redis.Nil {
				continue
			}
			time.Sleep(500 * time.Millisecond)
			continue
		}

		for _, stream := range res {
			for _, msg := range stream.Messages {
				p.handleMsg(ctx, msg)
				_ = p.Redis.XAck(ctx, p.Stream, p.Group, msg.ID).Err()
			}
		}
	}
}

func (p *NotifyWorkerPool) handleMsg(ctx context.Context, msg redis.XMessage) {
	getStr := func(k string) string {
		v, ok := msg.Values[k]
		if !ok || v == nil {
			return ""
		}
		s, _ := v.(string)
		return s
	}

	typ := getStr("type")
	actorID := getStr("actor_id")
	if typ == "" || actorID == "" {
		return
	}

	log := p.Logger.WithFields(logrus.Fields{
		"redis_id": msg.ID,
		"type":     typ,
		"actor_id": actorID,
	})

	var n *models.Notification
	switch typ {
	case "bulk_action":
		n = bulkActionNotification(getStr("action"), getStr("requested"), getStr("updated_count"), actorID)
	default:
		log.Warn("unknown event type, dropping")
		return
	}

	if err := p.Notifications.Notify(ctx, n); err != nil {
		log.WithError(err).Error("failed to create notification")
	}
}

func bulkActionNotification(action, requested, updated, actorID string) *models.Notification {
	labels := map[string]string{
		"update_status":  "批量更新状态",
		"update_rating":  "批量更新评分",
		"add_note":       "批量添加备注",
		"update_contact": "批量更新联系时间",
	}
	label := labels[action]
	if label == "" {
		label = action
	}

	return &models.Notification{
		RecipientID: actorID,
		Type:        "system",
		Title:       label + "完成",
		Message:     fmt.Sprintf("请求 %s 条记录，成功更新 %s 条", requested, updated),
		Category:    "candidates",
		Priority:    models.PriorityLow,
		Actions: []models.NotificationAction{
			{Label: "查看候选人", Action: "view_candidates", Variant: "primary"},
		},
	}
}
