package worker

import (
	"context"
	"encoding/json"
	"time"

	"DevHub/dao/cache"
	"DevHub/pkg/log"
	"DevHub/service"
	"DevHub/types"

	rmq_client "github.com/apache/rocketmq-clients/golang/v5"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

// NotifyConsumer drains the notification topic and delivers inbox rows plus
// realtime pings. Redeliveries are dropped through the redis dedup claim.
type NotifyConsumer struct {
	Consumer rmq_client.SimpleConsumer
	Seq      *cache.Sequence
	Notify   service.INotificationService
}

func NewNotifyConsumer(consumer rmq_client.SimpleConsumer, seq *cache.Sequence, notify service.INotificationService) *NotifyConsumer {
	return &NotifyConsumer{Consumer: consumer, Seq: seq, Notify: notify}
}

func (w *NotifyConsumer) Start(ctx context.Context) error {
	if w.Consumer == nil {
		// no broker configured, dispatch already delivered inline
		<-ctx.Done()
		return ctx.Err()
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		views, err := w.Consumer.Receive(ctx, 16, 30*time.Second)
		if err != nil {
			time.Sleep(time.Second)
			continue
		}

		p := pool.New().WithContext(ctx)
		for _, view := range views {
			mv := view
			p.Go(func(ctx context.Context) error {
				if err := w.handle(ctx, mv); err != nil {
					log.L.Error("handle notify event", zap.String("msg_id", mv.GetMessageId()), zap.Error(err))
					return nil
				}
				if err := w.Consumer.Ack(ctx, mv); err != nil {
					log.L.Error("ack notify event", zap.String("msg_id", mv.GetMessageId()), zap.Error(err))
				}
				return nil
			})
		}
		_ = p.Wait()
	}
}

func (w *NotifyConsumer) handle(ctx context.Context, mv *rmq_client.MessageView) error {
	var ev types.NotifyEvent
	if err := json.Unmarshal(mv.GetBody(), &ev); err != nil {
		log.L.Warn("malformed notify event, dropping", zap.String("msg_id", mv.GetMessageId()), zap.Error(err))
		return nil
	}

	claimed, err := w.Seq.TryMarkDone(ctx, service.NotifyDedupGroup, ev.EventID)
	if err != nil {
		return err
	}
	if !claimed {
		// another consumer already handled this event
		return nil
	}

	if err := w.Notify.Deliver(ctx, &ev); err != nil {
		w.Seq.UnmarkDone(ctx, service.NotifyDedupGroup, ev.EventID)
		return err
	}
	return nil
}
