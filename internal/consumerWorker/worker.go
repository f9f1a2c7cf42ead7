package consumerWorker

import (
	"context"
	"encoding/json"

	"github.com/wb-go/wbf/zlog"

	"github.com/bhekani17/Eargleevents2/internal/dto"
	"github.com/bhekani17/Eargleevents2/internal/lifecycle"
	"github.com/bhekani17/Eargleevents2/internal/mailer"
	"github.com/bhekani17/Eargleevents2/internal/metrics"
	"github.com/bhekani17/Eargleevents2/internal/rabbit"
	"github.com/bhekani17/Eargleevents2/internal/repo"
)

// Reader consumes quote notifications from RabbitMQ and sends the matching
// customer emails. Reminders are dropped when the quote already left the
// pending state by delivery time.
type Reader struct {
	RMQ     *rabbit.Client
	repo    repo.Repository
	mailCfg mailer.Config
	done    chan struct{}
	cancel  context.CancelFunc
}

func NewReader(rmq *rabbit.Client, repo repo.Repository, mailCfg mailer.Config) *Reader {
	return &Reader{
		RMQ:     rmq,
		repo:    repo,
		mailCfg: mailCfg,
		done:    make(chan struct{}),
	}
}

func (r *Reader) Start(ctx context.Context) {
	cctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	zlog.Logger.Info().Msg("notification worker started")

	go func() {
		defer close(r.done)

		handler := func(body []byte) error {
			var msg dto.QuoteNotificationMessage
			if err := json.Unmarshal(body, &msg); err != nil {
				zlog.Logger.Error().
					Err(err).
					Msgf("failed to unmarshal notification: %s", string(body))
				return err
			}

			zlog.Logger.Info().
				Int64("quote_id", msg.QuoteID).
				Str("kind", msg.Kind).
				Msg("received quote notification")

			quote, err := r.repo.GetQuoteByID(cctx, msg.QuoteID)
			if err != nil {
				// The sweep may have reclaimed the customer and their quotes
				// before a delayed reminder fires. Nothing to notify.
				zlog.Logger.Info().
					Int64("quote_id", msg.QuoteID).
					Msg("quote no longer exists, dropping notification")
				return nil
			}

			if msg.Kind == dto.NotifyQuoteReminder && quote.Status != string(lifecycle.QuotePending) {
				zlog.Logger.Info().
					Int64("quote_id", msg.QuoteID).
					Str("status", quote.Status).
					Msg("quote already resolved, skipping reminder")
				return nil
			}

			customer, err := r.repo.GetCustomerByID(cctx, int64(quote.CustomerID))
			if err != nil {
				zlog.Logger.Error().
					Err(err).
					Int64("quote_id", msg.QuoteID).
					Msg("failed to get customer for notification")
				return nil
			}

			if err := mailer.SendQuoteEmail(
				&zlog.Logger,
				r.mailCfg,
				msg.Kind,
				customer.Email,
				quote.EventType,
				quote.Total,
			); err != nil {
				metrics.IncNotificationEmail(msg.Kind, "failed")
				zlog.Logger.Warn().
					Err(err).
					Int64("quote_id", msg.QuoteID).
					Msg("failed to send notification email")
				return nil
			}

			metrics.IncNotificationEmail(msg.Kind, "sent")
			return nil
		}

		if err := r.RMQ.Consume(handler); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to start consuming")
			return
		}

		<-cctx.Done()
		zlog.Logger.Info().Msg("notification worker stopped")
	}()
}

func (r *Reader) Stop() {
	if r.cancel != nil {
		r.cancel()
		<-r.done
	}
}
