package main

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/mailer"
	mailtpl "github.com/oksasatya/creator-commerce/pkg/mailer/templates"
)

// render turns a queued job into a sendable message. Jobs naming a template
// are rendered from it; others are sent as queued.
func render(job mailer.EmailJob) (mailer.Message, error) {
	helpers.EnsureRecipient(&job)
	msg := mailer.Message{To: job.To, Subject: job.Subject, Text: job.Text, HTML: job.HTML}
	if job.Template != "" {
		name := strings.ToLower(job.Template)
		s, t, h, err := mailtpl.Render(name, job.Data)
		if err != nil {
			return mailer.Message{}, err
		}
		msg.Subject, msg.Text, msg.HTML, msg.Tag = s, t, h, name
	}
	if msg.Subject == "" {
		msg.Subject = helpers.SubjectFor(job.Template)
	}
	return msg, nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-email-worker", cfg.Env)

	if !cfg.MailSendEnabled {
		logger.Info("MAIL_SEND_ENABLED=false; email worker disabled")
		return
	}
	if cfg.RabbitMQURL == "" || cfg.RabbitMQEmailQueue == "" {
		logger.Fatal("RabbitMQ not configured")
	}
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" || cfg.MailgunSender == "" {
		logger.Fatal("Mailgun not configured")
	}

	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		logger.Fatalf("amqp dial: %v", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.Fatalf("amqp channel: %v", err)
	}
	defer func() { _ = ch.Close() }()

	// Prefetch for fair dispatch across workers.
	if err := ch.Qos(16, 0, false); err != nil {
		logger.Fatalf("qos: %v", err)
	}
	if _, err := helpers.DeclareQueue(ch, cfg.RabbitMQEmailQueue); err != nil {
		logger.Fatalf("queue declare: %v", err)
	}

	msgs, err := ch.Consume(cfg.RabbitMQEmailQueue, "", false, false, false, false, nil)
	if err != nil {
		logger.Fatalf("consume: %v", err)
	}

	mg := mailer.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.MailgunSender)
	ctx := context.Background()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	done := make(chan struct{})

	go func() {
		for d := range msgs {
			var job mailer.EmailJob
			if err := json.Unmarshal(d.Body, &job); err != nil {
				logger.WithError(err).Warn("dropping undecodable email job")
				_ = d.Nack(false, false)
				continue
			}
			msg, err := render(job)
			if err != nil {
				logger.WithError(err).WithField("template", job.Template).Warn("render failed")
				_ = d.Nack(false, false)
				continue
			}

			c, cancel := context.WithTimeout(ctx, 15*time.Second)
			id, err := mg.Send(c, msg)
			cancel()
			if errors.Is(err, mailer.ErrNoRecipient) {
				logger.WithField("template", job.Template).Warn("dropping email job without recipient")
				_ = d.Nack(false, false)
				continue
			}
			if err != nil {
				logger.WithError(err).WithField("to", msg.To).Warn("send failed; requeueing")
				_ = d.Nack(false, true)
				continue
			}
			logger.WithFields(logrus.Fields{"to": msg.To, "tag": msg.Tag, "id": id}).Info("email sent")
			_ = d.Ack(false)
		}
		close(done)
	}()

	logger.Infof("email worker listening on queue=%s", cfg.RabbitMQEmailQueue)
	<-stop
	logger.Info("shutting down")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
	}
}
