package application

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/creator-commerce/config"
	"github.com/oksasatya/creator-commerce/internal/domain/entity"
	"github.com/oksasatya/creator-commerce/pkg/helpers"
	"github.com/oksasatya/creator-commerce/pkg/mailer"
	mailtpl "github.com/oksasatya/creator-commerce/pkg/mailer/templates"
)

// Notifier queues transactional emails. Publishing is best effort: failures
// are logged and never surface to the caller. A nil Notifier is a no-op.
type Notifier struct {
	Publisher EmailPublisher
	Config    *config.Config
	Logger    *logrus.Logger
	Now       func() time.Time
}

func NewNotifier(pub EmailPublisher, cfg *config.Config, logger *logrus.Logger) *Notifier {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Notifier{Publisher: pub, Config: cfg, Logger: logger, Now: time.Now}
}

func (n *Notifier) Welcome(ctx context.Context, u *entity.User) {
	if n == nil || n.Publisher == nil || u == nil {
		return
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.Config, u.Name, u.Email, mailtpl.WithTime(n.Now())),
	})
}

func (n *Notifier) OrderPlaced(ctx context.Context, u *entity.User, o *entity.Order) {
	if n == nil || n.Publisher == nil || u == nil || u.Email == "" || o == nil {
		return
	}
	lines := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		price, err := helpers.FormatPrice(it.Subtotal(), o.Currency)
		if err != nil {
			price = fmt.Sprintf("%d %s", it.Subtotal(), o.Currency)
		}
		lines = append(lines, fmt.Sprintf("%d x %s  %s", it.Quantity, it.Name, price))
	}
	total, err := helpers.FormatPrice(o.TotalCents, o.Currency)
	if err != nil {
		total = fmt.Sprintf("%d %s", o.TotalCents, o.Currency)
	}
	n.publish(ctx, mailer.EmailJob{
		To:       u.Email,
		Template: mailtpl.OrderPlaced,
		Data:     mailtpl.NewOrderPlacedData(n.Config, u.Name, u.Email, o.ID, total, lines, mailtpl.WithTime(o.CreatedAt)),
	})
}

func (n *Notifier) publish(ctx context.Context, job mailer.EmailJob) {
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := n.Publisher.PublishJSON(c, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithField("template", job.Template).Warn("publish email job failed")
	}
}
