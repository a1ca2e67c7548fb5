package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shenikar/travel_safety/internal/models"
	"github.com/sirupsen/logrus"
)

const (
	channelEmail   = "email"
	channelSMS     = "sms"
	channelWebhook = "webhook"
)

// EmailSender отправляет одно письмо списку адресатов
type EmailSender interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

// SMSSender отправляет одно сообщение на один номер и возвращает ответ провайдера
type SMSSender interface {
	Send(ctx context.Context, phone, body string) (string, error)
}

// AlertPublisher - дополнительный канал для внешних систем (вебхук)
type AlertPublisher interface {
	Publish(ctx context.Context, user *models.User, event *models.SosEvent) error
}

// Dispatcher рассылает SOS по всем каналам параллельно.
// Ошибки каналов не выходят наружу: они логируются и считаются в метриках.
type Dispatcher struct {
	email   EmailSender
	sms     SMSSender
	hook    AlertPublisher
	timeout time.Duration
	metrics *Metrics
	logger  *logrus.Logger
}

// NewDispatcher собирает диспетчер. hook и metrics могут быть nil.
func NewDispatcher(email EmailSender, sms SMSSender, hook AlertPublisher, timeout time.Duration, metrics *Metrics, logger *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		email:   email,
		sms:     sms,
		hook:    hook,
		timeout: timeout,
		metrics: metrics,
		logger:  logger,
	}
}

// Notify блокируется, пока все каналы не отработают или не выйдут по таймауту
func (d *Dispatcher) Notify(ctx context.Context, user *models.User, event *models.SosEvent, contacts []*models.EmergencyContact) {
	if len(contacts) == 0 {
		return
	}

	// отмена запроса клиентом не должна обрывать уже начатую рассылку
	ctx = context.WithoutCancel(ctx)
	log := d.logger.WithFields(logrus.Fields{
		"component": "notify",
		"sos_id":    event.ID,
		"user_id":   user.ID,
		"contacts":  len(contacts),
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		defer d.recoverChannel(channelEmail, log)
		d.sendEmail(ctx, log, user, event, contacts)
	}()
	go func() {
		defer wg.Done()
		defer d.recoverChannel(channelSMS, log)
		d.sendSMS(ctx, log, user, event, contacts)
	}()
	if d.hook != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer d.recoverChannel(channelWebhook, log)
			d.publish(ctx, log, user, event)
		}()
	}
	wg.Wait()

	log.Info("SOS notification fan-out finished")
}

func (d *Dispatcher) sendEmail(ctx context.Context, log *logrus.Entry, user *models.User, event *models.SosEvent, contacts []*models.EmergencyContact) {
	recipients := emailRecipients(contacts)
	if len(recipients) == 0 {
		return
	}

	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.email.Send(ctx, recipients, EmailSubject(user), EmailBody(user, event)); err != nil {
		log.WithError(err).WithField("recipients", len(recipients)).Error("Failed to send SOS email")
		d.metrics.observe(channelEmail, err)
		return
	}
	d.metrics.observe(channelEmail, nil)
	log.WithField("recipients", len(recipients)).Info("SOS email sent")
}

// sendSMS шлет сообщения по очереди в пределах одного таймаута на весь канал
func (d *Dispatcher) sendSMS(ctx context.Context, log *logrus.Entry, user *models.User, event *models.SosEvent, contacts []*models.EmergencyContact) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	body := SMSBody(user, event)
	for i, contact := range contacts {
		phone := strings.TrimSpace(contact.Phone)
		if phone == "" {
			continue
		}
		if err := ctx.Err(); err != nil {
			skipped := countPhones(contacts[i:])
			log.WithError(err).WithField("skipped", skipped).Error("SMS channel timed out, remaining contacts skipped")
			for range skipped {
				d.metrics.observe(channelSMS, err)
			}
			return
		}

		resp, err := d.sms.Send(ctx, phone, body)
		entry := log.WithField("contact_id", contact.ID)
		if err != nil {
			entry.WithError(err).Error("Failed to send SOS sms")
			d.metrics.observe(channelSMS, err)
			continue
		}
		d.metrics.observe(channelSMS, nil)
		entry.WithField("provider_response", resp).Debug("SOS sms sent")
	}
}

func countPhones(contacts []*models.EmergencyContact) int {
	n := 0
	for _, contact := range contacts {
		if strings.TrimSpace(contact.Phone) != "" {
			n++
		}
	}
	return n
}

func (d *Dispatcher) publish(ctx context.Context, log *logrus.Entry, user *models.User, event *models.SosEvent) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	if err := d.hook.Publish(ctx, user, event); err != nil {
		log.WithError(err).Error("Failed to publish SOS webhook")
		d.metrics.observe(channelWebhook, err)
		return
	}
	d.metrics.observe(channelWebhook, nil)
}

// recoverChannel гасит панику транспорта: она считается отказом канала
func (d *Dispatcher) recoverChannel(channel string, log *logrus.Entry) {
	if r := recover(); r != nil {
		log.WithFields(logrus.Fields{"channel": channel, "panic": r}).Error("SOS notification channel panicked")
		d.metrics.observe(channel, fmt.Errorf("panic: %v", r))
	}
}

func (d *Dispatcher) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}

// emailRecipients собирает непустые адреса без повторов, сохраняя порядок контактов
func emailRecipients(contacts []*models.EmergencyContact) []string {
	seen := make(map[string]struct{}, len(contacts))
	out := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		addr := strings.TrimSpace(contact.Email)
		if addr == "" {
			continue
		}
		key := strings.ToLower(addr)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, addr)
	}
	return out
}
