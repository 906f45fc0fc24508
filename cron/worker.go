package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"skillswap/config"
	connectionRepo "skillswap/database/repository/connection"
	"skillswap/models"
	"skillswap/services/notification"
	"skillswap/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const (
	TypeSessionReminder = "session:reminder"
	TypeReminderSweep   = "reminder:sweep"
)

// reminderPayload is the task body for a scheduled session reminder.
type reminderPayload struct {
	ConnectionID string `json:"connectionId"`
	Requester    string `json:"requester"`
	Recipient    string `json:"recipient"`
	Date         string `json:"date"`
	TimeSlot     string `json:"timeSlot"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// ReminderClient enqueues session reminders onto the asynq queue. It
// satisfies the connection service's ReminderEnqueuer.
type ReminderClient struct {
	client *asynq.Client
}

func NewReminderClient() *ReminderClient {
	return &ReminderClient{client: asynq.NewClient(redisOpts())}
}

func (r *ReminderClient) Close() error {
	return r.client.Close()
}

// ScheduleSessionReminder enqueues a reminder to fire a configured number of
// hours before the session's date. Sessions too close to fire early are
// delivered immediately.
func (r *ReminderClient) ScheduleSessionReminder(ctx context.Context, conn *models.Connection, session models.ScheduledSession) error {
	payload, err := json.Marshal(reminderPayload{
		ConnectionID: conn.ID,
		Requester:    conn.Requester,
		Recipient:    conn.Recipient,
		Date:         session.Date,
		TimeSlot:     session.TimeSlot,
	})
	if err != nil {
		return err
	}

	sessionDay, err := utils.ParseDate(session.Date)
	if err != nil {
		return err
	}
	lead := time.Duration(config.AppConfig.ReminderLeadHr) * time.Hour
	fireAt := sessionDay.Add(-lead)
	if fireAt.Before(time.Now().UTC()) {
		fireAt = time.Now().UTC()
	}

	task := asynq.NewTask(TypeSessionReminder, payload)
	_, err = r.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt), asynq.MaxRetry(3))
	return err
}

// InitReminderWorker runs the async worker in background. Alongside the
// per-session reminders it runs a daily sweep that catches sessions scheduled
// after their reminder would already have fired.
func InitReminderWorker(notifSvc notification.NotificationService, connRepo connectionRepo.ConnectionRepository) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, handleReminderTask(notifSvc))
	mux.HandleFunc(TypeReminderSweep, handleSweepTask(notifSvc, connRepo))

	scheduler := asynq.NewScheduler(redisOpts(), nil)
	if _, err := scheduler.Register("0 6 * * *", asynq.NewTask(TypeReminderSweep, nil)); err != nil {
		utils.GetLogger().Error("failed to register reminder sweep", zap.Error(err))
	}
	go func() {
		if err := scheduler.Run(); err != nil {
			utils.GetLogger().Error("reminder scheduler stopped", zap.Error(err))
		}
	}()

	go func() {
		logger := utils.GetLogger()
		logger.Info("starting reminder worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				logger.Error("reminder worker failed to start",
					zap.Int("attempt", attempts),
					zap.Int("maxAttempts", maxAttempts),
					zap.Error(err))

				if attempts == maxAttempts {
					logger.Fatal("reminder worker exhausted start attempts")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			utils.GetLogger().Error("invalid reminder payload", zap.Error(err))
			return err
		}

		title := "Upcoming skill swap session"
		content := fmt.Sprintf("You have a session scheduled on %s at %s.", p.Date, p.TimeSlot)

		for _, userID := range []string{p.Requester, p.Recipient} {
			if err := notifSvc.SendToUser(ctx, userID, title, content, models.MessageReminder, "system"); err != nil {
				utils.GetLogger().Error("failed to deliver session reminder",
					zap.String("userId", userID),
					zap.String("connectionId", p.ConnectionID),
					zap.Error(err))
				return err
			}
		}
		return nil
	}
}

// handleSweepTask reminds both parties of every session scheduled for
// tomorrow. Delivery is idempotent enough for a daily cadence; a user may at
// worst see a second reminder for the same session.
func handleSweepTask(notifSvc notification.NotificationService, connRepo connectionRepo.ConnectionRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		tomorrow := utils.FormatDate(time.Now().UTC().AddDate(0, 0, 1))

		conns, err := connRepo.FindUpcomingSessions(ctx, tomorrow)
		if err != nil {
			return err
		}

		for _, conn := range conns {
			for _, session := range conn.ScheduledSlots {
				if session.Date != tomorrow || session.Status != models.SessionScheduled {
					continue
				}
				content := fmt.Sprintf("You have a session scheduled on %s at %s.", session.Date, session.TimeSlot)
				for _, userID := range []string{conn.Requester, conn.Recipient} {
					if err := notifSvc.SendToUser(ctx, userID, "Upcoming skill swap session", content, models.MessageReminder, "system"); err != nil {
						utils.GetLogger().Error("reminder sweep delivery failed",
							zap.String("userId", userID),
							zap.String("connectionId", conn.ID),
							zap.Error(err))
					}
				}
			}
		}
		return nil
	}
}
