package service

import (
	"context"

	"github.com/circlesapp/server/internal/domain"
	"github.com/circlesapp/server/internal/logger"
	"github.com/circlesapp/server/internal/push"
	"github.com/circlesapp/server/internal/repository"
)

type alarmNotifier struct {
	alarms repository.AlarmRepository
	sender push.Sender
}

func NewNotifier(alarms repository.AlarmRepository, sender push.Sender) Notifier {
	return &alarmNotifier{alarms: alarms, sender: sender}
}

// Notify appends to the user's durable alarm log and fires a push to
// the registered device. A failed alarm must never roll back the state
// change that triggered it, so both failures are logged and swallowed.
func (n *alarmNotifier) Notify(ctx context.Context, user *domain.User, message string) {
	if _, err := n.alarms.Append(ctx, user.ID, message); err != nil {
		logger.Error("failed to append alarm", "user_id", user.ID, "error", err)
	}
	if user.PushToken == "" {
		return
	}
	if err := n.sender.Send(ctx, user.PushToken, message); err != nil {
		logger.Debug("push delivery failed", "user_id", user.ID, "error", err)
	}
}
