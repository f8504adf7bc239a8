package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/circlesapp/server/internal/domain"
)

func TestNotify_AppendsAndPushes(t *testing.T) {
	alarms := new(MockAlarmRepo)
	sender := new(fakeSender)
	n := NewNotifier(alarms, sender)

	alarms.On("Append", mock.Anything, "u1", "hello").Return(&domain.Alarm{ID: 1, Message: "hello"}, nil)

	n.Notify(context.Background(), &domain.User{ID: "u1", PushToken: "tok-1"}, "hello")

	alarms.AssertExpectations(t)
	require.Len(t, sender.tokens, 1)
	assert.Equal(t, "tok-1", sender.tokens[0])
}

func TestNotify_SkipsPushWithoutToken(t *testing.T) {
	alarms := new(MockAlarmRepo)
	sender := new(fakeSender)
	n := NewNotifier(alarms, sender)

	alarms.On("Append", mock.Anything, "u1", "hello").Return(&domain.Alarm{ID: 1}, nil)

	n.Notify(context.Background(), &domain.User{ID: "u1"}, "hello")
	assert.Empty(t, sender.tokens)
}

// Side-channel failures are logged and swallowed; Notify never panics
// or propagates them.
func TestNotify_SwallowsFailures(t *testing.T) {
	alarms := new(MockAlarmRepo)
	sender := &fakeSender{err: errors.New("fcm unavailable")}
	n := NewNotifier(alarms, sender)

	alarms.On("Append", mock.Anything, "u1", "hello").Return(nil, domain.Upstream("insert alarm", errors.New("db down")))

	n.Notify(context.Background(), &domain.User{ID: "u1", PushToken: "tok-1"}, "hello")
	require.Len(t, sender.tokens, 1)
}
