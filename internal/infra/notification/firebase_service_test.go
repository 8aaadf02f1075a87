package notification

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"aurelise/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessagingClient struct {
	sent      []*messaging.Message
	multicast []*messaging.MulticastMessage
	response  *messaging.BatchResponse
	err       error
}

func (f *fakeMessagingClient) Send(_ context.Context, message *messaging.Message) (string, error) {
	f.sent = append(f.sent, message)

	return "projects/test/messages/1", f.err
}

func (f *fakeMessagingClient) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	f.multicast = append(f.multicast, message)
	if f.err != nil {
		return nil, f.err
	}

	return f.response, nil
}

var readyMessage = service.PushMessage{
	Title: "Order ready",
	Body:  "Your order is ready",
	Data:  map[string]string{"order_id": "42"},
}

func TestFirebaseService_Send(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	err := svc.Send(context.Background(), "token-1", readyMessage)
	require.NoError(t, err)
	require.Len(t, client.sent, 1)
	assert.Equal(t, "token-1", client.sent[0].Token)
	assert.Equal(t, "Order ready", client.sent[0].Notification.Title)
	assert.Equal(t, "Your order is ready", client.sent[0].Notification.Body)
	assert.Equal(t, "42", client.sent[0].Data["order_id"])
}

func TestFirebaseService_Send_Error(t *testing.T) {
	svc := &firebaseService{client: &fakeMessagingClient{err: errors.New("unavailable")}}

	err := svc.Send(context.Background(), "token-1", readyMessage)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send notification")
}

func TestFirebaseService_SendBatch(t *testing.T) {
	client := &fakeMessagingClient{response: &messaging.BatchResponse{
		SuccessCount: 1,
		FailureCount: 1,
		Responses: []*messaging.SendResponse{
			{Success: true, MessageID: "m1"},
			{Success: false, Error: errors.New("internal")},
		},
	}}
	svc := &firebaseService{client: client}

	result, err := svc.SendBatch(context.Background(), []string{"a", "b"}, readyMessage)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	assert.Equal(t, 1, result.Failed)
	assert.Empty(t, result.InvalidTokens)
	require.Len(t, client.multicast, 1)
	assert.Equal(t, []string{"a", "b"}, client.multicast[0].Tokens)
	assert.Equal(t, "42", client.multicast[0].Data["order_id"])
}

func TestFirebaseService_SendBatch_Limits(t *testing.T) {
	client := &fakeMessagingClient{}
	svc := &firebaseService{client: client}

	result, err := svc.SendBatch(context.Background(), nil, readyMessage)
	require.NoError(t, err)
	assert.Equal(t, &service.BatchResult{}, result)

	tooMany := make([]string, service.MaxBatchTokens+1)
	_, err = svc.SendBatch(context.Background(), tooMany, readyMessage)
	assert.Error(t, err)
	assert.Empty(t, client.multicast)
}

func TestLogNotifier(t *testing.T) {
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(io.Discard, nil)))

	require.NoError(t, notifier.Send(context.Background(), "token", readyMessage))

	result, err := notifier.SendBatch(context.Background(), []string{"a", "b"}, readyMessage)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Sent)
	assert.Zero(t, result.Failed)
	assert.Nil(t, result.InvalidTokens)
}
