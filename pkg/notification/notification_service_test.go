package notification

import (
	"context"
	"errors"
	"testing"

	"baratie/domain"
	"baratie/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeNotificationRepository struct {
	stored    []entities.Notification
	employees map[uuid.UUID]entities.User
}

func (r *fakeNotificationRepository) CreateNotification(_ context.Context, n *entities.Notification) error {
	r.stored = append(r.stored, *n)
	return nil
}

func (r *fakeNotificationRepository) GetNotificationsByUserID(_ context.Context, userID string) ([]entities.Notification, error) {
	res := make([]entities.Notification, 0)
	for i := len(r.stored) - 1; i >= 0; i-- {
		if r.stored[i].UserID == userID {
			res = append(res, r.stored[i])
		}
	}
	return res, nil
}

func (r *fakeNotificationRepository) GetEmployeeByID(_ context.Context, id uuid.UUID) (*entities.User, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &e, nil
}

type sentMail struct{ to, subject, body string }

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name  string
		event domain.OrderEvent
		want  string
	}{
		{"ready", domain.OrderEvent{Type: domain.EventOrderStatusChanged, Status: domain.OrderStatusReady, DailyOrderNumber: 12}, "Order #12 is ready! Please collect it."},
		{"placed", domain.OrderEvent{Type: domain.EventOrderPlaced, DailyOrderNumber: 3}, "Order #3 has been placed."},
		{"delivered is silent", domain.OrderEvent{Type: domain.EventOrderStatusChanged, Status: domain.OrderStatusDelivered}, ""},
		{"unknown type", domain.OrderEvent{Type: "order.deleted"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.event))
		})
	}
}

func TestHandleOrderEvent(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()
	repo := &fakeNotificationRepository{employees: map[uuid.UUID]entities.User{
		employeeID: {ID: employeeID, Email: "patty@baratie.sea"},
	}}
	var mails []sentMail
	svc := NewNotificationService(repo, func(to, subject, body string) error {
		mails = append(mails, sentMail{to, subject, body})
		return nil
	})

	orderID := uuid.New()
	require.NoError(t, svc.HandleOrderEvent(ctx, domain.OrderEvent{
		Type: domain.EventOrderPlaced, OrderID: orderID.String(), UserID: employeeID.String(), DailyOrderNumber: 12,
	}))
	require.NoError(t, svc.HandleOrderEvent(ctx, domain.OrderEvent{
		Type: domain.EventOrderStatusChanged, Status: domain.OrderStatusReady, OrderID: orderID.String(), UserID: employeeID.String(), DailyOrderNumber: 12,
	}))
	require.NoError(t, svc.HandleOrderEvent(ctx, domain.OrderEvent{
		Type: domain.EventOrderStatusChanged, Status: domain.OrderStatusDelivered, OrderID: orderID.String(), UserID: employeeID.String(),
	}))

	require.Len(t, repo.stored, 2)
	require.Len(t, mails, 1)
	assert.Equal(t, "patty@baratie.sea", mails[0].to)
	assert.Equal(t, "Order #12 is ready! Please collect it.", mails[0].body)

	list, err := svc.GetNotifications(ctx, employeeID.String())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Order #12 is ready! Please collect it.", list[0].Message)
	assert.Equal(t, orderID.String(), list[0].OrderID)
	assert.Equal(t, domain.NotificationTypeOrder, list[0].Type)
}

func TestHandleOrderEventMailFailureIsIgnored(t *testing.T) {
	employeeID := uuid.New()
	repo := &fakeNotificationRepository{employees: map[uuid.UUID]entities.User{employeeID: {ID: employeeID, Email: "x@y.z"}}}
	svc := NewNotificationService(repo, func(string, string, string) error { return errors.New("smtp down") })

	err := svc.HandleOrderEvent(context.Background(), domain.OrderEvent{
		Type: domain.EventOrderStatusChanged, Status: domain.OrderStatusReady, UserID: employeeID.String(), DailyOrderNumber: 1,
	})
	require.NoError(t, err)
	assert.Len(t, repo.stored, 1)
}

func TestGetNotificationsRequiresUser(t *testing.T) {
	svc := NewNotificationService(&fakeNotificationRepository{}, nil)
	_, err := svc.GetNotifications(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingUserID)
}
