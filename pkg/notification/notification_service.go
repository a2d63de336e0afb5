package notification

import (
	"context"
	"fmt"
	"time"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MailFunc sends one message. mailing.SendMail satisfies it.
type MailFunc func(toEmail string, subject string, body string) error

type (
	NotificationService interface {
		HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error
		GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error)
	}

	notificationService struct {
		notificationRepository NotificationRepository
		sendMail               MailFunc
		logger                 zerolog.Logger
		now                    func() time.Time
	}
)

// NewNotificationService creates the service; a nil sendMail disables mail delivery.
func NewNotificationService(notificationRepository NotificationRepository, sendMail MailFunc) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		sendMail:               sendMail,
		logger:                 utils.NewLogger("notification"),
		now:                    time.Now,
	}
}

// MessageFor returns the text shown to the user for an event, or "" when the event does not
// notify anyone.
func MessageFor(event domain.OrderEvent) string {
	switch event.Type {
	case domain.EventOrderPlaced:
		return fmt.Sprintf("Order #%d has been placed.", event.DailyOrderNumber)
	case domain.EventOrderStatusChanged:
		switch event.Status {
		case domain.OrderStatusReady:
			return fmt.Sprintf("Order #%d is ready! Please collect it.", event.DailyOrderNumber)
		case domain.OrderStatusPreparing:
			return fmt.Sprintf("Order #%d is being prepared.", event.DailyOrderNumber)
		case domain.OrderStatusCancelled:
			return fmt.Sprintf("Order #%d was cancelled.", event.DailyOrderNumber)
		}
	}
	return ""
}

func (s *notificationService) HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	message := MessageFor(event)
	if message == "" || event.UserID == "" {
		return nil
	}

	notification := &entities.Notification{
		ID:               uuid.New(),
		UserID:           event.UserID,
		DailyOrderNumber: event.DailyOrderNumber,
		Type:             domain.NotificationTypeOrder,
		Message:          message,
		CreatedAt:        s.now().UTC(),
	}
	if orderID, err := uuid.Parse(event.OrderID); err == nil {
		notification.OrderID = &orderID
	}

	if err := s.notificationRepository.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}

	if event.Status == domain.OrderStatusReady {
		s.mailUser(ctx, event.UserID, message)
	}
	return nil
}

func (s *notificationService) mailUser(ctx context.Context, userID string, message string) {
	if s.sendMail == nil {
		return
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return
	}
	employee, err := s.notificationRepository.GetEmployeeByID(ctx, id)
	if err != nil {
		s.logger.Debug().Err(err).Str("user_id", userID).Msg("no employee to mail")
		return
	}
	if err := s.sendMail(employee.Email, "The Baratie: your order", message); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to send notification mail")
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID string) ([]domain.NotificationResponse, error) {
	if userID == "" {
		return nil, domain.ErrMissingUserID
	}
	notifications, err := s.notificationRepository.GetNotificationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get notifications of %s: %w", userID, err)
	}

	res := make([]domain.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out := domain.NotificationResponse{
			ID:               n.ID.String(),
			Type:             n.Type,
			DailyOrderNumber: n.DailyOrderNumber,
			Message:          n.Message,
			Read:             n.Read,
			Timestamp:        n.CreatedAt,
		}
		if n.OrderID != nil {
			out.OrderID = n.OrderID.String()
		}
		res = append(res, out)
	}
	return res, nil
}
