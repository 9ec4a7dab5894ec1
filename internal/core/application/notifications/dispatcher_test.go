package notifications_test

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"commandes/internal/core/application/notifications"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/core/domain/services"
	"commandes/internal/core/ports"
	"commandes/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRecipients struct{ mock.Mock }

func (m *MockRecipients) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockRecipients) ListByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	args := m.Called(ctx, roles)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

type MockGateway struct{ mock.Mock }

func (m *MockGateway) Send(ctx context.Context, msg ports.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func newUser(t *testing.T, role user.Role, lang user.Lang, token string) *user.User {
	t.Helper()
	u, err := user.RestoreUser(kernel.NewUUID(), "22233344", role, lang, token)
	require.NoError(t, err)
	return u
}

func newOrder(t *testing.T, owner kernel.UUID) *order.Order {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), kernel.NewUUID(), 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), owner, order.Details{
		Price:       decimal.NewFromInt(500),
		DeliveryFee: decimal.NewFromInt(50),
		Location:    "Arafat",
		Phone:       "36000000",
	}, []order.Item{item})
	require.NoError(t, err)
	return o
}

func newDispatcher(recipients *MockRecipients, gateway *MockGateway) *notifications.Dispatcher {
	return notifications.NewDispatcher(
		recipients,
		gateway,
		slog.New(slog.DiscardHandler),
		notifications.Config{SendTimeout: 50 * time.Millisecond, Concurrency: 2},
	)
}

func TestDispatcher_NotifyStatusChange(t *testing.T) {
	t.Run("sends in the owner's language", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.Arabic, "owner-token")
		o := newOrder(t, owner.ID())
		require.NoError(t, o.ChangeStatus(order.Rejected, order.Administrative, kernel.NewUUID()))

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Token == "owner-token" &&
				msg.Title == "مرفوض" &&
				msg.Body == "تم تغيير حالة طلبك "+o.Code().String() &&
				msg.Data["status"] == "rejected"
		})).Return(nil).Once()

		report, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.NoError(t, err)
		require.Len(t, report.Deliveries, 1)
		assert.Equal(t, notifications.Sent, report.Deliveries[0].Outcome)
		recipients.AssertExpectations(t)
		gateway.AssertExpectations(t)
	})

	t.Run("empty token is skipped", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.French, "")
		o := newOrder(t, owner.ID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, owner.ID()).Return(owner, nil).Once()

		report, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.NoError(t, err)
		assert.Equal(t, 1, report.Count(notifications.SkippedNoToken))
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("unregistered token is skipped", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.French, "stale")
		o := newOrder(t, owner.ID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
		gateway.On("Send", mock.Anything, mock.Anything).
			Return(fmt.Errorf("fcm: %w", ports.ErrDeviceTokenUnregistered)).Once()

		report, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.NoError(t, err)
		assert.Equal(t, notifications.SkippedUnregistered, report.Deliveries[0].Outcome)
		assert.NoError(t, report.Deliveries[0].Err)
	})

	t.Run("gateway failure is reported, not returned", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.French, "tok")
		o := newOrder(t, owner.ID())
		sendErr := errors.New("provider unavailable")

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
		gateway.On("Send", mock.Anything, mock.Anything).Return(sendErr).Once()

		report, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.NoError(t, err)
		assert.Equal(t, notifications.Failed, report.Deliveries[0].Outcome)
		assert.ErrorIs(t, report.Deliveries[0].Err, sendErr)
	})

	t.Run("slow gateway is cut by the send timeout", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.French, "tok")
		o := newOrder(t, owner.ID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, owner.ID()).Return(owner, nil).Once()
		gateway.On("Send", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				<-args.Get(0).(context.Context).Done()
			}).
			Return(context.DeadlineExceeded).Once()

		started := time.Now()
		report, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.NoError(t, err)
		assert.Equal(t, notifications.Failed, report.Deliveries[0].Outcome)
		assert.Less(t, time.Since(started), 5*time.Second)
	})

	t.Run("missing owner is returned", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, o.Owner()).
			Return(nil, errs.NewObjectNotFoundError("user", o.Owner())).Once()

		_, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, o)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is returned", func(t *testing.T) {
		ctx := t.Context()
		owner := newUser(t, user.Simple, user.French, "tok")
		// Only reachable with a corrupted aggregate, built here by hand.
		var o order.Order

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("Get", ctx, mock.Anything).Return(owner, nil).Once()

		_, err := newDispatcher(recipients, gateway).NotifyStatusChange(ctx, &o)

		require.ErrorIs(t, err, services.ErrUnknownStatus)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})
}

func TestDispatcher_NotifyAdminsNewOrder(t *testing.T) {
	staffRoles := []user.Role{user.Admin, user.SuperAdmin}

	t.Run("no staff is a no-op", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("ListByRoles", ctx, staffRoles).Return([]*user.User{}, nil).Once()

		report, err := newDispatcher(recipients, gateway).NotifyAdminsNewOrder(ctx, o, user.French)

		require.NoError(t, err)
		assert.Empty(t, report.Deliveries)
		gateway.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("admin without token gets nothing", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())
		withToken := newUser(t, user.Admin, user.French, "admin-token")
		withoutToken := newUser(t, user.SuperAdmin, user.French, "")

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("ListByRoles", ctx, staffRoles).
			Return([]*user.User{withToken, withoutToken}, nil).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Token == "admin-token"
		})).Return(nil).Once()

		report, err := newDispatcher(recipients, gateway).NotifyAdminsNewOrder(ctx, o, user.French)

		require.NoError(t, err)
		require.Len(t, report.Deliveries, 2)
		assert.Equal(t, 1, report.Count(notifications.Sent))
		assert.Equal(t, 1, report.Count(notifications.SkippedNoToken))
		gateway.AssertNumberOfCalls(t, "Send", 1)
	})

	t.Run("message uses the creator's language for every admin", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())
		frenchAdmin := newUser(t, user.Admin, user.French, "a")
		arabicAdmin := newUser(t, user.Admin, user.Arabic, "b")

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("ListByRoles", ctx, staffRoles).
			Return([]*user.User{frenchAdmin, arabicAdmin}, nil).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Title == "طلب جديد"
		})).Return(nil).Twice()

		report, err := newDispatcher(recipients, gateway).NotifyAdminsNewOrder(ctx, o, user.Arabic)

		require.NoError(t, err)
		assert.Equal(t, 2, report.Count(notifications.Sent))
		gateway.AssertExpectations(t)
	})

	t.Run("one failing admin does not affect the others", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())
		admins := []*user.User{
			newUser(t, user.Admin, user.French, "ok-1"),
			newUser(t, user.Admin, user.French, "broken"),
			newUser(t, user.SuperAdmin, user.French, "gone"),
			newUser(t, user.SuperAdmin, user.French, "ok-2"),
		}

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("ListByRoles", ctx, staffRoles).Return(admins, nil).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Token == "broken"
		})).Return(errors.New("boom")).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Token == "gone"
		})).Return(ports.ErrDeviceTokenUnregistered).Once()
		gateway.On("Send", mock.Anything, mock.MatchedBy(func(msg ports.Message) bool {
			return msg.Token == "ok-1" || msg.Token == "ok-2"
		})).Return(nil).Twice()

		report, err := newDispatcher(recipients, gateway).NotifyAdminsNewOrder(ctx, o, user.French)

		require.NoError(t, err)
		require.Len(t, report.Deliveries, 4)
		assert.Equal(t, notifications.Sent, report.Deliveries[0].Outcome)
		assert.Equal(t, notifications.Failed, report.Deliveries[1].Outcome)
		assert.Equal(t, notifications.SkippedUnregistered, report.Deliveries[2].Outcome)
		assert.Equal(t, notifications.Sent, report.Deliveries[3].Outcome)
		gateway.AssertExpectations(t)
	})

	t.Run("listing failure is returned", func(t *testing.T) {
		ctx := t.Context()
		o := newOrder(t, kernel.NewUUID())

		recipients := new(MockRecipients)
		gateway := new(MockGateway)
		recipients.On("ListByRoles", ctx, staffRoles).Return(nil, errors.New("db down")).Once()

		_, err := newDispatcher(recipients, gateway).NotifyAdminsNewOrder(ctx, o, user.French)

		require.EqualError(t, err, "db down")
	})
}
