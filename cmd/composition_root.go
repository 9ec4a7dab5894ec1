package cmd

import (
	"context"
	"log/slog"

	httpadapter "commandes/internal/adapters/in/http"
	"commandes/internal/adapters/out/fcm"
	"commandes/internal/adapters/out/postgres"
	"commandes/internal/core/application/notifications"
	"commandes/internal/core/application/usecases/commands"
	"commandes/internal/core/application/usecases/queries"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/core/ports"
	"commandes/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. Without usable FCM credentials
// the service keeps running and every push fails.
func NewCompositionRoot(ctx context.Context, cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	var gateway ports.NotificationGateway = fcm.DisabledGateway{}
	if cfg.FCMCredentialsFile == "" {
		logger.WarnContext(ctx, "FCM_CREDENTIALS_FILE not set, push notifications disabled")
	} else if fcmGateway, err := fcm.NewGateway(ctx, cfg.FCMCredentialsFile, logger); err != nil {
		logger.ErrorContext(ctx, "FCM init failed, push notifications disabled", "error", err)
	} else {
		gateway = fcmGateway
	}

	dispatcher := notifications.NewDispatcher(
		userRecipients{factory: uowFactory},
		gateway,
		logger,
		notifications.Config{
			SendTimeout: cfg.NotifySendTimeout,
			Concurrency: cfg.NotifyConcurrency,
		},
	)

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.dispatcher, c.logger)
}

func (c *CompositionRoot) CreateUpdateDefaultLangCommandHandler() commands.UpdateDefaultLangCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDefaultLangCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateDeviceTokenCommandHandler() commands.UpdateDeviceTokenCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeviceTokenCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleCourierRoleCommandHandler() commands.ToggleCourierRoleCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewToggleCourierRoleCommandHandler(f, c.logger)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetReviewBoardQueryHandler() queries.GetReviewBoardQueryHandler {
	return queries.NewGetReviewBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierBoardQueryHandler() queries.GetCourierBoardQueryHandler {
	return queries.NewGetCourierBoardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserOrdersQueryHandler() queries.GetUserOrdersQueryHandler {
	return queries.NewGetUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStatisticsQueryHandler() queries.GetStatisticsQueryHandler {
	return queries.NewGetStatisticsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:       c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		UpdateDefaultLang: c.CreateUpdateDefaultLangCommandHandler(),
		UpdateDeviceToken: c.CreateUpdateDeviceTokenCommandHandler(),
		ToggleCourierRole: c.CreateToggleCourierRoleCommandHandler(),
		PendingOrders:     c.CreateGetPendingOrdersQueryHandler(),
		ReviewBoard:       c.CreateGetReviewBoardQueryHandler(),
		CourierBoard:      c.CreateGetCourierBoardQueryHandler(),
		UserOrders:        c.CreateGetUserOrdersQueryHandler(),
		Statistics:        c.CreateGetStatisticsQueryHandler(),
	}, httpadapter.NewAuthenticator(c.cfg.JWTSecret), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetStatisticsQueryHandler(), c.cfg.StatsSchedule, c.logger)
}

// userRecipients reads notification recipients outside of any transaction,
// one unit of work per lookup.
type userRecipients struct {
	factory *postgres.GormUnitOfWorkFactory
}

func (r userRecipients) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	return r.factory.Create().UserRepository().Get(ctx, id)
}

func (r userRecipients) ListByRoles(ctx context.Context, roles ...user.Role) ([]*user.User, error) {
	return r.factory.Create().UserRepository().ListByRoles(ctx, roles...)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
