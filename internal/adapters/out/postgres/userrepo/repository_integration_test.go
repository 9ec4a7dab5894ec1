package userrepo_test

import (
	"context"
	"testing"

	"commandes/internal/adapters/out/postgres/pgtest"
	"commandes/internal/adapters/out/postgres/userrepo"
	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/core/domain/model/user"
	"commandes/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

type UserRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
	tracker    *MockAggregateTracker
}

func (suite *UserRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.container = container
	suite.db = db
}

func (suite *UserRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.repository = userrepo.NewGormUserRepository(suite.db, suite.tracker)
}

func (suite *UserRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UserRepositoryIntegrationTestSuite) addUser(phone string, role user.Role) *user.User {
	u, err := user.NewUser(kernel.NewUUID(), phone, role)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), u))
	return u
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_RoundTrip() {
	ctx := context.Background()
	u := suite.addUser("22000001", user.Traitor)

	got, err := suite.repository.Get(ctx, u.ID())

	suite.Require().NoError(err)
	suite.Equal("22000001", got.Phone())
	suite.Equal(user.Traitor, got.Role())
	suite.Equal(user.French, got.DefaultLang())
	suite.False(got.HasDeviceToken())
}

func (suite *UserRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_LangAndToken() {
	ctx := context.Background()
	u := suite.addUser("22000002", user.Simple)

	suite.Require().NoError(u.SetDefaultLang(user.Arabic))
	suite.Require().NoError(u.SetDeviceToken("device-1"))
	suite.Require().NoError(suite.repository.Update(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(user.Arabic, got.DefaultLang())
	suite.Equal("device-1", got.DeviceToken())

	got.ClearDeviceToken()
	suite.Require().NoError(suite.repository.Update(ctx, got))

	cleared, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.False(cleared.HasDeviceToken())
}

func (suite *UserRepositoryIntegrationTestSuite) TestUpdate_ToggledRole() {
	ctx := context.Background()
	u := suite.addUser("22000007", user.Simple)

	suite.Require().NoError(u.ToggleCourier())
	suite.Require().NoError(suite.repository.Update(ctx, u))

	got, err := suite.repository.Get(ctx, u.ID())
	suite.Require().NoError(err)
	suite.Equal(user.Traitor, got.Role())

	couriers, err := suite.repository.ListByRoles(ctx, user.Traitor)
	suite.Require().NoError(err)
	suite.Len(couriers, 1)
}

func (suite *UserRepositoryIntegrationTestSuite) TestListByRoles() {
	ctx := context.Background()
	suite.addUser("22000003", user.Simple)
	suite.addUser("22000004", user.Traitor)
	admin := suite.addUser("22000005", user.Admin)
	superAdmin := suite.addUser("22000006", user.SuperAdmin)

	staff, err := suite.repository.ListByRoles(ctx, user.StaffRoles()...)

	suite.Require().NoError(err)
	suite.Require().Len(staff, 2)
	suite.Equal(admin.ID(), staff[0].ID())
	suite.Equal(superAdmin.ID(), staff[1].ID())
}

func (suite *UserRepositoryIntegrationTestSuite) TestListByRoles_NoMatch() {
	suite.addUser("22000007", user.Simple)

	staff, err := suite.repository.ListByRoles(context.Background(), user.Admin)

	suite.Require().NoError(err)
	suite.Empty(staff)
}

func TestUserRepositoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UserRepositoryIntegrationTestSuite))
}
