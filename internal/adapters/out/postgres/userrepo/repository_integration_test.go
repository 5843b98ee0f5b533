package userrepo_test

import (
	"context"
	"testing"

	"orderboard/internal/adapters/out/postgres/userrepo"
	"orderboard/internal/core/domain/model/account"
	"orderboard/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// GormUserRepositoryTestSuite provides integration testing for the GORM-based
// user repository with a real PostgreSQL database.
type GormUserRepositoryTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *userrepo.GormUserRepository
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *GormUserRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(&userrepo.UserDTO{})
	suite.Require().NoError(err)

	suite.repository = userrepo.NewGormUserRepository(db)
}

// SetupTest ensures clean database state before each test.
func (suite *GormUserRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE users RESTART IDENTITY").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *GormUserRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestAdd_AssignsIdentifier verifies a new user gets a database identifier.
func (suite *GormUserRepositoryTestSuite) TestAdd_AssignsIdentifier() {
	ctx := context.Background()

	user, err := account.NewUser(0, "dispatcher", "s3cret")
	suite.Require().NoError(err)

	saved, err := suite.repository.Add(ctx, user)
	suite.Require().NoError(err)

	suite.Positive(saved.ID(), "Database should assign an identifier")
	suite.Equal("dispatcher", saved.Username())
	suite.Equal("s3cret", saved.Password())
}

// TestAdd_RejectsUnconstructedUser verifies the zero value cannot be persisted.
func (suite *GormUserRepositoryTestSuite) TestAdd_RejectsUnconstructedUser() {
	ctx := context.Background()

	_, err := suite.repository.Add(ctx, account.User{})
	suite.Require().ErrorIs(err, account.ErrUserIsNotConstructed)
}

// TestAdd_RejectsDuplicateUsername verifies the unique index on username.
func (suite *GormUserRepositoryTestSuite) TestAdd_RejectsDuplicateUsername() {
	ctx := context.Background()

	user, err := account.NewUser(0, "dispatcher", "s3cret")
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, user)
	suite.Require().NoError(err)

	duplicate, err := account.NewUser(0, "dispatcher", "another")
	suite.Require().NoError(err)

	_, err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err, "Second insert with same username should fail")
}

// TestGetByUsername_ReturnsStoredUser verifies round-trip persistence.
func (suite *GormUserRepositoryTestSuite) TestGetByUsername_ReturnsStoredUser() {
	ctx := context.Background()

	user, err := account.NewUser(0, "dispatcher", "s3cret")
	suite.Require().NoError(err)

	saved, err := suite.repository.Add(ctx, user)
	suite.Require().NoError(err)

	found, err := suite.repository.GetByUsername(ctx, "dispatcher")
	suite.Require().NoError(err)

	suite.Equal(saved.ID(), found.ID())
	suite.Equal("dispatcher", found.Username())
	suite.Equal("s3cret", found.Password())
}

// TestGetByUsername_NotFound verifies the not-found mapping for unknown names.
func (suite *GormUserRepositoryTestSuite) TestGetByUsername_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.GetByUsername(ctx, "nobody")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// TestGetByUsername_EmptyUsername verifies local validation before any query.
func (suite *GormUserRepositoryTestSuite) TestGetByUsername_EmptyUsername() {
	ctx := context.Background()

	_, err := suite.repository.GetByUsername(ctx, "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func TestGormUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(GormUserRepositoryTestSuite))
}
