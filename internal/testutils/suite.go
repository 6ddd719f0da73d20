package testutils

import (
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"capi-onboarding-backend/internal/config"
	"capi-onboarding-backend/internal/database"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "onboarding"
	pgPassword = "onboarding"
	pgDatabase = "onboarding_test"
)

// pgContainer is a throwaway postgres started through the local docker daemon
type pgContainer struct {
	pool     *dockertest.Pool
	resource *dockertest.Resource
	db       *gorm.DB
	dsn      string
}

var (
	containerOnce sync.Once
	containerErr  error
	container     *pgContainer
)

// BaseTestSuite gives integration suites a migrated database that is emptied
// around every test
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared postgres container on first use.
// Set TEST_POSTGRES_TAG to pick another postgres image tag.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	containerOnce.Do(func() { container, containerErr = startPostgres() })
	if containerErr != nil {
		t.Fatalf("failed to start postgres container: %v", containerErr)
	}
	return &BaseTestSuite{
		DB: container.db,
		Config: &config.Config{
			Environment: "test",
			LogLevel:    "debug",
			StoreDriver: config.StoreDriverPostgres,
			DatabaseURL: container.dsn,
		},
	}
}

// CleanupSharedContainer closes the pool and removes the container.
// Packages running integration suites call it from TestMain.
func CleanupSharedContainer() {
	if container == nil {
		return
	}
	if sqlDB, err := container.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if err := container.pool.Purge(container.resource); err != nil {
		logrus.WithError(err).Warn("could not remove postgres container")
	}
	container = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB truncates every onboarding table
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	for _, name := range tableNames() {
		if s.DB.Migrator().HasTable(name) {
			s.DB.Exec(`TRUNCATE TABLE "` + name + `" CASCADE`)
		}
	}
}

func tableNames() []string {
	var names []string
	for _, m := range database.Models() {
		if t, ok := m.(interface{ TableName() string }); ok {
			names = append(names, t.TableName())
		}
	}
	return names
}

func startPostgres() (*pgContainer, error) {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute

	tag := os.Getenv("TEST_POSTGRES_TAG")
	if tag == "" {
		tag = "15-alpine"
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        tag,
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return nil, fmt.Errorf("could not start postgres: %w", err)
	}

	c := &pgContainer{
		pool:     pool,
		resource: resource,
		dsn: fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
			pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase),
	}

	// The server accepts connections before init scripts finish, so readiness
	// is a plain ping; the schema is created once it answers.
	err = pool.Retry(func() error {
		std, err := sql.Open("pgx", c.dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		return std.Ping()
	})
	if err != nil {
		_ = pool.Purge(resource)
		return nil, fmt.Errorf("postgres never became ready: %w", err)
	}

	c.db, err = database.Initialize(c.dsn, nil)
	if err != nil {
		_ = pool.Purge(resource)
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"container": resource.Container.Name,
		"tables":    tableNames(),
	}).Info("postgres test container ready")
	return c, nil
}
