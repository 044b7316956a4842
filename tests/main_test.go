package tests

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/xw1nchester/stylequiz-backend/internal/app"
	"github.com/xw1nchester/stylequiz-backend/internal/config"
	pgclient "github.com/xw1nchester/stylequiz-backend/pkg/client/postgresql"
	"go.uber.org/zap"
)

type APITestSuite struct {
	suite.Suite

	cfg      *config.Config
	dbClient *pgxpool.Pool
	logger   *zap.Logger
	baseUrl  string
	app      *app.App
}

func TestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	suite.Run(t, &APITestSuite{})
}

func (s *APITestSuite) SetupSuite() {
	cfg := config.MustLoadByPath("../config/test.yml")

	pgClient, err := pgclient.NewClient(context.TODO(), cfg.PostgreSQL)
	s.Require().NoError(err)

	log, _ := zap.NewDevelopment()
	defer log.Sync()

	s.applyMigrationsWith(cfg, true)

	app := app.NewApp(log, *cfg)

	s.cfg = cfg
	s.dbClient = pgClient
	s.logger = log
	s.baseUrl = fmt.Sprintf("http://localhost%s/api", cfg.HTTPServer.Address)
	s.app = app

	go func() {
		app.MustRun()
	}()

	log.Info("server started", zap.String("addr", cfg.HTTPServer.Address))

	time.Sleep(500 * time.Millisecond)
}

func (s *APITestSuite) TearDownSuite() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.app.Shutdown(ctx)
	s.Require().NoError(err)

	s.applyMigrationsWith(s.cfg, false)
}

func (s *APITestSuite) applyMigrationsWith(cfg *config.Config, isUp bool) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.PostgreSQL.Username,
		cfg.PostgreSQL.Password,
		cfg.PostgreSQL.Host,
		cfg.PostgreSQL.Port,
		cfg.PostgreSQL.Database,
	)
	migrationsPath := "../migrations"

	db, err := sql.Open("postgres", dsn)
	s.Require().NoError(err)

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	s.Require().NoError(err)

	m, err := migrate.NewWithDatabaseInstance(
		"file://"+migrationsPath,
		"postgres", driver)
	s.Require().NoError(err)

	var migrationErr error

	if isUp {
		migrationErr = m.Up()
	} else {
		migrationErr = m.Down()
	}

	if migrationErr != nil && !errors.Is(migrationErr, migrate.ErrNoChange) {
		s.Require().NoError(migrationErr)
	}
}
