package testutils

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"testing"
	"time"

	"pokehub-backend/internal/database"
	"pokehub-backend/internal/database/models"
	"pokehub-backend/internal/pokemon"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for the readiness probe
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "pokehub"
	pgPassword = "pokehub"
	pgDatabase = "pokehub_test"
)

// One Postgres container serves every suite of a test binary.
var (
	pgOnce     sync.Once
	pgErr      error
	pgPool     *dockertest.Pool
	pgResource *dockertest.Resource
	pgDB       *gorm.DB
)

// PostgresSuite is embedded by integration suites that need the teams
// table. Every test starts from an empty table.
type PostgresSuite struct {
	suite.Suite
	DB *gorm.DB
}

// SetupSuite starts the shared container on first use.
func (s *PostgresSuite) SetupSuite() {
	pgOnce.Do(func() { pgErr = startPostgres() })
	s.Require().NoError(pgErr, "failed to start test database")
	s.DB = pgDB
}

// SetupTest empties the teams table.
func (s *PostgresSuite) SetupTest() {
	s.Require().NoError(s.DB.Exec(`TRUNCATE TABLE teams`).Error)
}

// SeedTeam stores team for userID and returns the row.
func (s *PostgresSuite) SeedTeam(userID string, team *pokemon.Team) *models.Team {
	row, err := models.NewTeam(userID, team)
	s.Require().NoError(err)
	s.Require().NoError(s.DB.Create(row).Error)
	return row
}

// RunIntegration runs the tests of m and purges the container afterwards,
// also when the run is interrupted.
func RunIntegration(m *testing.M) int {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		log.Println("Interrupted, removing test database...")
		stopPostgres()
		os.Exit(1)
	}()

	defer stopPostgres()
	return m.Run()
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	pool.MaxWait = 2 * time.Minute
	pgPool = pool

	tag := os.Getenv("POKEHUB_TEST_PG_TAG")
	if tag == "" {
		tag = "16-alpine"
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
		return fmt.Errorf("could not start postgres: %w", err)
	}
	pgResource = resource

	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable",
		pgUser, pgPassword, resource.GetPort("5432/tcp"), pgDatabase)

	// The server accepts connections before it is ready for queries, so the
	// probe runs a statement rather than a bare ping.
	if err := pool.Retry(func() error {
		probe, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer probe.Close()
		_, err = probe.Exec(`SELECT 1`)
		return err
	}); err != nil {
		return fmt.Errorf("postgres never became ready: %w", err)
	}

	db, err := database.Initialize(dsn, nil)
	if err != nil {
		return err
	}
	if !db.Migrator().HasTable(&models.Team{}) {
		return fmt.Errorf("migration did not create the teams table")
	}
	pgDB = db

	log.Printf("Test database ready on %s", resource.GetHostPort("5432/tcp"))
	return nil
}

func stopPostgres() {
	if pgDB != nil {
		if sqlDB, err := pgDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		pgDB = nil
	}
	if pgPool != nil && pgResource != nil {
		if err := pgPool.Purge(pgResource); err != nil {
			log.Printf("WARN: could not purge test database: %v", err)
		}
		pgResource = nil
	}
}
