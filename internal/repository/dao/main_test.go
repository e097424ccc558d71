package dao

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB is nil when no Docker daemon is reachable.
var testDB *gorm.DB

func TestMain(m *testing.M) {
	pool, err := dockertest.NewPool("")
	if err == nil {
		err = pool.Client.Ping()
	}
	if err != nil {
		log.Printf("docker unavailable, skipping database tests: %v", err)
		os.Exit(m.Run())
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=festival",
			"POSTGRES_PASSWORD=festival",
			"POSTGRES_DB=festival",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		log.Fatalf("pool.RunWithOptions -> %v", err)
	}
	_ = resource.Expire(120)

	dsn := fmt.Sprintf("postgres://festival:festival@%s/festival?sslmode=disable", resource.GetHostPort("5432/tcp"))
	pool.MaxWait = 60 * time.Second
	err = pool.Retry(func() error {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
		if err != nil {
			return err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		if err = sqlDB.Ping(); err != nil {
			return err
		}
		testDB = db
		return nil
	})
	if err != nil {
		_ = pool.Purge(resource)
		log.Fatalf("postgres never became ready: %v", err)
	}

	code := m.Run()

	if err = pool.Purge(resource); err != nil {
		log.Printf("pool.Purge -> %v", err)
	}

	os.Exit(code)
}

// setupDB gives the test an empty, migrated schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testDB == nil {
		t.Skip("docker is not available")
	}
	if err := dropAllTables(testDB); err != nil {
		t.Fatalf("dropAllTables -> %v", err)
	}
	if err := InitTables(testDB); err != nil {
		t.Fatalf("InitTables -> %v", err)
	}

	return testDB
}

func seedEvent(t *testing.T, db *gorm.DB, active bool) Event {
	t.Helper()

	event, err := NewEventDAO(db).Insert(testContext(t), Event{
		Name:         "Chefs Kiss Festival",
		Location:     "Kyiv",
		LocationCode: "kyv",
		StartDate:    time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, time.April, 17, 0, 0, 0, 0, time.UTC),
		IsActive:     active,
	})
	if err != nil {
		t.Fatalf("seedEvent -> %v", err)
	}

	return event
}
