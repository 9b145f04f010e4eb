// Package testdb starts a throwaway PostgreSQL for integration tests.
package testdb

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"gorm.io/gorm"

	"github.com/fstr-tourism/pereval-api/internal/db"
	"github.com/fstr-tourism/pereval-api/internal/repository/dao"
)

// URLEnv points the tests at an existing database instead of a container.
const URLEnv = "PEREVAL_TEST_DATABASE_URL"

type Postgres struct {
	DB  *gorm.DB
	URL string
}

// Start returns a migrated database. The test is skipped in -short mode and
// when neither URLEnv nor a docker daemon is available.
func Start(t testing.TB) *Postgres {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}

	url := os.Getenv(URLEnv)
	if url == "" {
		url = runContainer(t)
	}

	gormDB, err := db.OpenPostgresWithURL(url, nil)
	if err != nil {
		t.Fatalf("could not connect to postgres: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gormDB) })

	if err = db.Migrate(url); err != nil {
		t.Fatalf("could not migrate postgres: %v", err)
	}

	pg := &Postgres{DB: gormDB, URL: url}
	pg.Reset(t)

	return pg
}

func runContainer(t testing.TB) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	if err = pool.Client.Ping(); err != nil {
		t.Skipf("docker is not available: %v", err)
	}
	pool.MaxWait = time.Minute

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=pereval",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start postgres: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("could not purge postgres: %v", err)
		}
	})
	_ = resource.Expire(300)

	url := fmt.Sprintf("postgres://postgres:secret@%s/pereval?sslmode=disable", resource.GetHostPort("5432/tcp"))

	err = pool.Retry(func() error {
		conn, err := db.OpenPostgresWithURL(url, nil)
		if err != nil {
			return err
		}
		return db.Close(conn)
	})
	if err != nil {
		t.Fatalf("postgres did not become ready: %v", err)
	}

	return url
}

// Reset truncates every table.
func (p *Postgres) Reset(t testing.TB) {
	t.Helper()

	if err := dao.ResetTables(p.DB); err != nil {
		t.Fatalf("could not reset tables: %v", err)
	}
}

// Count returns the number of rows in table.
func (p *Postgres) Count(t testing.TB, table string) int64 {
	t.Helper()

	var n int64
	if err := p.DB.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("could not count %s: %v", table, err)
	}

	return n
}
