// Command migrate applies or rolls back the Postgres schema backing
// the storage substrate, resolving the DSN through the same config
// loader as cmd/api.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"paymentcore/config"
)

func main() {
	var (
		direction     string
		steps         int
		migrationsDir string
	)
	flag.StringVar(&direction, "direction", "up", "migration direction: up, down, or version")
	flag.IntVar(&steps, "steps", 0, "number of migration steps (0 = all, for up/down)")
	flag.StringVar(&migrationsDir, "path", "migrations", "directory containing the .up.sql/.down.sql files")
	flag.Parse()

	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsDir), cfg.Database.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize migrator: %v\n", err)
		os.Exit(1)
	}

	switch direction {
	case "up":
		err = runSteps(m, steps)
	case "down":
		if steps == 0 {
			err = m.Down()
		} else {
			err = runSteps(m, -absSteps(steps))
		}
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			fmt.Fprintf(os.Stderr, "failed to read schema version: %v\n", verr)
			os.Exit(1)
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown direction %q: expected up, down, or version\n", direction)
		os.Exit(1)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Fprintf(os.Stderr, "migration failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("migrations applied successfully")
}

func absSteps(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func runSteps(m *migrate.Migrate, steps int) error {
	if steps == 0 {
		return m.Up()
	}
	return m.Steps(steps)
}
