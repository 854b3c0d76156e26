package system

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/driplog/drip/internal/cli"
	"github.com/driplog/drip/internal/constants"
	"github.com/driplog/drip/internal/engine"
	"github.com/driplog/drip/internal/migration"
	"github.com/driplog/drip/internal/storage/sqlite"
	"github.com/driplog/drip/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Migrations complete (only if DB is reachable)
	if dbReachable {
		if err := checkMigrationsComplete(ctx); err != nil {
			fmt.Printf("❌ Migrations complete: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Migrations complete: OK\n")
		}
	} else {
		fmt.Printf("⊘ Migrations complete: SKIPPED (database not reachable)\n")
	}

	// Check 4: Profile integrity (only if DB is reachable)
	if dbReachable {
		if err := checkProfileIntegrity(ctx); err != nil {
			fmt.Printf("❌ Profile integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Profile integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Profile integrity: SKIPPED (database not reachable)\n")
	}

	// Check 5: Intake date formats (only if DB is reachable)
	if dbReachable {
		if err := checkIntakeDates(ctx); err != nil {
			fmt.Printf("❌ Intake date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Intake date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Intake date formats: SKIPPED (database not reachable)\n")
	}

	// Check 6: Collectible catalog seeded (only if DB is reachable)
	if dbReachable {
		if err := checkCollectiblesSeeded(ctx); err != nil {
			fmt.Printf("❌ Collectible catalog: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Collectible catalog: OK\n")
		}
	} else {
		fmt.Printf("⊘ Collectible catalog: SKIPPED (database not reachable)\n")
	}

	// Check 7: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func newSQLiteRunner(ctx *cli.Context) (*migration.Runner, error) {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil, nil
	}
	db := sqliteStore.GetDB()
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access migrations: %w", err)
	}
	return migration.NewRunner(db, subFS, migration.DialectSQLite), nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	runner, err := newSQLiteRunner(ctx)
	if err != nil || runner == nil {
		return err
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	runner, err := newSQLiteRunner(ctx)
	if err != nil || runner == nil {
		return err
	}

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}
	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d", currentVersion, latestVersion)
	}
	return nil
}

func checkProfileIntegrity(ctx *cli.Context) error {
	profile, err := ctx.Store.GetProfile()
	if err != nil {
		return fmt.Errorf("failed to get profile: %w", err)
	}

	if profile.TotalXP < 0 || profile.SpendableXP < 0 {
		return fmt.Errorf("negative XP pool: total=%d spendable=%d", profile.TotalXP, profile.SpendableXP)
	}
	if profile.SpendableXP > profile.TotalXP {
		return fmt.Errorf("spendable XP (%d) exceeds total XP (%d)", profile.SpendableXP, profile.TotalXP)
	}
	if want := engine.LevelForXP(profile.TotalXP); profile.Level != want {
		return fmt.Errorf("level %d does not match total XP %d (expected level %d)", profile.Level, profile.TotalXP, want)
	}
	return nil
}

func checkIntakeDates(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}
	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var invalidCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM intake_records
		WHERE date NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&invalidCount)
	if err != nil {
		return fmt.Errorf("failed to check intake dates: %w", err)
	}
	if invalidCount > 0 {
		return fmt.Errorf("found %d intake records with invalid date format", invalidCount)
	}

	var negativeCount int
	err = db.QueryRow(`SELECT COUNT(*) FROM intake_records WHERE amount <= 0`).Scan(&negativeCount)
	if err != nil {
		return fmt.Errorf("failed to check intake amounts: %w", err)
	}
	if negativeCount > 0 {
		return fmt.Errorf("found %d intake records with non-positive amounts", negativeCount)
	}
	return nil
}

func checkCollectiblesSeeded(ctx *cli.Context) error {
	collectibles, err := ctx.Store.GetCollectibles()
	if err != nil {
		return fmt.Errorf("failed to get collectibles: %w", err)
	}
	if len(collectibles) == 0 {
		return fmt.Errorf("collectible catalog is empty (run 'drip init')")
	}

	selectedPets := 0
	for _, c := range collectibles {
		if c.Kind == constants.CollectiblePet && c.Selected {
			selectedPets++
		}
	}
	if selectedPets != 1 {
		return fmt.Errorf("expected exactly 1 selected pet, found %d", selectedPets)
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
