package infra

import (
	"fmt"

	"github.com/dhruv0307t-del/ERP-Farm/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection — postgres when a DSN is given,
// otherwise a local sqlite file — runs AutoMigrate to create the base tables,
// then applies an ordered idempotent patch ledger for the columns that were
// added to already-deployed databases over time.
//
// TranslateError normalizes driver-specific unique violations into
// gorm.ErrDuplicatedKey so the duplicate-tag path works on both engines.
func NewDatabase(postgresDSN, sqlitePath string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if postgresDSN != "" {
		dialector = postgres.Open(postgresDSN)
	} else {
		dialector = sqlite.Open(sqlitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if postgresDSN != "" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations creates missing tables and applies the patch ledger. Also
// used by integration tests against a fresh database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Farm{},
		&model.User{},
		&model.Breed{},
		&model.Animal{},
		&model.MilkYield{},
		&model.BreedingEvent{},
		&model.Gestation{},
		&model.VaccinationReminder{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// schemaPatch is one step of the ordered migration ledger. Guard reports
// whether the step still needs to run, so re-running on an already-patched
// database is a no-op.
type schemaPatch struct {
	descr string
	guard func(m gorm.Migrator) bool
	apply func(db *gorm.DB) error
}

// applySchemaPatches covers the columns that historically arrived after the
// initial deployment: the extended animal fields, the user's farm link and
// email, the breeding event date and gestation notes. AutoMigrate adds them
// on fresh databases; the ledger backfills databases created before the
// columns existed and records each applied step.
func applySchemaPatches(db *gorm.DB) error {
	patches := []schemaPatch{
		{
			descr: "animals: extended husbandry columns",
			guard: func(m gorm.Migrator) bool { return !m.HasColumn(&model.Animal{}, "cattle_type") },
			apply: func(db *gorm.DB) error {
				m := db.Migrator()
				for _, col := range []string{"cattle_type", "mother_tag_no", "lactating", "pregnant", "vaccinated", "health", "weight", "reproductions"} {
					if !m.HasColumn(&model.Animal{}, col) {
						if err := m.AddColumn(&model.Animal{}, col); err != nil {
							return err
						}
					}
				}
				return nil
			},
		},
		{
			descr: "users: farm link and email",
			guard: func(m gorm.Migrator) bool { return !m.HasColumn(&model.User{}, "farm_id") },
			apply: func(db *gorm.DB) error {
				m := db.Migrator()
				for _, col := range []string{"farm_id", "email"} {
					if !m.HasColumn(&model.User{}, col) {
						if err := m.AddColumn(&model.User{}, col); err != nil {
							return err
						}
					}
				}
				return nil
			},
		},
		{
			descr: "breeding_events: event_date",
			guard: func(m gorm.Migrator) bool { return !m.HasColumn(&model.BreedingEvent{}, "event_date") },
			apply: func(db *gorm.DB) error {
				return db.Migrator().AddColumn(&model.BreedingEvent{}, "event_date")
			},
		},
		{
			descr: "gestations: notes",
			guard: func(m gorm.Migrator) bool { return !m.HasColumn(&model.Gestation{}, "notes") },
			apply: func(db *gorm.DB) error {
				return db.Migrator().AddColumn(&model.Gestation{}, "notes")
			},
		},
	}

	for _, p := range patches {
		if !p.guard(db.Migrator()) {
			continue
		}
		if err := p.apply(db); err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
