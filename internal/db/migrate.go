package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		status     TEXT NOT NULL DEFAULT 'active'
		           CHECK(status IN ('active','wrapped','archived')),
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS crew_members (
		id         TEXT PRIMARY KEY,
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name       TEXT NOT NULL,
		role       TEXT NOT NULL DEFAULT '',
		department TEXT NOT NULL DEFAULT '',
		daily_rate REAL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_crew_project ON crew_members(project_id)`,

	`CREATE TABLE IF NOT EXISTS cast_members (
		id             TEXT PRIMARY KEY,
		project_id     TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		actor_name     TEXT NOT NULL DEFAULT '',
		character_name TEXT NOT NULL DEFAULT '',
		daily_rate     REAL,
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_cast_project ON cast_members(project_id)`,

	`CREATE TABLE IF NOT EXISTS equipment (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		category    TEXT NOT NULL DEFAULT '',
		daily_rate  REAL,
		weekly_rate REAL,
		flat_rate   REAL,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_equipment_project ON equipment(project_id)`,

	`CREATE TABLE IF NOT EXISTS budget_categories (
		id          TEXT PRIMARY KEY,
		project_id  TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		name        TEXT NOT NULL,
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_categories_project ON budget_categories(project_id)`,

	`CREATE TABLE IF NOT EXISTS budget_items (
		id                    TEXT PRIMARY KEY,
		category_id           TEXT NOT NULL REFERENCES budget_categories(id) ON DELETE CASCADE,
		project_id            TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		description           TEXT NOT NULL DEFAULT '',
		unit                  TEXT NOT NULL DEFAULT '',
		unit_rate             REAL,
		quantity              REAL,
		estimated_amount      REAL,
		actual_amount         REAL,
		linked_crew_member_id TEXT REFERENCES crew_members(id) ON DELETE SET NULL,
		linked_cast_member_id TEXT REFERENCES cast_members(id) ON DELETE SET NULL,
		linked_equipment_id   TEXT REFERENCES equipment(id) ON DELETE SET NULL,
		created_at            TEXT NOT NULL,
		updated_at            TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_items_category ON budget_items(category_id)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_items_linked_crew ON budget_items(linked_crew_member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_items_linked_cast ON budget_items(linked_cast_member_id)`,
	`CREATE INDEX IF NOT EXISTS idx_budget_items_linked_equipment ON budget_items(linked_equipment_id)`,

	`CREATE TABLE IF NOT EXISTS scenes (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		scene_number         TEXT NOT NULL DEFAULT '',
		description          TEXT NOT NULL DEFAULT '',
		location_id          TEXT,
		location_name        TEXT NOT NULL DEFAULT '',
		cast_ids             TEXT NOT NULL DEFAULT '[]',
		crew_ids             TEXT NOT NULL DEFAULT '[]',
		equipment_ids        TEXT NOT NULL DEFAULT '[]',
		duration_min         INTEGER NOT NULL DEFAULT 0,
		special_requirements TEXT NOT NULL DEFAULT '',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_scenes_project ON scenes(project_id)`,

	`CREATE TABLE IF NOT EXISTS shooting_days (
		id                   TEXT PRIMARY KEY,
		project_id           TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		date                 TEXT NOT NULL,
		basecamp_location_id TEXT,
		parking_location_id  TEXT,
		holding_location_id  TEXT,
		contacts             TEXT NOT NULL DEFAULT '[]',
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shooting_days_project ON shooting_days(project_id)`,

	`CREATE TABLE IF NOT EXISTS scene_shooting_days (
		scene_id        TEXT NOT NULL REFERENCES scenes(id) ON DELETE CASCADE,
		shooting_day_id TEXT NOT NULL REFERENCES shooting_days(id) ON DELETE CASCADE,
		PRIMARY KEY (scene_id, shooting_day_id)
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_events (
		id              TEXT PRIMARY KEY,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		shooting_day_id TEXT NOT NULL REFERENCES shooting_days(id) ON DELETE CASCADE,
		scene_id        TEXT REFERENCES scenes(id) ON DELETE SET NULL,
		type            TEXT NOT NULL DEFAULT 'custom'
		                CHECK(type IN ('scene','company_move','meal','custom')),
		description     TEXT NOT NULL DEFAULT '',
		scene_number    TEXT NOT NULL DEFAULT '',
		location_id     TEXT,
		location_name   TEXT NOT NULL DEFAULT '',
		cast_ids        TEXT NOT NULL DEFAULT '[]',
		crew_ids        TEXT NOT NULL DEFAULT '[]',
		equipment_ids   TEXT NOT NULL DEFAULT '[]',
		duration_min    INTEGER NOT NULL DEFAULT 0,
		notes           TEXT NOT NULL DEFAULT '',
		order_index     INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_events_day ON schedule_events(shooting_day_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_events_scene ON schedule_events(scene_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_schedule_events_day_order
		ON schedule_events(shooting_day_id, order_index)`,
}
