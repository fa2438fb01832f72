package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
//
// Debt and expense tables rely on the implicit rowid for insertion order:
// ListDebtsByGroup must return debts in the order they were written because
// the simplifier's greedy matching is defined by that order.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    kakao_id TEXT PRIMARY KEY,
    nickname TEXT NOT NULL,
    profile_image TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS groups (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    profile_image TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS group_members (
    group_id TEXT NOT NULL,
    kakao_id TEXT NOT NULL,
    PRIMARY KEY (group_id, kakao_id),
    FOREIGN KEY (group_id) REFERENCES groups(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    amount INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    payer TEXT NOT NULL,
    group_id TEXT NOT NULL DEFAULT '',
    settled INTEGER NOT NULL DEFAULT 0,
    date TEXT NOT NULL,
    type TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS expense_participants (
    expense_id TEXT NOT NULL,
    kakao_id TEXT NOT NULL,
    amount INTEGER NOT NULL,
    settled INTEGER NOT NULL DEFAULT 0,
    PRIMARY KEY (expense_id, kakao_id),
    FOREIGN KEY (expense_id) REFERENCES expenses(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS debts (
    id TEXT PRIMARY KEY,
    from_user TEXT NOT NULL,
    to_user TEXT NOT NULL,
    amount INTEGER NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    group_id TEXT NOT NULL DEFAULT '',
    settled INTEGER NOT NULL DEFAULT 0,
    date TEXT NOT NULL,
    expense_id TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_group_members_kakao_id ON group_members(kakao_id);
CREATE INDEX IF NOT EXISTS idx_expenses_group_id ON expenses(group_id);
CREATE INDEX IF NOT EXISTS idx_debts_group_id ON debts(group_id);
CREATE INDEX IF NOT EXISTS idx_debts_from_user ON debts(from_user);
CREATE INDEX IF NOT EXISTS idx_debts_to_user ON debts(to_user);
CREATE INDEX IF NOT EXISTS idx_debts_expense_id ON debts(expense_id);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
