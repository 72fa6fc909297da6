package storage

const schema = `
-- The 'completions' table records every item completed during the session.
CREATE TABLE IF NOT EXISTS completions (
    id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    category TEXT NOT NULL,
    time_slot TEXT NOT NULL,
    completed_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_completions_completed_at ON completions(completed_at);
`
