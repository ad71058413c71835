package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS balance (
    id           INTEGER PRIMARY KEY CHECK (id = 1),
    amount       TEXT NOT NULL,
    updated_at   TEXT NOT NULL
);
`
