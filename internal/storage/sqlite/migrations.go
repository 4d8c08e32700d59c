package sqlite

type migration struct {
	name string
	sql  string
}

// migrations are applied in order; never edit an applied entry, append a new one
var migrations = []migration{
	{
		name: "create players",
		sql: `
			CREATE TABLE players (
				id            TEXT PRIMARY KEY,
				username      TEXT NOT NULL UNIQUE,
				password_hash TEXT NOT NULL,
				name          TEXT NOT NULL,
				age           INTEGER NOT NULL,
				height        INTEGER NOT NULL,
				city          TEXT NOT NULL,
				job           TEXT NOT NULL,
				time_of_day   INTEGER NOT NULL,
				skills        TEXT NOT NULL,
				created_at    INTEGER NOT NULL,
				updated_at    INTEGER NOT NULL
			)
		`,
	},
	{
		name: "index players by creation",
		sql:  `CREATE INDEX idx_players_created_at ON players (created_at)`,
	},
}
