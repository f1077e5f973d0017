package store

const (
	replicaSchema = `
		CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			icon TEXT NOT NULL,
			is_done INTEGER NOT NULL DEFAULT 0,
			is_urgent INTEGER,
			comment TEXT,
			created_at INTEGER NOT NULL,
			updated_at INTEGER NOT NULL,
			dirty INTEGER NOT NULL DEFAULT 0,
			locally_created INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS deleted_tasks (
			id TEXT PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS sync_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			last_pulled_at INTEGER
		);`

	insertLocalTask = `
		INSERT INTO tasks (id, name, icon, is_done, is_urgent, comment, created_at, updated_at, dirty, locally_created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 1, 1);`

	updateLocalTask = `
		UPDATE tasks
		SET name = ?, icon = ?, is_done = ?, is_urgent = ?, comment = ?, updated_at = ?,
		    dirty = CASE WHEN locally_created = 1 THEN dirty ELSE 1 END
		WHERE id = ?;`

	upsertRemoteTask = `
		INSERT INTO tasks (id, name, icon, is_done, is_urgent, comment, created_at, updated_at, dirty, locally_created)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, 0)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			icon = excluded.icon,
			is_done = excluded.is_done,
			is_urgent = excluded.is_urgent,
			comment = excluded.comment,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at,
			dirty = 0,
			locally_created = 0;`

	deleteLocalTask = `DELETE FROM tasks WHERE id = ?;`

	isLocallyCreated = `SELECT locally_created FROM tasks WHERE id = ?;`

	insertTombstone = `INSERT OR IGNORE INTO deleted_tasks (id) VALUES (?);`

	deleteTombstones = `DELETE FROM deleted_tasks WHERE id = ?;`

	getLocalTask = `
		SELECT id, name, icon, is_done, is_urgent, comment, created_at, updated_at
		FROM tasks
		WHERE id = ?;`

	getAllLocalTasks = `
		SELECT id, name, icon, is_done, is_urgent, comment, created_at, updated_at
		FROM tasks
		ORDER BY created_at ASC;`

	getLocallyCreatedTasks = `
		SELECT id, name, icon, is_done, is_urgent, comment, created_at, updated_at
		FROM tasks
		WHERE locally_created = 1
		ORDER BY created_at ASC;`

	getDirtyTasks = `
		SELECT id, name, icon, is_done, is_urgent, comment, created_at, updated_at
		FROM tasks
		WHERE dirty = 1 AND locally_created = 0
		ORDER BY updated_at ASC;`

	getTombstones = `SELECT id FROM deleted_tasks ORDER BY id ASC;`

	clearTaskFlags = `UPDATE tasks SET dirty = 0, locally_created = 0 WHERE id = ?;`

	getLastPulledAt = `SELECT last_pulled_at FROM sync_state WHERE id = 1;`

	saveLastPulledAt = `
		INSERT INTO sync_state (id, last_pulled_at) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET last_pulled_at = excluded.last_pulled_at;`
)
