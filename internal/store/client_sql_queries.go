// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createTodoCacheTable = `
		CREATE TABLE IF NOT EXISTS todos (
			id          INTEGER NOT NULL,
			title       TEXT    NOT NULL,
			description TEXT    NOT NULL,
			priority    INTEGER NOT NULL,
			complete    BOOLEAN NOT NULL DEFAULT FALSE,
			owner_id    INTEGER NOT NULL,
			PRIMARY KEY (id, owner_id)
		);`

	upsertCachedTodo = `
		INSERT INTO todos (
			id,
			title,
			description,
			priority,
			complete,
			owner_id
		) VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (id, owner_id) DO UPDATE SET
			title       = excluded.title,
			description = excluded.description,
			priority    = excluded.priority,
			complete    = excluded.complete;`

	getAllCachedTodos = `
		SELECT
			id,
			title,
			description,
			priority,
			complete,
			owner_id
		FROM todos
		WHERE owner_id = ?
		ORDER BY id;`

	deleteCachedTodo = `
		DELETE FROM todos
		WHERE id = ? AND owner_id = ?;`

	deleteAllCachedTodos = `
		DELETE FROM todos
		WHERE owner_id = ?;`
)
