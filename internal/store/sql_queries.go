package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/kvasnikov/go-task-sync/models"
)

const (
	createUser = `INSERT INTO users (login, password_hash, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password_hash, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password_hash, name, created_at
    FROM users
    WHERE login = $1;`

	insertTask = `INSERT INTO tasks (
			id,
			user_id,
			name,
			icon,
			is_done,
			is_urgent,
			comment,
			created_at,
			updated_at,
			server_created_at,
			server_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	deleteTasks = `DELETE FROM tasks
		WHERE user_id = $1 AND id = ANY($2);`

	// The strict > / <= pair keeps the two pull sets disjoint for any
	// watermark: a record created at exactly the watermark belongs to
	// neither, one updated at exactly the watermark belongs to neither.
	getCreatedSince = `SELECT id, user_id, name, icon, is_done, is_urgent, comment, created_at, updated_at, server_created_at, server_updated_at
		FROM tasks
		WHERE user_id = $1 AND server_created_at > $2
		ORDER BY server_created_at ASC;`

	getUpdatedSince = `SELECT id, user_id, name, icon, is_done, is_urgent, comment, created_at, updated_at, server_created_at, server_updated_at
		FROM tasks
		WHERE user_id = $1 AND server_updated_at > $2 AND server_created_at <= $2
		ORDER BY server_updated_at ASC;`

	getAllTasks = `SELECT id, user_id, name, icon, is_done, is_urgent, comment, created_at, updated_at, server_created_at, server_updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY server_created_at ASC;`
)

// taskColumns is the canonical column order shared by every SELECT above and
// by the squirrel builders below. Scan destinations must follow it.
var taskColumns = []string{
	"id", "user_id", "name", "icon", "is_done", "is_urgent",
	"comment", "created_at", "updated_at", "server_created_at", "server_updated_at",
}

// buildTasksByIDsQuery builds the batched point-lookup query used by the
// push reconciler to detect already-persisted ids. squirrel expands the id
// slice into an IN clause with dollar placeholders.
func buildTasksByIDsQuery(userID int64, ids []string) (string, []any, error) {
	query, args, err := sq.Select(taskColumns...).
		From("tasks").
		Where(sq.Eq{"user_id": userID, "id": ids}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildTaskUpdateQuery builds the sparse patch UPDATE for a single record.
//
// Required fields arrive as non-nil pointers and are always set; the
// tri-state optionals are set only when their key was present in the inbound
// payload, which is what makes the patch sparse rather than a full-record
// replacement. server_updated_at is stamped unconditionally and
// server_created_at never appears in the SET list.
func buildTaskUpdateQuery(patch models.TaskPatch) (string, []any, error) {
	builder := sq.Update("tasks").
		Set("server_updated_at", patch.ServerUpdatedAt)

	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.Icon != nil {
		builder = builder.Set("icon", *patch.Icon)
	}
	if patch.Done != nil {
		builder = builder.Set("is_done", *patch.Done)
	}
	if patch.ClientUpdatedAt != nil {
		builder = builder.Set("updated_at", *patch.ClientUpdatedAt)
	}
	if patch.Urgent.Set {
		builder = builder.Set("is_urgent", patch.Urgent.Ptr())
	}
	if patch.Comment.Set {
		builder = builder.Set("comment", patch.Comment.Ptr())
	}

	query, args, err := builder.
		Where(sq.Eq{"id": patch.ID, "user_id": patch.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
