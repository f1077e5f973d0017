package models

// TaskChanges is a batch of record mutations for the "tasks" entity kind:
// three ordered sequences of records to create, records to update, and
// record ids to delete.
type TaskChanges struct {
	Created []Task   `json:"created"`
	Updated []Task   `json:"updated"`
	Deleted []string `json:"deleted"`
}

// ChangeSet maps entity kinds to their mutation batches. This system has a
// single entity kind, "tasks".
type ChangeSet struct {
	Tasks TaskChanges `json:"tasks"`
}

// IsEmpty reports whether the change set carries no mutations at all.
func (c ChangeSet) IsEmpty() bool {
	return len(c.Tasks.Created) == 0 &&
		len(c.Tasks.Updated) == 0 &&
		len(c.Tasks.Deleted) == 0
}

// PushRequest is the wire-level input of the push operation.
type PushRequest struct {
	// Changes is the client's batch of local mutations since its last pull.
	Changes ChangeSet `json:"changes"`

	// LastPulledAt is the watermark the client received from its previous
	// pull, or null on a first sync. The server records it for diagnostics
	// only; push applies unconditionally under last-write-wins.
	LastPulledAt *int64 `json:"lastPulledAt"`
}

// PullRequest is the wire-level input of the pull operation.
type PullRequest struct {
	// LastPulledAt is the watermark boundary: the client already holds
	// everything up to and including this timestamp. Null means "full
	// sync, beginning of time".
	LastPulledAt *int64 `json:"lastPulledAt"`

	// SchemaVersion is the client's local schema version.
	SchemaVersion int `json:"schemaVersion"`

	// Migration, when present, is a serialized object describing the
	// schema migration the client just crossed. It contains at least a
	// "from" integer field.
	Migration *string `json:"migration"`
}

// MigrationDescriptor is the decoded form of [PullRequest.Migration].
type MigrationDescriptor struct {
	// From is the schema version the client migrated from.
	From int `json:"from"`
}

// PullResponse is the wire-level output of the pull operation.
type PullResponse struct {
	// Changes partitions every record the client is missing into
	// created-since and updated-since sets. The deleted set is declared
	// by the wire contract but is never populated: no tombstone mechanism
	// exists server-side.
	Changes ChangeSet `json:"changes"`

	// Timestamp is the wall-clock time at which the pull executed (epoch
	// milliseconds). The client stores it and supplies it as LastPulledAt
	// on its next call.
	Timestamp int64 `json:"timestamp"`
}
