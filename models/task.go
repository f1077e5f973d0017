package models

// Task represents a single task record as exchanged by the sync protocol
// and persisted on the server.
//
// Identity and the domain fields (name, icon, flags, comment) originate on
// the client and pass through the protocol opaquely. The two server
// timestamps are assigned exclusively by the server and drive incremental
// pull; they never appear on the wire.
type Task struct {
	// ID is the client-generated identifier of the record. It is globally
	// unique, immutable once created, and acts as the primary key.
	ID string `json:"id"`

	// UserID is the owner of the record. Populated server-side from the
	// authenticated request; never trusted from the payload.
	UserID int64 `json:"-"`

	// Name is the display name of the task. Required on every payload.
	Name string `json:"name"`

	// Icon is the client-chosen icon identifier. Required on every payload.
	Icon string `json:"icon"`

	// Done is the completion flag. Required on every payload.
	Done bool `json:"is_done"`

	// Urgent is the optional urgency flag. Absent keys preserve the stored
	// value during an update; explicit null clears it.
	Urgent Optional[bool] `json:"is_urgent"`

	// Comment is the optional free-form comment. Same sparse-patch
	// semantics as Urgent.
	Comment Optional[string] `json:"comment"`

	// ClientCreatedAt and ClientUpdatedAt are timestamps set by the
	// originating client (epoch milliseconds). They are payload
	// bookkeeping only and never order server-side state.
	ClientCreatedAt int64 `json:"created_at"`
	ClientUpdatedAt int64 `json:"updated_at"`

	// ServerCreatedAt is assigned once, at first persistence, and never
	// changes afterwards (epoch milliseconds).
	ServerCreatedAt int64 `json:"-"`

	// ServerUpdatedAt is re-stamped on every server-side modification.
	// Invariant: ServerUpdatedAt >= ServerCreatedAt.
	ServerUpdatedAt int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskPatch is a field-level sparse patch applied to a stored task.
// Only non-nil pointer fields and Set optional fields overwrite the stored
// values; everything else is preserved.
type TaskPatch struct {
	// ID identifies the record to patch. Required.
	ID string

	// UserID is the owner of the record. Required for data isolation.
	UserID int64

	// Name, Icon and Done are the required domain fields; the reconciler
	// always populates them from the inbound payload.
	Name *string
	Icon *string
	Done *bool

	// Urgent and Comment carry the tri-state optional fields. When not
	// Set, the stored value is left untouched.
	Urgent  Optional[bool]
	Comment Optional[string]

	// ClientUpdatedAt mirrors the client's updated_at bookkeeping field.
	ClientUpdatedAt *int64

	// ServerUpdatedAt is the transaction-wide timestamp stamped on every
	// patched record.
	ServerUpdatedAt int64
}
