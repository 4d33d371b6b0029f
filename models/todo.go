package models

// Todo is a single task item owned by exactly one user.
//
// Every read and mutation of a Todo is scoped by OwnerID: a row is only
// ever visible to, or mutable by, the user it references. Ownership
// mismatch and absence are indistinguishable to API callers.
type Todo struct {
	// ID is the server-assigned unique identifier of the item.
	ID int64 `json:"id"`

	// Title is a short task summary. Must be at least 3 characters.
	Title string `json:"title"`

	// Description is the task body, 3 to 1000 characters. On creation it
	// may be replaced by the output of the text-enrichment collaborator.
	Description string `json:"description"`

	// Priority ranks the task from 1 (lowest) to 5 (highest).
	Priority int `json:"priority"`

	// Complete marks whether the task is done. Defaults to false.
	Complete bool `json:"complete"`

	// OwnerID references the user that owns this item.
	OwnerID int64 `json:"-"`
}

// TableName returns the name of the database table
// associated with the Todo model.
func (t Todo) TableName() string {
	return "todos"
}

// TodoUpdate describes a full replacement of a todo's mutable fields,
// targeted by ID and constrained by OwnerID.
type TodoUpdate struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"-"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    int    `json:"priority"`
	Complete    bool   `json:"complete"`
}
