package app

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Operation tracks a command that may mutate the database. Operations are
// created in memory with ID=0. Only DB-mutating commands persist them
// (giving them an auto-increment ID from the database).
type Operation struct {
	ID         int64
	Operation  string
	ActorID    string
	Parameters string
	Status     string
}

// NewOperation creates a new in-memory operation.
func NewOperation(operation string) *Operation {
	return &Operation{
		Operation: operation,
		Status:    StatusSuccess,
	}
}

// Persisted returns true if this operation has been saved to the database.
func (op *Operation) Persisted() bool {
	return op.ID != 0
}
