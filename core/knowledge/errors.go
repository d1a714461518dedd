package knowledge

import "fmt"

// RemoteError is returned when the store answers with a non-success status.
type RemoteError struct {
	Op     string
	ID     string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("knowledge: %s %s: status %d: %s", e.Op, e.ID, e.Status, e.Body)
}
