package reconcile

import "fmt"

// NotFoundError is returned when the entity to reconcile does not exist.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found", e.ID)
}

// ConfigurationError is returned when the directory root node is required but absent.
type ConfigurationError struct {
	RootID string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("directory root %s does not exist", e.RootID)
}
