package dataset

import "fmt"

// RecordError reports a dataset record that violates the data contract
// (e.g. a route with a non-positive distance). It signals a dataset
// defect rather than bad user input, so callers log it and propagate it
// instead of converting it to a not-found message.
type RecordError struct {
	Collection string // collection name, e.g. "routes"
	Record     string // identifying label of the offending record
	Reason     string
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	return fmt.Sprintf("%s record %q: %s", e.Collection, e.Record, e.Reason)
}
