package ranking

import "fmt"

// NotFoundError reports a ranking request against an unknown vacancy.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.ID)
}

// InvalidArgumentError reports malformed query parameters. These are
// deterministic given the same bad input and are never retried.
type InvalidArgumentError struct {
	Argument string
	Reason   string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Argument, e.Reason)
}
