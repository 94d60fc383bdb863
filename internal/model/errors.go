package model

import "fmt"

// NotFoundError reports a reference-data lookup miss. Kind is "route" or
// "vessel"; Key identifies the missing row.
type NotFoundError struct {
	Kind string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

// InvalidConfigError reports a decision-rule or stress parameter outside its
// valid domain. It is raised before any computation proceeds; out-of-range
// values are never silently clamped.
type InvalidConfigError struct {
	Param string
	Msg   string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %s %s", e.Param, e.Msg)
}
