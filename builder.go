// Package conjen holds the runtime support imported by generated code:
// the builder state machine, the error taxonomy, Optional, immutable Bytes,
// and the collection copy helpers used by setters and accessors.
package conjen

// BuilderState is the lifecycle state of a generated builder.
type BuilderState uint8

const (
	// BuilderOpen accepts setters and Build.
	BuilderOpen BuilderState = iota
	// BuilderBuilt rejects every call.
	BuilderBuilt
)

// String returns the state name.
func (s BuilderState) String() string {
	switch s {
	case BuilderOpen:
		return "open"
	case BuilderBuilt:
		return "built"
	default:
		return "unknown"
	}
}

// Check returns an IllegalBuilderReuseError naming typ and method when the
// builder has already been built.
func (s BuilderState) Check(typ, method string) error {
	if s == BuilderBuilt {
		return NewIllegalBuilderReuseError(typ, method)
	}
	return nil
}

// MarkBuilt moves the state to BuilderBuilt. It reports false if the state
// was already built.
func (s *BuilderState) MarkBuilt() bool {
	if *s == BuilderBuilt {
		return false
	}
	*s = BuilderBuilt
	return true
}

// AddFieldIfMissing appends name to prev when initialized is false. Build
// calls it once per tracked field so that every missing field is reported.
func AddFieldIfMissing(prev []string, initialized bool, name string) []string {
	if initialized {
		return prev
	}
	if prev == nil {
		prev = make([]string, 0, 1)
	}
	return append(prev, name)
}
