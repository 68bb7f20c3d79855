package rop

import (
	"fmt"
	"strconv"
)

// Status is the completion status carried by every Result.
type Status uint8

const (
	// Success is the zero value: the operation completed and data is valid.
	Success Status = iota
	// NotFound means one or more objects were not found.
	NotFound
	// InvalidArgument means one or more arguments were invalid.
	InvalidArgument
	// OperationFailed means the operation itself failed.
	OperationFailed
	// Conflict means the operation conflicts with another running operation.
	Conflict
)

var statusNames = [...]string{
	Success:         "Success",
	NotFound:        "NotFound",
	InvalidArgument: "InvalidArgument",
	OperationFailed: "OperationFailed",
	Conflict:        "Conflict",
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

func (s Status) IsValid() bool {
	return int(s) < len(statusNames)
}

func ParseStatus(name string) (Status, error) {
	for i, n := range statusNames {
		if n == name {
			return Status(i), nil
		}
	}
	return 0, fmt.Errorf("unknown status %q", name)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("unknown status %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
