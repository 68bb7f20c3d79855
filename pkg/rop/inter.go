package rop

// Outcome is the non-generic view shared by Result and Items.
type Outcome interface {
	// Status returns the completion status
	Status() Status
	// Messages returns the attached messages, nil when there are none
	Messages() []string
	// IsSuccess returns true if the status is Success
	IsSuccess() bool
}

var (
	_ Outcome = Result[int]{}
	_ Outcome = Items[int]{}
)
