package utils

// NewNullString returns a pointer to s, or nil if s is empty. Optional text
// fields use it so an absent value is stored as NULL rather than "".
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
