package entity

// AccountRecord is the directory-owned view of an account. The core only
// reads it and conditionally patches blank fields; it never overwrites a
// populated value.
type AccountRecord struct {
	ID          string // caller-assigned when linking, otherwise synthesized
	DisplayName string
	PhotoURL    string
	Email       string
}

// AccountFields carries the optional profile fields passed to the directory
// on create or patch. Empty fields are left untouched.
type AccountFields struct {
	DisplayName string
	PhotoURL    string
	Email       string
}

// IsZero reports whether no field is set.
func (f AccountFields) IsZero() bool {
	return f.DisplayName == "" && f.PhotoURL == "" && f.Email == ""
}
