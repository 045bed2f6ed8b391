package author

import "time"

/* Patch is a partial update of an Author.
 * A nil field means "keep the stored value"; there is no way to clear a field through a Patch
 */
type Patch struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	DateOfDeath *time.Time
}

// Apply returns a copy of a with every non-nil field of p applied
func (p Patch) Apply(a Author) Author {
	if p.FirstName != nil {
		a.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		a.LastName = *p.LastName
	}
	if p.DateOfBirth != nil {
		d := *p.DateOfBirth
		a.DateOfBirth = &d
	}
	if p.DateOfDeath != nil {
		d := *p.DateOfDeath
		a.DateOfDeath = &d
	}
	return a
}

// IsEmpty reports whether applying p would change nothing
func (p Patch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.DateOfBirth == nil && p.DateOfDeath == nil
}
