package user

// User is a stored user record.
type User struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   float64 `json:"age"`
}

// Patch carries the fields of an update. Zero values mean "keep the stored
// value", so an update cannot clear a name or set age to 0.
type Patch struct {
	Name  string
	Email string
	Age   float64
}

// Apply returns u with every non-zero field of p written over it.
// The identifier is never touched.
func (p Patch) Apply(u User) User {
	if p.Name != "" {
		u.Name = p.Name
	}
	if p.Email != "" {
		u.Email = p.Email
	}
	if p.Age != 0 {
		u.Age = p.Age
	}
	return u
}
