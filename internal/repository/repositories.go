package repository

// Repositories is a container for all repository instances.
//
// It is built once per process (or once per test) and handed to the
// service layer, so every instance owns isolated state.
type Repositories struct {
	User *UserRepository
}

// NewRepositories constructs the repository container. The stores live in
// memory, so there are no shared connections to pass in.
func NewRepositories() *Repositories {
	return &Repositories{
		User: NewUserRepository(),
	}
}
