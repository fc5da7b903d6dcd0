package repository

// Factory describes access to domain repositories.
type Factory interface {
	Users() UserRepository
}
