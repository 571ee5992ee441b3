package repositories

// Repositories struct holds all repository interfaces
type Repositories struct {
	Logs LogRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		Logs: NewLogRepository(),
	}
}
