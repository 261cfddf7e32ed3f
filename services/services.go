package services

import (
	"github.com/blogem/goodhome/repositories"
)

// Services holds all service instances
type Services struct {
	Journal JournalService
}

// NewServices creates and initializes all service instances.
// A nil repos yields services without a journal.
func NewServices(repos *repositories.Repositories) *Services {
	if repos == nil {
		return &Services{}
	}
	return &Services{
		Journal: NewJournalService(repos.ErrorJournal),
	}
}
