package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	AdminRepository      *AdminRepository
	CampaignRepository   *CampaignRepository
	ResourceRepository   *ResourceRepository
	CouncilRepository    *CouncilRepository
	SubscriberRepository *SubscriberRepository
	NewsRepository       *NewsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		AdminRepository:      NewAdminRepository(db),
		CampaignRepository:   NewCampaignRepository(db),
		ResourceRepository:   NewResourceRepository(db),
		CouncilRepository:    NewCouncilRepository(db),
		SubscriberRepository: NewSubscriberRepository(db),
		NewsRepository:       NewNewsRepository(db),
	}
}
