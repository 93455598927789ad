package services

import (
	"github.com/omondi/shulehub/internal/app/repositories"
	"github.com/omondi/shulehub/internal/pkg/auth"
	"github.com/omondi/shulehub/internal/pkg/email"
	"github.com/omondi/shulehub/internal/pkg/filestorage"
)

// Services bundles all application services for dependency injection
type Services struct {
	Student    *StudentService
	Admin      *AdminService
	Campaign   *CampaignService
	Resource   *ResourceService
	Council    *CouncilService
	Subscriber *SubscriberService
	News       *NewsService
}

// NewServices wires all services to their repositories
func NewServices(repos *repositories.Repositories, jwt *auth.JWTService, storage filestorage.FileStorage, mailer email.Mailer) *Services {
	return &Services{
		Student:    NewStudentService(repos.StudentRepository),
		Admin:      NewAdminService(repos.AdminRepository, jwt),
		Campaign:   NewCampaignService(repos.CampaignRepository, repos.StudentRepository, repos.AdminRepository, repos.SubscriberRepository, mailer),
		Resource:   NewResourceService(repos.ResourceRepository, storage),
		Council:    NewCouncilService(repos.CouncilRepository, repos.StudentRepository, storage),
		Subscriber: NewSubscriberService(repos.SubscriberRepository),
		News:       NewNewsService(repos.NewsRepository),
	}
}
