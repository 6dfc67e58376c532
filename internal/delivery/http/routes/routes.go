package routes

import (
	"log"

	"portfolio-api/internal/config"
	"portfolio-api/internal/database"
	"portfolio-api/internal/delivery/http/handler"
	"portfolio-api/internal/delivery/http/middleware"
	"portfolio-api/internal/infrastructure/cache"
	"portfolio-api/internal/pkg/jwt"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/usecase"
	"portfolio-api/internal/ws"

	"github.com/gofiber/fiber/v3"
)

// Registry builds the repository, usecase and handler graph and mounts
// every route group on the app.
type Registry struct {
	cfg    config.Config
	db     database.DB
	cache  *cache.Redis
	hub    *ws.Hub
	logger *log.Logger
}

func NewRegistry(cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{cfg: cfg, db: db, cache: redis, hub: hub, logger: logger}
}

func (r *Registry) Register(app *fiber.App) {
	api := app.Group("/api")

	handler.NewHealthHandler().RegisterRoutes(api)

	jwtSvc := jwt.NewHMACService(r.cfg.Admin.JWTSecret, r.cfg.Admin.TokenTTL)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	authHandler := handler.NewAuthHandler(usecase.NewAuthUsecase(r.cfg.Admin, jwtSvc))
	authHandler.RegisterRoutes(api)

	public := api.Group("/portfolio")
	admin := api.Group("/portfolio", authMw.Middleware())

	personalInfoRepo := repository.NewPostgresPersonalInfoRepository(r.db)
	educationRepo := repository.NewPostgresEducationRepository(r.db)
	skillRepo := repository.NewPostgresSkillRepository(r.db)
	projectRepo := repository.NewPostgresProjectRepository(r.db)
	experienceRepo := repository.NewPostgresExperienceRepository(r.db)
	certificationRepo := repository.NewPostgresCertificationRepository(r.db)
	testimonialRepo := repository.NewPostgresTestimonialRepository(r.db)
	procedureRepo := repository.NewPostgresProcedureRepository(r.db)
	contactRepo := repository.NewPostgresContactMessageRepository(r.db)
	veilleRepo := repository.NewPostgresVeilleRepository(r.db)

	handler.NewPersonalInfoHandler(usecase.NewPersonalInfoUsecase(personalInfoRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewEducationHandler(usecase.NewEducationUsecase(educationRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewSkillHandler(usecase.NewSkillUsecase(skillRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewProjectHandler(usecase.NewProjectUsecase(projectRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewExperienceHandler(usecase.NewExperienceUsecase(experienceRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewCertificationHandler(usecase.NewCertificationUsecase(certificationRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewTestimonialHandler(usecase.NewTestimonialUsecase(testimonialRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewProcedureHandler(usecase.NewProcedureUsecase(procedureRepo, r.cache)).RegisterRoutes(public, admin)
	handler.NewContactHandler(usecase.NewContactUsecase(contactRepo)).RegisterRoutes(public, admin)
	handler.NewVeilleHandler(usecase.NewVeilleUsecase(veilleRepo, r.cache)).RegisterRoutes(public, admin)

	wsHandler := ws.NewHandler(r.hub, r.logger)
	api.Get("/ws/updates", wsHandler.HandleUpdatesWS)
}
