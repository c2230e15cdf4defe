package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"PortfolioDesk/internal/config"
	"PortfolioDesk/internal/middleware"
	"PortfolioDesk/internal/repo"
	"PortfolioDesk/internal/service"
	"PortfolioDesk/internal/storage"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров: собирает роутер со всеми
// таблицами, авторизацией, загрузкой ассетов и сводкой.
func NewHandler(
	db *gorm.DB,
	userService *service.UserService,
	summaryService *service.SummaryService,
	store storage.ObjectStore,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(cfg.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, cfg)
	assetHandler := NewAssetHandler(store, logger, cfg)
	contactRepo := repo.NewContactSubmissions(db)
	contactHandler := NewContactHandler(contactRepo, logger)
	summaryHandler := NewSummaryHandler(summaryService, logger)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)
	r.Get("/api/user/session", userHandler.Session)
	r.Post("/api/user/logout", userHandler.Logout)

	// Content tables
	mountContent(r, "blog_posts", repo.NewBlogPosts(db), logger)
	mountContent(r, "works", repo.NewWorks(db), logger)
	mountContent(r, "skills", repo.NewSkills(db), logger)
	mountContent(r, "education", repo.NewEducation(db), logger)
	mountContent(r, "experience", repo.NewExperience(db), logger)
	mountContent(r, "statistics", repo.NewStatistics(db), logger)
	mountContent(r, "brands", repo.NewBrands(db), logger)
	mountContent(r, "testimonials", repo.NewTestimonials(db), logger)
	mountContent(r, "contact_submissions", contactRepo, logger)
	mountReadOnly(r, "profiles", repo.NewProfiles(db), logger)

	// Assets, public contact form, dashboard summary
	r.Post("/api/assets", assetHandler.Upload)
	r.Post("/api/contact", contactHandler.Submit)
	r.Get("/api/admin/summary", summaryHandler.Summary)

	return &Handler{Router: r}
}
