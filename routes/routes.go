package routes

import (
	"github.com/nanho-work/theUBoo/configs"
	"github.com/nanho-work/theUBoo/controllers"
	"github.com/nanho-work/theUBoo/middlewares"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/services"
	"github.com/nanho-work/theUBoo/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := storage.NewDiskStore(cfg.UploadDir, cfg.BaseURL)

	// Services
	menuSvc := services.NewMenuService(repository.NewMenuRepository(db), store)
	reviewSvc := services.NewReviewService(repository.NewReviewRepository(db), store)
	eventSvc := services.NewEventService(repository.NewEventRepository(db), store)
	slideSvc := services.NewSlideService(repository.NewSlideRepository(db), store)
	storeSvc := services.NewStoreService(repository.NewStoreRepository(db), store)
	authSvc := services.NewAuthService(repository.NewAdminRepository(db), cfg.JWTSecret, cfg.JWTTTL)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	reviewCtrl := controllers.NewReviewController(reviewSvc)
	eventCtrl := controllers.NewEventController(eventSvc)
	slideCtrl := controllers.NewSlideController(slideSvc)
	storeCtrl := controllers.NewStoreController(storeSvc, slideSvc)
	contentCtrl := controllers.NewContentController(menuSvc, reviewSvc, eventSvc, slideSvc, storeSvc)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/login", authCtrl.Login)
	}
	aAuth := a.Group("", middlewares.AuthMiddleware())
	{
		aAuth.GET("/me", authCtrl.Me)
	}

	// Public
	r.GET("/menus", menuCtrl.List)
	r.GET("/reviews", reviewCtrl.ListPublic)
	r.POST("/reviews", reviewCtrl.Create)
	r.PATCH("/reviews/:id", reviewCtrl.Update)
	r.GET("/events", eventCtrl.List)
	r.GET("/events/:id", eventCtrl.Detail)
	r.POST("/events/:id/views", eventCtrl.IncrementViews)
	r.GET("/store", storeCtrl.Get)
	r.GET("/store/photos", storeCtrl.ListPhotos)
	r.GET("/introduction", storeCtrl.GetIntroduction)

	// Legacy single-endpoint surface. Deliberately ungated, mutating verbs
	// included, to stay wire-compatible with the old admin pages; the gated
	// equivalents live under /admin below.
	r.Any("/api/content", contentCtrl.Handle)

	// Admin console (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware("admin"))
	{
		admin.GET("/menus", menuCtrl.List)
		admin.POST("/menus", menuCtrl.Create)
		admin.PATCH("/menus/:id", menuCtrl.Update)
		admin.DELETE("/menus/:id", menuCtrl.Delete)

		admin.GET("/reviews", reviewCtrl.ListAdmin)
		admin.PATCH("/reviews/:id/visibility", reviewCtrl.SetVisibility)

		admin.POST("/events", eventCtrl.Create)
		admin.PATCH("/events/:id", eventCtrl.Update)
		admin.DELETE("/events/:id", eventCtrl.Delete)

		admin.GET("/slides", slideCtrl.List)
		admin.POST("/slides/:slot", slideCtrl.Upload)
		admin.DELETE("/slides/:slot", slideCtrl.Delete)

		admin.PUT("/store", storeCtrl.SaveInfo)
		admin.POST("/store/photos", storeCtrl.AddPhoto)
		admin.DELETE("/store/photos", storeCtrl.RemovePhoto)
		admin.POST("/introduction", storeCtrl.SaveIntroduction)
	}
}
