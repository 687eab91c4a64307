package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "pantry-on-command/internal/app"
	"pantry-on-command/internal/bootstrap"
	"pantry-on-command/internal/pkg/passhash"
	"pantry-on-command/internal/repository"
	"pantry-on-command/internal/transport/http/handler"
	"pantry-on-command/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	userRepo := repository.NewUserRepository(app.MySQL)
	categoryRepo := repository.NewCategoryRepository(app.MySQL)
	ingredientRepo := repository.NewIngredientRepository(app.MySQL)
	recipeRepo := repository.NewRecipeRepository(app.MySQL)
	fileRepo := repository.NewFileSystemRepository(app.Config.Storage.ImageDir)

	hasher := passhash.New(app.Config.Auth.BcryptCost)
	authService := appsvc.NewAuthService(
		userRepo,
		hasher,
		app.Config.Auth.JWTSecret,
		time.Duration(app.Config.Auth.JWTExpireMinute)*time.Minute,
	)
	userService := appsvc.NewUserService(userRepo, hasher)
	categoryService := appsvc.NewCategoryService(categoryRepo, ingredientRepo)
	ingredientService := appsvc.NewIngredientService(ingredientRepo, categoryRepo)
	recipeService := appsvc.NewRecipeService(recipeRepo, ingredientRepo, userRepo, fileRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	ingredientHandler := handler.NewIngredientHandler(ingredientService)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	healthHandler := handler.NewHealthHandler(app.StartedAt)

	router.GET("/healthz", healthHandler.Check)

	authRequired := middleware.AuthJWT(authService)

	api := router.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authRequired, authHandler.Logout)

	users := api.Group("/users")
	users.POST("", userHandler.Register)
	users.GET("/:userId", authRequired, userHandler.Get)
	users.GET("", authRequired, userHandler.List)
	users.PUT("/:userId", authRequired, userHandler.Update)
	users.DELETE("/:userId", authRequired, userHandler.Delete)

	categories := api.Group("/categories", authRequired)
	categories.POST("", categoryHandler.Create)
	categories.GET("/:categoryId", categoryHandler.Get)
	categories.GET("", categoryHandler.List)
	categories.PUT("/:categoryId", categoryHandler.Update)
	categories.DELETE("/:categoryId", categoryHandler.Delete)

	ingredients := api.Group("/ingredients", authRequired)
	ingredients.POST("", ingredientHandler.Create)
	ingredients.GET("/:ingredientId", ingredientHandler.Get)
	ingredients.GET("", ingredientHandler.List)
	ingredients.PUT("/:ingredientId", ingredientHandler.Update)
	ingredients.DELETE("/:ingredientId", ingredientHandler.Delete)

	recipes := api.Group("/recipes")
	recipes.GET("/:recipeId", recipeHandler.Get)
	recipes.GET("", recipeHandler.List)
	recipes.GET("/:recipeId/image", recipeHandler.FetchImage)
	recipes.POST("", authRequired, recipeHandler.Create)
	recipes.POST("/:recipeId/image", authRequired, recipeHandler.UploadImage)
	recipes.PUT("/:recipeId/user/:userId", authRequired, recipeHandler.Update)
	recipes.PUT("/:recipeId/image/user/:userId", authRequired, recipeHandler.ReplaceImage)
	recipes.DELETE("/:recipeId/user/:userId", authRequired, recipeHandler.Delete)

	return router
}
