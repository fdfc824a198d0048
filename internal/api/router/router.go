package router

import (
	"foodgram-go/internal/api/handler"
	"foodgram-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup 注册所有业务路由
func Setup(
	r *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	subscriptionHandler *handler.SubscriptionHandler,
	tagHandler *handler.TagHandler,
	ingredientHandler *handler.IngredientHandler,
	recipeHandler *handler.RecipeHandler,
	relationHandler *handler.RelationHandler,
	shortLinkHandler *handler.ShortLinkHandler,
) {
	api := r.Group("/api")

	// --- 认证模块 ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
	}

	// --- 用户与订阅模块 ---
	users := api.Group("/users")
	{
		// 公开接口（匿名可访问，登录后附带订阅状态）
		usersPublic := users.Group("", middleware.AuthOptional())
		{
			usersPublic.GET("", userHandler.ListUsers)
			usersPublic.GET("/:id", userHandler.GetUser)
		}

		usersAuth := users.Group("", middleware.AuthRequired())
		{
			usersAuth.GET("/me", authHandler.Me)
			usersAuth.PUT("/me/avatar", userHandler.SetAvatar)
			usersAuth.DELETE("/me/avatar", userHandler.DeleteAvatar)

			usersAuth.GET("/subscriptions", subscriptionHandler.ListSubscriptions)
			usersAuth.POST("/:id/subscribe", subscriptionHandler.Subscribe)
			usersAuth.DELETE("/:id/subscribe", subscriptionHandler.Unsubscribe)
		}
	}

	// --- 标签与食材模块（公开） ---
	tags := api.Group("/tags")
	{
		tags.GET("", tagHandler.List)
		tags.GET("/:id", tagHandler.Get)
	}

	ingredients := api.Group("/ingredients")
	{
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.Get)
	}

	// --- 食谱模块 ---
	recipes := api.Group("/recipes")
	{
		recipesPublic := recipes.Group("", middleware.AuthOptional())
		{
			recipesPublic.GET("", recipeHandler.List)
			recipesPublic.GET("/search", recipeHandler.Search)
			recipesPublic.GET("/:id", recipeHandler.GetDetail)
			recipesPublic.GET("/:id/get-link", recipeHandler.GetLink)
		}

		recipesAuth := recipes.Group("", middleware.AuthRequired())
		{
			recipesAuth.POST("", recipeHandler.Create)
			recipesAuth.PATCH("/:id", recipeHandler.Update)
			recipesAuth.DELETE("/:id", recipeHandler.Delete)

			recipesAuth.GET("/download_shopping_cart", recipeHandler.DownloadShoppingCart)

			recipesAuth.POST("/:id/favorite", relationHandler.Favorite)
			recipesAuth.DELETE("/:id/favorite", relationHandler.Unfavorite)
			recipesAuth.POST("/:id/shopping_cart", relationHandler.AddToCart)
			recipesAuth.DELETE("/:id/shopping_cart", relationHandler.RemoveFromCart)
		}
	}

	// --- 短链接跳转 ---
	r.GET("/s/:token", shortLinkHandler.Redirect)
}
