// Package router assembles the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "portfolio_backend/internal/feature/auth/transport/handler"
	commenthandler "portfolio_backend/internal/feature/comments/transport/handler"
	portfoliohandler "portfolio_backend/internal/feature/portfolio/transport/handler"
	stockhandler "portfolio_backend/internal/feature/stocks/transport/handler"
	"portfolio_backend/internal/platform/config"
	platformhandler "portfolio_backend/internal/platform/http/handler"
	jwtmw "portfolio_backend/internal/platform/jwt"
)

// NewRouter wires every handler into a Gin engine. Everything under /api
// requires a valid bearer token; auth failures never reach a repository.
func NewRouter(cfg config.JWT,
	auth *authhandler.AuthHandler,
	stocks *stockhandler.StockHandler,
	comments *commenthandler.CommentHandler,
	portfolio *portfoliohandler.PortfolioHandler) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	// Liveness probe
	r.GET("/healthz", platformhandler.Health)

	// Public auth endpoints
	r.POST("/signup", auth.Signup)
	r.POST("/login", auth.Login)
	r.POST("/refresh", auth.Refresh)
	r.POST("/logout", auth.Logout)

	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired(cfg))
	{
		api.GET("/stock", stocks.List)
		api.GET("/stock/:id", stocks.GetByID)
		api.POST("/stock", stocks.Create)
		api.PUT("/stock/:id", stocks.Update)
		api.DELETE("/stock/:id", stocks.Delete)

		api.GET("/comment", comments.List)
		api.GET("/comment/:id", comments.GetByID)
		api.POST("/comment/:stockId", comments.Create)
		api.PUT("/comment/:id", comments.Update)
		api.DELETE("/comment/:id", comments.Delete)

		api.GET("/portfolio", portfolio.List)
		api.POST("/portfolio", portfolio.Add)
		api.DELETE("/portfolio", portfolio.Remove)
	}

	return r
}
