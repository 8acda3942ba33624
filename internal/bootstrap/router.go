package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	httpapi "github.com/ataa-grants/grants-backend/internal/api/http"
	"github.com/ataa-grants/grants-backend/internal/api/http/middleware"
	aireviewhttp "github.com/ataa-grants/grants-backend/internal/aireview/http"
	"github.com/ataa-grants/grants-backend/internal/auth"
	authhttp "github.com/ataa-grants/grants-backend/internal/auth/http"
	"github.com/ataa-grants/grants-backend/internal/content"
	"github.com/ataa-grants/grants-backend/internal/notify"
	proposalshttp "github.com/ataa-grants/grants-backend/internal/proposals/http"
	"github.com/ataa-grants/grants-backend/internal/proposals/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	AdminPassword  string
	SessionTTL     time.Duration
	DB             *pgxpool.Pool
	Redis          *redis.Client
	Proposals      *service.ProposalService
	Feed           *notify.Feed
	Reviewer       aireviewhttp.Reviewer
	Log            *zap.Logger
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware(dep.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	content.NewHandler().Register(api)

	proposalHandler := proposalshttp.NewHandler(dep.Proposals, dep.Feed)

	proposalHandler.RegisterPublic(api.Group("/proposals"))
	aireviewhttp.NewHandler(dep.Reviewer, dep.Log).Register(api)

	sessions := auth.NewSessionStore(dep.Redis, dep.SessionTTL)
	gate := auth.NewGate(dep.AdminPassword, sessions)

	admin := api.Group("/admin")
	authhttp.NewHandler(gate).Register(admin)

	adminProposals := admin.Group("/proposals")
	adminProposals.Use(auth.RequireAdmin(sessions))
	proposalHandler.RegisterAdmin(adminProposals)

	return r
}
