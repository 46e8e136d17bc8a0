package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	httpapi "github.com/sofili-studio/studio-backend/internal/api/http"
	"github.com/sofili-studio/studio-backend/internal/api/http/middleware"
	authhttp "github.com/sofili-studio/studio-backend/internal/auth/http"
	"github.com/sofili-studio/studio-backend/internal/designs"
	"github.com/sofili-studio/studio-backend/internal/users"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	MaxBodyBytes int64
	DB           *pgxpool.Pool
	SQL          *sql.DB
	Cache        *users.Cache
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	// Contract: cross-origin requests permitted from any origin.
	r.Use(cors.Default())
	if dep.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(dep.MaxBodyBytes))
	}

	rootHandler := httpapi.NewRootHandler(dep.ServiceName, dep.Version, dep.DB)
	rootHandler.RegisterRoutes(r)

	v1 := r.Group("/v1")
	v1.GET("/", rootHandler.Index)

	userRepo := users.NewRepo(dep.DB)
	designRepo := designs.NewRepo(dep.SQL)

	var userReader users.Reader = userRepo
	if dep.Cache != nil {
		userReader = users.NewCachedReader(dep.Cache, userRepo)
	}

	authHandler := authhttp.New(userRepo, dep.Cache)
	authHandler.Register(v1.Group("/auth"))

	designs.Register(v1, designRepo, userReader)

	return r
}
