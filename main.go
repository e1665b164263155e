package main

import (
	"fmt"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"portfolio/config"
	"portfolio/dao/query"
	"portfolio/logutils"
	"portfolio/service"
)

func main() {
	cfg := config.GetConfig()
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.Default()
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	err := query.InitDB()
	if err != nil {
		fmt.Println("err init:", err)
		os.Exit(1)
	}

	api := r.Group("/api", service.IdentityMiddleware())
	service.RegisterAuth(api)
	service.RegisterProject(api)
	service.RegisterBudget(api)
	service.RegisterMilestone(api)
	service.RegisterRisk(api)
	service.RegisterRfi(api)
	service.RegisterDocument(api)
	service.RegisterMedia(api)
	service.RegisterApproval(api)
	service.RegisterActivity(api)
	service.RegisterSummary(api)

	err = r.Run(":" + cfg.Server.Port)
	if err != nil {
		logutils.Log.Fatal(err)
	}
}
