package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/beautybook/beautybook-api/internal/cache"
	"github.com/beautybook/beautybook-api/internal/config"
	dbpkg "github.com/beautybook/beautybook-api/internal/db"
	"github.com/beautybook/beautybook-api/internal/jobs"
	"github.com/beautybook/beautybook-api/internal/middleware"
	"github.com/beautybook/beautybook-api/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	store := cache.New(cfg.RedisAddr)

	jobs.NewOverdueSweeper(db).Start()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
