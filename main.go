package main

import (
	"log"
	"os"

	"github.com/Dhiekson/ToolTrack/app"
	"github.com/Dhiekson/ToolTrack/config"
	"github.com/Dhiekson/ToolTrack/routes"
)

func main() {
	config.LoadEnv()

	application := app.MustNew()
	defer application.Close()

	r := application.Router

	// Health
	r.GET("/healthz", func(c *app.Ctx) { c.JSON(200, app.H{"ok": true}) })

	routes.RegisterRoutes(r, application)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3001"
	}
	log.Printf("listening on :%s", port)
	_ = r.Run(":" + port)
}
