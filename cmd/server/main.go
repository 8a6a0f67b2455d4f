package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/usefulutilities/internal/api"
	"github.com/rohits-web03/usefulutilities/internal/config"
	"github.com/rohits-web03/usefulutilities/internal/mailer"
	"github.com/rohits-web03/usefulutilities/internal/repositories"
)

// @title UsefulUtilities API
// @version 1.0
// @description Accounts, download counters and reviews for the UsefulUtilities catalog.
func main() {
	db, err := repositories.ConnectDatabase(config.Envs.DBPath)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	mail := mailer.NewSMTPMailer(config.Envs.Mail)

	handler := api.SetupRouter(db, mail)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.Envs.Port),
		Handler: handler,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting UsefulUtilities server on port: %s", config.Envs.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", config.Envs.Port, err)
	}
}
