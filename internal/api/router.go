package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/rohits-web03/usefulutilities/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/usefulutilities/internal/api/handlers"
	"github.com/rohits-web03/usefulutilities/internal/api/middleware"
	"github.com/rohits-web03/usefulutilities/internal/config"
	"github.com/rohits-web03/usefulutilities/internal/mailer"
	"github.com/rohits-web03/usefulutilities/internal/services"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

// SetupRouter wires the services onto the route table. The store handle
// and mailer come in from main so nothing here reaches for globals.
func SetupRouter(db *gorm.DB, mail mailer.Mailer) http.Handler {
	accounts := handlers.NewAccountHandler(services.NewAccountService(db, mail))
	catalog := handlers.NewCatalogHandler(services.NewCatalogService(db))
	reviews := handlers.NewReviewHandler(services.NewReviewService(db))

	mux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	mux.HandleFunc("POST /api/signup", accounts.Signup)
	mux.HandleFunc("POST /api/confirm", accounts.Confirm)
	mux.HandleFunc("POST /api/login", accounts.Login)
	mux.HandleFunc("POST /api/recover", accounts.Recover)

	mux.HandleFunc("POST /api/download", catalog.RecordDownload)
	mux.HandleFunc("GET /api/downloads/{name}", catalog.GetDownloads)

	mux.HandleFunc("POST /api/review", reviews.SubmitReview)
	mux.HandleFunc("GET /api/reviews/{utility}", reviews.ListReviews)

	log.Println("Router initialized")
	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
