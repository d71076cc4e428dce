package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"notifier/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes.
// requireAuth is the configured Auth Gate wrapper; it runs before the
// notification controller.
func NewRouter(notificationController *controllers.NotificationController, requireAuth func(http.HandlerFunc) http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /notifications/send", requireAuth(notificationController.Send))

	// Liveness
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
