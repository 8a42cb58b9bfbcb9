package router

import (
	"crypto/subtle"
	"log"
	"net/http"
	"os"

	"formulario-clientes/app/controller"
)

type Controllers struct {
	Intake *controller.IntakeController
	Client *controller.ClientController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// adminAuth wraps a handler with HTTP basic auth. Username is always
// "admin"; the password comes from ADMIN_PASS.
func adminAuth(next http.HandlerFunc) http.HandlerFunc {
	password := os.Getenv("ADMIN_PASS")
	if password == "" {
		password = "1234"
		log.Printf("⚠️  Admin auth: ADMIN_PASS not set, using the default password. Change this for production")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		userOK := subtle.ConstantTimeCompare([]byte(user), []byte("admin")) == 1
		passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(password)) == 1
		if !ok || !userOK || !passOK {
			w.Header().Set("WWW-Authenticate", `Basic realm="Client Administration"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Public intake endpoints, one per channel
	http.HandleFunc("/upload", controllers.Intake.UploadCard)
	http.HandleFunc("/upload/manual", controllers.Intake.SubmitManual)
	http.HandleFunc("/upload/julian", controllers.Intake.UploadJulian)

	// Admin list endpoint
	http.HandleFunc("/admin/clients", adminAuth(controllers.Client.ListClients))

	// Admin record endpoints - routed by method and suffix
	http.HandleFunc("/admin/clients/", adminAuth(func(w http.ResponseWriter, r *http.Request) {
		// Priority reorder must be matched before the generic /:id route
		if r.Method == http.MethodPatch {
			controllers.Client.UpdatePriority(w, r)
			return
		}
		if r.Method == http.MethodPut {
			controllers.Client.UpdateClient(w, r)
			return
		}
		if r.Method == http.MethodDelete {
			controllers.Client.DeleteClient(w, r)
			return
		}
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}))
}
