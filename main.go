package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	auth "TapeLab/internal/auth"
	adhesion "TapeLab/internal/calc/adhesion"
	aging "TapeLab/internal/calc/aging"
	composite "TapeLab/internal/calc/composite"
	damage "TapeLab/internal/calc/damage"
	autospec "TapeLab/internal/calc/premium/autospec"
	batch "TapeLab/internal/calc/premium/batch"
	importer "TapeLab/internal/calc/premium/importer"
	recommend "TapeLab/internal/calc/premium/recommend"
	properties "TapeLab/internal/calc/properties"
	report "TapeLab/internal/calc/report"
	materials "TapeLab/internal/materials"
	profile "TapeLab/internal/profile"
	repo "TapeLab/internal/repo"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	profileH := &profile.ProfileHandler{Repo: userRepo}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/{id:[0-9]+}", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/configs", profileH.SaveConfig).Methods("POST")
	secureApi.HandleFunc("/configs", profileH.ListConfigs).Methods("GET")
	secureApi.HandleFunc("/configs/{id:[0-9]+}", profileH.DeleteConfig).Methods("DELETE")

	propertiesH := &properties.Handler{}
	adhesionH := &adhesion.Handler{}
	agingH := &aging.Handler{}
	compositeH := &composite.Handler{}
	damageH := &damage.Handler{}
	materialsH := &materials.Handler{}
	reportH := &report.Handler{}
	batchH := &batch.Handler{}
	recommendH := &recommend.Handler{}
	autospecH := &autospec.Handler{}
	importerH := &importer.Handler{}

	secureApi.HandleFunc("/tools/properties/calc", propertiesH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/adhesion/calc", adhesionH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/composite/calc", compositeH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/damage/calc", damageH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/tint/calc", agingH.Tint).Methods("POST")
	secureApi.HandleFunc("/tools/materials/list", materialsH.List).Methods("GET")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")

	secureApi.HandleFunc("/tools-premium/batch/calc", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools-premium/recommend/calc", recommendH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools-premium/autospec/calc", autospecH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools-premium/import/xlsx", importerH.Import).Methods("POST")
	secureApi.HandleFunc("/tools-premium/export/xlsx", importerH.Export).Methods("POST")

	authFileServer := http.FileServer(http.Dir("./static/auth"))
	mux.PathPrefix("/auth/").
		Handler(authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
