package main

import (
	auth "Vulcan/internal/auth"
	batch "Vulcan/internal/calc/batch"
	export "Vulcan/internal/calc/export"
	flooding "Vulcan/internal/calc/flooding"
	importer "Vulcan/internal/calc/importer"
	report "Vulcan/internal/calc/report"
	history "Vulcan/internal/history"
	repo "Vulcan/internal/repo"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

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
	userRepo := repo.NewPostgresRepository(db)
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: userRepo}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	floodingH := &flooding.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	historyH := &history.Handler{Repo: userRepo}

	secureApi.HandleFunc("/tools/flooding/calc", floodingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/flooding/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/flooding/import", importerH.Rooms).Methods("POST")
	secureApi.HandleFunc("/tools/flooding/export", exportH.Workbook).Methods("POST")
	secureApi.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/report/summary", reportH.Summary).Methods("POST")

	secureApi.HandleFunc("/history", historyH.Save).Methods("POST")
	secureApi.HandleFunc("/history", historyH.List).Methods("GET")
	secureApi.HandleFunc("/history/{id:[0-9]+}", historyH.Get).Methods("GET")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		crt, key := os.Getenv("SERVER_CRT"), os.Getenv("SERVER_KEY")
		var err error
		if crt != "" && key != "" {
			err = server.ListenAndServeTLS(crt, key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
