package main

import (
	"net/http"
	"os"
	"time"

	twitterOauthClient "twitter_post_api/internal/client/twitter-oauth-client"
	"twitter_post_api/internal/middleware"

	tweetHandler "twitter_post_api/internal/handlers/tweet"

	apikeyService "twitter_post_api/internal/service/apikey"
	tweetService "twitter_post_api/internal/service/tweet"

	dbRepository "twitter_post_api/db/repository"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "github.com/lib/pq"
)

const defaultAddr = ":8080"

func main() {
	// Load .env if present, don't fail if missing
	_ = godotenv.Load()

	db, err := sqlx.Connect("postgres", os.Getenv("DB_CONN"))
	if err != nil {
		logrus.Fatalf("cannot connect to db: %v", err)
	}

	err = db.Ping()
	if err != nil {
		logrus.Fatalf("cannot ping db: %v", err)
	}

	dbRepo := dbRepository.NewDBRepository(db)

	oauthClient := twitterOauthClient.NewTwitterOauthClient()

	aks := apikeyService.NewAPIKeyService(dbRepo)
	tws := tweetService.NewTweetService(dbRepo, oauthClient)

	twHandler := tweetHandler.NewTweetHandler(aks, tws)

	router := mux.NewRouter()

	router.HandleFunc("/api/v1/post", twHandler.PostTweetLegacy).Methods("POST")
	router.HandleFunc("/api/v1/x/post", twHandler.PostTweet).Methods("POST")
	router.HandleFunc("/api/v1/x/validate-tokens", twHandler.ValidateTokens).Methods("GET")

	// Configure CORS
	handler := middleware.ConfigureCORS(router)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	logrus.Info("server start...")

	// media relays hold the request open while uploads run upstream
	srv := &http.Server{
		Handler:      handler,
		Addr:         addr,
		WriteTimeout: 60 * time.Second,
		ReadTimeout:  30 * time.Second,
	}

	logrus.Fatal(srv.ListenAndServe())
}
