package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/quasilyte/gdata"

	"github.com/wask-game/wask/leaderboard/server"
)

func main() {
	port := flag.Int("port", 5000, "HTTP listen port")
	persist := flag.Bool("persist", true, "Persist scores between restarts")
	appName := flag.String("app", "wask_leaderboard", "Storage namespace used when persisting")
	flag.Parse()

	var items server.ItemStore
	if *persist {
		m, err := gdata.Open(gdata.Config{AppName: *appName})
		if err != nil {
			log.Fatalf("[leaderboard] open storage: %v", err)
		}
		items = m
	}

	store, err := server.NewStore(items)
	if err != nil {
		log.Fatalf("[leaderboard] fatal: %v", err)
	}

	addr := fmt.Sprintf(":%d", *port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           server.NewRouter(store),
		ReadHeaderTimeout: 5 * time.Second,
	}
	log.Printf("[leaderboard] starting on %s (persist=%v)", addr, *persist)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("[leaderboard] fatal: %v", err)
	}
}
