package main

import (
	"net/http"
	"os"
	"time"
)

func main() {
	addr := os.Getenv("GUESSDEX_HEALTH_ADDR")
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/api/version")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	// Consider any status < 500 as healthy
	if resp.StatusCode >= 500 {
		os.Exit(1)
	}
	os.Exit(0)
}
