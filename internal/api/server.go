package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/phamdv/gamestore/internal/services/commerce"
)

// NewServer creates and returns a configured *http.Server for the
// storefront API.
func NewServer(port uint16, svc *commerce.Service, allowedOrigins []string) *http.Server {
	mux := NewRouter(svc, allowedOrigins)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
