// Package httpapi exposes the use cases over HTTP. The transport stays thin:
// it decodes payloads, calls a service, and translates sentinel errors into
// status codes.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/finledger/internal/logging"
	"github.com/dmitrijs2005/finledger/internal/server/statements"
	"github.com/dmitrijs2005/finledger/internal/server/users"
)

type HTTPServer struct {
	address    string
	users      *users.Service
	statements *statements.Service
	logger     logging.Logger
	jwtSecret  []byte
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, ss *statements.Service, secretKey string) (*HTTPServer, error) {
	return &HTTPServer{
		address:    a,
		logger:     l.With("module", "http_server"),
		users:      us,
		statements: ss,
		jwtSecret:  []byte(secretKey),
	}, nil
}

// Handler builds the route table. Exposed separately from Run so tests can
// drive the full stack through httptest.
func (s *HTTPServer) Handler() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")

	v1.GET("/ping", s.ping)
	v1.POST("/users", s.register)
	v1.POST("/sessions", s.createSession)

	authed := v1.Group("", s.authRequired())
	authed.GET("/profile", s.profile)
	authed.POST("/statements/deposit", s.deposit)
	authed.POST("/statements/withdraw", s.withdraw)
	authed.GET("/statements/balance", s.balance)
	authed.GET("/statements/:statement_id", s.statement)

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
