// Package restserver serves the derived tables and computed series to the
// charting frontend. It is read-only: every endpoint reports state built
// once at startup.
package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/tmsennott/velolog/internal/log"
	"github.com/tmsennott/velolog/internal/notebook"
	"github.com/tmsennott/velolog/pkg/config"
)

// Controller represents the REST server controller
type Controller struct {
	ctx        context.Context
	wg         *sync.WaitGroup
	restConfig config.RESTServerData
	Server     http.Server
	logger     *zap.SugaredLogger
	handlers   *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, nb *notebook.Notebook, rc config.RESTServerData, logger *zap.SugaredLogger) (*Controller, error) {
	if nb == nil {
		return nil, fmt.Errorf("REST server needs a loaded notebook")
	}

	ctrl := &Controller{
		ctx:        ctx,
		wg:         wg,
		restConfig: rc,
		logger:     logger,
	}

	if rc.ListenAddr == "" {
		logger.Info("rest.listen_addr not provided; defaulting to 0.0.0.0 (all interfaces)")
		rc.ListenAddr = "0.0.0.0"
	}
	if rc.Port == 0 {
		logger.Info("rest.port not provided; defaulting to 8080")
		rc.Port = 8080
	}

	ctrl.handlers = NewHandlers(nb)

	router := ctrl.setupRouter()
	ctrl.Server.Addr = fmt.Sprintf("%v:%v", rc.ListenAddr, rc.Port)
	ctrl.Server.Handler = router

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Info("Starting REST server controller...")
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()
		if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
			log.Errorf("REST server error: %v", err)
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		c.Server.Shutdown(context.Background())
	}()

	return nil
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/rides", c.handlers.GetRides)
	router.HandleFunc("/segments", c.handlers.GetSegments)
	router.HandleFunc("/places", c.handlers.GetPlaces)
	router.HandleFunc("/eddington", c.handlers.GetEddington)
	router.HandleFunc("/trend/{x}/{y}", c.handlers.GetTrend)
	router.HandleFunc("/estimate", c.handlers.GetEstimate)
	router.HandleFunc("/summary", c.handlers.GetSummary)

	return router
}
