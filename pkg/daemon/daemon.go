// Package daemon runs the calibration engine and serves its HTTP API over a
// unix socket.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/device"
	"github.com/simcoaches/trackpro/pkg/engine"
	"github.com/simcoaches/trackpro/pkg/events"
	"github.com/simcoaches/trackpro/pkg/store"
)

var (
	conf  config.Config
	eng   *engine.Engine
	hub   *events.Hub
	names *store.Names
	wsHub *WSHub
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/status", getStatus)
	router.POST("/axes/:axis/min", setAxisMin)
	router.POST("/axes/:axis/max", setAxisMax)
	router.GET("/axes/:axis/validate", validateAxis)
	router.GET("/axes/:axis/name", getAxisName)
	router.PUT("/axes/:axis/name", setAxisName)
	router.GET("/samples/:axis", getSamples)
	router.POST("/reset", resetCalibration)
	router.POST("/restore-defaults", restoreDefaults)
	router.POST("/restore-last", restoreLast)
	router.GET("/config", getConfig)
	router.GET("/version", getVersion)
	router.GET("/events", streamEvents)
	router.GET("/stream", streamWebsocket)

	return router
}

// Run starts the daemon and blocks until SIGINT or SIGTERM.
func Run(configPath string, unixSocketPath string, simulate bool) error {
	router := setupRoutes()

	var err error
	conf, err = config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			err := conf.Load()
			if err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.Infof("config reloaded")
		}
	}()

	hub = events.NewHub()
	wsHub = NewWSHub()

	names, err = store.NewNames(conf.NamesPath())
	if err != nil {
		logrus.Fatalf("failed to load axis names: %v", err)
	}

	st := newPlatformStore(conf, store.HubNotifier{Hub: hub})

	var src device.Source
	if simulate || conf.Simulate() {
		logrus.Info("using simulated wheel input")
		src = device.NewSim()
	} else {
		src, err = device.Open()
		if err != nil {
			logrus.WithError(err).Warn("wheel device unavailable, starting without input")
			src = nil
		}
	}

	eng = engine.New(st, src, hub)
	eng.LoadPersisted()

	srv := &http.Server{
		Handler: router,
	}

	// Create the socket to listen on:
	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	// Serve HTTP on unix socket
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	// Bridge engine events onto connected websocket clients.
	go bridgeEventsToWebsocket(hub, wsHub)

	loopCtx, cancelLoop := context.WithCancel(context.Background())
	go func() {
		logrus.Debugln("sampling loop starts")

		eng.Run(loopCtx, conf.TickInterval())

		logrus.Debugln("sampling loop exited")
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	// Wait for a SIGINT or SIGTERM:
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	cancelLoop()

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	err = srv.Shutdown(ctx)
	if err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	if src != nil {
		logrus.Info("closing wheel device")
		if err := src.Close(); err != nil {
			logrus.Errorf("failed to close wheel device: %v", err)
		}
	}

	logrus.Info("exiting")
	return nil
}
