package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/HackerShabi/hotelwebsite/internal/admin"
	"github.com/HackerShabi/hotelwebsite/internal/api"
	"github.com/HackerShabi/hotelwebsite/internal/catalog"
	"github.com/HackerShabi/hotelwebsite/internal/config"
	"github.com/HackerShabi/hotelwebsite/internal/logger"
	"github.com/HackerShabi/hotelwebsite/internal/transport/web"
)

func Run(l *logger.Logger, envFile string) error {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGHUP,
	)
	defer cancel()

	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %v: %w", envFile, err)
	}

	conf, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if conf.Debug {
		l = logger.NewDebug(log.Default())
	}

	content, err := catalog.LoadContent(conf.ContentPath)
	if err != nil {
		return fmt.Errorf("load site content: %w", err)
	}

	l.LogInfo("Site content loaded: %v rooms, %v services", len(content.Rooms), len(content.Services))

	apiClient := api.New(api.Config{
		L:       l,
		BaseURL: conf.APIBaseURL,
		Timeout: conf.APITimeout,
	})

	adminView := admin.New(l, apiClient)

	webConf := web.Conf{
		L:                 l,
		ServerLogger:      log.Default(),
		Host:              conf.Host,
		Port:              conf.Port,
		ReadHeaderTimeout: time.Duration(conf.ReadHeaderTimeout),
		LivenessEndpoint:  "/liveness",
	}

	srv, err := web.New(ctx, webConf, content, apiClient, adminView)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	//nolint:contextcheck
	go func() {
		<-ctx.Done()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second*4) //nolint:gomnd
		defer cancel()

		if err := srv.Srv().Shutdown(ctx); err != nil {
			l.LogErrorf("Failed to stop http server: %v", err.Error())
		}
	}()

	l.LogInfo("Application is running on %v:%v, backend API at %v...", webConf.Host, webConf.Port, conf.APIBaseURL)

	if err := srv.Srv().ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		l.LogErrorf("Failed to run http server: %v", err.Error())

		cancel()
	}

	l.LogInfo("Application stopped gracefully")

	return nil
}
