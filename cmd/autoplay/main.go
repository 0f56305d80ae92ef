package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"casino_client/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := app.NewApp().RunAutoplay(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("autoplay failed")
	}
}
