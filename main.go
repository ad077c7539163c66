package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/openkraft/ngkit/internal/adapters/inbound/cli"
	"github.com/openkraft/ngkit/internal/domain"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()
	os.Exit(domain.ExitCode(err))
}
