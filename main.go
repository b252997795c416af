package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/linesmerrill/moderator-codes/codes"
	"github.com/linesmerrill/moderator-codes/commands"
	"github.com/linesmerrill/moderator-codes/config"
	"github.com/linesmerrill/moderator-codes/databases"
	"github.com/linesmerrill/moderator-codes/notifier"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	root := commands.NewRootCommand(setup, os.Stdout)
	status := commands.Execute(ctx, root, os.Args[1:])

	stop()
	_ = zap.L().Sync()
	os.Exit(status)
}

// setup loads the config and builds the store client and notifier
func setup(ctx context.Context) (*commands.Session, error) {
	conf, err := config.New()
	if err != nil {
		return nil, err
	}

	client, err := databases.NewClient(ctx, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create database client: %w", err)
	}
	db := databases.NewDatabase(conf, client)

	n, err := notifier.New(conf.Mail)
	if err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	zap.S().Infow("moderator-codes configured",
		"database", conf.DatabaseName,
		"collection", conf.Collection,
		"transport", conf.Mail.Transport,
	)

	return &commands.Session{
		Handler: commands.ModeratorCode{
			MCDB:         databases.NewModeratorCodeDatabase(db, conf.Collection),
			Notifier:     n,
			Codes:        codes.New(),
			Now:          time.Now,
			Out:          os.Stdout,
			QueryTimeout: conf.QueryTimeout,
		},
		StrictExit: conf.StrictExit,
		Close: func() {
			dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := client.Disconnect(dctx); err != nil {
				zap.S().Warnw("failed to disconnect from database", "error", err)
			}
		},
	}, nil
}
