package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/tablebook/internal/auth"
	"github.com/example/tablebook/internal/catalog"
	"github.com/example/tablebook/internal/config"
	"github.com/example/tablebook/internal/db"
	"github.com/example/tablebook/internal/engine"
	"github.com/example/tablebook/internal/logger"
	"github.com/example/tablebook/internal/migrate"
	"github.com/example/tablebook/internal/reservation"
	"github.com/example/tablebook/internal/store"
	"github.com/example/tablebook/internal/web"
)

func newServerCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the JSON API over the deterministic engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			log := logger.New(cfg.LogLevel)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			var st reservation.Store = store.NewMemory()
			if cfg.DatabaseURL != "" {
				d, err := db.Open(ctx, cfg.DatabaseURL)
				if err != nil {
					return err
				}
				defer d.Close()
				if err := d.Ping(ctx); err != nil {
					return fmt.Errorf("db ping: %w", err)
				}
				if migrateUp {
					if err := migrate.Up(ctx, d); err != nil {
						return err
					}
				}
				st = store.NewPostgres(d)
				log.Info("using postgres reservation store")
			} else {
				log.Info("using in-memory reservation store")
			}

			eng := engine.New(catalog.NewSeeded(), st)

			srv := &web.Server{Provider: eng, Log: log}
			if cfg.AuthEnabled() {
				srv.Auth = auth.NewStore(cfg.SessionHashKey, cfg.SessionBlockKey, cfg.OperatorUser, cfg.OperatorPasswordBcrypt)
				log.Info("session auth enabled for mutating routes")
			}

			return web.Start(ctx, cfg.HTTPAddr, srv.Routes(), log)
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
