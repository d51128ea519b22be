package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"textclean/internal/cache"
	"textclean/internal/config"
)

func newCacheCommand(ctx *commandContext) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the sqlite result cache",
	}

	cacheCmd.AddCommand(newCacheStatsCommand(ctx))
	cacheCmd.AddCommand(newCacheClearCommand(ctx))
	cacheCmd.AddCommand(newCachePruneCommand(ctx))
	return cacheCmd
}

func openSQLiteCache(cfg *config.Config) (*cache.SQLite, error) {
	path, err := config.ExpandPath(cfg.Cache.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("resolve cache path: %w", err)
	}
	return cache.NewSQLite(path, time.Duration(cfg.Cache.TTLSeconds)*time.Second)
}

func newCacheStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache backend and entry count",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			store, err := openSQLiteCache(&cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.Count(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Configured backend: %s\n", cfg.Cache.Backend)
			fmt.Fprintf(out, "Enabled: %s\n", yesNo(cfg.Cache.Enabled))
			fmt.Fprintf(out, "SQLite path: %s\n", store.Path())
			fmt.Fprintf(out, "TTL: %s\n", time.Duration(cfg.Cache.TTLSeconds)*time.Second)
			fmt.Fprintf(out, "Entries: %d\n", count)
			return nil
		},
	}
}

func newCacheClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			store, err := openSQLiteCache(&cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared cache at %s\n", store.Path())
			return nil
		},
	}
}

func newCachePruneCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove cached results older than cache.ttl_seconds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			store, err := openSQLiteCache(&cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			removed, err := store.Prune(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d expired entries\n", removed)
			return nil
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
