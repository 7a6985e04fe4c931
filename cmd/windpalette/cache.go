// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/windpalette/internal/db"
	"github.com/thatcatcamp/windpalette/internal/kv"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Key-value cache maintenance",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Remove expired cache entries",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fatal("%v", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		n, err := kv.NewGormStore(db.GetDB()).PurgeExpired(ctx)
		if err != nil {
			fatal("purging cache: %v", err)
		}

		fmt.Printf("Purged %d expired entries\n", n)
	},
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
	rootCmd.AddCommand(cacheCmd)
}
