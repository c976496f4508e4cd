package main

import (
	"fmt"
	"os"
	"os/signal"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	if err := deps.Server.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to listen on %s: %s\n", c.Addr, err)
		return err
	}
	defer deps.Server.Close()

	ctx, stop := signal.NotifyContext(deps.Ctx, os.Interrupt)
	defer stop()

	fmt.Fprintf(deps.Stdout, "Serving on %s\n", deps.Server.URL())

	if c.Watch {
		dir := c.Dir
		if dir == "" {
			dir = deps.Config.ContentDir
		}
		fmt.Fprintf(deps.Stdout, "Watching %s for changes\n", dir)

		go func() {
			err := deps.Watcher.Watch(ctx, dir, func() {
				report, err := deps.Importer.Run(ctx)
				if err != nil {
					deps.Logger.Error("re-import failed", "error", err)
					return
				}
				deps.Logger.Info("re-imported content",
					"created", report.Created,
					"updated", report.Updated,
					"unchanged", report.Unchanged,
				)
			})
			if err != nil && ctx.Err() == nil {
				deps.Logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	<-ctx.Done()
	fmt.Fprintln(deps.Stdout, "Shutting down")
	return nil
}
