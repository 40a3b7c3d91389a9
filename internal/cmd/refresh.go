package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/umlstudio/umlstudio/internal/logging"
)

const refreshTimeout = 30 * time.Second

// RefreshCmd clears the generation service's cached results
type RefreshCmd struct{}

// Run executes the refresh command
func (r *RefreshCmd) Run(cli *CLI) error {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	endpoint := cli.Container.Generator.Endpoint()
	logging.Logger.Info("Refreshing generation cache", "endpoint", endpoint)

	if err := cli.Container.Generator.Refresh(ctx); err != nil {
		return fmt.Errorf("failed to refresh cache at %s: %w", endpoint, err)
	}

	fmt.Printf("✓ Cache cleared at %s\n", endpoint)
	return nil
}
