// Command bootstrap runs the out-of-band maintenance of the Redis structures
// the request path only reads: the dedup filter and the search index.
package main

import (
	"context"
	"os"

	"restaurant-directory/config"
	"restaurant-directory/internal/keys"
	"restaurant-directory/internal/storage"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

type indexRebuilder interface {
	Rebuild(ctx context.Context) error
}

type jobs struct {
	filter storage.DedupFilter
	index  indexRebuilder
	logger logrus.FieldLogger
}

// Reserving drops every fingerprint recorded so far.
func (j *jobs) reserveFilter(ctx context.Context, capacity int64, errorRate float64) error {
	if err := j.filter.Reserve(ctx, capacity, errorRate); err != nil {
		return err
	}
	j.logger.WithFields(logrus.Fields{
		"capacity":   capacity,
		"error_rate": errorRate,
	}).Info("dedup filter reserved")
	return nil
}

func (j *jobs) rebuildIndex(ctx context.Context) error {
	return j.index.Rebuild(ctx)
}

type connectFunc func(c *cli.Context) (*jobs, func(), error)

func newApp(cfg *config.Config, connect connectFunc) *cli.App {
	withJobs := func(run func(c *cli.Context, j *jobs) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			j, closeFn, err := connect(c)
			if err != nil {
				return err
			}
			defer closeFn()
			return run(c, j)
		}
	}

	return &cli.App{
		Name:  "bootstrap",
		Usage: "prepare the dedup filter and search index of the restaurant directory",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "capacity",
				Value:   cfg.BloomCapacity,
				Usage:   "expected number of restaurants in the dedup filter",
				EnvVars: []string{"BLOOM_CAPACITY"},
			},
			&cli.Float64Flag{
				Name:    "error-rate",
				Value:   cfg.BloomErrorRate,
				Usage:   "false positive rate of the dedup filter",
				EnvVars: []string{"BLOOM_ERROR_RATE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "reserve-filter",
				Usage: "drop and recreate the dedup filter (destructive)",
				Action: withJobs(func(c *cli.Context, j *jobs) error {
					return j.reserveFilter(c.Context, c.Int64("capacity"), c.Float64("error-rate"))
				}),
			},
			{
				Name:  "rebuild-index",
				Usage: "drop and recreate the restaurant search index",
				Action: withJobs(func(c *cli.Context, j *jobs) error {
					return j.rebuildIndex(c.Context)
				}),
			},
			{
				Name:  "all",
				Usage: "run every bootstrap step",
				Action: withJobs(func(c *cli.Context, j *jobs) error {
					var result *multierror.Error
					if err := j.reserveFilter(c.Context, c.Int64("capacity"), c.Float64("error-rate")); err != nil {
						result = multierror.Append(result, err)
					}
					if err := j.rebuildIndex(c.Context); err != nil {
						result = multierror.Append(result, err)
					}
					return result.ErrorOrNil()
				}),
			},
		},
	}
}

func main() {
	cfg := config.Load()
	logger := cfg.NewLogger()

	connect := func(c *cli.Context) (*jobs, func(), error) {
		rdb := config.MustInitRedis(cfg, logger)
		ns := keys.New(cfg.KeyRoot)
		return &jobs{
			filter: storage.NewRedisBloomFilter(rdb, ns),
			index:  storage.NewSearchIndex(rdb, ns, logger),
			logger: logger,
		}, func() { rdb.Close() }, nil
	}

	if err := newApp(cfg, connect).Run(os.Args); err != nil {
		logger.WithError(err).Fatal("bootstrap failed")
	}
}
