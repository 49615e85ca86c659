package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"reddy-infra/internal/catalog"
	"reddy-infra/internal/config"
	"reddy-infra/internal/dispatch"
	"reddy-infra/internal/logger"
	"reddy-infra/internal/metrics"
	"reddy-infra/internal/order"
	"reddy-infra/internal/storage"
	"reddy-infra/internal/store"
	"reddy-infra/internal/tracing"
)

const usage = `usage: storefront [-metrics] [-ephemeral] <command> [args]

commands:
  catalog                     categories and trending products
  category <id>               products in a category
  product <id>                product details and pool status
  cart [show]                 cart lines and totals
  cart add <id> [qty]         add qty (default one MOQ) of a product
  cart remove <id>            remove a line
  cart set <id> <qty>         set a line quantity
  cart inc|dec <id>           step a line by one MOQ
  cart clear                  empty the cart
  onboard -phone -otp -type -city
                              complete onboarding
  profile [-name]             show or rename the profile
  logout                      reset the profile
  checkout                    place a pooled order from the cart
  orders [id]                 order history or one order's timeline
  dispatch [-watch]           next dispatch countdown
  learn                       how pooling works
`

var errUsage = errors.New("invalid usage")

// app holds everything one command invocation needs.
type app struct {
	cfg      *config.Config
	out      io.Writer
	catalog  catalog.Service
	products catalog.Repository
	store    *store.Store
	orders   order.Service
	schedule dispatch.Schedule
	now      func() time.Time
}

func run(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	dumpMetrics := fs.Bool("metrics", false, "print metrics after the command")
	ephemeral := fs.Bool("ephemeral", false, "keep state in memory only")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}

	if cfg.TraceStdout {
		shutdown, err := tracing.InitStdout(stderr)
		if err != nil {
			return err
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	storeCfg := *cfg
	if *ephemeral {
		storeCfg.Storage.Driver = config.DriverMemory
	}

	reg := prometheus.NewRegistry()
	storeMetrics := metrics.NewStoreMetrics(reg)

	repo, closeRepo, err := storage.Open(ctx, &storeCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			logger.FromCtx(ctx).Warn("failed to close storage", zap.Error(err))
		}
	}()

	schedule := dispatch.NewSchedule(cfg.Dispatch.Location())
	products := catalog.Default()

	st, err := store.Open(ctx, store.Params{
		Repository: storage.WithObserver(repo, storeCfg.Storage.Driver, storeMetrics),
		Key:        cfg.Storage.Key,
		Schedule:   schedule,
		Metrics:    storeMetrics,
	})
	if err != nil {
		return err
	}

	a := &app{
		cfg:      cfg,
		out:      stdout,
		catalog:  catalog.NewService(products),
		products: products,
		store:    st,
		orders:   order.NewService(st, products, schedule, time.Now),
		schedule: schedule,
		now:      time.Now,
	}

	if err := a.dispatch(ctx, fs.Arg(0), fs.Args()[1:]); err != nil {
		return err
	}
	if *dumpMetrics {
		return metrics.WriteText(stdout, reg)
	}
	return nil
}

func (a *app) dispatch(ctx context.Context, cmd string, args []string) error {
	ctx, span := tracing.StartSpan(ctx, "cli."+cmd)
	defer span.End()

	logger.FromCtx(ctx).Debug("running command",
		zap.String("layer", "cli"),
		zap.String("command", cmd),
	)

	switch cmd {
	case "catalog":
		return a.cmdCatalog(ctx)
	case "category":
		return a.cmdCategory(ctx, args)
	case "product":
		return a.cmdProduct(ctx, args)
	case "cart":
		return a.cmdCart(ctx, args)
	case "onboard":
		return a.cmdOnboard(ctx, args)
	case "profile":
		return a.cmdProfile(ctx, args)
	case "logout":
		return a.cmdLogout(ctx)
	case "checkout":
		return a.cmdCheckout(ctx)
	case "orders":
		return a.cmdOrders(ctx, args)
	case "dispatch":
		return a.cmdDispatch(ctx, args)
	case "learn":
		return a.cmdLearn(ctx)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}
