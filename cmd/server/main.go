package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/idempotency"
	"github.com/murkotick/storefront-graph/internal/app/commerce/journal"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_order"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_product"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_orders"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_products"
	"github.com/murkotick/storefront-graph/internal/app/commerce/repo"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/add_to_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/place_order"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_all_orders"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_from_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_order"
	"github.com/murkotick/storefront-graph/internal/config"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
	"github.com/murkotick/storefront-graph/internal/pkg/committer"
	"github.com/murkotick/storefront-graph/internal/pkg/logger"
	"github.com/murkotick/storefront-graph/internal/pkg/observability"
	"github.com/murkotick/storefront-graph/internal/pkg/shutdown"
	"github.com/murkotick/storefront-graph/internal/platform"
	gql "github.com/murkotick/storefront-graph/internal/transport/graphql"
)

const serviceName = "storefront-graph"

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(logger.Options{
		Service:   serviceName,
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	otelProvider, err := observability.New(ctx, observability.Config{
		ServiceName:  serviceName,
		Environment:  cfg.AppEnv,
		OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
		Insecure:     cfg.Telemetry.Insecure,
		SampleRate:   cfg.Telemetry.SampleRate,
	}, log)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := otelProvider.Shutdown(flushCtx); err != nil {
			log.Warn("telemetry flush failed", "error", err)
		}
	}()

	api, err := platform.New(cfg.PlatformConfig())
	if err != nil {
		return err
	}
	clk := clock.RealClock{}
	cat := catalog.NewClient(api, log)

	var placements contracts.PlacementJournal = journal.Nop{}
	if cfg.SpannerDatabase != "" {
		client, err := spanner.NewClient(ctx, cfg.SpannerDatabase)
		if err != nil {
			return err
		}
		defer client.Close()
		placements = journal.NewSpannerJournal(repo.NewPlacementRepo(), repo.NewOutboxRepo(), committer.NewAdapter(client), clk)
		log.Info("placement journal enabled", "database", cfg.SpannerDatabase)
	}

	var idem contracts.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb := idempotency.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rdb.Close()
		store := idempotency.NewRedisStore(rdb, cfg.IdempotencyTTL)
		if err := store.Ping(ctx); err != nil {
			return err
		}
		idem = store
		log.Info("idempotency store: redis", "addr", cfg.Redis.Addr)
	} else {
		idem = idempotency.NewMemoryStore(cfg.IdempotencyTTL, clk)
	}

	// CQRS wiring
	cmds := gql.Commands{
		AddToCart:       add_to_cart.NewInteractor(api, cat, log),
		RemoveFromCart:  remove_from_cart.NewInteractor(api, cat, log),
		PlaceOrder:      place_order.NewInteractor(api, api, cat, placements, idem, clk, log),
		RemoveOrder:     remove_order.NewInteractor(api),
		RemoveAllOrders: remove_all_orders.NewInteractor(api, cfg.OrderListLimit),
	}
	qrys := gql.Queries{
		Product:  get_product.NewHandler(cat),
		Products: list_products.NewHandler(cat),
		Cart:     get_cart.NewHandler(api, cat, log),
		Orders:   list_orders.NewHandler(api, cat, cfg.OrderListLimit),
		Order:    get_order.NewHandler(api, cat),
	}
	schema, err := gql.NewSchema(gql.NewResolver(cmds, qrys, log))
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           gql.NewHTTPHandler(schema, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	grpcSrv := grpc.NewServer()
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcSrv, healthSrv)
	healthSrv.SetServingStatus(serviceName, healthpb.HealthCheckResponse_SERVING)

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return err
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Info("graphql server listening", "addr", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http serve", "error", err)
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		log.Info("grpc health server listening", "addr", cfg.GRPCAddr)
		if err := grpcSrv.Serve(lis); err != nil {
			log.Error("grpc serve", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")
	healthSrv.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http shutdown", "error", err)
	}

	stopped := make(chan struct{})
	go func() {
		grpcSrv.GracefulStop()
		close(stopped)
	}()
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		grpcSrv.Stop()
	}

	wg.Wait()
	log.Info("server stopped")
	return nil
}
