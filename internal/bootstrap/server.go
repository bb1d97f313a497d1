package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Domenick1991/airport/api"
	"github.com/Domenick1991/airport/config"
	flightsapi "github.com/Domenick1991/airport/internal/api/flights_service_api"
	"github.com/Domenick1991/airport/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type Servers struct {
	grpcServer *grpc.Server
	httpServer *http.Server
}

// Run starts the gRPC and HTTP servers and blocks until ctx is cancelled or a server fails.
func Run(ctx context.Context, cfg *config.Config, log *zap.Logger, gatherer prometheus.Gatherer, flightSvc flights.FlightUseCase) error {
	s := newServers(cfg, log, gatherer, flightSvc)

	errCh := make(chan error, 2)

	lis, err := net.Listen("tcp", cfg.GRPC.Address)
	if err != nil {
		return fmt.Errorf("listen gRPC %s: %w", cfg.GRPC.Address, err)
	}
	grpcDone := make(chan struct{})
	go func() {
		defer close(grpcDone)
		errCh <- s.grpcServer.Serve(lis)
	}()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	log.Info("servers started", zap.String("grpc", cfg.GRPC.Address), zap.String("http", cfg.HTTP.Address))

	select {
	case err := <-errCh:
		// one server failed; the other must not outlive Run
		s.grpcServer.Stop()
		<-grpcDone
		if shutdownErr := s.shutdownHTTP(); shutdownErr != nil {
			log.Warn("shutdown http server", zap.Error(shutdownErr))
		}
		return err
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		<-grpcDone
		if err := s.shutdownHTTP(); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info("servers stopped")
		return nil
	}
}

func (s *Servers) shutdownHTTP() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}

func newServers(cfg *config.Config, log *zap.Logger, gatherer prometheus.Gatherer, flightSvc flights.FlightUseCase) *Servers {
	grpcSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(unaryLogger(log)))
	flightsapi.RegisterFlightRegistryServer(grpcSrv, flightsapi.NewServer(flightSvc))

	return &Servers{
		grpcServer: grpcSrv,
		httpServer: &http.Server{
			Addr:              cfg.HTTP.Address,
			Handler:           NewRouter(cfg.HTTP, log, gatherer, flightSvc),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// NewRouter builds the HTTP surface: REST API, text reports, health, metrics and docs.
func NewRouter(cfg config.HTTPConfig, log *zap.Logger, gatherer prometheus.Gatherer, flightSvc flights.FlightUseCase) *gin.Engine {
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group("/api/v1")
	api.NewFlightHandler(flightSvc).Register(v1.Group("/flights"))
	api.NewReportHandler(flightSvc).Register(v1.Group("/reports"))

	if cfg.SwaggerDir != "" {
		r.Static("/swagger", cfg.SwaggerDir)
		r.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/flights.swagger.json"))))
	}
	return r
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("errors", c.Errors.String()),
		)
	}
}

func unaryLogger(log *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		fields := []zap.Field{zap.String("method", info.FullMethod), zap.Duration("duration", time.Since(start))}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}
		log.Info("rpc", fields...)
		return resp, err
	}
}
