package grpc

import (
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// FormStoreServiceName is the service name reported by the health endpoint
// next to the overall ("") status.
const FormStoreServiceName = "slideform.FormStore"

// Handler is the root gRPC transport handler. The form store exposes only
// the standard gRPC health protocol over gRPC; forms and responses are served
// over HTTP.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both services start as NOT_SERVING until
// [Handler.Init] builds the server.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	hs.SetServingStatus(FormStoreServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   hs,
		logger:   logger,
	}
}

// Init builds a [grpc.Server] with the health service registered and marks
// the form store as SERVING.
func (h *Handler) Init() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(h.withTraceID, h.withLogging),
	)
	healthpb.RegisterHealthServer(server, h.health)

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(FormStoreServiceName, healthpb.HealthCheckResponse_SERVING)

	return server
}

// Shutdown flips every service to NOT_SERVING so load balancers drain the
// instance before the listeners close.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
