package server

import (
	"net"

	"github.com/MKhiriev/go-slide-form/internal/config"
	myGRPC "github.com/MKhiriev/go-slide-form/internal/handler/grpc"
	"github.com/MKhiriev/go-slide-form/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	return &grpcServer{
		handler: handler,
		server:  handler.Init(),
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) run() error {
	lis, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return err
	}

	if err = g.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
