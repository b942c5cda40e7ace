package v1

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/Totarae/QRDecoder/internal/handlers"
	"github.com/Totarae/QRDecoder/internal/service"
)

// GRPCServer отдаёт тот же конвейер, что и HTTP, по gRPC.
type GRPCServer struct {
	Decoder handlers.QRDecoder
	Logger  *zap.Logger
}

func NewGRPCServer(decoder handlers.QRDecoder, logger *zap.Logger) *GRPCServer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRPCServer{Decoder: decoder, Logger: logger}
}

// NewServer собирает grpc.Server с сервисом декодирования и стандартным health-сервисом.
func NewServer(decoder handlers.QRDecoder, logger *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	s := grpc.NewServer(opts...)
	RegisterQRDecoderServer(s, NewGRPCServer(decoder, logger))

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)
	return s
}

func (s *GRPCServer) Decode(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	imageURL := req.GetValue()

	text, err := s.Decoder.Decode(ctx, imageURL)
	if err != nil {
		st := toStatus(err)
		if st.Code() != codes.InvalidArgument {
			s.Logger.Warn("grpc decode failed",
				zap.String("imageUrl", imageURL),
				zap.String("code", st.Code().String()),
				zap.Error(err),
			)
		}
		return nil, st.Err()
	}
	return wrapperspb.String(text), nil
}

func toStatus(err error) *status.Status {
	switch service.KindOf(err) {
	case service.KindValidation:
		var e *service.Error
		msg := service.MsgInvalidURL
		if errors.As(err, &e) {
			msg = e.Message
		}
		return status.New(codes.InvalidArgument, msg)
	case service.KindNotFound:
		return status.New(codes.NotFound, handlers.MsgNoQRCode)
	case service.KindFetch:
		if service.IsFetchUnavailable(err) {
			return status.New(codes.Unavailable, handlers.MsgFetchFailed)
		}
	}
	return status.New(codes.Internal, handlers.MsgInternal)
}
