package v1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	// ServiceName полное имя gRPC-сервиса.
	ServiceName = "qrdecoder.v1.QRDecoder"
	// DecodeMethod полное имя метода Decode.
	DecodeMethod = "/" + ServiceName + "/Decode"
)

// QRDecoderServer сервис декодирования QR-кодов.
// Запрос и ответ — google.protobuf.StringValue: URL изображения и текст кода.
type QRDecoderServer interface {
	Decode(ctx context.Context, req *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// RegisterQRDecoderServer регистрирует реализацию на сервере.
func RegisterQRDecoderServer(s grpc.ServiceRegistrar, srv QRDecoderServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func decodeHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QRDecoderServer).Decode(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DecodeMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QRDecoderServer).Decode(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc описание сервиса для grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*QRDecoderServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Decode",
			Handler:    decodeHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "qrdecoder/v1/qrdecoder.proto",
}

// QRDecoderClient клиент сервиса.
type QRDecoderClient struct {
	cc grpc.ClientConnInterface
}

// NewQRDecoderClient создаёт клиента поверх соединения.
func NewQRDecoderClient(cc grpc.ClientConnInterface) *QRDecoderClient {
	return &QRDecoderClient{cc: cc}
}

// Decode вызывает удалённый Decode.
func (c *QRDecoderClient) Decode(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, DecodeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
