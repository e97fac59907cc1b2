// Package orgreportv1 は orgreport.v1.OrgReportService の gRPC サービス定義です。
// メッセージには well-known types (emptypb, structpb) を利用します。
package orgreportv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName                  = "orgreport.v1.OrgReportService"
	GenerateReportFullMethodName = "/orgreport.v1.OrgReportService/GenerateReport"
)

// Report 構造体のフィールド名です。
const (
	FieldRunID                 = "run_id"
	FieldGeneratedAt           = "generated_at"
	FieldEmployeeCount         = "employee_count"
	FieldSalaryFindings        = "salary_findings"
	FieldReportingLineFindings = "reporting_line_findings"
	FieldReportingLineError    = "reporting_line_error"
)

// OrgReportServiceClient は OrgReportService のクライアントです。
type OrgReportServiceClient interface {
	GenerateReport(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type orgReportServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewOrgReportServiceClient はクライアントを生成します。
func NewOrgReportServiceClient(cc grpc.ClientConnInterface) OrgReportServiceClient {
	return &orgReportServiceClient{cc: cc}
}

func (c *orgReportServiceClient) GenerateReport(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, GenerateReportFullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// OrgReportServiceServer はサーバー側で実装するインターフェースです。
type OrgReportServiceServer interface {
	GenerateReport(context.Context, *emptypb.Empty) (*structpb.Struct, error)
}

// UnimplementedOrgReportServiceServer は未実装メソッドに Unimplemented を返します。
type UnimplementedOrgReportServiceServer struct{}

func (UnimplementedOrgReportServiceServer) GenerateReport(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Error(codes.Unimplemented, "method GenerateReport not implemented")
}

// RegisterOrgReportServiceServer は srv を gRPC サーバーに登録します。
func RegisterOrgReportServiceServer(s grpc.ServiceRegistrar, srv OrgReportServiceServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func generateReportHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OrgReportServiceServer).GenerateReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: GenerateReportFullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OrgReportServiceServer).GenerateReport(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// ServiceDesc は OrgReportService の grpc.ServiceDesc です。
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*OrgReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GenerateReport",
			Handler:    generateReportHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "orgreport/v1/orgreport.proto",
}
