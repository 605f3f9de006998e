// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: ptr/v1/ptr.proto

package ptrv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PtrService_ProcessYear_FullMethodName        = "/ptr.v1.PtrService/ProcessYear"
	PtrService_ProcessFiling_FullMethodName      = "/ptr.v1.PtrService/ProcessFiling"
	PtrService_GetReport_FullMethodName          = "/ptr.v1.PtrService/GetReport"
	PtrService_ListTransactions_FullMethodName   = "/ptr.v1.PtrService/ListTransactions"
	PtrService_GetStats_FullMethodName           = "/ptr.v1.PtrService/GetStats"
	PtrService_ExportTransactions_FullMethodName = "/ptr.v1.PtrService/ExportTransactions"
)

// PtrServiceClient is the client API for PtrService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PtrServiceClient interface {
	// ProcessYear refreshes a year's filing list and runs every PTR document
	// through the pipeline.
	ProcessYear(ctx context.Context, in *ProcessYearRequest, opts ...grpc.CallOption) (*ProcessYearResponse, error)
	// ProcessFiling runs a single document through the pipeline.
	ProcessFiling(ctx context.Context, in *ProcessFilingRequest, opts ...grpc.CallOption) (*ProcessFilingResponse, error)
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
	ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error)
	GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error)
	ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error)
}

type ptrServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPtrServiceClient(cc grpc.ClientConnInterface) PtrServiceClient {
	return &ptrServiceClient{cc}
}

func (c *ptrServiceClient) ProcessYear(ctx context.Context, in *ProcessYearRequest, opts ...grpc.CallOption) (*ProcessYearResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessYearResponse)
	err := c.cc.Invoke(ctx, PtrService_ProcessYear_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ptrServiceClient) ProcessFiling(ctx context.Context, in *ProcessFilingRequest, opts ...grpc.CallOption) (*ProcessFilingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ProcessFilingResponse)
	err := c.cc.Invoke(ctx, PtrService_ProcessFiling_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ptrServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReportResponse)
	err := c.cc.Invoke(ctx, PtrService_GetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ptrServiceClient) ListTransactions(ctx context.Context, in *ListTransactionsRequest, opts ...grpc.CallOption) (*ListTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListTransactionsResponse)
	err := c.cc.Invoke(ctx, PtrService_ListTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ptrServiceClient) GetStats(ctx context.Context, in *GetStatsRequest, opts ...grpc.CallOption) (*GetStatsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetStatsResponse)
	err := c.cc.Invoke(ctx, PtrService_GetStats_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ptrServiceClient) ExportTransactions(ctx context.Context, in *ExportTransactionsRequest, opts ...grpc.CallOption) (*ExportTransactionsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportTransactionsResponse)
	err := c.cc.Invoke(ctx, PtrService_ExportTransactions_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PtrServiceServer is the server API for PtrService service.
// All implementations must embed UnimplementedPtrServiceServer
// for forward compatibility.
type PtrServiceServer interface {
	// ProcessYear refreshes a year's filing list and runs every PTR document
	// through the pipeline.
	ProcessYear(context.Context, *ProcessYearRequest) (*ProcessYearResponse, error)
	// ProcessFiling runs a single document through the pipeline.
	ProcessFiling(context.Context, *ProcessFilingRequest) (*ProcessFilingResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error)
	GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error)
	ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error)
	mustEmbedUnimplementedPtrServiceServer()
}

// UnimplementedPtrServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPtrServiceServer struct{}

func (UnimplementedPtrServiceServer) ProcessYear(context.Context, *ProcessYearRequest) (*ProcessYearResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessYear not implemented")
}
func (UnimplementedPtrServiceServer) ProcessFiling(context.Context, *ProcessFilingRequest) (*ProcessFilingResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProcessFiling not implemented")
}
func (UnimplementedPtrServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetReport not implemented")
}
func (UnimplementedPtrServiceServer) ListTransactions(context.Context, *ListTransactionsRequest) (*ListTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListTransactions not implemented")
}
func (UnimplementedPtrServiceServer) GetStats(context.Context, *GetStatsRequest) (*GetStatsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetStats not implemented")
}
func (UnimplementedPtrServiceServer) ExportTransactions(context.Context, *ExportTransactionsRequest) (*ExportTransactionsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportTransactions not implemented")
}
func (UnimplementedPtrServiceServer) mustEmbedUnimplementedPtrServiceServer() {}
func (UnimplementedPtrServiceServer) testEmbeddedByValue()                    {}

// UnsafePtrServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PtrServiceServer will
// result in compilation errors.
type UnsafePtrServiceServer interface {
	mustEmbedUnimplementedPtrServiceServer()
}

func RegisterPtrServiceServer(s grpc.ServiceRegistrar, srv PtrServiceServer) {
	// If the following call panics, it indicates UnimplementedPtrServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PtrService_ServiceDesc, srv)
}

func _PtrService_ProcessYear_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessYearRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).ProcessYear(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_ProcessYear_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).ProcessYear(ctx, req.(*ProcessYearRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PtrService_ProcessFiling_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ProcessFilingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).ProcessFiling(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_ProcessFiling_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).ProcessFiling(ctx, req.(*ProcessFilingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PtrService_GetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PtrService_ListTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).ListTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_ListTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).ListTransactions(ctx, req.(*ListTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PtrService_GetStats_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetStatsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).GetStats(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_GetStats_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).GetStats(ctx, req.(*GetStatsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PtrService_ExportTransactions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportTransactionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PtrServiceServer).ExportTransactions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PtrService_ExportTransactions_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PtrServiceServer).ExportTransactions(ctx, req.(*ExportTransactionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PtrService_ServiceDesc is the grpc.ServiceDesc for PtrService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PtrService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ptr.v1.PtrService",
	HandlerType: (*PtrServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ProcessYear",
			Handler:    _PtrService_ProcessYear_Handler,
		},
		{
			MethodName: "ProcessFiling",
			Handler:    _PtrService_ProcessFiling_Handler,
		},
		{
			MethodName: "GetReport",
			Handler:    _PtrService_GetReport_Handler,
		},
		{
			MethodName: "ListTransactions",
			Handler:    _PtrService_ListTransactions_Handler,
		},
		{
			MethodName: "GetStats",
			Handler:    _PtrService_GetStats_Handler,
		},
		{
			MethodName: "ExportTransactions",
			Handler:    _PtrService_ExportTransactions_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ptr/v1/ptr.proto",
}
