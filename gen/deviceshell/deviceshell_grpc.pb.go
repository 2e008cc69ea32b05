// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: deviceshell.proto

package deviceshell

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
	DeviceShell_StreamSamples_FullMethodName       = "/deviceshell.DeviceShell/StreamSamples"
	DeviceShell_QueryPower_FullMethodName          = "/deviceshell.DeviceShell/QueryPower"
	DeviceShell_FeatureStatus_FullMethodName       = "/deviceshell.DeviceShell/FeatureStatus"
	DeviceShell_SetFeature_FullMethodName          = "/deviceshell.DeviceShell/SetFeature"
	DeviceShell_ForceRefresh_FullMethodName        = "/deviceshell.DeviceShell/ForceRefresh"
	DeviceShell_SetEventSuppression_FullMethodName = "/deviceshell.DeviceShell/SetEventSuppression"
	DeviceShell_SensorCaps_FullMethodName          = "/deviceshell.DeviceShell/SensorCaps"
)

// DeviceShellClient is the client API for DeviceShell service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DeviceShell is the platform-side service the monitor talks to. It owns the
// actual sensors, display power state, and the always-on display setting; the
// monitor only decides when to act.
type DeviceShellClient interface {
	// StreamSamples delivers sensor samples for one kind until cancelled.
	StreamSamples(ctx context.Context, in *StreamSamplesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SensorSample], error)
	// QueryPower reports point-in-time display and lock state.
	QueryPower(ctx context.Context, in *QueryPowerRequest, opts ...grpc.CallOption) (*PowerStatus, error)
	// FeatureStatus reports whether the always-on display is enabled.
	FeatureStatus(ctx context.Context, in *FeatureStatusRequest, opts ...grpc.CallOption) (*FeatureState, error)
	// SetFeature enables or disables the always-on display setting.
	SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*ShellReply, error)
	// ForceRefresh re-applies the current feature state to the live display.
	ForceRefresh(ctx context.Context, in *ForceRefreshRequest, opts ...grpc.CallOption) (*ShellReply, error)
	// SetEventSuppression tells the shell's display/lock event observer to
	// ignore events while the monitor's own action perturbs them.
	SetEventSuppression(ctx context.Context, in *SetEventSuppressionRequest, opts ...grpc.CallOption) (*ShellReply, error)
	// SensorCaps reports which sensors the device actually has.
	SensorCaps(ctx context.Context, in *SensorCapsRequest, opts ...grpc.CallOption) (*SensorCapsReply, error)
}

type deviceShellClient struct {
	cc grpc.ClientConnInterface
}

func NewDeviceShellClient(cc grpc.ClientConnInterface) DeviceShellClient {
	return &deviceShellClient{cc}
}

func (c *deviceShellClient) StreamSamples(ctx context.Context, in *StreamSamplesRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[SensorSample], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DeviceShell_ServiceDesc.Streams[0], DeviceShell_StreamSamples_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[StreamSamplesRequest, SensorSample]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DeviceShell_StreamSamplesClient = grpc.ServerStreamingClient[SensorSample]

func (c *deviceShellClient) QueryPower(ctx context.Context, in *QueryPowerRequest, opts ...grpc.CallOption) (*PowerStatus, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PowerStatus)
	err := c.cc.Invoke(ctx, DeviceShell_QueryPower_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceShellClient) FeatureStatus(ctx context.Context, in *FeatureStatusRequest, opts ...grpc.CallOption) (*FeatureState, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FeatureState)
	err := c.cc.Invoke(ctx, DeviceShell_FeatureStatus_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceShellClient) SetFeature(ctx context.Context, in *SetFeatureRequest, opts ...grpc.CallOption) (*ShellReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShellReply)
	err := c.cc.Invoke(ctx, DeviceShell_SetFeature_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceShellClient) ForceRefresh(ctx context.Context, in *ForceRefreshRequest, opts ...grpc.CallOption) (*ShellReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShellReply)
	err := c.cc.Invoke(ctx, DeviceShell_ForceRefresh_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceShellClient) SetEventSuppression(ctx context.Context, in *SetEventSuppressionRequest, opts ...grpc.CallOption) (*ShellReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ShellReply)
	err := c.cc.Invoke(ctx, DeviceShell_SetEventSuppression_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *deviceShellClient) SensorCaps(ctx context.Context, in *SensorCapsRequest, opts ...grpc.CallOption) (*SensorCapsReply, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SensorCapsReply)
	err := c.cc.Invoke(ctx, DeviceShell_SensorCaps_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeviceShellServer is the server API for DeviceShell service.
// All implementations must embed UnimplementedDeviceShellServer
// for forward compatibility.
//
// DeviceShell is the platform-side service the monitor talks to. It owns the
// actual sensors, display power state, and the always-on display setting; the
// monitor only decides when to act.
type DeviceShellServer interface {
	// StreamSamples delivers sensor samples for one kind until cancelled.
	StreamSamples(*StreamSamplesRequest, grpc.ServerStreamingServer[SensorSample]) error
	// QueryPower reports point-in-time display and lock state.
	QueryPower(context.Context, *QueryPowerRequest) (*PowerStatus, error)
	// FeatureStatus reports whether the always-on display is enabled.
	FeatureStatus(context.Context, *FeatureStatusRequest) (*FeatureState, error)
	// SetFeature enables or disables the always-on display setting.
	SetFeature(context.Context, *SetFeatureRequest) (*ShellReply, error)
	// ForceRefresh re-applies the current feature state to the live display.
	ForceRefresh(context.Context, *ForceRefreshRequest) (*ShellReply, error)
	// SetEventSuppression tells the shell's display/lock event observer to
	// ignore events while the monitor's own action perturbs them.
	SetEventSuppression(context.Context, *SetEventSuppressionRequest) (*ShellReply, error)
	// SensorCaps reports which sensors the device actually has.
	SensorCaps(context.Context, *SensorCapsRequest) (*SensorCapsReply, error)
	mustEmbedUnimplementedDeviceShellServer()
}

// UnimplementedDeviceShellServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDeviceShellServer struct{}

func (UnimplementedDeviceShellServer) StreamSamples(*StreamSamplesRequest, grpc.ServerStreamingServer[SensorSample]) error {
	return status.Errorf(codes.Unimplemented, "method StreamSamples not implemented")
}
func (UnimplementedDeviceShellServer) QueryPower(context.Context, *QueryPowerRequest) (*PowerStatus, error) {
	return nil, status.Errorf(codes.Unimplemented, "method QueryPower not implemented")
}
func (UnimplementedDeviceShellServer) FeatureStatus(context.Context, *FeatureStatusRequest) (*FeatureState, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FeatureStatus not implemented")
}
func (UnimplementedDeviceShellServer) SetFeature(context.Context, *SetFeatureRequest) (*ShellReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetFeature not implemented")
}
func (UnimplementedDeviceShellServer) ForceRefresh(context.Context, *ForceRefreshRequest) (*ShellReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ForceRefresh not implemented")
}
func (UnimplementedDeviceShellServer) SetEventSuppression(context.Context, *SetEventSuppressionRequest) (*ShellReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SetEventSuppression not implemented")
}
func (UnimplementedDeviceShellServer) SensorCaps(context.Context, *SensorCapsRequest) (*SensorCapsReply, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SensorCaps not implemented")
}
func (UnimplementedDeviceShellServer) mustEmbedUnimplementedDeviceShellServer() {}
func (UnimplementedDeviceShellServer) testEmbeddedByValue()                     {}

// UnsafeDeviceShellServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DeviceShellServer will
// result in compilation errors.
type UnsafeDeviceShellServer interface {
	mustEmbedUnimplementedDeviceShellServer()
}

func RegisterDeviceShellServer(s grpc.ServiceRegistrar, srv DeviceShellServer) {
	// If the following call pancis, it indicates UnimplementedDeviceShellServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DeviceShell_ServiceDesc, srv)
}

func _DeviceShell_StreamSamples_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(StreamSamplesRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DeviceShellServer).StreamSamples(m, &grpc.GenericServerStream[StreamSamplesRequest, SensorSample]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DeviceShell_StreamSamplesServer = grpc.ServerStreamingServer[SensorSample]

func _DeviceShell_QueryPower_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPowerRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).QueryPower(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_QueryPower_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).QueryPower(ctx, req.(*QueryPowerRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceShell_FeatureStatus_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FeatureStatusRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).FeatureStatus(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_FeatureStatus_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).FeatureStatus(ctx, req.(*FeatureStatusRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceShell_SetFeature_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetFeatureRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).SetFeature(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_SetFeature_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).SetFeature(ctx, req.(*SetFeatureRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceShell_ForceRefresh_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ForceRefreshRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).ForceRefresh(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_ForceRefresh_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).ForceRefresh(ctx, req.(*ForceRefreshRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceShell_SetEventSuppression_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SetEventSuppressionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).SetEventSuppression(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_SetEventSuppression_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).SetEventSuppression(ctx, req.(*SetEventSuppressionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DeviceShell_SensorCaps_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SensorCapsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DeviceShellServer).SensorCaps(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DeviceShell_SensorCaps_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DeviceShellServer).SensorCaps(ctx, req.(*SensorCapsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DeviceShell_ServiceDesc is the grpc.ServiceDesc for DeviceShell service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DeviceShell_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "deviceshell.DeviceShell",
	HandlerType: (*DeviceShellServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "QueryPower",
			Handler:    _DeviceShell_QueryPower_Handler,
		},
		{
			MethodName: "FeatureStatus",
			Handler:    _DeviceShell_FeatureStatus_Handler,
		},
		{
			MethodName: "SetFeature",
			Handler:    _DeviceShell_SetFeature_Handler,
		},
		{
			MethodName: "ForceRefresh",
			Handler:    _DeviceShell_ForceRefresh_Handler,
		},
		{
			MethodName: "SetEventSuppression",
			Handler:    _DeviceShell_SetEventSuppression_Handler,
		},
		{
			MethodName: "SensorCaps",
			Handler:    _DeviceShell_SensorCaps_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "StreamSamples",
			Handler:       _DeviceShell_StreamSamples_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "deviceshell.proto",
}
