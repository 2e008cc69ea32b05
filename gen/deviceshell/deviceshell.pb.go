// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: deviceshell.proto

package deviceshell

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type StreamSamplesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Kind          string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"` // "proximity" | "ambient_light"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StreamSamplesRequest) Reset() {
	*x = StreamSamplesRequest{}
	mi := &file_deviceshell_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StreamSamplesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StreamSamplesRequest) ProtoMessage() {}

func (x *StreamSamplesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StreamSamplesRequest.ProtoReflect.Descriptor instead.
func (*StreamSamplesRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{0}
}

func (x *StreamSamplesRequest) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

type SensorSample struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Kind              string                 `protobuf:"bytes,1,opt,name=kind,proto3" json:"kind,omitempty"`
	ProximityDistance float64                `protobuf:"fixed64,2,opt,name=proximity_distance,json=proximityDistance,proto3" json:"proximity_distance,omitempty"`
	ProximityMaxRange float64                `protobuf:"fixed64,3,opt,name=proximity_max_range,json=proximityMaxRange,proto3" json:"proximity_max_range,omitempty"`
	Lux               float64                `protobuf:"fixed64,4,opt,name=lux,proto3" json:"lux,omitempty"`
	UnixMillis        int64                  `protobuf:"varint,5,opt,name=unix_millis,json=unixMillis,proto3" json:"unix_millis,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *SensorSample) Reset() {
	*x = SensorSample{}
	mi := &file_deviceshell_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SensorSample) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SensorSample) ProtoMessage() {}

func (x *SensorSample) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SensorSample.ProtoReflect.Descriptor instead.
func (*SensorSample) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{1}
}

func (x *SensorSample) GetKind() string {
	if x != nil {
		return x.Kind
	}
	return ""
}

func (x *SensorSample) GetProximityDistance() float64 {
	if x != nil {
		return x.ProximityDistance
	}
	return 0
}

func (x *SensorSample) GetProximityMaxRange() float64 {
	if x != nil {
		return x.ProximityMaxRange
	}
	return 0
}

func (x *SensorSample) GetLux() float64 {
	if x != nil {
		return x.Lux
	}
	return 0
}

func (x *SensorSample) GetUnixMillis() int64 {
	if x != nil {
		return x.UnixMillis
	}
	return 0
}

type QueryPowerRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *QueryPowerRequest) Reset() {
	*x = QueryPowerRequest{}
	mi := &file_deviceshell_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *QueryPowerRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*QueryPowerRequest) ProtoMessage() {}

func (x *QueryPowerRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use QueryPowerRequest.ProtoReflect.Descriptor instead.
func (*QueryPowerRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{2}
}

type PowerStatus struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Interactive   bool                   `protobuf:"varint,1,opt,name=interactive,proto3" json:"interactive,omitempty"`
	Locked        bool                   `protobuf:"varint,2,opt,name=locked,proto3" json:"locked,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *PowerStatus) Reset() {
	*x = PowerStatus{}
	mi := &file_deviceshell_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *PowerStatus) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PowerStatus) ProtoMessage() {}

func (x *PowerStatus) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PowerStatus.ProtoReflect.Descriptor instead.
func (*PowerStatus) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{3}
}

func (x *PowerStatus) GetInteractive() bool {
	if x != nil {
		return x.Interactive
	}
	return false
}

func (x *PowerStatus) GetLocked() bool {
	if x != nil {
		return x.Locked
	}
	return false
}

type FeatureStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeatureStatusRequest) Reset() {
	*x = FeatureStatusRequest{}
	mi := &file_deviceshell_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeatureStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeatureStatusRequest) ProtoMessage() {}

func (x *FeatureStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeatureStatusRequest.ProtoReflect.Descriptor instead.
func (*FeatureStatusRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{4}
}

type FeatureState struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enabled       bool                   `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeatureState) Reset() {
	*x = FeatureState{}
	mi := &file_deviceshell_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeatureState) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeatureState) ProtoMessage() {}

func (x *FeatureState) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeatureState.ProtoReflect.Descriptor instead.
func (*FeatureState) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{5}
}

func (x *FeatureState) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type SetFeatureRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Enabled       bool                   `protobuf:"varint,1,opt,name=enabled,proto3" json:"enabled,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetFeatureRequest) Reset() {
	*x = SetFeatureRequest{}
	mi := &file_deviceshell_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetFeatureRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetFeatureRequest) ProtoMessage() {}

func (x *SetFeatureRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetFeatureRequest.ProtoReflect.Descriptor instead.
func (*SetFeatureRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{6}
}

func (x *SetFeatureRequest) GetEnabled() bool {
	if x != nil {
		return x.Enabled
	}
	return false
}

type ForceRefreshRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ForceRefreshRequest) Reset() {
	*x = ForceRefreshRequest{}
	mi := &file_deviceshell_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ForceRefreshRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ForceRefreshRequest) ProtoMessage() {}

func (x *ForceRefreshRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ForceRefreshRequest.ProtoReflect.Descriptor instead.
func (*ForceRefreshRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{7}
}

type SetEventSuppressionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Suppressed    bool                   `protobuf:"varint,1,opt,name=suppressed,proto3" json:"suppressed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SetEventSuppressionRequest) Reset() {
	*x = SetEventSuppressionRequest{}
	mi := &file_deviceshell_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SetEventSuppressionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SetEventSuppressionRequest) ProtoMessage() {}

func (x *SetEventSuppressionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SetEventSuppressionRequest.ProtoReflect.Descriptor instead.
func (*SetEventSuppressionRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{8}
}

func (x *SetEventSuppressionRequest) GetSuppressed() bool {
	if x != nil {
		return x.Suppressed
	}
	return false
}

type ShellReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Ok            bool                   `protobuf:"varint,1,opt,name=ok,proto3" json:"ok,omitempty"`
	Detail        string                 `protobuf:"bytes,2,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ShellReply) Reset() {
	*x = ShellReply{}
	mi := &file_deviceshell_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ShellReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ShellReply) ProtoMessage() {}

func (x *ShellReply) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ShellReply.ProtoReflect.Descriptor instead.
func (*ShellReply) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{9}
}

func (x *ShellReply) GetOk() bool {
	if x != nil {
		return x.Ok
	}
	return false
}

func (x *ShellReply) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

type SensorCapsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SensorCapsRequest) Reset() {
	*x = SensorCapsRequest{}
	mi := &file_deviceshell_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SensorCapsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SensorCapsRequest) ProtoMessage() {}

func (x *SensorCapsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SensorCapsRequest.ProtoReflect.Descriptor instead.
func (*SensorCapsRequest) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{10}
}

type SensorCapsReply struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	HasProximity  bool                   `protobuf:"varint,1,opt,name=has_proximity,json=hasProximity,proto3" json:"has_proximity,omitempty"`
	HasLight      bool                   `protobuf:"varint,2,opt,name=has_light,json=hasLight,proto3" json:"has_light,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SensorCapsReply) Reset() {
	*x = SensorCapsReply{}
	mi := &file_deviceshell_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SensorCapsReply) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SensorCapsReply) ProtoMessage() {}

func (x *SensorCapsReply) ProtoReflect() protoreflect.Message {
	mi := &file_deviceshell_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SensorCapsReply.ProtoReflect.Descriptor instead.
func (*SensorCapsReply) Descriptor() ([]byte, []int) {
	return file_deviceshell_proto_rawDescGZIP(), []int{11}
}

func (x *SensorCapsReply) GetHasProximity() bool {
	if x != nil {
		return x.HasProximity
	}
	return false
}

func (x *SensorCapsReply) GetHasLight() bool {
	if x != nil {
		return x.HasLight
	}
	return false
}

var File_deviceshell_proto protoreflect.FileDescriptor

var file_deviceshell_proto_rawDesc = string([]byte{
	0x0a, 0x11, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x12, 0x0b, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c,
	0x22, 0x2a, 0x0a, 0x14, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x6b, 0x69, 0x6e, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6b, 0x69, 0x6e, 0x64, 0x22, 0xb4, 0x01, 0x0a,
	0x0c, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x12, 0x12, 0x0a,
	0x04, 0x6b, 0x69, 0x6e, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6b, 0x69, 0x6e,
	0x64, 0x12, 0x2d, 0x0a, 0x12, 0x70, 0x72, 0x6f, 0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x5f, 0x64,
	0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52, 0x11, 0x70,
	0x72, 0x6f, 0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x44, 0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65,
	0x12, 0x2e, 0x0a, 0x13, 0x70, 0x72, 0x6f, 0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x5f, 0x6d, 0x61,
	0x78, 0x5f, 0x72, 0x61, 0x6e, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x11, 0x70,
	0x72, 0x6f, 0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x4d, 0x61, 0x78, 0x52, 0x61, 0x6e, 0x67, 0x65,
	0x12, 0x10, 0x0a, 0x03, 0x6c, 0x75, 0x78, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x03, 0x6c,
	0x75, 0x78, 0x12, 0x1f, 0x0a, 0x0b, 0x75, 0x6e, 0x69, 0x78, 0x5f, 0x6d, 0x69, 0x6c, 0x6c, 0x69,
	0x73, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x75, 0x6e, 0x69, 0x78, 0x4d, 0x69, 0x6c,
	0x6c, 0x69, 0x73, 0x22, 0x13, 0x0a, 0x11, 0x51, 0x75, 0x65, 0x72, 0x79, 0x50, 0x6f, 0x77, 0x65,
	0x72, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x47, 0x0a, 0x0b, 0x50, 0x6f, 0x77, 0x65,
	0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x12, 0x20, 0x0a, 0x0b, 0x69, 0x6e, 0x74, 0x65, 0x72,
	0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x69, 0x6e,
	0x74, 0x65, 0x72, 0x61, 0x63, 0x74, 0x69, 0x76, 0x65, 0x12, 0x16, 0x0a, 0x06, 0x6c, 0x6f, 0x63,
	0x6b, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x06, 0x6c, 0x6f, 0x63, 0x6b, 0x65,
	0x64, 0x22, 0x16, 0x0a, 0x14, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x53, 0x74, 0x61, 0x74,
	0x75, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x28, 0x0a, 0x0c, 0x46, 0x65, 0x61,
	0x74, 0x75, 0x72, 0x65, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x65, 0x6e, 0x61,
	0x62, 0x6c, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x65, 0x6e, 0x61, 0x62,
	0x6c, 0x65, 0x64, 0x22, 0x2d, 0x0a, 0x11, 0x53, 0x65, 0x74, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72,
	0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x65, 0x6e, 0x61, 0x62,
	0x6c, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x65, 0x6e, 0x61, 0x62, 0x6c,
	0x65, 0x64, 0x22, 0x15, 0x0a, 0x13, 0x46, 0x6f, 0x72, 0x63, 0x65, 0x52, 0x65, 0x66, 0x72, 0x65,
	0x73, 0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x3c, 0x0a, 0x1a, 0x53, 0x65, 0x74,
	0x45, 0x76, 0x65, 0x6e, 0x74, 0x53, 0x75, 0x70, 0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1e, 0x0a, 0x0a, 0x73, 0x75, 0x70, 0x70, 0x72,
	0x65, 0x73, 0x73, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0a, 0x73, 0x75, 0x70,
	0x70, 0x72, 0x65, 0x73, 0x73, 0x65, 0x64, 0x22, 0x34, 0x0a, 0x0a, 0x53, 0x68, 0x65, 0x6c, 0x6c,
	0x52, 0x65, 0x70, 0x6c, 0x79, 0x12, 0x0e, 0x0a, 0x02, 0x6f, 0x6b, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x02, 0x6f, 0x6b, 0x12, 0x16, 0x0a, 0x06, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x22, 0x13, 0x0a,
	0x11, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72, 0x43, 0x61, 0x70, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x22, 0x53, 0x0a, 0x0f, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72, 0x43, 0x61, 0x70, 0x73,
	0x52, 0x65, 0x70, 0x6c, 0x79, 0x12, 0x23, 0x0a, 0x0d, 0x68, 0x61, 0x73, 0x5f, 0x70, 0x72, 0x6f,
	0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0c, 0x68, 0x61,
	0x73, 0x50, 0x72, 0x6f, 0x78, 0x69, 0x6d, 0x69, 0x74, 0x79, 0x12, 0x1b, 0x0a, 0x09, 0x68, 0x61,
	0x73, 0x5f, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x08, 0x68,
	0x61, 0x73, 0x4c, 0x69, 0x67, 0x68, 0x74, 0x32, 0xac, 0x04, 0x0a, 0x0b, 0x44, 0x65, 0x76, 0x69,
	0x63, 0x65, 0x53, 0x68, 0x65, 0x6c, 0x6c, 0x12, 0x4f, 0x0a, 0x0d, 0x53, 0x74, 0x72, 0x65, 0x61,
	0x6d, 0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x73, 0x12, 0x21, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63,
	0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x53, 0x61, 0x6d,
	0x70, 0x6c, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x64, 0x65,
	0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72,
	0x53, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x30, 0x01, 0x12, 0x46, 0x0a, 0x0a, 0x51, 0x75, 0x65, 0x72,
	0x79, 0x50, 0x6f, 0x77, 0x65, 0x72, 0x12, 0x1e, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73,
	0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x51, 0x75, 0x65, 0x72, 0x79, 0x50, 0x6f, 0x77, 0x65, 0x72, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x18, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73,
	0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x50, 0x6f, 0x77, 0x65, 0x72, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73,
	0x12, 0x4d, 0x0a, 0x0d, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75,
	0x73, 0x12, 0x21, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e,
	0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x53, 0x74, 0x61, 0x74, 0x75, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65,
	0x6c, 0x6c, 0x2e, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x53, 0x74, 0x61, 0x74, 0x65, 0x12,
	0x45, 0x0a, 0x0a, 0x53, 0x65, 0x74, 0x46, 0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x12, 0x1e, 0x2e,
	0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x65, 0x74, 0x46,
	0x65, 0x61, 0x74, 0x75, 0x72, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x17, 0x2e,
	0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x68, 0x65, 0x6c,
	0x6c, 0x52, 0x65, 0x70, 0x6c, 0x79, 0x12, 0x49, 0x0a, 0x0c, 0x46, 0x6f, 0x72, 0x63, 0x65, 0x52,
	0x65, 0x66, 0x72, 0x65, 0x73, 0x68, 0x12, 0x20, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73,
	0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x46, 0x6f, 0x72, 0x63, 0x65, 0x52, 0x65, 0x66, 0x72, 0x65, 0x73,
	0x68, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x17, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63,
	0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x68, 0x65, 0x6c, 0x6c, 0x52, 0x65, 0x70, 0x6c,
	0x79, 0x12, 0x57, 0x0a, 0x13, 0x53, 0x65, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x53, 0x75, 0x70,
	0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x27, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63,
	0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x65, 0x74, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x53,
	0x75, 0x70, 0x70, 0x72, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x17, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e,
	0x53, 0x68, 0x65, 0x6c, 0x6c, 0x52, 0x65, 0x70, 0x6c, 0x79, 0x12, 0x4a, 0x0a, 0x0a, 0x53, 0x65,
	0x6e, 0x73, 0x6f, 0x72, 0x43, 0x61, 0x70, 0x73, 0x12, 0x1e, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63,
	0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72, 0x43, 0x61, 0x70,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x64, 0x65, 0x76, 0x69, 0x63,
	0x65, 0x73, 0x68, 0x65, 0x6c, 0x6c, 0x2e, 0x53, 0x65, 0x6e, 0x73, 0x6f, 0x72, 0x43, 0x61, 0x70,
	0x73, 0x52, 0x65, 0x70, 0x6c, 0x79, 0x42, 0x3c, 0x5a, 0x3a, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62,
	0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6b, 0x62, 0x64, 0x77, 0x61, 0x72, 0x65, 0x2f, 0x70, 0x6f, 0x63,
	0x6b, 0x65, 0x74, 0x2d, 0x67, 0x75, 0x61, 0x72, 0x64, 0x2f, 0x67, 0x6f, 0x2d, 0x6d, 0x6f, 0x6e,
	0x69, 0x74, 0x6f, 0x72, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x64, 0x65, 0x76, 0x69, 0x63, 0x65, 0x73,
	0x68, 0x65, 0x6c, 0x6c, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_deviceshell_proto_rawDescOnce sync.Once
	file_deviceshell_proto_rawDescData []byte
)

func file_deviceshell_proto_rawDescGZIP() []byte {
	file_deviceshell_proto_rawDescOnce.Do(func() {
		file_deviceshell_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_deviceshell_proto_rawDesc), len(file_deviceshell_proto_rawDesc)))
	})
	return file_deviceshell_proto_rawDescData
}

var file_deviceshell_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_deviceshell_proto_goTypes = []any{
	(*StreamSamplesRequest)(nil),       // 0: deviceshell.StreamSamplesRequest
	(*SensorSample)(nil),               // 1: deviceshell.SensorSample
	(*QueryPowerRequest)(nil),          // 2: deviceshell.QueryPowerRequest
	(*PowerStatus)(nil),                // 3: deviceshell.PowerStatus
	(*FeatureStatusRequest)(nil),       // 4: deviceshell.FeatureStatusRequest
	(*FeatureState)(nil),               // 5: deviceshell.FeatureState
	(*SetFeatureRequest)(nil),          // 6: deviceshell.SetFeatureRequest
	(*ForceRefreshRequest)(nil),        // 7: deviceshell.ForceRefreshRequest
	(*SetEventSuppressionRequest)(nil), // 8: deviceshell.SetEventSuppressionRequest
	(*ShellReply)(nil),                 // 9: deviceshell.ShellReply
	(*SensorCapsRequest)(nil),          // 10: deviceshell.SensorCapsRequest
	(*SensorCapsReply)(nil),            // 11: deviceshell.SensorCapsReply
}
var file_deviceshell_proto_depIdxs = []int32{
	0,  // 0: deviceshell.DeviceShell.StreamSamples:input_type -> deviceshell.StreamSamplesRequest
	2,  // 1: deviceshell.DeviceShell.QueryPower:input_type -> deviceshell.QueryPowerRequest
	4,  // 2: deviceshell.DeviceShell.FeatureStatus:input_type -> deviceshell.FeatureStatusRequest
	6,  // 3: deviceshell.DeviceShell.SetFeature:input_type -> deviceshell.SetFeatureRequest
	7,  // 4: deviceshell.DeviceShell.ForceRefresh:input_type -> deviceshell.ForceRefreshRequest
	8,  // 5: deviceshell.DeviceShell.SetEventSuppression:input_type -> deviceshell.SetEventSuppressionRequest
	10, // 6: deviceshell.DeviceShell.SensorCaps:input_type -> deviceshell.SensorCapsRequest
	1,  // 7: deviceshell.DeviceShell.StreamSamples:output_type -> deviceshell.SensorSample
	3,  // 8: deviceshell.DeviceShell.QueryPower:output_type -> deviceshell.PowerStatus
	5,  // 9: deviceshell.DeviceShell.FeatureStatus:output_type -> deviceshell.FeatureState
	9,  // 10: deviceshell.DeviceShell.SetFeature:output_type -> deviceshell.ShellReply
	9,  // 11: deviceshell.DeviceShell.ForceRefresh:output_type -> deviceshell.ShellReply
	9,  // 12: deviceshell.DeviceShell.SetEventSuppression:output_type -> deviceshell.ShellReply
	11, // 13: deviceshell.DeviceShell.SensorCaps:output_type -> deviceshell.SensorCapsReply
	7,  // [7:14] is the sub-list for method output_type
	0,  // [0:7] is the sub-list for method input_type
	0,  // [0:0] is the sub-list for extension type_name
	0,  // [0:0] is the sub-list for extension extendee
	0,  // [0:0] is the sub-list for field type_name
}

func init() { file_deviceshell_proto_init() }
func file_deviceshell_proto_init() {
	if File_deviceshell_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_deviceshell_proto_rawDesc), len(file_deviceshell_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_deviceshell_proto_goTypes,
		DependencyIndexes: file_deviceshell_proto_depIdxs,
		MessageInfos:      file_deviceshell_proto_msgTypes,
	}.Build()
	File_deviceshell_proto = out.File
	file_deviceshell_proto_goTypes = nil
	file_deviceshell_proto_depIdxs = nil
}
