// Package deviceshell wraps the gRPC connection to the platform device-shell
// service: sensor sample streams, display/lock state, the always-on display
// toggle, and the event-observer suppression flag.
//
// Generated protobuf code lives under gen/deviceshell and is produced from
// proto/deviceshell.proto:
//
//go:generate protoc --go_out=../.. --go_opt=module=github.com/kbdware/pocket-guard/go-monitor --go-grpc_out=../.. --go-grpc_opt=module=github.com/kbdware/pocket-guard/go-monitor -I ../../proto ../../proto/deviceshell.proto
package deviceshell
