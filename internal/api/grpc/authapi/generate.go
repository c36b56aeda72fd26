// Package authapi holds the generated authkeeper.v1 messages and gRPC stubs.
// The source lives in api/proto/authkeeper/v1/auth.proto.
package authapi

//go:generate protoc -I ../../../../api/proto --go_out=../../../.. --go_opt=module=github.com/dtroode/authkeeper --go-grpc_out=../../../.. --go-grpc_opt=module=github.com/dtroode/authkeeper authkeeper/v1/auth.proto
