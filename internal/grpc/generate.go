// Package testnetv1 holds the generated orchestrator API.
package testnetv1

//go:generate protoc -I ../../proto --go_out=../.. --go_opt=module=github.com/bnema/testnet --go-grpc_out=../.. --go-grpc_opt=module=github.com/bnema/testnet testnet/v1/orchestrator.proto
