package web

import "context"

type Server interface {
	Start(ctx context.Context) error
	Stop() error
	// Addr is the bound address once started, the configured one before.
	Addr() string
}

type NoopServer struct{}

func (n *NoopServer) Start(ctx context.Context) error { return nil }
func (n *NoopServer) Stop() error                     { return nil }
func (n *NoopServer) Addr() string                    { return "" }
