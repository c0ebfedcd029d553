package middleware

import (
	"context"
)

// Invoker is the final call a middleware chain wraps.
type Invoker[Req any, Resp any] func(ctx context.Context, req Req) (Resp, error)

// Middleware can run code before and after invoker, or skip it entirely.
type Middleware[Req any, Resp any] func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error)

// Chain composes middlewares into one. The first middleware is the outermost.
// Chain never returns nil: with no middlewares the result just calls invoker.
func Chain[Req any, Resp any](middlewares ...Middleware[Req, Resp]) Middleware[Req, Resp] {
	var mdw Middleware[Req, Resp]
	if len(middlewares) == 0 {
		mdw = func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error) {
			return invoker(ctx, req)
		}
	} else if len(middlewares) == 1 {
		mdw = middlewares[0]
	} else {
		mdw = func(ctx context.Context, req Req, invoker Invoker[Req, Resp]) (Resp, error) {
			return middlewares[0](ctx, req, getInvoker(middlewares, 0, invoker))
		}
	}
	return mdw
}

func getInvoker[Req any, Resp any](interceptors []Middleware[Req, Resp], curr int, finalInvoker Invoker[Req, Resp]) Invoker[Req, Resp] {
	if curr == len(interceptors)-1 {
		return finalInvoker
	}
	return func(ctx context.Context, req Req) (Resp, error) {
		return interceptors[curr+1](ctx, req, getInvoker(interceptors, curr+1, finalInvoker))
	}
}
