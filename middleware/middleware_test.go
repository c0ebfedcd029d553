package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func trace(name string, calls *[]string) Middleware[string, string] {
	return func(ctx context.Context, req string, invoker Invoker[string, string]) (string, error) {
		*calls = append(*calls, name+">")
		resp, err := invoker(ctx, req+"|"+name)
		*calls = append(*calls, "<"+name)
		return resp, err
	}
}

func echo(_ context.Context, req string) (string, error) {
	return req, nil
}

func TestChain(t *testing.T) {
	var calls []string
	mdw := Chain(trace("a", &calls), trace("b", &calls), trace("c", &calls))
	resp, err := mdw(context.Background(), "req", echo)
	assert.NoError(t, err)
	assert.Equal(t, "req|a|b|c", resp)
	assert.Equal(t, []string{"a>", "b>", "c>", "<c", "<b", "<a"}, calls)
}

func TestChain_Single(t *testing.T) {
	var calls []string
	resp, err := Chain(trace("a", &calls))(context.Background(), "req", echo)
	assert.NoError(t, err)
	assert.Equal(t, "req|a", resp)
}

func TestChain_Empty(t *testing.T) {
	mdw := Chain[string, string]()
	assert.NotNil(t, mdw)
	resp, err := mdw(context.Background(), "req", echo)
	assert.NoError(t, err)
	assert.Equal(t, "req", resp)
}

func TestChain_ShortCircuit(t *testing.T) {
	errDenied := errors.New("denied")
	var deny Middleware[string, string] = func(context.Context, string, Invoker[string, string]) (string, error) {
		return "", errDenied
	}
	var calls []string
	_, err := Chain(trace("a", &calls), deny, trace("c", &calls))(context.Background(), "req", echo)
	assert.ErrorIs(t, err, errDenied)
	assert.Equal(t, []string{"a>", "<a"}, calls)
}
