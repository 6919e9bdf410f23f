package trace_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"hn-radar/trace"
)

func TestGenerateID_Unique(t *testing.T) {
	a := trace.GenerateID()
	b := trace.GenerateID()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestSpanSequence(t *testing.T) {
	ctx := trace.WithRequestAndSpan(context.Background(), "req-1", 0)

	assert.Equal(t, "req-1", trace.RequestIDFromContext(ctx))
	assert.Equal(t, "0", trace.CurrentSpanID(ctx))

	reqID, span := trace.NextSpanID(ctx)
	assert.Equal(t, "req-1", reqID)
	assert.Equal(t, "1", span)

	_, span = trace.NextSpanID(ctx)
	assert.Equal(t, "2", span)
	assert.Equal(t, "2", trace.CurrentSpanID(ctx))
}

func TestNextSpanID_Concurrent(t *testing.T) {
	ctx := trace.WithRequestAndSpan(context.Background(), "req-2", 0)

	const n = 50
	var wg sync.WaitGroup
	seen := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, span := trace.NextSpanID(ctx)
			seen <- span
		}()
	}
	wg.Wait()
	close(seen)

	unique := map[string]bool{}
	for s := range seen {
		unique[s] = true
	}
	assert.Equal(t, n, len(unique))
}

func TestNextSpanID_NoTraceInContext(t *testing.T) {
	reqID, span := trace.NextSpanID(context.Background())
	assert.NotEmpty(t, reqID)
	assert.Equal(t, "1", span)
}
