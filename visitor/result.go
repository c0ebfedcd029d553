package visitor

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Result is what a concrete visitor produces for one component.
type Result struct {
	// Element is the name of the visited component type.
	Element string
	// Visitor is the label of the visitor that produced the result.
	Visitor string
	// Value is the component's exclusive value.
	Value string
}

func (r Result) String() string {
	return r.Value + " + " + r.Visitor
}

// Sink receives results emitted by visitors.
type Sink interface {
	Emit(result Result)
}

// The SinkFunc type is an adapter to allow the use of ordinary functions as Sink.
type SinkFunc func(result Result)

// Emit calls f(result).
func (f SinkFunc) Emit(result Result) {
	f(result)
}

// WriterSink writes one line per result to Writer. After the first failed
// write it drops every later result and reports the failure through Err.
type WriterSink struct {
	Writer io.Writer
	err    error
}

func (s *WriterSink) Emit(result Result) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintln(s.Writer, result.String())
}

// Err returns the first write error, if any.
func (s *WriterSink) Err() error {
	return s.err
}

// Collector keeps results in emission order. The zero value is ready to use.
type Collector struct {
	mu      sync.Mutex
	results []Result
}

func (c *Collector) Emit(result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = append(c.results, result)
}

// Results returns a copy of the collected results.
func (c *Collector) Results() []Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	results := make([]Result, len(c.results))
	copy(results, c.results)
	return results
}

// Lines returns the String form of every collected result.
func (c *Collector) Lines() []string {
	results := c.Results()
	lines := make([]string, 0, len(results))
	for _, result := range results {
		lines = append(lines, result.String())
	}
	return lines
}

func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = nil
}

func emit(sink Sink, result Result) {
	if sink == nil {
		sink = &WriterSink{Writer: os.Stdout}
	}
	sink.Emit(result)
}
