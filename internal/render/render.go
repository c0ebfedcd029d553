// Package render writes visit results as text, JSON or protobuf JSON.
package render

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-leo/patterns/visitor"
	jsoniter "github.com/json-iterator/go"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// Format selects how results are written.
type Format string

const (
	Text      Format = "text"
	JSON      Format = "json"
	ProtoJSON Format = "protojson"
)

// ErrUnknownFormat format is not one of Formats
var ErrUnknownFormat = errors.New("unknown format")

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, ProtoJSON}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ParseFormat returns the Format named s.
func ParseFormat(s string) (Format, error) {
	for _, format := range Formats {
		if string(format) == s {
			return format, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

type record struct {
	Element string `json:"element"`
	Visitor string `json:"visitor"`
	Value   string `json:"value"`
	Line    string `json:"line"`
}

func newRecord(result visitor.Result) record {
	return record{
		Element: result.Element,
		Visitor: result.Visitor,
		Value:   result.Value,
		Line:    result.String(),
	}
}

// Render writes results to w in format.
func Render(w io.Writer, format Format, results []visitor.Result) error {
	switch format {
	case Text:
		return renderText(w, results)
	case JSON:
		return renderJSON(w, results)
	case ProtoJSON:
		return renderProtoJSON(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func renderText(w io.Writer, results []visitor.Result) error {
	for _, result := range results {
		if _, err := fmt.Fprintln(w, result.String()); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, results []visitor.Result) error {
	records := make([]record, 0, len(results))
	for _, result := range results {
		records = append(records, newRecord(result))
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}

func renderProtoJSON(w io.Writer, results []visitor.Result) error {
	values := make([]any, 0, len(results))
	for _, result := range results {
		r := newRecord(result)
		values = append(values, map[string]any{
			"element": r.Element,
			"visitor": r.Visitor,
			"value":   r.Value,
			"line":    r.Line,
		})
	}
	list, err := structpb.NewList(values)
	if err != nil {
		return fmt.Errorf("convert results: %w", err)
	}
	data, err := protojson.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
