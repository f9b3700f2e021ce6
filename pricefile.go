package finsight

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// DecodePrices reads a price table from a JSON document. Two shapes are
// accepted once the jsonpath expression has selected the relevant node:
//
//   - an object mapping symbol to price: {"AAPL": 175.5, ...}
//   - a list of quote objects, each carrying a symbol under "symbol", "code"
//     or "ticker" and a price under "price", "close" or "last"
//
// The second shape is what market data exports typically look like; the path
// expression (default "$") plucks the quote list out of the provider's
// envelope, e.g. "$.data.quotes".
func DecodePrices(r io.Reader, path string) (PriceTable, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("invalid price file: %w", err)
	}

	if path == "" {
		path = "$"
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("price file: cannot evaluate path %q: %w", path, err)
	}

	table := make(PriceTable)
	switch node := jval.(type) {
	case map[string]any:
		for symbol, v := range node {
			price, ok := v.(float64)
			if !ok {
				return nil, fmt.Errorf("price file: value for %q is not a number", symbol)
			}
			table[symbol] = M(price)
		}
	case []any:
		for i, v := range node {
			quote, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("price file: quote %d is not an object", i)
			}
			symbol, ok := firstString(quote, "symbol", "code", "ticker")
			if !ok {
				return nil, fmt.Errorf("price file: quote %d has no symbol", i)
			}
			price, ok := firstNumber(quote, "price", "close", "last")
			if !ok {
				return nil, fmt.Errorf("price file: quote %q has no price", symbol)
			}
			table[symbol] = M(price)
		}
	default:
		return nil, fmt.Errorf("price file: path %q selects neither an object nor a list", path)
	}
	return table, nil
}

func firstString(obj map[string]any, keys ...string) (string, bool) {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			return s, true
		}
	}
	return "", false
}

func firstNumber(obj map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		if f, ok := obj[key].(float64); ok {
			return f, true
		}
	}
	return 0, false
}
