package benchcharts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

const indent = "    "

// jsonObject keeps keys in first-seen order; a repeated key overwrites the
// value but keeps its original position.
type jsonObject struct {
	keys []string
	vals map[string]any
}

// jsonLiteral is an already formatted number, boolean, or null.
type jsonLiteral string

// formatJSON parses raw and prints it with 4-space indentation using the
// JavaScript JSON.stringify conventions for numbers, strings, and key order.
func formatJSON(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	v, err := readValue(dec)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("%w: trailing data after top-level value", ErrInvalidJSON)
	}

	var b strings.Builder
	writeValue(&b, v, 0)
	return b.String(), nil
}

func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			obj := &jsonObject{vals: make(map[string]any)}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("expected object key, got %v", keyTok)
				}
				val, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				if _, seen := obj.vals[key]; !seen {
					obj.keys = append(obj.keys, key)
				}
				obj.vals[key] = val
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return obj, nil
		case '[':
			list := []any{}
			for dec.More() {
				val, err := readValue(dec)
				if err != nil {
					return nil, err
				}
				list = append(list, val)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return list, nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		return t, nil
	case json.Number:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil && !math.IsInf(f, 0) {
			return nil, err
		}
		return jsonLiteral(formatNumber(f)), nil
	case bool:
		return jsonLiteral(strconv.FormatBool(t)), nil
	case nil:
		return jsonLiteral("null"), nil
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func writeValue(b *strings.Builder, v any, depth int) {
	switch v := v.(type) {
	case *jsonObject:
		if len(v.keys) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{")
		for i, key := range orderedKeys(v.keys) {
			if i > 0 {
				b.WriteString(",")
			}
			newline(b, depth+1)
			b.WriteString(quoteString(key))
			b.WriteString(": ")
			writeValue(b, v.vals[key], depth+1)
		}
		newline(b, depth)
		b.WriteString("}")
	case []any:
		if len(v) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[")
		for i, item := range v {
			if i > 0 {
				b.WriteString(",")
			}
			newline(b, depth+1)
			writeValue(b, item, depth+1)
		}
		newline(b, depth)
		b.WriteString("]")
	case string:
		b.WriteString(quoteString(v))
	case jsonLiteral:
		b.WriteString(string(v))
	}
}

func newline(b *strings.Builder, depth int) {
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(indent, depth))
}

// orderedKeys puts array-index keys first in ascending numeric order, followed
// by the remaining keys in insertion order.
func orderedKeys(keys []string) []string {
	var index, named []string
	for _, k := range keys {
		if isArrayIndex(k) {
			index = append(index, k)
		} else {
			named = append(named, k)
		}
	}
	if len(index) == 0 {
		return keys
	}
	sort.SliceStable(index, func(i, j int) bool {
		a, _ := strconv.ParseUint(index[i], 10, 32)
		c, _ := strconv.ParseUint(index[j], 10, 32)
		return a < c
	})
	return append(index, named...)
}

func isArrayIndex(k string) bool {
	if k == "" || (len(k) > 1 && k[0] == '0') {
		return false
	}
	n, err := strconv.ParseUint(k, 10, 32)
	return err == nil && n < math.MaxUint32
}

// formatNumber prints f the way JavaScript's Number#toString does.
// Non-finite values become null, as JSON.stringify prints them.
func formatNumber(f float64) string {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "null"
	}
	if f == 0 {
		return "0"
	}

	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}

	mant, expStr, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expStr)
	k, n := len(digits), exp+1

	switch {
	case k <= n && n <= 21:
		return sign + digits + strings.Repeat("0", n-k)
	case 0 < n && n <= 21:
		return sign + digits[:n] + "." + digits[n:]
	case -6 < n && n <= 0:
		return sign + "0." + strings.Repeat("0", -n) + digits
	}

	s := digits[:1]
	if k > 1 {
		s += "." + digits[1:]
	}
	e := n - 1
	if e >= 0 {
		return sign + s + "e+" + strconv.Itoa(e)
	}
	return sign + s + "e-" + strconv.Itoa(-e)
}

// quoteString quotes s as JSON.stringify does: only the quote, the backslash,
// and control characters are escaped.
func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
