package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadFile reads a dataset from path, trying JSON array, then JSON Lines,
// then CSV, like the original explorer. Column order follows the source:
// CSV header order, or first-seen key order across JSON objects. Keys
// missing from a JSON object become null cells.
func loadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, err
	}
	if ds, err := decodeJSONArray(data); err == nil {
		return ds, nil
	}
	if ds, err := decodeJSONLines(data); err == nil {
		return ds, nil
	}
	if ds, err := decodeCSV(data); err == nil {
		return ds, nil
	}
	return Dataset{}, fmt.Errorf("%s: not a JSON array, JSON Lines, or CSV file", path)
}

// jsonRow holds one decoded object with its key order preserved.
type jsonRow struct {
	keys   []string
	values map[string]Value
}

func decodeJSONArray(data []byte) (Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return Dataset{}, err
	}
	if tok != json.Delim('[') {
		return Dataset{}, fmt.Errorf("expected JSON array, got %v", tok)
	}

	var rows []jsonRow
	for dec.More() {
		row, err := decodeJSONObject(dec)
		if err != nil {
			return Dataset{}, err
		}
		rows = append(rows, row)
	}
	if _, err := dec.Token(); err != nil {
		return Dataset{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Dataset{}, errors.New("trailing data after JSON array")
	}
	return buildDataset(rows)
}

func decodeJSONLines(data []byte) (Dataset, error) {
	var rows []jsonRow
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		dec := json.NewDecoder(bytes.NewReader(line))
		dec.UseNumber()
		row, err := decodeJSONObject(dec)
		if err != nil {
			return Dataset{}, err
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return Dataset{}, errors.New("no JSON Lines records")
	}
	return buildDataset(rows)
}

// decodeJSONObject reads one flat object via the token stream so that key
// order survives decoding.
func decodeJSONObject(dec *json.Decoder) (jsonRow, error) {
	tok, err := dec.Token()
	if err != nil {
		return jsonRow{}, err
	}
	if tok != json.Delim('{') {
		return jsonRow{}, fmt.Errorf("expected JSON object, got %v", tok)
	}

	row := jsonRow{values: map[string]Value{}}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return jsonRow{}, err
		}
		key := keyTok.(string)

		valTok, err := dec.Token()
		if err != nil {
			return jsonRow{}, err
		}
		val, err := jsonValue(valTok)
		if err != nil {
			return jsonRow{}, fmt.Errorf("key %q: %w", key, err)
		}
		if _, dup := row.values[key]; !dup {
			row.keys = append(row.keys, key)
		}
		row.values[key] = val
	}
	if _, err := dec.Token(); err != nil {
		return jsonRow{}, err
	}
	return row, nil
}

func jsonValue(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case nil:
		return NullValue(), nil
	case string:
		return StringValue(t), nil
	case bool:
		return BoolValue(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return NumberValue(f), nil
	default:
		return Value{}, errors.New("nested values are not supported")
	}
}

// buildDataset assembles rows into a Dataset whose schema is the union of
// keys in first-seen order.
func buildDataset(rows []jsonRow) (Dataset, error) {
	var names []string
	seen := map[string]bool{}
	for _, row := range rows {
		for _, k := range row.keys {
			if !seen[k] {
				seen[k] = true
				names = append(names, k)
			}
		}
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		rec := make(Record, len(names))
		for j, name := range names {
			if v, ok := row.values[name]; ok {
				rec[j] = v
			} else {
				rec[j] = NullValue()
			}
		}
		records[i] = rec
	}
	return Dataset{Schema: inferSchema(names, records), Records: records}, nil
}

func decodeCSV(data []byte) (Dataset, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	raw, err := reader.ReadAll()
	if err != nil {
		return Dataset{}, err
	}
	if len(raw) == 0 {
		return Dataset{}, errors.New("CSV file is empty")
	}

	names := make([]string, len(raw[0]))
	for i, h := range raw[0] {
		names[i] = strings.TrimSpace(h)
	}

	records := make([]Record, 0, len(raw)-1)
	for _, row := range raw[1:] {
		rec := make(Record, len(names))
		for i := range names {
			if i < len(row) {
				rec[i] = detectValue(row[i])
			} else {
				rec[i] = NullValue()
			}
		}
		records = append(records, rec)
	}
	return Dataset{Schema: inferSchema(names, records), Records: records}, nil
}
