package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// writeDataset serializes a dataset to path: JSON (records orientation)
// for a .json extension, CSV otherwise.
func writeDataset(path string, ds Dataset) error {
	var buf bytes.Buffer
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = encodeJSON(&buf, ds)
	} else {
		err = encodeCSV(&buf, ds)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func encodeCSV(buf *bytes.Buffer, ds Dataset) error {
	w := csv.NewWriter(buf)
	if err := w.Write(ds.Schema.Names()); err != nil {
		return err
	}
	row := make([]string, len(ds.Schema))
	for _, rec := range ds.Records {
		for i, v := range rec {
			row[i] = v.String()
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// encodeJSON writes an indented array of objects. Keys are emitted by hand
// so the output keeps the schema's column order, which encoding/json would
// not do for a map.
func encodeJSON(buf *bytes.Buffer, ds Dataset) error {
	buf.WriteString("[")
	for i, rec := range ds.Records {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		for j, col := range ds.Schema {
			if j > 0 {
				buf.WriteString(",")
			}
			key, err := json.Marshal(col.Name)
			if err != nil {
				return err
			}
			val, err := marshalValue(rec[j])
			if err != nil {
				return err
			}
			buf.WriteString("\n    ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("\n  }")
	}
	if len(ds.Records) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]\n")
	return nil
}

func marshalValue(v Value) ([]byte, error) {
	switch v.Kind {
	case KindString:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	case KindBool:
		return json.Marshal(v.Bool)
	default:
		return []byte("null"), nil
	}
}
