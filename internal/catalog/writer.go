package catalog

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"os"

	"product-order-system/pkg/models"
)

var ErrCodeRequired = errors.New("product code is required")

// Append adds one product row to the catalog file, mapping the request
// fields onto the existing header the same way Load does. The loader cache
// notices the change through its content hash on the next Load.
func (l *Loader) Append(path string, req models.AddProductRequest) error {
	if req.Code == "" {
		return ErrCodeRequired
	}
	if err := Bootstrap(path); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return fmt.Errorf("read catalog header: %w", err)
	}
	cols := resolveColumns(header, l.mapping)

	record := make([]string, len(header))
	set := func(i int, v string) {
		if i >= 0 && i < len(record) {
			record[i] = v
		}
	}
	name := req.Name
	if name == "" {
		name = req.Code
	}
	set(cols.code, req.Code)
	set(cols.name, name)
	set(cols.supplier, req.Supplier)
	set(cols.price, req.Price.String())
	set(cols.image, req.Image)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	if len(data) > 0 && data[len(data)-1] != '\n' {
		if _, err := f.Write([]byte("\n")); err != nil {
			return err
		}
	}
	w := csv.NewWriter(f)
	if err := w.Write(record); err != nil {
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("append product: %w", err)
	}

	if l.mylog != nil {
		l.mylog.Info("product_added", "Product appended to catalog", "code", req.Code)
	}
	return nil
}
