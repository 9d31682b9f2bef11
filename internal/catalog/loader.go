package catalog

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"product-order-system/internal/metrics"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"

	"github.com/shopspring/decimal"
)

// Loader reads the catalog file and memoizes the parsed result per path.
// The cache keys on a content hash, so an edited file (including rows added
// through Append) is picked up on the next Load instead of after a restart.
type Loader struct {
	mapping Mapping
	mylog   *logger.Logger
	met     *metrics.Registry

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	sum      [sha256.Size]byte
	products []models.Product
}

func NewLoader(mapping Mapping, mylog *logger.Logger, met *metrics.Registry) *Loader {
	return &Loader{
		mapping: mapping,
		mylog:   mylog,
		met:     met,
		cache:   make(map[string]cacheEntry),
	}
}

// Load returns the catalog at path, bootstrapping a sample file when the
// path does not exist yet.
func (l *Loader) Load(path string) ([]models.Product, error) {
	if err := Bootstrap(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	sum := sha256.Sum256(data)

	l.mu.Lock()
	if entry, ok := l.cache[path]; ok && entry.sum == sum {
		l.mu.Unlock()
		if l.met != nil {
			l.met.CatalogCacheHits.Inc()
		}
		return entry.products, nil
	}
	l.mu.Unlock()

	products, err := parse(data, l.mapping)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[path] = cacheEntry{sum: sum, products: products}
	l.mu.Unlock()

	if l.met != nil {
		l.met.CatalogLoads.Inc()
	}
	if l.mylog != nil {
		l.mylog.Info("catalog_loaded", "Catalog loaded", "path", path, "products", len(products))
	}
	return products, nil
}

func parse(data []byte, mapping Mapping) ([]models.Product, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols := resolveColumns(header, mapping)

	var products []models.Product
	for {
		record, err := r.Read()
		if err != nil {
			break
		}
		get := func(i int) string {
			if i < 0 || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		code := get(cols.code)
		category := DeriveCategory(code)
		products = append(products, models.Product{
			Code:             code,
			Name:             get(cols.name),
			Supplier:         get(cols.supplier),
			Price:            coercePrice(get(cols.price)),
			Category:         category,
			WeightApplicable: WeightApplicable(category),
			Weight:           get(cols.weight),
			Image:            get(cols.image),
		})
	}
	return products, nil
}

// coercePrice parses a price cell. Malformed or negative values become zero
// rather than failing the load.
func coercePrice(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// Bootstrap writes a minimal sample catalog when path does not exist.
// Calling it on an existing file is a no-op.
func Bootstrap(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir catalog dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create catalog: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	rows := [][]string{
		{"ProductList", "Product", "Supplier", "Price", "Weight"},
		{"Milk_Product_1_Cheese", "Cheese Mozarella", "Amul Dairy", "250", "200g"},
		{"Milk_Product_2_Butter", "Butter", "Amul Dairy", "290", "100g"},
		{"Veg_Product_1_Tomato", "Tomato", "Green Farms", "30", "1kg"},
		{"Bakery_Product_1_Bread", "Brown Bread", "Daily Bakes", "45", ""},
		{"Packing_Product_1_Box", "Carton Box", "PackWell", "12", ""},
	}
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("write sample catalog: %w", err)
	}
	return nil
}
