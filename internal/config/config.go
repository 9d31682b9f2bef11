package config

import "os"

const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

type Config struct {
	CatalogPath   string
	LedgerPath    string
	LedgerBackend string
	ReceiptsDir   string
	ReceiptsOff   bool

	// Explicit catalog column mapping; empty values fall back to the
	// header heuristics.
	ColCode     string
	ColName     string
	ColSupplier string
	ColPrice    string
	ColWeight   string
	ColImage    string

	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDBName   string
	PGSSLmode  string
}

func LoadConfig() (*Config, error) {
	return &Config{
		CatalogPath:   getEnv("CATALOG_PATH", "product_template.csv"),
		LedgerPath:    getEnv("LEDGER_PATH", "orders.csv"),
		LedgerBackend: getEnv("LEDGER_BACKEND", BackendFile),
		ReceiptsDir:   getEnv("RECEIPTS_DIR", "receipts"),
		ReceiptsOff:   os.Getenv("RECEIPTS_DISABLED") == "true",

		ColCode:     os.Getenv("CATALOG_COL_CODE"),
		ColName:     os.Getenv("CATALOG_COL_NAME"),
		ColSupplier: os.Getenv("CATALOG_COL_SUPPLIER"),
		ColPrice:    os.Getenv("CATALOG_COL_PRICE"),
		ColWeight:   os.Getenv("CATALOG_COL_WEIGHT"),
		ColImage:    os.Getenv("CATALOG_COL_IMAGE"),

		PGHost:     getEnv("POSTGRES_HOST", "localhost"),
		PGPort:     getEnv("POSTGRES_PORT", "5432"),
		PGUser:     getEnv("POSTGRES_USER", "postgres"),
		PGPassword: os.Getenv("POSTGRES_PASSWORD"),
		PGDBName:   getEnv("POSTGRES_DBNAME", "orders"),
		PGSSLmode:  "disable", // Default
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
