package handle

import (
	"encoding/json"
	"errors"
	"net/http"

	"product-order-system/internal/catalog"
	"product-order-system/pkg/logger"
	"product-order-system/pkg/models"
)

type CatalogHandler struct {
	loader      *catalog.Loader
	catalogPath string
	mylog       *logger.Logger
}

func NewCatalogHandler(loader *catalog.Loader, catalogPath string, mylog *logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		loader:      loader,
		catalogPath: catalogPath,
		mylog:       mylog,
	}
}

// List serves the filtered catalog view plus the full category list.
func (ch *CatalogHandler) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := ch.loader.Load(ch.catalogPath)
		if err != nil {
			ch.mylog.Error("catalog_load_failed", "Failed to load catalog", err)
			jsonError(w, http.StatusInternalServerError, errors.New("failed to load catalog"))
			return
		}

		query := r.URL.Query().Get("q")
		category := r.URL.Query().Get("category")
		jsonResponse(w, http.StatusOK, models.CatalogResponse{
			Products:   catalog.Filter(products, query, category),
			Categories: catalog.Categories(products),
		})
	}
}

// Add appends a product to the catalog file.
func (ch *CatalogHandler) Add() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AddProductRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			ch.mylog.Error("parse_failed", "Failed to parse add-product request", err)
			jsonError(w, http.StatusBadRequest, errors.New("failed to parse JSON"))
			return
		}

		if err := ch.loader.Append(ch.catalogPath, req); err != nil {
			if errors.Is(err, catalog.ErrCodeRequired) {
				jsonError(w, http.StatusBadRequest, err)
				return
			}
			ch.mylog.Error("product_add_failed", "Failed to append product", err)
			jsonError(w, http.StatusInternalServerError, errors.New("failed to add product"))
			return
		}

		jsonResponse(w, http.StatusOK, map[string]string{"status": "added", "code": req.Code})
	}
}
