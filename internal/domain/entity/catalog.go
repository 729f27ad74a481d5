package entity

import "time"

// CatalogKind identifica una de las tablas de taxonomía de máquinas.
type CatalogKind string

const (
	CatalogCategory CatalogKind = "category"
	CatalogType     CatalogKind = "type"
	CatalogBrand    CatalogKind = "brand"
	CatalogSupplier CatalogKind = "supplier"
)

// Valid indica si el tipo de catálogo es conocido.
func (k CatalogKind) Valid() bool {
	switch k {
	case CatalogCategory, CatalogType, CatalogBrand, CatalogSupplier:
		return true
	}
	return false
}

// CatalogItem entrada de taxonomía (categoría, tipo, marca o proveedor) de una empresa.
type CatalogItem struct {
	ID        string
	CompanyID string
	Kind      CatalogKind
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
