package models

import "time"

// PackageCategory scopes a package to the draws it covers
type PackageCategory string

const (
	PackageCategoryBig     PackageCategory = "big"
	PackageCategoryExpress PackageCategory = "express"
	PackageCategoryAll     PackageCategory = "all"
)

// Valid reports whether the category is one of the supported kinds
func (c PackageCategory) Valid() bool {
	return c == PackageCategoryBig || c == PackageCategoryExpress || c == PackageCategoryAll
}

// PackageType identifies a purchasable bundle: one randomly-numbered ticket
// per eligible (non-completed) draw for a flat price.
type PackageType string

const (
	PackageTypeAll         PackageType = "all"
	PackageTypeBigOnly     PackageType = "big_only"
	PackageTypeExpressOnly PackageType = "express_only"
)

// Valid reports whether the package type is purchasable
func (t PackageType) Valid() bool {
	return t == PackageTypeAll || t == PackageTypeBigOnly || t == PackageTypeExpressOnly
}

// Package represents an admin-managed bundle offer
type Package struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Category    PackageCategory `json:"category"`
	Price       int             `json:"price"`
	Currency    string          `json:"currency"`
	CreatedDate time.Time       `json:"created_date"`
	UpdatedDate *time.Time      `json:"updated_date,omitempty"`
}

// PackagePurchase is the outcome of buying a package
type PackagePurchase struct {
	PackageType PackageType `json:"package_type"`
	Tickets     []*Ticket   `json:"tickets"`
	NewBalance  float64     `json:"new_balance"`
}
