// Copyright (c) 2026 AutoVault. All rights reserved.

/*
Package car defines the core domain entities for the AutoVault inventory.

It manages the lifecycle of vehicle listings including pricing, discovery
metadata, and engagement metrics.

Core Responsibility:

  - Inventory: Defines availability states (Available, Sold) and listing tags (New, Used, Featured).
  - Discovery: Drives filtering, search, sorting, and facet extraction for the storefront.
  - Analytics: Tracks view and favorite counters plus fleet-wide aggregates.

This package acts as the source of truth for all vehicle-related data models.
*/
package car

import "time"

// # Domain Enums

// Status represents the sales availability of a car.
type Status string

const (
	// StatusAvailable indicates the car is listed and purchasable.
	StatusAvailable Status = "Available"

	// StatusSold indicates the car has been sold and is kept for history.
	StatusSold Status = "Sold"

	// StatusPending indicates a sale is in progress but not finalised.
	StatusPending Status = "Pending"

	// StatusReserved indicates the car is held for a specific customer.
	StatusReserved Status = "Reserved"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case
		StatusAvailable,
		StatusSold,
		StatusPending,
		StatusReserved:
		return true
	}
	return false
}

// Tag classifies a listing for storefront badges and curated shelves.
type Tag string

const (
	TagNew      Tag = "New"
	TagUsed     Tag = "Used"
	TagFeatured Tag = "Featured"
	TagElectric Tag = "Electric"
	TagSupercar Tag = "Supercar"
	TagSport    Tag = "Sport"
)

// IsValid reports whether t is a recognised [Tag] value.
func (t Tag) IsValid() bool {
	switch t {
	case TagNew, TagUsed, TagFeatured, TagElectric, TagSupercar, TagSport:
		return true
	}
	return false
}

// Transmission describes the gearbox type of a car.
type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
	TransmissionCVT       Transmission = "CVT"
	TransmissionDCT       Transmission = "DCT"
)

// FuelType describes the powertrain energy source.
type FuelType string

const (
	FuelGasoline FuelType = "Gasoline"
	FuelDiesel   FuelType = "Diesel"
	FuelElectric FuelType = "Electric"
	FuelHybrid   FuelType = "Hybrid"
	FuelPlugIn   FuelType = "Plug-in Hybrid"
)

// DriveType describes which wheels receive power.
type DriveType string

const (
	DriveFWD        DriveType = "FWD"
	DriveRWD        DriveType = "RWD"
	DriveAWD        DriveType = "AWD"
	DriveFourByFour DriveType = "4WD"
)

// # Core Entities

// Car is the central aggregate of the AutoVault domain.
// It represents a single vehicle listing in the inventory.
type Car struct {
	ID           string       `json:"id"`
	Slug         string       `json:"slug"`  // URL-safe identifier, derived from make/model/year
	Title        string       `json:"title"` // Display title, typically "{make} {model} {year}"
	Make         string       `json:"make"`
	Model        string       `json:"model"`
	Year         int          `json:"year"`
	Price        float64      `json:"price"`
	Mileage      int          `json:"mileage"`
	Tag          Tag          `json:"tag"`
	Images       []string     `json:"images"` // First entry is the primary listing image
	Transmission Transmission `json:"transmission"`
	FuelType     FuelType     `json:"fuel_type"`
	DriveType    DriveType    `json:"drive_type"`
	Color        string       `json:"color"`
	Seats        int          `json:"seats"`
	Features     []string     `json:"features"`
	Engine       string       `json:"engine,omitempty"`
	Description  string       `json:"description"`
	Video        string       `json:"video,omitempty"`   // Walkaround/review video URL
	MapURL       string       `json:"map_url,omitempty"` // Embedded showroom location
	Dealer       DealerRef    `json:"dealer"`
	Status       Status       `json:"status"`

	// # Computed Metrics
	// Updated out-of-band by the engagement tracking path.
	Views     int64 `json:"views"`
	Favorites int64 `json:"favorites"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DealerRef embeds the owning dealer's display fields into a listing.
// Name and Avatar are denormalized so listing pages render without a join.
type DealerRef struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

// PriceRange is the min/max price aggregate over a filtered result set.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// # Aggregates

// FacetValues holds the distinct values available for each filterable
// attribute. It drives the storefront's filter sidebar.
type FacetValues struct {
	Makes     []string `json:"makes"`
	Models    []string `json:"models"`
	Colors    []string `json:"colors"`
	FuelTypes []string `json:"fuel_types"`
	Seats     []int    `json:"seats"` // Numerically sorted
}

// FacetCounts maps each facet value to the number of matching listings.
type FacetCounts struct {
	Makes     map[string]int `json:"makes"`
	Models    map[string]int `json:"models"`
	Colors    map[string]int `json:"colors"`
	FuelTypes map[string]int `json:"fuel_types"`
}

// Stats summarises the fleet for the admin dashboard.
type Stats struct {
	TotalCars      int     `json:"total_cars"`
	AvailableCars  int     `json:"available_cars"`
	SoldCars       int     `json:"sold_cars"`
	AveragePrice   float64 `json:"average_price"`
	AverageMileage float64 `json:"average_mileage"`
	TotalViews     int64   `json:"total_views"`
}

// # Field Identifiers

// Global field names for validation and dynamic query mapping.
const (
	FieldID           = "id"
	FieldSlug         = "slug"
	FieldTitle        = "title"
	FieldMake         = "make"
	FieldModel        = "model"
	FieldYear         = "year"
	FieldPrice        = "price"
	FieldMileage      = "mileage"
	FieldTag          = "tag"
	FieldImages       = "images"
	FieldTransmission = "transmission"
	FieldFuelType     = "fuel_type"
	FieldDriveType    = "drive_type"
	FieldColor        = "color"
	FieldSeats        = "seats"
	FieldFeatures     = "features"
	FieldDescription  = "description"
	FieldDealerID     = "dealer_id"
	FieldStatus       = "status"
)
