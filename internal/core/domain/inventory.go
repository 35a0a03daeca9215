package domain

import "time"

type StockLevel string

const (
	StockGood     StockLevel = "Good Stock"
	StockLow      StockLevel = "Low Stock"
	StockCritical StockLevel = "Critical"
)

// InventoryRecord is keyed by (hospital, blood_type). Writes are upserts:
// an existing pair gets its units and updated_at replaced.
type InventoryRecord struct {
	Hospital       string     `json:"hospital"`
	BloodType      string     `json:"blood_type"`
	UnitsAvailable int        `json:"units_available"`
	StockLevel     StockLevel `json:"stock_level"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// StockLevelFor partitions units into Critical (0-5), Low (6-10) and
// Good (11+). The partition is exhaustive over non-negative integers.
func StockLevelFor(units int) StockLevel {
	switch {
	case units > 10:
		return StockGood
	case units > 5:
		return StockLow
	default:
		return StockCritical
	}
}

// BloodGroups are the eight ABO/Rh types tracked by every blood bank.
var BloodGroups = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}

// SeedHospitals are the blood banks the inventory starts with, at zero
// units each. Real counts accrue from donations and admin upserts.
var SeedHospitals = []string{
	"City General Hospital",
	"Metropolitan Medical Center",
	"St. Mary's Hospital",
	"Regional Blood Bank",
	"University Hospital",
	"Central Blood Center",
	"Community Health Hospital",
	"Emergency Medical Center",
	"District Hospital",
	"Primary Care Blood Bank",
}
