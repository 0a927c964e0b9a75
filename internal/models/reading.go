package models

import "time"

// AirQualityReading is one pollutant sample for a city over a time window.
// Rows are loaded from external monitoring feeds; the dashboard only reads them.
type AirQualityReading struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	City     string    `gorm:"size:64;not null;index"`
	FromDate time.Time `gorm:"not null;index"`
	ToDate   *time.Time
	PM25     float64  `gorm:"column:pm25"`
	PM10     float64  `gorm:"column:pm10"`
	NO2      *float64 `gorm:"column:no2"`
	SO2      *float64 `gorm:"column:so2"`
	CO       *float64 `gorm:"column:co"`
	O3       *float64 `gorm:"column:o3"`
}

// TableName maps readings onto the existing air_quality table.
func (AirQualityReading) TableName() string {
	return "air_quality"
}
