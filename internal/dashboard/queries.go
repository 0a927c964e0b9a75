package dashboard

import (
	"database/sql"
	"fmt"

	"github.com/sahil8669/airaware/internal/models"
	"gorm.io/gorm"
)

// CityAverage holds mean pollutant levels for one city.
type CityAverage struct {
	City string  `gorm:"column:city"`
	PM25 float64 `gorm:"column:pm25"`
	PM10 float64 `gorm:"column:pm10"`
}

// CityAverages returns mean PM2.5 and PM10 per city across all readings.
func CityAverages(db *gorm.DB) ([]CityAverage, error) {
	var rows []CityAverage
	if err := db.Model(&models.AirQualityReading{}).
		Select("city, AVG(pm25) AS pm25, AVG(pm10) AS pm10").
		Group("city").
		Order("city ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("city averages: %w", err)
	}
	return rows, nil
}

// MonthlyAverage holds mean pollutant levels for one calendar month (1-12).
type MonthlyAverage struct {
	Month int     `json:"month" gorm:"column:month"`
	PM25  float64 `json:"pm25" gorm:"column:pm25"`
	PM10  float64 `json:"pm10" gorm:"column:pm10"`
}

// MonthlyAverages returns mean PM2.5 and PM10 grouped by the month of
// from_date, ascending. Readings from different years share a month.
func MonthlyAverages(db *gorm.DB) ([]MonthlyAverage, error) {
	month := monthExpr(db)
	rows := []MonthlyAverage{}
	if err := db.Model(&models.AirQualityReading{}).
		Select(month + " AS month, AVG(pm25) AS pm25, AVG(pm10) AS pm10").
		Group(month).
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("monthly averages: %w", err)
	}
	return rows, nil
}

// monthExpr returns the SQL expression extracting the month from from_date
// for the connected dialect.
func monthExpr(db *gorm.DB) string {
	if db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%m', from_date) AS INTEGER)"
	}
	return "MONTH(from_date)"
}

// DistinctCities returns every city with at least one reading, sorted.
func DistinctCities(db *gorm.DB) ([]string, error) {
	var cities []string
	if err := db.Model(&models.AirQualityReading{}).
		Distinct("city").
		Order("city ASC").
		Pluck("city", &cities).Error; err != nil {
		return nil, fmt.Errorf("distinct cities: %w", err)
	}
	return cities, nil
}

// FindUser returns the user with the given username, or gorm.ErrRecordNotFound.
func FindUser(db *gorm.DB, username string) (*models.User, error) {
	var u models.User
	if err := db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

// InsertFeedback stores one feedback entry.
func InsertFeedback(db *gorm.DB, name, message string) error {
	fb := models.Feedback{Name: name, Message: message}
	if err := db.Create(&fb).Error; err != nil {
		return fmt.Errorf("insert feedback: %w", err)
	}
	return nil
}

// ReadingRows returns every column of every stored reading, optionally
// restricted to one city. The caller must close the result.
func ReadingRows(db *gorm.DB, city *string) (*sql.Rows, error) {
	q := db.Raw("SELECT * FROM air_quality")
	if city != nil {
		q = db.Raw("SELECT * FROM air_quality WHERE city = ?", *city)
	}
	rows, err := q.Rows()
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return rows, nil
}
