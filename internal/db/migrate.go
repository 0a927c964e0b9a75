// Package db opens the readings database and manages its schema and seed data.
package db

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sahil8669/airaware/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.User{},
		&models.AirQualityReading{},
		&models.Feedback{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// UpsertUser creates the user or replaces its password.
func UpsertUser(db *gorm.DB, username, password string) error {
	if username == "" {
		return fmt.Errorf("db: username is required")
	}
	u := models.User{Username: username, Password: password}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password"}),
	}).Create(&u)
	if result.Error != nil {
		return fmt.Errorf("db: upsert user %q: %w", username, result.Error)
	}
	return nil
}

// importBatchSize bounds the rows sent in one INSERT.
const importBatchSize = 500

// dateLayouts are tried in order when parsing from_date/to_date.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"02-01-2006",
}

// ImportReadings loads readings from CSV. The header must name city,
// from_date, pm25 and pm10; to_date, no2, so2, co and o3 are optional and
// unknown columns are ignored. The load runs in one transaction, so a bad
// line leaves the table untouched. It returns the number of rows inserted.
func ImportReadings(db *gorm.DB, r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return 0, fmt.Errorf("db: import: read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	var missing []string
	for _, col := range []string{"city", "from_date", "pm25", "pm10"} {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return 0, fmt.Errorf("db: import: header missing %s", strings.Join(missing, ", "))
	}

	total := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		var batch []models.AirQualityReading
		flush := func() error {
			if len(batch) == 0 {
				return nil
			}
			if err := tx.CreateInBatches(batch, importBatchSize).Error; err != nil {
				return fmt.Errorf("db: import: insert: %w", err)
			}
			total += len(batch)
			batch = batch[:0]
			return nil
		}

		line := 1
		for {
			rec, err := cr.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			line++
			if err != nil {
				return fmt.Errorf("db: import: line %d: %w", line, err)
			}
			reading, err := parseReading(rec, idx)
			if err != nil {
				return fmt.Errorf("db: import: line %d: %w", line, err)
			}
			batch = append(batch, reading)
			if len(batch) >= importBatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		return flush()
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

func parseReading(rec []string, idx map[string]int) (models.AirQualityReading, error) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var r models.AirQualityReading
	r.City = field("city")
	if r.City == "" {
		return r, fmt.Errorf("city is empty")
	}

	from, err := parseDate(field("from_date"))
	if err != nil {
		return r, fmt.Errorf("from_date: %w", err)
	}
	r.FromDate = from
	if s := field("to_date"); s != "" {
		to, err := parseDate(s)
		if err != nil {
			return r, fmt.Errorf("to_date: %w", err)
		}
		r.ToDate = &to
	}

	if r.PM25, err = strconv.ParseFloat(field("pm25"), 64); err != nil {
		return r, fmt.Errorf("pm25: %w", err)
	}
	if r.PM10, err = strconv.ParseFloat(field("pm10"), 64); err != nil {
		return r, fmt.Errorf("pm10: %w", err)
	}

	for name, dst := range map[string]**float64{"no2": &r.NO2, "so2": &r.SO2, "co": &r.CO, "o3": &r.O3} {
		s := field(name)
		if s == "" {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r, fmt.Errorf("%s: %w", name, err)
		}
		*dst = &v
	}
	return r, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised date %q", s)
}
