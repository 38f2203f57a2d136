package models

import "time"

// Country represents the 'countries' table.
// Optional columns are pointers so that NULL and zero stay distinct.
type Country struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_countries_name" json:"name"`
	Capital         *string   `gorm:"column:capital;type:varchar(255)" json:"capital"`
	Region          *string   `gorm:"column:region;type:varchar(100);index:idx_region" json:"region"`
	Population      int64     `gorm:"column:population;not null" json:"population"`
	CurrencyCode    *string   `gorm:"column:currency_code;type:varchar(10);index:idx_currency" json:"currency_code"`
	ExchangeRate    *float64  `gorm:"column:exchange_rate;type:decimal(15,6)" json:"exchange_rate"`
	EstimatedGDP    *float64  `gorm:"column:estimated_gdp;type:decimal(20,2)" json:"estimated_gdp"`
	FlagURL         *string   `gorm:"column:flag_url;type:varchar(500)" json:"flag_url"`
	LastRefreshedAt time.Time `gorm:"column:last_refreshed_at;not null" json:"last_refreshed_at"`
}

// TableName overrides the table name.
func (Country) TableName() string {
	return "countries"
}

// HasGDP reports whether an estimated GDP is known.
func (c Country) HasGDP() bool {
	return c.EstimatedGDP != nil
}

// Metadata represents the singleton 'app_metadata' row.
type Metadata struct {
	ID              uint       `gorm:"column:id;primaryKey;autoIncrement:false" json:"-"`
	TotalCountries  int        `gorm:"column:total_countries;not null;default:0" json:"total_countries"`
	LastRefreshedAt *time.Time `gorm:"column:last_refreshed_at" json:"last_refreshed_at"`
}

// MetadataID is the primary key of the only metadata row.
const MetadataID uint = 1

// TableName overrides the table name.
func (Metadata) TableName() string {
	return "app_metadata"
}
