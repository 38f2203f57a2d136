package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"country-catalog/core/database"
	apperrors "country-catalog/core/errors"
	"country-catalog/feature/countries/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func seedCountries(t *testing.T, catalog *Catalog) {
	t.Helper()
	ctx := context.Background()
	for _, c := range []models.Country{
		{Name: "Nigeria", Region: strPtr("Africa"), Population: 206139589, CurrencyCode: strPtr("NGN"), ExchangeRate: floatPtr(1600.5), EstimatedGDP: floatPtr(193000000)},
		{Name: "Ghana", Region: strPtr("Africa"), Population: 31072940, CurrencyCode: strPtr("GHS"), ExchangeRate: floatPtr(15.2), EstimatedGDP: floatPtr(3060000000)},
		{Name: "France", Region: strPtr("Europe"), Population: 67391582, CurrencyCode: strPtr("EUR"), ExchangeRate: floatPtr(0.92), EstimatedGDP: floatPtr(110000000000)},
		{Name: "Antarctica", Population: 1000, EstimatedGDP: floatPtr(0)},
		{Name: "Testland", Population: 1000, CurrencyCode: strPtr("ABC")},
	} {
		c := c
		_, err := catalog.Create(ctx, &c)
		require.NoError(t, err)
	}
}

func TestCatalog_CreateAndFindByName(t *testing.T) {
	db := setupDB(t)
	now := time.Date(2025, 10, 22, 18, 0, 0, 0, time.UTC)
	catalog := NewCatalog(db).WithClock(fixedClock(now))
	ctx := context.Background()

	id, err := catalog.Create(ctx, &models.Country{
		Name:         "Ghana",
		Capital:      strPtr("Accra"),
		Population:   31072940,
		CurrencyCode: strPtr("GHS"),
		ExchangeRate: floatPtr(15.2),
		EstimatedGDP: floatPtr(3060000000.5),
	})
	require.NoError(t, err)
	assert.NotZero(t, id)

	found, err := catalog.FindByName(ctx, "gHaNa")
	require.NoError(t, err)
	assert.Equal(t, id, found.ID)
	assert.Equal(t, "Ghana", found.Name)
	assert.Equal(t, "Accra", *found.Capital)
	assert.Nil(t, found.Region)
	assert.Nil(t, found.FlagURL)
	assert.InDelta(t, 15.2, *found.ExchangeRate, 1e-9)
	assert.True(t, now.Equal(found.LastRefreshedAt))
}

func TestCatalog_FindByName_NotFound(t *testing.T) {
	catalog := NewCatalog(setupDB(t))

	_, err := catalog.FindByName(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCatalog_UniqueName(t *testing.T) {
	catalog := NewCatalog(setupDB(t))
	ctx := context.Background()

	_, err := catalog.Create(ctx, &models.Country{Name: "Chad", Population: 1})
	require.NoError(t, err)

	_, err = catalog.Create(ctx, &models.Country{Name: "Chad", Population: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInternal))
}

func TestCatalog_Update(t *testing.T) {
	db := setupDB(t)
	first := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	ctx := context.Background()

	_, err := NewCatalog(db).WithClock(fixedClock(first)).Create(ctx, &models.Country{
		Name:         "france",
		Population:   1,
		CurrencyCode: strPtr("EUR"),
		ExchangeRate: floatPtr(0.9),
		EstimatedGDP: floatPtr(10),
	})
	require.NoError(t, err)

	err = NewCatalog(db).WithClock(fixedClock(second)).Update(ctx, "France", &models.Country{
		Name:       "France",
		Capital:    strPtr("Paris"),
		Population: 2,
	})
	require.NoError(t, err)

	found, err := NewCatalog(db).FindByName(ctx, "FRANCE")
	require.NoError(t, err)
	// Name keeps its stored casing; every other column is overwritten, NULLs included.
	assert.Equal(t, "france", found.Name)
	assert.Equal(t, "Paris", *found.Capital)
	assert.Equal(t, int64(2), found.Population)
	assert.Nil(t, found.CurrencyCode)
	assert.Nil(t, found.ExchangeRate)
	assert.Nil(t, found.EstimatedGDP)
	assert.True(t, second.Equal(found.LastRefreshedAt))
}

func TestCatalog_Delete(t *testing.T) {
	catalog := NewCatalog(setupDB(t))
	ctx := context.Background()
	seedCountries(t, catalog)

	removed, err := catalog.Delete(ctx, "NIGERIA")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = catalog.Delete(ctx, "Nigeria")
	require.NoError(t, err)
	assert.False(t, removed)

	_, err = catalog.FindByName(ctx, "Nigeria")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestCatalog_FindAll(t *testing.T) {
	catalog := NewCatalog(setupDB(t))
	ctx := context.Background()
	seedCountries(t, catalog)

	all, err := catalog.FindAll(ctx, models.Filter{}, models.SortNone)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	africa, err := catalog.FindAll(ctx, models.Filter{Region: "Africa"}, models.SortNameAsc)
	require.NoError(t, err)
	require.Len(t, africa, 2)
	assert.Equal(t, "Ghana", africa[0].Name)
	assert.Equal(t, "Nigeria", africa[1].Name)

	eur, err := catalog.FindAll(ctx, models.Filter{Region: "Europe", Currency: "EUR"}, models.SortNone)
	require.NoError(t, err)
	require.Len(t, eur, 1)
	assert.Equal(t, "France", eur[0].Name)

	none, err := catalog.FindAll(ctx, models.Filter{Region: "Oceania"}, models.SortNone)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)

	byName, err := catalog.FindAll(ctx, models.Filter{}, models.SortNameDesc)
	require.NoError(t, err)
	assert.Equal(t, "Testland", byName[0].Name)

	byGDP, err := catalog.FindAll(ctx, models.Filter{}, models.SortGDPDesc)
	require.NoError(t, err)
	assert.Equal(t, "France", byGDP[0].Name)
}

func TestCatalog_TopByGDP(t *testing.T) {
	catalog := NewCatalog(setupDB(t))
	ctx := context.Background()
	seedCountries(t, catalog)

	top, err := catalog.TopByGDP(ctx, 5)
	require.NoError(t, err)
	// Testland has a NULL GDP and is excluded; Antarctica's zero GDP is kept.
	require.Len(t, top, 4)
	assert.Equal(t, []string{"France", "Ghana", "Nigeria", "Antarctica"}, names(top))

	top, err = catalog.TopByGDP(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"France", "Ghana"}, names(top))

	top, err = catalog.TopByGDP(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, top)

	top, err = catalog.TopByGDP(ctx, -3)
	require.NoError(t, err)
	assert.Empty(t, top)
}

func TestMetadataStore(t *testing.T) {
	db := setupDB(t)
	meta := NewMetadataStore(db)
	ctx := context.Background()

	initial, err := meta.GetMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, initial.TotalCountries)
	assert.Nil(t, initial.LastRefreshedAt)

	at := time.Date(2025, 10, 22, 18, 0, 0, 0, time.UTC)
	require.NoError(t, meta.UpdateMetadata(ctx, 250, at))
	require.NoError(t, meta.UpdateMetadata(ctx, 251, at.Add(time.Minute)))

	current, err := meta.GetMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 251, current.TotalCountries)
	require.NotNil(t, current.LastRefreshedAt)
	assert.True(t, at.Add(time.Minute).Equal(*current.LastRefreshedAt))

	var count int64
	require.NoError(t, db.Model(&models.Metadata{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMetadataStore_RecreatesLostRow(t *testing.T) {
	db := setupDB(t)
	meta := NewMetadataStore(db)
	ctx := context.Background()

	require.NoError(t, db.Exec("DELETE FROM app_metadata").Error)

	missing, err := meta.GetMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, missing.TotalCountries)

	require.NoError(t, meta.UpdateMetadata(ctx, 3, time.Now()))
	current, err := meta.GetMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, current.TotalCountries)
}

func TestMigrate_NameUniqueAcrossCasing(t *testing.T) {
	db := setupDB(t)
	catalog := NewCatalog(db)
	ctx := context.Background()

	_, err := catalog.Create(ctx, &models.Country{Name: "France", Population: 1})
	require.NoError(t, err)

	_, err = catalog.Create(ctx, &models.Country{Name: "france", Population: 2})
	assert.ErrorIs(t, err, apperrors.ErrInternal)

	all, err := catalog.FindAll(ctx, models.Filter{}, models.SortNone)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	require.NoError(t, NewMetadataStore(db).UpdateMetadata(ctx, 7, time.Now()))
	require.NoError(t, Migrate(ctx, db))

	current, err := NewMetadataStore(db).GetMetadata(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, current.TotalCountries)
}

func TestCatalog_SQL_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	catalog := NewCatalog(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM `countries` WHERE LOWER(name) = LOWER(?)")).
		WithArgs("France").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := catalog.Delete(ctx, "France")
	require.NoError(t, err)
	assert.True(t, removed)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM `countries` WHERE estimated_gdp IS NOT NULL ORDER BY estimated_gdp DESC LIMIT ?")).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "population", "estimated_gdp"}).
			AddRow(1, "United States", 331002651, 25000000000000.0))

	top, err := catalog.TopByGDP(ctx, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "United States", top[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetadataStore_SQL_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `app_metadata` .* ON DUPLICATE KEY UPDATE").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = NewMetadataStore(db).UpdateMetadata(context.Background(), 250, time.Now())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalog_StorageFault(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery("SELECT \\* FROM `countries`").WillReturnError(errors.New("connection refused"))

	_, err = NewCatalog(db).FindAll(context.Background(), models.Filter{}, models.SortNone)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInternal))
	assert.Contains(t, err.Error(), "connection refused")
}

func names(countries []models.Country) []string {
	out := make([]string, 0, len(countries))
	for _, c := range countries {
		out = append(out, c.Name)
	}
	return out
}
