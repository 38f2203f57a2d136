// Package countries implements the country catalog feature.
//
// It keeps a catalog of countries in sync with two upstream sources (a country
// list and an exchange rate table), derives an estimated GDP for each country
// and renders a summary image after every refresh.
//
// # Components
//
//   - Service: Orchestrates refreshes, catalog queries and the summary image.
//   - Handler: Exposes the HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// Sub-packages hold the models, the gorm stores, the upstream client, the
// refresh engine and the summary renderer.
//
// # HTTP Endpoints
//
//   - POST /countries/refresh : Refresh the catalog from upstream.
//   - GET /countries : List countries (?region=, ?currency=, ?sort=gdp_desc|gdp_asc|name_asc|name_desc).
//   - GET /countries/image : Summary PNG of the last refresh.
//   - GET /countries/:name : One country, case-insensitive.
//   - DELETE /countries/:name : Delete one country.
//   - GET /status : Count and timestamp of the last refresh.
package countries
