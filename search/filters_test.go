package search

import (
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
)

func TestParseDefaults(t *testing.T) {
	f, err := Parse(url.Values{})
	require.NoError(t, err)

	assert.Equal(t, SortRelevance, f.SortBy)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, DefaultPageSize, f.PageSize)
	assert.Empty(t, f.Query)
	assert.Zero(t, f.MinPrice)
	assert.Zero(t, f.MaxPrice)
}

func TestParseFullFilterSet(t *testing.T) {
	values := url.Values{}
	values.Set("q", "notebook gamer")
	values.Set("category", "eletronicos")
	values.Set("brand", "acme")
	values.Set("min_price", "100")
	values.Set("max_price", "500")
	values.Set("sort_by", "price_asc")
	values.Set("page", "3")
	values.Set("limit", "24")

	f, err := Parse(values)
	require.NoError(t, err)

	assert.Equal(t, "notebook gamer", f.Query)
	assert.Equal(t, "eletronicos", f.Category)
	assert.Equal(t, "acme", f.Brand)
	assert.Equal(t, 100.0, f.MinPrice)
	assert.Equal(t, 500.0, f.MaxPrice)
	assert.Equal(t, SortPriceAsc, f.SortBy)
	assert.Equal(t, 3, f.Page)
	assert.Equal(t, 24, f.PageSize)
	assert.Equal(t, 48, f.Offset())
}

func TestParseRejectsMalformedNumbers(t *testing.T) {
	for name, values := range map[string]url.Values{
		"bad min_price":      {"min_price": {"abc"}},
		"negative min_price": {"min_price": {"-5"}},
		"bad max_price":      {"max_price": {"x"}},
		"inverted range":     {"min_price": {"500"}, "max_price": {"100"}},
		"zero page":          {"page": {"0"}},
		"bad page":           {"page": {"two"}},
		"zero limit":         {"limit": {"0"}},
	} {
		_, err := Parse(values)
		assert.Error(t, err, name)
	}
}

func TestParseUnknownSortFallsBackToRelevance(t *testing.T) {
	f, err := Parse(url.Values{"sort_by": {"cheapest_first"}})
	require.NoError(t, err)
	assert.Equal(t, SortRelevance, f.SortBy)
}

func TestParseCapsPageSize(t *testing.T) {
	f, err := Parse(url.Values{"limit": {"5000"}})
	require.NoError(t, err)
	assert.Equal(t, MaxPageSize, f.PageSize)
}

// Encoding a filter set and parsing it back must yield the same set:
// the URL is the source of truth for search state.
func TestValuesRoundTrip(t *testing.T) {
	filters := []Filters{
		{SortBy: SortRelevance, Page: 1, PageSize: DefaultPageSize},
		{
			Query:    "cafeteira",
			Category: "eletrodomesticos",
			Brand:    "acme",
			MinPrice: 99.9,
			MaxPrice: 1500,
			SortBy:   SortPriceDesc,
			Page:     2,
			PageSize: 24,
		},
		{Query: "tv 4k", SortBy: SortRating, Page: 7, PageSize: DefaultPageSize},
		{MinPrice: 100, MaxPrice: 500, SortBy: SortRelevance, Page: 1, PageSize: DefaultPageSize},
	}

	for _, f := range filters {
		parsed, err := Parse(f.Values())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
}

func TestValuesOmitsDefaults(t *testing.T) {
	f := Filters{SortBy: SortRelevance, Page: 1, PageSize: DefaultPageSize}
	assert.Empty(t, f.Values().Encode())
}

func TestTotalPages(t *testing.T) {
	f := Filters{PageSize: 12}

	assert.Equal(t, 0, f.TotalPages(0)) // no results, no pages
	assert.Equal(t, 1, f.TotalPages(1))
	assert.Equal(t, 1, f.TotalPages(12))
	assert.Equal(t, 2, f.TotalPages(13))
	assert.Equal(t, 9, f.TotalPages(100))
}

func TestOrderWhitelistsSortKeys(t *testing.T) {
	assert.Equal(t, "products.price ASC, products.id ASC", Filters{SortBy: SortPriceAsc}.Order())
	assert.Equal(t, "products.rating DESC, products.id ASC", Filters{SortBy: SortRating}.Order())

	// Anything unknown must not reach the ORDER BY clause.
	injected := Filters{SortBy: SortKey("price; DROP TABLE products")}
	assert.Equal(t, Filters{SortBy: SortRelevance}.Order(), injected.Order())
}

func TestCacheKeyIsStable(t *testing.T) {
	f := Filters{Query: "tv", Brand: "acme", SortBy: SortNewest, Page: 2, PageSize: 12}
	assert.Equal(t, f.CacheKey(), f.CacheKey())
	assert.NotEqual(t, f.CacheKey(), Filters{Query: "tv"}.CacheKey())
}

// dryRunDB builds a gorm handle that renders SQL without executing it,
// so the generated WHERE clauses can be asserted without Postgres.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func buildSQL(t *testing.T, query *gorm.DB) string {
	t.Helper()

	tx := query.Find(&[]models.Product{})
	require.NoError(t, tx.Error)
	return tx.Statement.SQL.String()
}

func TestApplyListsOnlyActiveProducts(t *testing.T) {
	db := dryRunDB(t)

	sql := buildSQL(t, Filters{}.Apply(db.Model(&models.Product{})))
	assert.Contains(t, sql, "products.status")
}

func TestApplyAdminCoversEveryStatus(t *testing.T) {
	db := dryRunDB(t)

	// The back-office list must show drafts and inactive products too.
	sql := buildSQL(t, Filters{}.ApplyAdmin(db.Model(&models.Product{}), ""))
	assert.NotContains(t, sql, "products.status")

	sql = buildSQL(t, Filters{}.ApplyAdmin(db.Model(&models.Product{}), "draft"))
	assert.Contains(t, sql, "products.status")
}

func TestApplyMatchesBrandName(t *testing.T) {
	db := dryRunDB(t)

	tx := Filters{Query: "acme"}.Apply(db.Model(&models.Product{})).Find(&[]models.Product{})
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "products.name ILIKE")
	assert.Contains(t, sql, "SELECT id FROM brands WHERE name ILIKE")
	// name, both descriptions and the brand subquery
	assert.Equal(t, 4, strings.Count(sql, "ILIKE"))
	assert.Contains(t, tx.Statement.Vars, "%acme%")
}
