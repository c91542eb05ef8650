package services

import (
	"github.com/coopgretz/HomeStorage/internal/dto"
	"math"
	"strings"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	itemsOrder       = "date_added DESC, id DESC"
)

// MaxPage keeps (page-1)*limit inside a 32-bit offset.
const MaxPage = math.MaxInt32 / MaxPageLimit

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike makes a user search term match literally inside a LIKE pattern.
func EscapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// ParseItemFilter turns the list query into an owner-scoped where clause
// shared by the page query and the total count.
func ParseItemFilter(ownerID string, query dto.ItemQuery) (string, []interface{}) {
	clauses := []string{"owner_id = ?"}
	params := []interface{}{ownerID}

	if search := strings.TrimSpace(query.Search); search != "" {
		pattern := "%" + EscapeLike(strings.ToLower(search)) + "%"
		clauses = append(clauses,
			`(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\' OR LOWER(COALESCE(notes, '')) LIKE ? ESCAPE '\')`)
		params = append(params, pattern, pattern, pattern)
	}
	if query.BoxID != nil {
		clauses = append(clauses, "box_id = ?")
		params = append(params, *query.BoxID)
	}
	if query.CategoryID != nil {
		clauses = append(clauses, "category_id = ?")
		params = append(params, *query.CategoryID)
	}
	if query.Status != "" {
		clauses = append(clauses, "status = ?")
		params = append(params, query.Status)
	}
	return strings.Join(clauses, " AND "), params
}

// NormalizePage applies the list defaults: page 1, limit 20, limit at most
// 100, page at most MaxPage.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return page, limit
}
