package option

import (
	"strconv"
	"time"

	"github.com/smallbiznis/partnerportal/pkg/db/pagination"
	"gorm.io/gorm"
)

// Option mutates a gorm statement before execution.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type paginationOption struct {
	page pagination.Pagination
}

// ApplyPagination returns an Option implementing cursor pagination.
// One extra row is fetched so the caller can detect a next page.
func ApplyPagination(page pagination.Pagination) Option {
	return paginationOption{page: page}
}

func (o paginationOption) Apply(stmt *gorm.DB) *gorm.DB {
	size := o.page.PageSize
	if size <= 0 {
		size = 10
	}
	stmt = stmt.Limit(size + 1)

	if o.page.PageToken == "" {
		return stmt
	}

	cursor, err := pagination.DecodeCursor(o.page.PageToken)
	if err != nil || cursor == nil {
		return stmt
	}

	if cursor.CreatedAt == "" {
		return stmt
	}
	createdAt, parseErr := time.Parse(time.RFC3339Nano, cursor.CreatedAt)
	if parseErr != nil {
		return stmt
	}

	// Rows can share a timestamp, so the id breaks the tie; created_at
	// alone would skip the boundary row's neighbours.
	if id, idErr := strconv.ParseInt(cursor.ID, 10, 64); idErr == nil {
		stmt = stmt.Where("(created_at < ?) OR (created_at = ? AND id < ?)", createdAt, createdAt, id)
	} else {
		stmt = stmt.Where("created_at < ?", createdAt)
	}

	return stmt
}
