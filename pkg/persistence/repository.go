// Package persistence provides storage for the domain model. The
// in-memory implementation is the reference one; the interface
// leaves room for real backends.
package persistence

import (
	"errors"

	"digital.vasic.zeal/pkg/domain"
)

// ErrNotFound is returned when no article exists for the given ID.
var ErrNotFound = errors.New("article not found")

// ArticleRepository stores and retrieves articles.
type ArticleRepository interface {
	// FindByID returns the article with the given ID, or
	// ErrNotFound.
	FindByID(id int64) (*domain.Article, error)

	// FindAll returns all stored articles.
	FindAll() []*domain.Article

	// Save stores the article, assigning a new ID when the
	// article's ID is zero. Returns the stored article.
	Save(article *domain.Article) (*domain.Article, error)

	// DeleteByID removes the article with the given ID. Deleting
	// an absent article is a no-op.
	DeleteByID(id int64)
}
