package persistence

import (
	"errors"
	"sort"
	"sync"

	"digital.vasic.zeal/pkg/domain"
	"digital.vasic.zeal/pkg/logging"
)

// MemoryArticleRepository is an in-memory ArticleRepository. It is
// safe for concurrent use.
type MemoryArticleRepository struct {
	mu       sync.RWMutex
	articles map[int64]*domain.Article
	nextID   int64
	log      logging.Logger
}

// NewMemoryArticleRepository creates an empty in-memory repository.
// A nil logger is replaced with a NullLogger.
func NewMemoryArticleRepository(
	log logging.Logger,
) *MemoryArticleRepository {
	if log == nil {
		log = logging.NewNullLogger()
	}
	return &MemoryArticleRepository{
		articles: make(map[int64]*domain.Article),
		nextID:   1,
		log:      log,
	}
}

// FindByID returns the article with the given ID.
func (r *MemoryArticleRepository) FindByID(
	id int64,
) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	article, exists := r.articles[id]
	if !exists {
		return nil, ErrNotFound
	}
	return copyArticle(article), nil
}

// FindAll returns all stored articles, ordered by ID.
func (r *MemoryArticleRepository) FindAll() []*domain.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articles := make([]*domain.Article, 0, len(r.articles))
	for _, article := range r.articles {
		articles = append(articles, copyArticle(article))
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ID < articles[j].ID
	})
	return articles
}

// Save stores the article, assigning a new ID when the article's
// ID is zero.
func (r *MemoryArticleRepository) Save(
	article *domain.Article,
) (*domain.Article, error) {
	if article == nil {
		return nil, errors.New("cannot save nil article")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := copyArticle(article)
	if stored.ID == 0 {
		stored.ID = r.nextID
		r.nextID++
	} else if stored.ID >= r.nextID {
		r.nextID = stored.ID + 1
	}
	r.articles[stored.ID] = stored

	r.log.Debug("Saved article",
		logging.Int64Field("id", stored.ID),
		logging.StringField("title", stored.Title))
	return copyArticle(stored), nil
}

// DeleteByID removes the article with the given ID.
func (r *MemoryArticleRepository) DeleteByID(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.articles, id)
	r.log.Debug("Deleted article",
		logging.Int64Field("id", id))
}

// Count returns the number of stored articles.
func (r *MemoryArticleRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.articles)
}

func copyArticle(article *domain.Article) *domain.Article {
	clone := *article
	// SetComments copies the slice; the duplicate check cannot
	// fail for comments already held by an article.
	_ = clone.SetComments(article.Comments())
	return &clone
}
