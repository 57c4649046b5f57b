package domain

import (
	"fmt"
	"time"

	"digital.vasic.zeal/pkg/assertion"
	"digital.vasic.zeal/pkg/expression"
)

// Article is a published text with attached reader comments.
// Comments are managed through AddComment and SetComments so the
// article can enforce unique comment IDs.
type Article struct {
	// ID uniquely identifies the article.
	ID int64 `json:"id"`

	// Title is the article headline.
	Title string `json:"title"`

	// Content is the article body.
	Content string `json:"content"`

	// PublishTime is when the article went live.
	PublishTime time.Time `json:"publishTime"`

	comments []Comment
}

// NewArticle creates an article, requiring a populated title and
// content. A nil comment slice is treated as empty.
func NewArticle(
	id int64,
	title string,
	content string,
	publishTime time.Time,
	comments []Comment,
) (*Article, error) {
	titlePtr, err := assertion.RequireMsg(
		expression.ThatString(title).
			IsNotNull().
			IsPopulated(),
		"article title must be populated",
	)
	if err != nil {
		return nil, err
	}
	title = *titlePtr

	contentPtr, err := assertion.RequireMsg(
		expression.ThatString(content).
			IsNotNull().
			IsPopulated(),
		"article content must be populated",
	)
	if err != nil {
		return nil, err
	}
	content = *contentPtr

	article := &Article{
		ID:          id,
		Title:       title,
		Content:     content,
		PublishTime: publishTime,
	}
	if err := article.SetComments(comments); err != nil {
		return nil, err
	}
	return article, nil
}

// AddComment appends a comment to the article. A comment whose ID
// is already present is rejected.
func (a *Article) AddComment(comment Comment) error {
	if _, exists := a.FindCommentByID(comment.ID); exists {
		return fmt.Errorf(
			"duplicate comment id: %d", comment.ID,
		)
	}
	a.comments = append(a.comments, comment)
	return nil
}

// FindCommentByID returns the comment with the given ID.
func (a *Article) FindCommentByID(id int64) (Comment, bool) {
	for _, c := range a.comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// Comments returns a copy of the article's comments.
func (a *Article) Comments() []Comment {
	comments := make([]Comment, len(a.comments))
	copy(comments, a.comments)
	return comments
}

// SetComments replaces the article's comments. A nil slice clears
// them. Duplicate comment IDs are rejected.
func (a *Article) SetComments(comments []Comment) error {
	seen := make(map[int64]bool, len(comments))
	for _, c := range comments {
		if seen[c.ID] {
			return fmt.Errorf(
				"duplicate comment id: %d", c.ID,
			)
		}
		seen[c.ID] = true
	}

	a.comments = make([]Comment, len(comments))
	copy(a.comments, comments)
	return nil
}
