// Package domain contains a small article/comment model whose
// constructors and mutators guard their inputs with the assertion
// layer. It doubles as a working example of precondition-style
// usage.
package domain

import (
	"time"

	"digital.vasic.zeal/pkg/assertion"
	"digital.vasic.zeal/pkg/expression"
)

// Comment is a reader comment attached to an article.
type Comment struct {
	// ID uniquely identifies the comment within its article.
	ID int64 `json:"id"`

	// CreationTime is when the comment was posted.
	CreationTime time.Time `json:"creationTime"`

	// Content is the comment body.
	Content string `json:"content"`
}

// NewComment creates a comment, requiring a populated content
// string.
func NewComment(
	id int64,
	creationTime time.Time,
	content string,
) (*Comment, error) {
	contentPtr, err := assertion.RequireMsg(
		expression.ThatString(content).
			IsNotNull().
			IsPopulated(),
		"comment content must be populated",
	)
	if err != nil {
		return nil, err
	}

	return &Comment{
		ID:           id,
		CreationTime: creationTime,
		Content:      *contentPtr,
	}, nil
}
