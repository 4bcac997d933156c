package review

import (
	"strings"
	"unicode/utf8"
)

const (
	MinRating        = 1
	MaxRating        = 5
	MaxCommentLength = 1000
)

// Rating is a whole-star score between MinRating and MaxRating.
type Rating int

func NewRating(stars int) (Rating, error) {
	if stars < MinRating || stars > MaxRating {
		return 0, ErrInvalidRating
	}
	return Rating(stars), nil
}

func (r Rating) Value() int { return int(r) }

// Comment length is counted in characters, not bytes.
type Comment string

func NewComment(text string) (Comment, error) {
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return "", ErrEmptyComment
	case utf8.RuneCountInString(text) > MaxCommentLength:
		return "", ErrCommentTooLong
	}
	return Comment(text), nil
}

func (c Comment) String() string { return string(c) }
