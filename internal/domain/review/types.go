package review

import "course-checkout/internal/pkg/errs"

var (
	ErrInvalidRating   = errs.Validation("rating must be between 1 and 5")
	ErrEmptyComment    = errs.Validation("comment cannot be empty")
	ErrCommentTooLong  = errs.Validation("comment exceeds maximum length")
	ErrNotEnrolled     = errs.Forbidden("only enrolled users can review a course")
	ErrReviewNotFound  = errs.NotFound("review not found")
	ErrAlreadyReviewed = errs.Conflict("course already reviewed by this user")
)
