package request

import (
	"course-checkout/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	CourseID uuid.UUID `json:"courseId" binding:"required"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Comment  string    `json:"comment" binding:"required,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{CourseID: r.CourseID, Rating: r.Rating, Comment: r.Comment}
}

type ApproveReviewRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}
