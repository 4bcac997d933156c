package request

import (
	"course-checkout/internal/domain/webform"
	"course-checkout/internal/pkg/errs"
	"course-checkout/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type SubmitWebFormRequest struct {
	Name     string `json:"name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=32"`
	FormType string `json:"formType" binding:"required,oneof=requestServer bookDemo requestCourse inquiry contactUs becomeInstructor"`

	BookDemoCourse        *string `json:"bookDemoCourse" binding:"omitempty,max=200"`
	InquiryDescription    *string `json:"inquiryDescription" binding:"omitempty,max=4000"`
	RequestCourseTopic    *string `json:"requestCourseTopic" binding:"omitempty,max=200"`
	ContactUsTopic        *string `json:"contactUsTopic" binding:"omitempty,max=200"`
	ServerCloud           *string `json:"requestServerCloudServer" binding:"omitempty,max=100"`
	ServerDuration        *string `json:"requestServerDuration" binding:"omitempty,max=100"`
	InstructorCountry     *string `json:"becomeInstructorCountry" binding:"omitempty,max=100"`
	InstructorLinkedin    *string `json:"becomeInstructorLinkedin" binding:"omitempty,url,max=300"`
	InstructorDescription *string `json:"becomeInstructorDescription" binding:"omitempty,max=4000"`
}

func (r *SubmitWebFormRequest) ToCommand() commands.WebFormInput {
	return commands.WebFormInput{
		Name:     r.Name,
		Email:    r.Email,
		Phone:    r.Phone,
		FormType: r.FormType,
		Details: webform.Details{
			BookDemoCourse:        r.BookDemoCourse,
			InquiryDescription:    r.InquiryDescription,
			RequestCourseTopic:    r.RequestCourseTopic,
			ContactUsTopic:        r.ContactUsTopic,
			ServerCloud:           r.ServerCloud,
			ServerDuration:        r.ServerDuration,
			InstructorCountry:     r.InstructorCountry,
			InstructorLinkedin:    r.InstructorLinkedin,
			InstructorDescription: r.InstructorDescription,
		},
	}
}

type UpdateWebFormRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=200"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone" binding:"omitempty,min=1,max=32"`
	FormType *string `json:"formType" binding:"omitempty,oneof=requestServer bookDemo requestCourse inquiry contactUs becomeInstructor"`

	BookDemoCourse        *string `json:"bookDemoCourse" binding:"omitempty,max=200"`
	InquiryDescription    *string `json:"inquiryDescription" binding:"omitempty,max=4000"`
	RequestCourseTopic    *string `json:"requestCourseTopic" binding:"omitempty,max=200"`
	ContactUsTopic        *string `json:"contactUsTopic" binding:"omitempty,max=200"`
	ServerCloud           *string `json:"requestServerCloudServer" binding:"omitempty,max=100"`
	ServerDuration        *string `json:"requestServerDuration" binding:"omitempty,max=100"`
	InstructorCountry     *string `json:"becomeInstructorCountry" binding:"omitempty,max=100"`
	InstructorLinkedin    *string `json:"becomeInstructorLinkedin" binding:"omitempty,url,max=300"`
	InstructorDescription *string `json:"becomeInstructorDescription" binding:"omitempty,max=4000"`
}

func (r *UpdateWebFormRequest) ToCommand() (commands.WebFormPatch, error) {
	var p commands.WebFormPatch
	if err := copier.Copy(&p, r); err != nil {
		return commands.WebFormPatch{}, errs.Wrap(err, "map web form patch")
	}
	return p, nil
}

type CartItemRequest struct {
	CourseID string `json:"courseId" binding:"required,uuid"`
}
