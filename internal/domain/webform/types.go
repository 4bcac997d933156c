package webform

import "course-checkout/internal/pkg/errs"

var (
	ErrInvalidFormType = errs.Validation("invalid form type")
	ErrMissingName     = errs.Validation("name is required")
	ErrMissingPhone    = errs.Validation("phone is required")
	ErrFormNotFound    = errs.NotFound("web form not found")
)

type FormType string

const (
	TypeRequestServer    FormType = "requestServer"
	TypeBookDemo         FormType = "bookDemo"
	TypeRequestCourse    FormType = "requestCourse"
	TypeInquiry          FormType = "inquiry"
	TypeContactUs        FormType = "contactUs"
	TypeBecomeInstructor FormType = "becomeInstructor"
)

func ParseFormType(s string) (FormType, error) {
	switch t := FormType(s); t {
	case TypeRequestServer, TypeBookDemo, TypeRequestCourse, TypeInquiry, TypeContactUs, TypeBecomeInstructor:
		return t, nil
	}
	return "", ErrInvalidFormType
}

func (t FormType) String() string { return string(t) }

// Details holds the answers specific to each form type. Fields that do not
// belong to the submitted type are kept as sent.
type Details struct {
	BookDemoCourse        *string
	InquiryDescription    *string
	RequestCourseTopic    *string
	ContactUsTopic        *string
	ServerCloud           *string
	ServerDuration        *string
	InstructorCountry     *string
	InstructorLinkedin    *string
	InstructorDescription *string
}
