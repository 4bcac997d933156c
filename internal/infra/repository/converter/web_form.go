package converter

import (
	"time"

	"course-checkout/internal/domain/webform"

	"github.com/google/uuid"
)

const WebFormColumns = `id, name, email, phone, form_type, book_demo_course, inquiry_description,
	request_course_topic, contact_us_topic, server_cloud, server_duration,
	instructor_country, instructor_linkedin, instructor_description, created_at, updated_at`

type WebFormRow struct {
	ID                    uuid.UUID `db:"id"`
	Name                  string    `db:"name"`
	Email                 string    `db:"email"`
	Phone                 string    `db:"phone"`
	FormType              string    `db:"form_type"`
	BookDemoCourse        *string   `db:"book_demo_course"`
	InquiryDescription    *string   `db:"inquiry_description"`
	RequestCourseTopic    *string   `db:"request_course_topic"`
	ContactUsTopic        *string   `db:"contact_us_topic"`
	ServerCloud           *string   `db:"server_cloud"`
	ServerDuration        *string   `db:"server_duration"`
	InstructorCountry     *string   `db:"instructor_country"`
	InstructorLinkedin    *string   `db:"instructor_linkedin"`
	InstructorDescription *string   `db:"instructor_description"`
	CreatedAt             time.Time `db:"created_at"`
	UpdatedAt             time.Time `db:"updated_at"`
}

func WebFormFromRow(r WebFormRow) *webform.Form {
	return webform.Reconstruct(webform.Snapshot{
		ID:       r.ID,
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
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	})
}

func WebFormArgs(f *webform.Form) []any {
	d := f.Details()
	return []any{
		f.ID(), f.Name(), f.Email().Value(), f.Phone(), f.FormType().String(),
		d.BookDemoCourse, d.InquiryDescription, d.RequestCourseTopic, d.ContactUsTopic,
		d.ServerCloud, d.ServerDuration, d.InstructorCountry, d.InstructorLinkedin, d.InstructorDescription,
		f.CreatedAt(), f.UpdatedAt(),
	}
}
