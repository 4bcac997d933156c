package webform

import (
	"strings"
	"time"

	"course-checkout/internal/domain/user"

	"github.com/google/uuid"
)

// Form is a public contact submission from the marketing site.
type Form struct {
	id        uuid.UUID
	name      string
	email     user.Email
	phone     string
	formType  FormType
	details   Details
	createdAt time.Time
	updatedAt time.Time
}

type Params struct {
	Name     string
	Email    string
	Phone    string
	FormType string
	Details  Details
}

func New(p Params, now time.Time) (*Form, error) {
	f := &Form{
		id:        uuid.New(),
		createdAt: now,
		updatedAt: now,
	}
	if err := f.apply(p); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Form) Update(p Params, now time.Time) error {
	if err := f.apply(p); err != nil {
		return err
	}
	f.updatedAt = now
	return nil
}

func (f *Form) apply(p Params) error {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return ErrMissingName
	}
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return ErrMissingPhone
	}
	email, err := user.NewEmail(p.Email)
	if err != nil {
		return err
	}
	ft, err := ParseFormType(p.FormType)
	if err != nil {
		return err
	}
	f.name = name
	f.email = email
	f.phone = phone
	f.formType = ft
	f.details = p.Details
	return nil
}

func (f *Form) Params() Params {
	return Params{
		Name:     f.name,
		Email:    f.email.Value(),
		Phone:    f.phone,
		FormType: f.formType.String(),
		Details:  f.details,
	}
}

type Snapshot struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	FormType  string
	Details   Details
	CreatedAt time.Time
	UpdatedAt time.Time
}

func Reconstruct(s Snapshot) *Form {
	return &Form{
		id:        s.ID,
		name:      s.Name,
		email:     user.ReconstructEmail(s.Email),
		phone:     s.Phone,
		formType:  FormType(s.FormType),
		details:   s.Details,
		createdAt: s.CreatedAt,
		updatedAt: s.UpdatedAt,
	}
}

func (f *Form) Snapshot() Snapshot {
	return Snapshot{
		ID:        f.id,
		Name:      f.name,
		Email:     f.email.Value(),
		Phone:     f.phone,
		FormType:  f.formType.String(),
		Details:   f.details,
		CreatedAt: f.createdAt,
		UpdatedAt: f.updatedAt,
	}
}

func (f *Form) ID() uuid.UUID        { return f.id }
func (f *Form) Name() string         { return f.name }
func (f *Form) Email() user.Email    { return f.email }
func (f *Form) Phone() string        { return f.phone }
func (f *Form) FormType() FormType   { return f.formType }
func (f *Form) Details() Details     { return f.details }
func (f *Form) CreatedAt() time.Time { return f.createdAt }
func (f *Form) UpdatedAt() time.Time { return f.updatedAt }
