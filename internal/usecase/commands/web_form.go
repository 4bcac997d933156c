package commands

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"course-checkout/internal/domain/webform"
	"course-checkout/internal/pkg/clock"
	"course-checkout/internal/pkg/patch"
	"course-checkout/internal/usecase/shared"

	"github.com/google/uuid"
)

type WebFormInput struct {
	Name     string
	Email    string
	Phone    string
	FormType string
	Details  webform.Details
}

type WebFormPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	FormType *string

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

type WebFormCommands interface {
	// Submit stores a public submission and mails the submitter and the operator.
	Submit(ctx context.Context, in WebFormInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, p WebFormPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type webFormCommandsImpl struct {
	uow    shared.UnitOfWork
	mailer shared.Mailer
	mail   MailSettings
	clock  clock.Clock
}

func NewWebFormCommands(uow shared.UnitOfWork, mailer shared.Mailer, mail MailSettings, clk clock.Clock) WebFormCommands {
	return &webFormCommandsImpl{uow: uow, mailer: mailer, mail: mail, clock: clk}
}

func (uc *webFormCommandsImpl) Submit(ctx context.Context, in WebFormInput) (uuid.UUID, error) {
	f, err := webform.New(webform.Params(in), uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.WebForms().Create(ctx, f)
	})
	if err != nil {
		return uuid.Nil, err
	}
	uc.notify(ctx, f)
	return f.ID(), nil
}

func (uc *webFormCommandsImpl) Update(ctx context.Context, id uuid.UUID, p WebFormPatch) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		f, err := tx.WebForms().FindByID(ctx, id)
		if err != nil {
			return notFoundAs(err, webform.ErrFormNotFound)
		}
		cur := f.Params()
		d := cur.Details
		err = f.Update(webform.Params{
			Name:     patch.Coalesce(p.Name, cur.Name),
			Email:    patch.Coalesce(p.Email, cur.Email),
			Phone:    patch.Coalesce(p.Phone, cur.Phone),
			FormType: patch.Coalesce(p.FormType, cur.FormType),
			Details: webform.Details{
				BookDemoCourse:        patch.CoalescePtr(p.BookDemoCourse, d.BookDemoCourse),
				InquiryDescription:    patch.CoalescePtr(p.InquiryDescription, d.InquiryDescription),
				RequestCourseTopic:    patch.CoalescePtr(p.RequestCourseTopic, d.RequestCourseTopic),
				ContactUsTopic:        patch.CoalescePtr(p.ContactUsTopic, d.ContactUsTopic),
				ServerCloud:           patch.CoalescePtr(p.ServerCloud, d.ServerCloud),
				ServerDuration:        patch.CoalescePtr(p.ServerDuration, d.ServerDuration),
				InstructorCountry:     patch.CoalescePtr(p.InstructorCountry, d.InstructorCountry),
				InstructorLinkedin:    patch.CoalescePtr(p.InstructorLinkedin, d.InstructorLinkedin),
				InstructorDescription: patch.CoalescePtr(p.InstructorDescription, d.InstructorDescription),
			},
		}, uc.clock.Now())
		if err != nil {
			return err
		}
		return tx.WebForms().Update(ctx, f)
	})
}

func (uc *webFormCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return notFoundAs(tx.WebForms().Delete(ctx, id), webform.ErrFormNotFound)
	})
}

// notify runs after commit. A mail failure is logged and the submission stands.
func (uc *webFormCommandsImpl) notify(ctx context.Context, f *webform.Form) {
	thanks := shared.Message{
		To:      f.Email().Value(),
		Subject: "Thanks for your submission",
		Text: fmt.Sprintf("Hi %s,\n\nThanks for reaching out. We received your %s request and will get back to you soon.\n\n%s",
			f.Name(), f.FormType(), uc.mail.TeamName),
		HTML: fmt.Sprintf("<p>Hi %s,</p><p>Thanks for reaching out. We received your %s request and will get back to you soon.</p><p>%s</p>",
			html.EscapeString(f.Name()), f.FormType(), html.EscapeString(uc.mail.TeamName)),
	}
	if err := uc.mailer.Send(ctx, thanks); err != nil {
		slog.Error("failed to send web form acknowledgement", "form_id", f.ID(), "to", f.Email().Value(), "error", err)
	}

	if uc.mail.OperatorAddr == "" {
		return
	}
	notice := shared.Message{
		To:      uc.mail.OperatorAddr,
		Subject: "Web Form Submission from - " + f.Name(),
		Text: fmt.Sprintf("%s <%s>, phone %s, submitted a %s form (id %s).",
			f.Name(), f.Email().Value(), f.Phone(), f.FormType(), f.ID()),
		HTML: fmt.Sprintf("<p>%s &lt;%s&gt;, phone %s, submitted a <strong>%s</strong> form (id <code>%s</code>).</p>",
			html.EscapeString(f.Name()), html.EscapeString(f.Email().Value()), html.EscapeString(f.Phone()), f.FormType(), f.ID()),
	}
	if err := uc.mailer.Send(ctx, notice); err != nil {
		slog.Error("failed to send web form notice", "form_id", f.ID(), "to", uc.mail.OperatorAddr, "error", err)
	}
}
