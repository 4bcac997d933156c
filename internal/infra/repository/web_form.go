package repository

import (
	"context"

	"course-checkout/internal/domain/webform"
	"course-checkout/internal/infra"
	"course-checkout/internal/infra/db"
	"course-checkout/internal/infra/repository/converter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type WebFormRepository struct {
	db db.DBTX
}

func NewWebFormRepository(db db.DBTX) *WebFormRepository {
	return &WebFormRepository{db: db}
}

func (r *WebFormRepository) Create(ctx context.Context, f *webform.Form) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO web_forms (`+converter.WebFormColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		converter.WebFormArgs(f)...)
	if err != nil {
		return infra.WrapRepoErr("failed to create web form", err)
	}
	return nil
}

func (r *WebFormRepository) Update(ctx context.Context, f *webform.Form) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE web_forms SET
			name = $2, email = $3, phone = $4, form_type = $5, book_demo_course = $6,
			inquiry_description = $7, request_course_topic = $8, contact_us_topic = $9,
			server_cloud = $10, server_duration = $11, instructor_country = $12,
			instructor_linkedin = $13, instructor_description = $14, updated_at = $15
		WHERE id = $1`,
		append(converter.WebFormArgs(f)[:14], f.UpdatedAt())...)
	if err != nil {
		return infra.WrapRepoErr("failed to update web form", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("web form not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *WebFormRepository) FindByID(ctx context.Context, id uuid.UUID) (*webform.Form, error) {
	rows, err := r.db.Query(ctx, `SELECT `+converter.WebFormColumns+` FROM web_forms WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find web form", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.WebFormRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find web form", err)
	}
	return converter.WebFormFromRow(row), nil
}

func (r *WebFormRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM web_forms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete web form", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("web form not found", nil, infra.KindNotFound)
	}
	return nil
}
