package readstore

import (
	"context"

	"course-checkout/internal/infra/db"
	"course-checkout/internal/usecase/queries"

	"github.com/google/uuid"
)

const webFormViewSelect = `SELECT id, name, email, phone, form_type, book_demo_course, inquiry_description,
	request_course_topic, contact_us_topic, server_cloud, server_duration,
	instructor_country, instructor_linkedin, instructor_description, created_at, updated_at`

type WebFormReadStore struct {
	db db.DBTX
}

func NewWebFormReadStore(db db.DBTX) *WebFormReadStore {
	return &WebFormReadStore{db: db}
}

func (r *WebFormReadStore) List(ctx context.Context, p queries.ListParams) ([]*queries.WebFormView, int64, error) {
	lq := listQuery{selectSQL: webFormViewSelect, fromSQL: "FROM web_forms", idColumn: "id"}
	return fetchList[queries.WebFormView](ctx, r.db, lq, p, "web forms")
}

func (r *WebFormReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.WebFormView, error) {
	return fetchOne[queries.WebFormView](ctx, r.db, webFormViewSelect+` FROM web_forms WHERE id = $1`, "web form", id)
}
