package response

import (
	"course-checkout/internal/usecase/queries"
)

const StatusSuccess = "success"

type ListResponse struct {
	Status            string         `json:"status"`
	Page              int            `json:"page"`
	ResultsInThisPage int            `json:"resultsInThisPage"`
	TotalDocuments    int64          `json:"totalDocuments"`
	Data              map[string]any `json:"data"`
}

// NewListResponse projects the page items onto the requested fields and keys
// them under resource.
func NewListResponse[T any](resource string, page *queries.Page[T]) (*ListResponse, error) {
	items, err := queries.Project(page.Items, page.Fields)
	if err != nil {
		return nil, err
	}
	return &ListResponse{
		Status:            StatusSuccess,
		Page:              page.Page,
		ResultsInThisPage: len(items),
		TotalDocuments:    page.Total,
		Data:              map[string]any{resource: items},
	}, nil
}

type DataResponse struct {
	Status string         `json:"status"`
	Data   map[string]any `json:"data"`
}

func NewDataResponse(resource string, v any) *DataResponse {
	return &DataResponse{Status: StatusSuccess, Data: map[string]any{resource: v}}
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func NewMessageResponse(msg string) *MessageResponse {
	return &MessageResponse{Status: StatusSuccess, Message: msg}
}

type CreatedResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
