package request

// ByIDRequest is a common struct for endpoints that require a numeric ID path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}

// IDListRequest carries the target ids for bulk endpoints.
type IDListRequest struct {
	IDs []int64 `json:"ids" binding:"required,min=1,dive,min=1"`
}

// IDListQuery carries the target ids in the query string, as repeated
// parameters: ?ids=1&ids=2.
type IDListQuery struct {
	IDs []int64 `form:"ids" binding:"required,min=1,dive,min=1"`
}

// ListParams holds common pagination query parameters.
type ListParams struct {
	Page     int `form:"page,default=1" binding:"omitempty,min=1"`
	PageSize int `form:"page_size,default=20" binding:"omitempty,min=1,max=100"`
}
