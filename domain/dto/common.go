package dto

type SearchRequest struct {
	Query string `query:"q" validate:"omitempty,max=200"`
}
