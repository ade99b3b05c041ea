package requests

type CreateRecommendation struct {
	Type     string `json:"recommendation_type" validate:"required,max=50"`
	Content  string `json:"content" validate:"required,max=5000"`
	Priority int    `json:"priority" validate:"omitempty,min=1,max=3"`
}
