package blog

type CreatePostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug"`
	Excerpt   string `json:"excerpt"`
	Body      string `json:"body" binding:"required"`
	Published bool   `json:"published"`
}

type UpdatePostRequest struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug"`
	Excerpt   *string `json:"excerpt"`
	Body      *string `json:"body"`
	Published *bool   `json:"published"`
}
