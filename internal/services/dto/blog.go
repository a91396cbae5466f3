package dto

type CreateBlogRequest struct {
	Title   string `form:"title" json:"title" validate:"required"`
	Content string `form:"content" json:"content" validate:"required"`
}

// UpdateBlogRequest is partial: nil leaves the field unchanged.
type UpdateBlogRequest struct {
	Title   *string `form:"title" json:"title"`
	Content *string `form:"content" json:"content"`
}

type UploadMediaRequest struct {
	// photo or video; defaults to photo when omitted.
	Type string `form:"type" json:"type"`
}
