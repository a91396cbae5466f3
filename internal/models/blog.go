package models

// Blog is admin-authored content. StorageKey is the blob-store deletion
// handle captured at upload time so media can be removed when the post is
// updated or deleted.
type Blog struct {
	BaseModel
	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"not null" json:"content"`

	Media      string `json:"media,omitempty"`
	MediaKind  string `gorm:"type:varchar(10)" json:"mediaType,omitempty"`
	StorageKey string `json:"-"`

	AuthorID string `gorm:"type:uuid;index" json:"author"`
	Author   *User  `gorm:"foreignKey:AuthorID" json:"authorDetails,omitempty"`
}
