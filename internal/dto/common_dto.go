package dto

// Pagination is the envelope metadata for paginated listings.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Paginated[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// FileUpload carries a multipart upload from controller to service; the
// service decides where the bytes land.
type FileUpload struct {
	Name string
	Data []byte
}

// FileCleanupMessage is the payload published after an entity delete,
// listing blobs the cleanup consumer should remove.
type FileCleanupMessage struct {
	Paths []string `json:"paths"`
}
