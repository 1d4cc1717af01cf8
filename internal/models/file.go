package models

// FileKind distinguishes a file that is staged for upload from one the
// server has already accepted.
type FileKind string

const (
	FileKindPending   FileKind = "pending"
	FileKindSubmitted FileKind = "submitted"
)

// FileData is an explicit tagged variant for document fields: either a
// pending upload carrying metadata and raw content, or a submitted file
// referenced by its server URL. Exactly one arm is populated, keyed on Kind.
type FileData struct {
	Kind FileKind `json:"kind"`

	// Pending upload
	Name     string `json:"name,omitempty"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Content  []byte `json:"content,omitempty"`

	// Submitted
	URL string `json:"url,omitempty"`
}

// NewPendingFile stages a local file for a later upload.
func NewPendingFile(name, mimeType string, content []byte) *FileData {
	return &FileData{
		Kind:     FileKindPending,
		Name:     name,
		Size:     int64(len(content)),
		MimeType: mimeType,
		Content:  content,
	}
}

// NewSubmittedFile references a file the server already holds.
func NewSubmittedFile(url string) *FileData {
	return &FileData{Kind: FileKindSubmitted, URL: url}
}

// IsPending reports whether the file still needs uploading.
func (f *FileData) IsPending() bool {
	return f != nil && f.Kind == FileKindPending
}

// IsSubmitted reports whether the file is already stored server-side.
func (f *FileData) IsSubmitted() bool {
	return f != nil && f.Kind == FileKindSubmitted
}
