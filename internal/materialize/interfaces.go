package materialize

// Saver defines the interface for turning a backend payload into a local file.
type Saver interface {
	// SaveFile decodes the Base64 payload and writes it into the downloads
	// directory under the given filename. The MIME type supplies a fallback
	// extension when the filename has none.
	SaveFile(base64Data, filename, mimeType string) (*SavedFile, error)
}

// SavedFile describes the file a save produced.
type SavedFile struct {
	Path string // absolute path of the written file
	Name string // final file name, extension included
	Size int64  // decoded size in bytes
}
