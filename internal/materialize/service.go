package materialize

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mediasaver/media-saver/internal/model"
)

// Materialization constants
const (
	// TempSuffix marks the in-progress file before it is renamed into place
	TempSuffix = ".part"

	// DefaultFilename is used when the backend sends an empty filename
	DefaultFilename = "download"

	// MaxFilenameLength caps the name portion, mirroring the backend's own cap
	MaxFilenameLength = 100

	// DefaultFilePermissions for written media files
	DefaultFilePermissions = 0644

	// DefaultDirPermissions when the downloads directory has to be created
	DefaultDirPermissions = 0755
)

// ErrSaveFailed wraps every decode or filesystem failure. The flow controller
// shows its text directly.
var ErrSaveFailed = errors.New("could not save the file, check the downloads folder")

// FileSaver writes decoded payloads into a fixed downloads directory. The
// write goes through a temp file renamed into place so a failed save never
// leaves a half-written media file behind.
type FileSaver struct {
	dir string
	log *zap.Logger
}

// NewFileSaver creates a saver rooted at dir. A nil logger is replaced with a
// no-op one.
func NewFileSaver(dir string, logger *zap.Logger) *FileSaver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileSaver{dir: dir, log: logger}
}

// SaveFile decodes base64Data and writes it as filename inside the downloads
// directory. On any failure the temp file is removed and a single ErrSaveFailed
// is returned; nothing panics past this boundary.
func (fs *FileSaver) SaveFile(base64Data, filename, mimeType string) (*SavedFile, error) {
	data, err := base64.StdEncoding.DecodeString(base64Data)
	if err != nil {
		fs.log.Warn("payload decode failed", zap.Error(err))
		return nil, fmt.Errorf("%w: payload is not valid base64", ErrSaveFailed)
	}

	name := sanitizeFilename(filename)
	if filepath.Ext(name) == "" {
		name += extensionForMIME(mimeType)
	}

	if err := os.MkdirAll(fs.dir, DefaultDirPermissions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	finalPath := fs.uniquePath(name)
	tempPath := filepath.Join(fs.dir, "."+uuid.NewString()+TempSuffix)

	if err := os.WriteFile(tempPath, data, DefaultFilePermissions); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	if err := os.Rename(tempPath, finalPath); err != nil {
		os.Remove(tempPath)
		return nil, fmt.Errorf("%w: %v", ErrSaveFailed, err)
	}

	fs.log.Info("file saved",
		zap.String("path", finalPath),
		zap.Int("bytes", len(data)))

	return &SavedFile{
		Path: finalPath,
		Name: filepath.Base(finalPath),
		Size: int64(len(data)),
	}, nil
}

// uniquePath appends " (n)" before the extension until the name is free, so
// repeated downloads of the same clip never overwrite each other.
func (fs *FileSaver) uniquePath(name string) string {
	path := filepath.Join(fs.dir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	for i := 1; ; i++ {
		candidate := filepath.Join(fs.dir, fmt.Sprintf("%s (%d)%s", stem, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}

// sanitizeFilename strips any path components from the server-supplied name
// and caps its length. The backend cleans names too, but the name crosses a
// trust boundary and must not escape the downloads directory.
func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = DefaultFilename
	}
	name = strings.TrimLeft(name, ".")
	if name == "" {
		name = DefaultFilename
	}

	if len(name) > MaxFilenameLength {
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		keep := MaxFilenameLength - len(ext)
		if keep < 1 {
			keep = 1
		}
		if len(stem) > keep {
			stem = stem[:keep]
		}
		name = stem + ext
	}

	return name
}

// extensionForMIME maps the two MIME types the app produces to extensions.
func extensionForMIME(mimeType string) string {
	switch mimeType {
	case model.MIMEVideoMP4:
		return model.KindMP4.Ext()
	case model.MIMEAudioMPEG:
		return model.KindMP3.Ext()
	default:
		return ""
	}
}
