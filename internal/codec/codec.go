package codec

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Codec reads and writes documents in one serialization format
type Codec interface {
	Decode(r io.Reader, v any) error
	Encode(w io.Writer, v any) error
	Format() string
}

// ForPath picks a codec from the file extension. JSON is the default for
// unknown extensions.
func ForPath(path string) Codec {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return NewYAMLCodec()
	default:
		return NewJSONCodec()
	}
}

// DecodeFile opens path and decodes it with the codec its extension names
func DecodeFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if err := ForPath(path).Decode(f, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// EncodeFile writes v to path in the format its extension names, creating
// parent directories as needed
func EncodeFile(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := ForPath(path).Encode(f, v); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
