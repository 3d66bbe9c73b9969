package bundle

import (
	"fmt"
	"os"
	"unicode/utf8"

	"go.uber.org/zap"
)

const fence = "```"

// FormatBlock wraps contents in a fence labeled with the language tag and path,
// followed by one blank line.
func FormatBlock(language, path, contents string) string {
	return fence + language + " " + path + "\n" + contents + "\n" + fence + "\n\n"
}

// ProcessSingleFile reads a file and formats it as a labeled block.
func ProcessSingleFile(path, language string, logger *zap.Logger) (FileContent, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Debug("Reading file content", zap.String("filePath", path))

	fileBytes, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("Failed to read file", zap.String("filePath", path), zap.Error(err))
		return FileContent{}, fmt.Errorf("%w: %w", ErrRead, err)
	}
	if !utf8.Valid(fileBytes) {
		logger.Debug("File is not valid UTF-8", zap.String("filePath", path))
		return FileContent{}, fmt.Errorf("%w: %s is not valid UTF-8 text", ErrRead, path)
	}

	logger.Debug("Successfully read file content",
		zap.String("filePath", path),
		zap.Int("contentSizeBytes", len(fileBytes)))

	return FileContent{
		Path:    path,
		Content: FormatBlock(language, path, string(fileBytes)),
	}, nil
}
