package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== REQUEST ID ====================

func GenerateRequestID() string {
	return uuid.New().String()
}

// ==================== UPLOADS ====================

// GenerateUploadName prefixes the base of the client file name with unix millis.
// Path components are dropped so the result always stays inside the upload dir.
func GenerateUploadName(original string, now time.Time) string {
	base := filepath.Base(strings.ReplaceAll(original, "\\", "/"))
	if base == "." || base == "/" || base == ".." {
		base = "logo"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), base)
}

// WithUniqueSuffix inserts a short random tag before the extension, for when
// GenerateUploadName collides with a stored file.
func WithUniqueSuffix(name string) string {
	ext := filepath.Ext(name)
	tag := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return strings.TrimSuffix(name, ext) + "-" + tag + ext
}
