package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// Category is one of the seven fixed buckets a file can be classified into.
type Category string

const (
	Images      Category = "images"
	Videos      Category = "videos"
	Audio       Category = "audio"
	Documents   Category = "documents"
	Archives    Category = "archives"
	Executables Category = "executables"
	Unknown     Category = "unknown"
)

// Categories lists every category in classification order, Unknown last.
var Categories = []Category{Images, Videos, Audio, Documents, Archives, Executables, Unknown}

// Title returns the category name with a capitalized first letter.
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type categoryRule struct {
	category     Category
	mimePrefixes []string
	extensions   map[string]bool
}

// categoryRules is evaluated in order; the first matching rule wins.
// The order is significant for extensions listed under more than one
// category (.jar belongs to archives, not executables).
var categoryRules = []categoryRule{
	{
		category:     Images,
		mimePrefixes: []string{"image/"},
		extensions: extSet(".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".tif",
			".webp", ".svg", ".ico", ".raw", ".cr2", ".nef", ".arw"),
	},
	{
		category:     Videos,
		mimePrefixes: []string{"video/"},
		extensions: extSet(".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
			".m4v", ".mpg", ".mpeg", ".3gp", ".ts", ".vob"),
	},
	{
		category:     Audio,
		mimePrefixes: []string{"audio/"},
		extensions: extSet(".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma", ".m4a",
			".opus", ".aiff", ".au", ".ra"),
	},
	{
		category: Documents,
		mimePrefixes: []string{"text/", "application/pdf", "application/msword",
			"application/vnd.openxmlformats-officedocument"},
		extensions: extSet(".pdf", ".doc", ".docx", ".txt", ".rtf", ".odt", ".xls",
			".xlsx", ".ppt", ".pptx", ".odp", ".ods", ".csv", ".md",
			".html", ".htm", ".xml", ".json", ".yaml", ".yml"),
	},
	{
		category:     Archives,
		mimePrefixes: []string{"application/zip", "application/x-rar", "application/x-tar"},
		extensions: extSet(".zip", ".rar", ".7z", ".tar", ".gz", ".bz2", ".xz",
			".jar", ".war", ".ear"),
	},
	{
		category:     Executables,
		mimePrefixes: []string{"application/x-executable", "application/x-msdownload"},
		extensions: extSet(".exe", ".msi", ".deb", ".rpm", ".dmg", ".pkg", ".app",
			".run", ".bin", ".jar"),
	},
}

func extSet(exts ...string) map[string]bool {
	set := make(map[string]bool, len(exts))
	for _, ext := range exts {
		set[ext] = true
	}
	return set
}

// Classify maps a file path to its category. It is total: any path that
// matches no rule is Unknown, and a failed MIME lookup only disables the
// MIME check, never the extension check.
func Classify(path string) Category {
	ext := strings.ToLower(filepath.Ext(path))
	mimeType := GuessMIMEType(path)

	for _, rule := range categoryRules {
		if mimeType != "" {
			for _, prefix := range rule.mimePrefixes {
				if strings.HasPrefix(mimeType, prefix) {
					return rule.category
				}
			}
		}
		if rule.extensions[ext] {
			return rule.category
		}
	}
	return Unknown
}

// GuessMIMEType returns the MIME type implied by the path's extension,
// or "" when none is known. It never fails.
func GuessMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	mimeType := mime.TypeByExtension(ext)
	if mimeType == "" {
		return ""
	}
	// Strip parameters such as "; charset=utf-8" so prefix checks see
	// only the media type.
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	return mimeType
}
