package report

import (
	"encoding/json"
	"io"

	"github.com/torevar5544/FileMarsh/internal/domain"
)

type jsonOverview struct {
	TotalFiles         int    `json:"total_files"`
	TotalSize          int64  `json:"total_size"`
	TotalSizeFormatted string `json:"total_size_formatted"`
	RootPath           string `json:"root_path"`
	ErrorCount         int    `json:"error_count"`
}

type jsonBucket struct {
	Count              int     `json:"count"`
	TotalSize          int64   `json:"total_size"`
	TotalSizeFormatted string  `json:"total_size_formatted"`
	Percentage         float64 `json:"percentage"`
}

type jsonLargestFile struct {
	Name          string `json:"name"`
	Size          int64  `json:"size"`
	SizeFormatted string `json:"size_formatted"`
	Type          string `json:"type"`
	Extension     string `json:"extension"`
	Path          string `json:"path"`
}

type jsonReport struct {
	Overview     *jsonOverview         `json:"overview,omitempty"`
	FileTypes    map[string]jsonBucket `json:"file_types,omitempty"`
	Extensions   map[string]jsonBucket `json:"extensions,omitempty"`
	LargestFiles []jsonLargestFile     `json:"largest_files,omitempty"`
}

// WriteJSON serializes the report as one object whose top-level keys match
// the selected sections. The empty extension serializes under the
// "no_extension" key.
func (r *Report) WriteJSON(w io.Writer) error {
	var out jsonReport

	if r.Sections.Overview {
		out.Overview = &jsonOverview{
			TotalFiles:         r.Overview.TotalFiles,
			TotalSize:          r.Overview.TotalSize,
			TotalSizeFormatted: domain.FormatSize(r.Overview.TotalSize),
			RootPath:           r.Overview.RootPath,
			ErrorCount:         r.Overview.ErrorCount,
		}
	}

	if r.Sections.Types {
		out.FileTypes = make(map[string]jsonBucket, len(r.Types))
		for _, row := range r.Types {
			out.FileTypes[row.Key] = toJSONBucket(row)
		}
	}

	if r.Sections.Extensions {
		out.Extensions = make(map[string]jsonBucket, len(r.Extensions))
		for _, row := range r.Extensions {
			key := row.Key
			if key == "" {
				key = "no_extension"
			}
			out.Extensions[key] = toJSONBucket(row)
		}
	}

	if r.Sections.Largest {
		out.LargestFiles = make([]jsonLargestFile, 0, len(r.Largest))
		for _, record := range r.Largest {
			out.LargestFiles = append(out.LargestFiles, jsonLargestFile{
				Name:          record.Name,
				Size:          record.Size,
				SizeFormatted: domain.FormatSize(record.Size),
				Type:          string(record.Category),
				Extension:     record.Extension,
				Path:          record.Path,
			})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

func toJSONBucket(row BucketRow) jsonBucket {
	return jsonBucket{
		Count:              row.Count,
		TotalSize:          row.TotalSize,
		TotalSizeFormatted: domain.FormatSize(row.TotalSize),
		Percentage:         row.Percentage,
	}
}
