package services

import (
	"path/filepath"
	"strings"

	"github.com/omondi/shulehub/internal/app/models"
)

// categoryByExtension maps a lowercased file extension (without the dot)
// to its category label. Anything not listed classifies as document.
var categoryByExtension = map[string]models.FileCategory{
	"pdf": models.CategoryPDF,

	"doc":  models.CategoryDocument,
	"docx": models.CategoryDocument,
	"txt":  models.CategoryDocument,
	"rtf":  models.CategoryDocument,
	"odt":  models.CategoryDocument,

	"ppt":  models.CategoryPresentation,
	"pptx": models.CategoryPresentation,
	"odp":  models.CategoryPresentation,

	"xls":  models.CategorySpreadsheet,
	"xlsx": models.CategorySpreadsheet,
	"csv":  models.CategorySpreadsheet,
	"ods":  models.CategorySpreadsheet,

	"jpg":  models.CategoryImage,
	"jpeg": models.CategoryImage,
	"png":  models.CategoryImage,
	"gif":  models.CategoryImage,
	"webp": models.CategoryImage,
	"svg":  models.CategoryImage,

	"mp4": models.CategoryVideo,
	"avi": models.CategoryVideo,
	"mkv": models.CategoryVideo,
	"mov": models.CategoryVideo,
	"wmv": models.CategoryVideo,

	"mp3": models.CategoryAudio,
	"wav": models.CategoryAudio,
	"ogg": models.CategoryAudio,
	"m4a": models.CategoryAudio,

	"zip": models.CategoryArchive,
	"rar": models.CategoryArchive,
	"7z":  models.CategoryArchive,
	"tar": models.CategoryArchive,
	"gz":  models.CategoryArchive,
}

// ClassifyFile returns the category for a filename based on its
// lowercased extension. Unknown or missing extensions classify as
// document.
func ClassifyFile(name string) models.FileCategory {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if category, ok := categoryByExtension[ext]; ok {
		return category
	}
	return models.CategoryDocument
}

// DominantCategory returns the category with the highest occurrence
// count among the given files. On a tie the category encountered first
// in list order wins. An empty list classifies as document.
func DominantCategory(files []models.ResourceFile) models.FileCategory {
	counts := map[models.FileCategory]int{}
	order := []models.FileCategory{}
	for _, f := range files {
		if counts[f.Category] == 0 {
			order = append(order, f.Category)
		}
		counts[f.Category]++
	}

	best := models.CategoryDocument
	bestCount := 0
	for _, category := range order {
		if counts[category] > bestCount {
			best = category
			bestCount = counts[category]
		}
	}
	return best
}
