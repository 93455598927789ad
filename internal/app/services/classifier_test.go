package services

import (
	"testing"

	"github.com/omondi/shulehub/internal/app/models"
	"github.com/stretchr/testify/assert"
)

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     models.FileCategory
	}{
		{"pdf lowercase", "report.pdf", models.CategoryPDF},
		{"pdf uppercase extension", "report.PDF", models.CategoryPDF},
		{"word document", "essay.docx", models.CategoryDocument},
		{"presentation", "slides.pptx", models.CategoryPresentation},
		{"spreadsheet", "marks.xlsx", models.CategorySpreadsheet},
		{"image", "photo.JPG", models.CategoryImage},
		{"video", "lesson.mp4", models.CategoryVideo},
		{"audio", "anthem.mp3", models.CategoryAudio},
		{"archive", "term-papers.zip", models.CategoryArchive},
		{"no extension defaults to document", "notes", models.CategoryDocument},
		{"unknown extension defaults to document", "data.xyz", models.CategoryDocument},
		{"dotfile", ".gitignore", models.CategoryDocument},
		{"nested dots", "term.1.report.pdf", models.CategoryPDF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFile(tt.filename))
		})
	}
}

func TestClassifyFileIsDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, models.CategoryPDF, ClassifyFile("report.PDF"))
	}
}

func TestDominantCategory(t *testing.T) {
	file := func(category models.FileCategory) models.ResourceFile {
		return models.ResourceFile{Category: category}
	}

	t.Run("clear majority", func(t *testing.T) {
		files := []models.ResourceFile{
			file(models.CategoryImage),
			file(models.CategoryPDF),
			file(models.CategoryImage),
		}
		assert.Equal(t, models.CategoryImage, DominantCategory(files))
	})

	t.Run("tie resolves to first seen", func(t *testing.T) {
		files := []models.ResourceFile{
			file(models.CategoryPDF),
			file(models.CategoryImage),
			file(models.CategoryPDF),
			file(models.CategoryImage),
		}
		assert.Equal(t, models.CategoryPDF, DominantCategory(files))
	})

	t.Run("tie in reverse order resolves the other way", func(t *testing.T) {
		files := []models.ResourceFile{
			file(models.CategoryImage),
			file(models.CategoryPDF),
			file(models.CategoryImage),
			file(models.CategoryPDF),
		}
		assert.Equal(t, models.CategoryImage, DominantCategory(files))
	})

	t.Run("empty list defaults to document", func(t *testing.T) {
		assert.Equal(t, models.CategoryDocument, DominantCategory(nil))
	})

	t.Run("single file", func(t *testing.T) {
		assert.Equal(t, models.CategoryVideo, DominantCategory([]models.ResourceFile{file(models.CategoryVideo)}))
	})
}
