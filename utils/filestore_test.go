package utils

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadPathPreservesExtension(t *testing.T) {
	path := UploadPath(ExerciseFolder, "homework.pdf")
	assert.Equal(t, ".pdf", filepath.Ext(path))
	assert.Equal(t, filepath.Join("uploads", "exercise"), filepath.Dir(path))
}

func TestUploadPathStemIsUniqueAndAnonymous(t *testing.T) {
	first := UploadPath(ProfilePicFolder, "me.png")
	second := UploadPath(ProfilePicFolder, "me.png")

	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "me")

	stem := strings.TrimSuffix(filepath.Base(first), ".png")
	_, err := uuid.Parse(stem)
	require.NoError(t, err, "stem should be a generated uuid")
}

func TestUploadPathWithoutExtension(t *testing.T) {
	path := UploadPath(ProjectFolder, "Makefile")
	assert.Equal(t, "", filepath.Ext(path))
}
