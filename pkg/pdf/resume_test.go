package pdf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-jobboard-backend/pkg/pdf"
)

func TestSplitSkills(t *testing.T) {
	t.Run("trims and drops empty entries", func(t *testing.T) {
		skills := pdf.SplitSkills(" Go , SQL,, Docker ,")
		assert.Equal(t, []string{"Go", "SQL", "Docker"}, skills)
	})

	t.Run("empty field renders no chips", func(t *testing.T) {
		assert.Nil(t, pdf.SplitSkills(""))
		assert.Nil(t, pdf.SplitSkills("  ,  , "))
	})
}
