package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionListValueAndScan(t *testing.T) {
	sections := SectionList{
		{SectionName: "hero", Content: "Welcome", ImageURL: "/img/hero.jpg", ImageAlt: "Farm"},
		{SectionName: "cta", Content: "Contact us"},
	}

	value, err := sections.Value()
	require.NoError(t, err)

	var scanned SectionList
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, sections, scanned)
}

func TestSectionListValueNil(t *testing.T) {
	var sections SectionList
	value, err := sections.Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestSectionListScan(t *testing.T) {
	t.Run("nil column scans to empty list", func(t *testing.T) {
		var sections SectionList
		require.NoError(t, sections.Scan(nil))
		assert.Empty(t, sections)
		assert.NotNil(t, sections)
	})

	t.Run("string source", func(t *testing.T) {
		var sections SectionList
		require.NoError(t, sections.Scan(`[{"sectionName":"hero","content":"","imageUrl":"","imageAlt":""}]`))
		require.Len(t, sections, 1)
		assert.Equal(t, "hero", sections[0].SectionName)
	})

	t.Run("unsupported source type", func(t *testing.T) {
		var sections SectionList
		assert.Error(t, sections.Scan(42))
	})
}

func TestCreatePageContentRequestValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := &CreatePageContentRequest{
			PageName: " about ",
			Sections: SectionList{{SectionName: "intro"}},
		}
		page, err := req.Validate()
		require.NoError(t, err)
		assert.Equal(t, "about", page.PageName)
		assert.Len(t, page.Sections, 1)
	})

	t.Run("empty sections array allowed", func(t *testing.T) {
		req := &CreatePageContentRequest{PageName: "contact", Sections: SectionList{}}
		_, err := req.Validate()
		assert.NoError(t, err)
	})

	t.Run("missing page name", func(t *testing.T) {
		req := &CreatePageContentRequest{Sections: SectionList{}}
		_, err := req.Validate()
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("missing sections", func(t *testing.T) {
		req := &CreatePageContentRequest{PageName: "home"}
		_, err := req.Validate()
		require.Error(t, err)
	})
}

func TestUpdatePageContentRequestValidate(t *testing.T) {
	fields, err := (&UpdatePageContentRequest{Sections: SectionList{{SectionName: "hero"}}}).Validate()
	require.NoError(t, err)
	assert.Contains(t, fields, "sections")

	_, err = (&UpdatePageContentRequest{}).Validate()
	assert.Error(t, err)
}
