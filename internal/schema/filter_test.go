package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nocoverse/nocodb-go/internal/types"
)

func TestSanitizeColumn_DropsSystemColumns(t *testing.T) {
	for _, name := range []string{"updated_at", "created_at", "created_by", "updated_by", "nc_order"} {
		_, ok := SanitizeColumn(types.Column{Title: name, ColumnName: name, UIDT: "DateTime"})
		assert.False(t, ok, "system column %q should be dropped", name)
	}
}

func TestSanitizeColumn_DropsRelationalTypes(t *testing.T) {
	for _, uidt := range []string{"LinkToAnotherRecord", "Links", "ForeignKey"} {
		_, ok := SanitizeColumn(types.Column{Title: "Rel", ColumnName: "rel", UIDT: uidt})
		assert.False(t, ok, "relational uidt %q should be dropped", uidt)
	}
}

func TestSanitizeColumn_StripsServerIdentity(t *testing.T) {
	clean, ok := SanitizeColumn(types.Column{
		ID:         "col_abc",
		TableID:    "tbl_xyz",
		Title:      "Name",
		ColumnName: "name",
		UIDT:       "SingleLineText",
		Required:   true,
	})
	assert.True(t, ok)
	assert.Empty(t, clean.ID)
	assert.Empty(t, clean.TableID)
	assert.Equal(t, "Name", clean.Title)
	assert.True(t, clean.Required)
}

func TestSanitizeTables(t *testing.T) {
	in := []types.Table{
		{
			ID:        "tbl_1",
			Title:     "Projects",
			TableName: "projects",
			Columns: []types.Column{
				{Title: "Name", ColumnName: "name", UIDT: "SingleLineText"},
				{Title: "created_at", ColumnName: "created_at", UIDT: "CreateTime"},
				{Title: "Tasks", ColumnName: "tasks", UIDT: "Links"},
			},
		},
		{ID: "tbl_2"}, // untitled, skipped
	}
	out := SanitizeTables(in)
	assert.Len(t, out, 1)
	assert.Equal(t, "Projects", out[0].Title)
	assert.Len(t, out[0].Columns, 1)
	assert.Equal(t, "Name", out[0].Columns[0].Title)
}

func TestValidUIDT(t *testing.T) {
	assert.True(t, ValidUIDT("SingleLineText"))
	assert.True(t, ValidUIDT("JSON"))
	assert.False(t, ValidUIDT("HoloDeck"))
}
