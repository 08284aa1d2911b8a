package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCommentRequest_Valid(t *testing.T) {
	req := CreateCommentRequest{
		AuthorName: "Иван",
		Content:    "Содержательный комментарий",
	}

	ve := req.Validate()
	assert.Nil(t, ve)
}

func TestCreateCommentRequest_AuthorBounds(t *testing.T) {
	tests := []struct {
		name    string
		author  string
		wantErr bool
	}{
		{"1 символ", "И", true},
		{"2 символа", "Ия", false},
		{"100 символов", strings.Repeat("н", 100), false},
		{"101 символ", strings.Repeat("н", 101), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateCommentRequest{AuthorName: tt.author, Content: "Нормальный комментарий"}
			ve := req.Validate()
			if tt.wantErr {
				require.NotNil(t, ve)
				assert.Contains(t, ve, "author_name")
			} else {
				assert.Nil(t, ve)
			}
		})
	}
}

func TestCreateCommentRequest_ContentBounds(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"4 символа", "абвг", true},
		{"5 символов", "абвгд", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreateCommentRequest{AuthorName: "Иван", Content: tt.content}
			ve := req.Validate()
			if tt.wantErr {
				require.NotNil(t, ve)
				assert.Contains(t, ve, "content")
			} else {
				assert.Nil(t, ve)
			}
		})
	}
}

func TestCreateCommentRequest_WhitespaceOnly(t *testing.T) {
	req := CreateCommentRequest{AuthorName: "   ", Content: "\t\n"}

	ve := req.Validate()
	require.NotNil(t, ve)
	assert.Equal(t, []string{"This field is required."}, ve["author_name"])
	assert.Equal(t, []string{"This field is required."}, ve["content"])
}

func TestCreateCommentRequest_TrimsFields(t *testing.T) {
	req := CreateCommentRequest{
		AuthorName: "  Иван Петров  ",
		Content:    "  Отличная статья!  ",
	}

	ve := req.Validate()
	require.Nil(t, ve)
	assert.Equal(t, "Иван Петров", req.AuthorName)
	assert.Equal(t, "Отличная статья!", req.Content)
}
