package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCollectionIDs(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr error
	}{
		{"single id", "id123", []string{"id123"}, nil},
		{"comma separated", "id1,id2,id3", []string{"id1", "id2", "id3"}, nil},
		{"spaces around commas", "  id1 ,  id2,id3  ", []string{"id1", "id2", "id3"}, nil},
		{"no comma keeps spaces", "only one id with spaces", []string{"only one id with spaces"}, nil},
		{"empty", "", nil, ErrEmptyIDs},
		{"blank", " \t\n ", nil, ErrEmptyIDs},
		{"mixed separators", "id1,id2 id3", nil, ErrMixedSeparators},
		{"trailing comma", "id1,id2,", nil, ErrEmptyIDValue},
		{"double comma", "id1,,id2", nil, ErrEmptyIDValue},
		{"lone comma", ",", nil, ErrEmptyIDValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCollectionIDs(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCollectionIDsEmptyValueBeforeMixed(t *testing.T) {
	_, err := ValidateCollectionIDs("id1 id2,,id3")
	assert.ErrorIs(t, err, ErrEmptyIDValue)
}

func TestValidateCollectionIDList(t *testing.T) {
	tests := []struct {
		name    string
		inputs  []string
		want    []string
		wantErr error
	}{
		{"single id", []string{"id123"}, []string{"id123"}, nil},
		{"separate args", []string{"id1", "id2", "id3"}, []string{"id1", "id2", "id3"}, nil},
		{"comma separated arg", []string{"id1,id2,id3"}, []string{"id1", "id2", "id3"}, nil},
		{"several lists", []string{"id1,id2", "id3,id4"}, []string{"id1", "id2", "id3", "id4"}, nil},
		{"whitespace", []string{"  id1  ", "  id2  ,  id3  "}, []string{"id1", "id2", "id3"}, nil},
		{"blank args dropped", []string{"id1", "", "id2", "  ", "id3"}, []string{"id1", "id2", "id3"}, nil},
		{"nil", nil, nil, ErrMissingIDs},
		{"empty list", []string{}, nil, ErrMissingIDs},
		{"all blank", []string{"", "  ", "\t", "\n"}, nil, ErrEmptyIDs},
		{"mixed inside arg", []string{"id1", "id2,id3 id4"}, nil, ErrMixedSeparators},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateCollectionIDList(tt.inputs)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
