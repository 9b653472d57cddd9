package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"Folder", Folder("guide"), KeyFolder, "guide"},
		{"Page", Page("setup"), KeyPage, "setup"},
		{"Path", Path("/tmp/x.md"), KeyPath, "/tmp/x.md"},
		{"Output", Output("/tmp/out"), KeyOutput, "/tmp/out"},
		{"Error", Error(errors.New("boom")), KeyError, "boom"},
		{"NilError", Error(nil), KeyError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Key drift would break log consumers.
			assert.Equal(t, tc.key, tc.attr.Key)
			assert.Equal(t, tc.want, tc.attr.Value.String())
		})
	}
}

func TestIntHelpers(t *testing.T) {
	assert.Equal(t, int64(3), Count(3).Value.Int64())
	assert.Equal(t, KeyCount, Count(3).Key)
	assert.Equal(t, int64(2), Heading(2).Value.Int64())
}
