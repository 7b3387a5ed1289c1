package iofs

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/root31/nursery/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	originalErr := errors.New("root cause")

	tests := []struct {
		name string
		err  error
		code gn.ErrorCode
		path string
		text string
	}{
		{
			name: "CreateDirError",
			err:  CreateDirError("/test/dir", originalErr),
			code: errcode.CreateDirError,
			path: "/test/dir",
			text: "cannot create",
		},
		{
			name: "CopyFileError",
			err:  CopyFileError("/test/config.yaml", originalErr),
			code: errcode.CopyFileError,
			path: "/test/config.yaml",
			text: "cannot copy",
		},
		{
			name: "ReadFileError",
			err:  ReadFileError("/test/data.json", originalErr),
			code: errcode.ReadFileError,
			path: "/test/data.json",
			text: "cannot read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gnErr, ok := tt.err.(*gn.Error)
			require.True(t, ok, "Error should be of type *gn.Error")

			assert.Equal(t, tt.code, gnErr.Code)
			assert.Contains(t, gnErr.Msg, "<em>%s</em>")
			require.Len(t, gnErr.Vars, 1)
			assert.Equal(t, tt.path, gnErr.Vars[0])

			assert.ErrorIs(t, gnErr.Err, originalErr)
			assert.Contains(t, gnErr.Err.Error(), "from")
			assert.Contains(t, gnErr.Err.Error(), tt.text)
		})
	}
}
