package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToJSON_Nil(t *testing.T) {
	require.Nil(t, ToJSON(nil))
}

func TestToJSON_PlatformError(t *testing.T) {
	err := Wrap(stderrors.New("no such file or directory"), CodeNotFound, "File does not exist: '/tmp/x'")
	err = WithContext(err, "path", "/tmp/x")

	resp := ToJSON(err)
	require.Equal(t, "NOT_FOUND", resp.Code)
	require.Equal(t, "File does not exist: '/tmp/x'", resp.Message)
	require.Equal(t, "no such file or directory", resp.Cause)
	require.Equal(t, "PERMANENT", resp.Classification)
	require.Equal(t, "/tmp/x", resp.Context["path"])
}

func TestToJSON_StandardError(t *testing.T) {
	resp := ToJSON(stderrors.New("plain"))
	require.Equal(t, "UNKNOWN", resp.Code)
	require.Equal(t, "plain", resp.Message)
	require.Empty(t, resp.Cause)
}

func TestMarshalJSON(t *testing.T) {
	err := New(CodeInvalidPath, "empty path")

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{"code":"INVALID_PATH","message":"empty path","classification":"PERMANENT"}`, string(data))
}
