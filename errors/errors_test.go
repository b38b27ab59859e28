package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidPath, "empty path")

	require.Equal(t, CodeInvalidPath, err.Code())
	require.Equal(t, "empty path", err.Message())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Nil(t, err.Unwrap())
	require.Nil(t, err.Context())
	require.Equal(t, "[INVALID_PATH] empty path", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "max recursion must be non-negative, got %d", -1)
	require.Equal(t, "max recursion must be non-negative, got -1", err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := Wrap(cause, CodeIO, "Failed stat()ing path '/root/x'")

	require.NotNil(t, err)
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[IO_ERROR] Failed stat()ing path '/root/x': permission denied", err.Error())
}

func TestWrap_NilError(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeIO, "test"))
	require.Nil(t, Wrapf(nil, CodeIO, "test %s", "arg"))
	require.Nil(t, WrapWithContext(nil, CodeIO, "test", nil))
}

func TestWrap_PreservesClassification(t *testing.T) {
	transient := WithClassification(New(CodeIO, "busy"), ClassificationRetryable)
	wrapped := Wrap(transient, CodeIO, "Failed renaming")

	require.True(t, wrapped.Classification().IsRetryable())
	require.True(t, IsRetryable(wrapped))
}

func TestWrap_IsSeesNativeCause(t *testing.T) {
	err := Wrapf(fs.ErrNotExist, CodeNotFound, "Directory does not exist: '%s'", "/tmp/missing")

	require.True(t, Is(err, fs.ErrNotExist))
	require.True(t, HasCode(err, CodeNotFound))
	require.False(t, HasCode(nil, CodeNotFound))
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "/a"}
	err := WrapWithContext(stderrors.New("boom"), CodeIO, "failed", ctx)
	ctx["path"] = "/b"

	require.Equal(t, "/a", err.Context()["path"])
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "standard error", err: stderrors.New("x"), want: CodeUnknown},
		{name: "platform error", err: New(CodeNotFound, "x"), want: CodeNotFound},
		{name: "outermost wins", err: Wrap(New(CodeIO, "inner"), CodeInvalidPath, "outer"), want: CodeInvalidPath},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestGetClassification_Defaults(t *testing.T) {
	require.Equal(t, ClassificationPermanent, GetClassification(nil))
	require.Equal(t, ClassificationPermanent, GetClassification(stderrors.New("x")))
	require.Equal(t, ClassificationPermanent, getDefaultClassification(ErrorCode("SOMETHING_NEW")))
	require.False(t, IsRetryable(New(CodeIO, "x")))
}

func TestWithContext(t *testing.T) {
	err := WithContext(New(CodeIO, "failed"), "op", "rename")
	err = WithContext(err, "src", "/a")

	require.Equal(t, map[string]interface{}{"op": "rename", "src": "/a"}, err.Context())
	require.Equal(t, CodeIO, err.Code())
}

func TestWithContext_StandardError(t *testing.T) {
	cause := stderrors.New("plain")
	err := WithContext(cause, "path", "/x")

	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "/x", err.Context()["path"])
}

func TestWithContextMap_Overrides(t *testing.T) {
	err := WithContextMap(New(CodeIO, "x"), map[string]interface{}{"path": "/a", "op": "stat"})
	err = WithContextMap(err, map[string]interface{}{"path": "/b"})

	require.Equal(t, "/b", err.Context()["path"])
	require.Equal(t, "stat", err.Context()["op"])
}

func TestWithClassification(t *testing.T) {
	cause := stderrors.New("resource busy")
	err := WithClassification(Wrap(cause, CodeIO, "Failed renaming"), ClassificationRetryable)

	require.True(t, err.Classification().IsRetryable())
	require.Equal(t, CodeIO, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestContext_IsCopy(t *testing.T) {
	err := WithContext(New(CodeIO, "x"), "path", "/a")
	ctx := err.Context()
	ctx["path"] = "/mutated"

	require.Equal(t, "/a", err.Context()["path"])
}

func TestDefaultClassifications_CoverProducedCodes(t *testing.T) {
	codes := []ErrorCode{
		CodeInvalidPath, CodeIO, CodeNotFound, CodeClosed,
		CodeInvalidInput, CodeInvalidConfig, CodeInternal, CodeUnknown,
	}
	require.Len(t, defaultClassifications, len(codes))
	for _, c := range codes {
		require.Contains(t, defaultClassifications, c)
	}
}
