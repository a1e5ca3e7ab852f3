package core

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = errors.New("sentinel")

func TestWrapErrorKeepsChain(t *testing.T) {
	err := WrapError(errSentinel, EINVALID, "token %q", "0xZZ")
	assert.True(t, errors.Is(err, errSentinel))
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, `token "0xZZ"`, UserMessage(err))
	//
	outer := fmt.Errorf("context: %w", err)
	assert.Equal(t, EINVALID, Code(outer))
	assert.True(t, errors.Is(outer, errSentinel))
}

func TestCodeOfPlainErrors(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, "internal error", UserMessage(errors.New("plain")))
}

func TestErrorWithCodeWrapsNil(t *testing.T) {
	err := ErrorWithCode(nil, ELIMIT)
	assert.Equal(t, ELIMIT, Code(err))
	assert.Equal(t, "limit exceeded", UserMessage(err))
}

func TestFprintUserError(t *testing.T) {
	var buf bytes.Buffer
	FprintUserError(&buf, Error(EMISSING, "font %s not found", "Clarendon"))
	assert.Equal(t, "[122] font Clarendon not found\n", buf.String())
	buf.Reset()
	FprintUserError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}
