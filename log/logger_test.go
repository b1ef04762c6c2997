package log

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

// TestParseLevel tests parsing the level names.
func TestParseLevel(t *testing.T) {
	assert.Equal(t, LDEBUG3, ParseLevel("debug3"))
	assert.Equal(t, LDEBUG2, ParseLevel("DEBUG2"))
	assert.Equal(t, LINFO, ParseLevel("info"))
	assert.Equal(t, LWARNING, ParseLevel("warn"))
	assert.Equal(t, LCRITICAL, ParseLevel("critical"))
	assert.Equal(t, LUNKNOWN, ParseLevel("verbose"))
}

// TestSetLevel tests setting the package level.
func TestSetLevel(t *testing.T) {
	defer func() {
		logger = nil
		currentLevel = LINFO
	}()

	err := SetLevel(LUNKNOWN)
	require.Error(t, err)
	assert.True(t, errors.IsClass(err, class.CommonLoggerUnknownLevel))

	var buf bytes.Buffer
	New(&buf, "", 0)
	require.NoError(t, SetLevel(LDEBUG))
	assert.Equal(t, LDEBUG, Level())

	Debugf("debug message: %d", 1)
	assert.Contains(t, buf.String(), "debug message: 1")

	require.NoError(t, SetLevel(LERROR))
	buf.Reset()
	Infof("info message")
	assert.Empty(t, buf.String())
}

// TestModuleLogger tests the module logger.
func TestModuleLogger(t *testing.T) {
	defer func() {
		logger = nil
		currentLevel = LINFO
	}()
	var buf bytes.Buffer
	New(&buf, "", 0)
	require.NoError(t, SetLevel(LDEBUG))

	m := NewModuleLogger("testing")
	m.Debugf("message %s", "first")
	assert.Contains(t, buf.String(), "[testing] message first")

	buf.Reset()
	m.SetLevel(LERROR)
	m.Infof("not written")
	assert.Empty(t, buf.String())

	m.Errorf("written")
	assert.Contains(t, buf.String(), "[testing] written")
}
