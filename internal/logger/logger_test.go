package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		verbosity int
		wantLines int
	}{
		"info only":        {verbosity: 0, wantLines: 1},
		"pass outcomes":    {verbosity: 1, wantLines: 2},
		"column moves":     {verbosity: 2, wantLines: 3},
		"negative is info": {verbosity: -3, wantLines: 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			log, zl := New(&buf, tt.verbosity)
			log.Info("info")
			log.V(1).Info("v1")
			log.V(2).Info("v2")
			require.NoError(t, zl.Sync())

			lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestNewJSONKeys(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, _ := New(&buf, 0)
	log.Info("resolved layout", "required", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved layout", entry[MessageKey])
	assert.Contains(t, entry, TimeStampKey)
	assert.EqualValues(t, 42, entry["required"])
}

func TestIsIgnorableSyncError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err  error
		want bool
	}{
		"enotty":         {err: &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.ENOTTY}, want: true},
		"einval":         {err: syscall.EINVAL, want: true},
		"windows handle": {err: errors.New("sync: The handle is invalid."), want: true},
		"other":          {err: errors.New("disk full"), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isIgnorableSyncError(tt.err))
		})
	}
}
