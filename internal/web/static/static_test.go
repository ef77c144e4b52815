package static

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Assets(t *testing.T) {
	for _, name := range []string{"styles.css", "js/app.js"} {
		_, err := fs.Stat(FS, name)
		assert.NoError(t, err, name)
	}
}

func TestAppJS_ResetsBusyButtonOnRestore(t *testing.T) {
	js, err := fs.ReadFile(FS, "js/app.js")
	require.NoError(t, err)

	src := string(js)
	assert.Contains(t, src, `addEventListener("pageshow"`)
	assert.Contains(t, src, "event.persisted")
	assert.Contains(t, src, "button.disabled = false")
	assert.Contains(t, src, `classList.remove("is-busy")`)
}
