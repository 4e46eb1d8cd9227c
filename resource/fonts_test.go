// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package resource

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFont(t *testing.T) {
	fsys := newCountingFS(fstest.MapFS{
		"fonts/Go-Regular.ttf": {Data: goregular.TTF},
		"fonts/broken.ttf":     {Data: []byte("not a font")},
	})
	c := newTestCache(t, fsys)

	fi, err := c.Font("fonts/Go-Regular.ttf")
	require.NoError(t, err)
	assert.Equal(t, "fonts/Go-Regular.ttf", fi.Name)
	assert.Equal(t, "Go", fi.Family)
	assert.NotEmpty(t, fi.FullName)
	assert.Positive(t, fi.NumGlyphs)
	assert.Positive(t, fi.UnitsPerEm)
	assert.Len(t, fi.Data, len(goregular.TTF))

	again, err := c.Font("fonts/Go-Regular.ttf")
	require.NoError(t, err)
	assert.Same(t, fi, again)
	assert.Equal(t, 1, fsys.count("fonts/Go-Regular.ttf"))

	_, err = c.Font("fonts/broken.ttf")
	var lErr *LoadError
	require.ErrorAs(t, err, &lErr)
	assert.Equal(t, "parse", lErr.Op)

	_, err = c.Font("fonts/absent.ttf")
	assert.Error(t, err)
}
