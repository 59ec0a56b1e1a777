// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"fmt"
	"io"
	"path"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetYield(t *testing.T) {
	baseDir := makeDiv2KTree(t, 3, map[string]int{"DIV2K_train_LR_bicubic/X2": 3})
	folder, err := Div2K(baseDir).Done()
	require.NoError(t, err)
	ds := folder.Dataset("div2k-train", dtypes.Float32)
	assert.Equal(t, "div2k-train", ds.Name())
	assert.Same(t, folder, ds.Folder())

	for i := 0; i < folder.Len(); i++ {
		spec, inputs, labels, err := ds.Yield()
		require.NoError(t, err)
		assert.Same(t, ds, spec)
		require.Len(t, inputs, 1)
		require.Len(t, labels, 1)
		// HR is 8x8, the X2 LR 4x4, both RGB.
		labels[0].Shape().AssertDims(8, 8, 3)
		inputs[0].Shape().AssertDims(4, 4, 3)
	}

	_, _, _, err = ds.Yield()
	require.ErrorIs(t, err, io.EOF)
	_, _, _, err = ds.Yield()
	require.ErrorIs(t, err, io.EOF)

	ds.Reset()
	_, inputs, _, err := ds.Yield()
	require.NoError(t, err)
	require.Len(t, inputs, 1)
}

func TestDatasetYieldWithoutHR(t *testing.T) {
	baseDir := t.TempDir()
	root := path.Join(baseDir, "DIV2K")
	for i := 0; i < 2; i++ {
		writePNG(t, path.Join(root, "DIV2K_test_LR_bicubic", "X2", fmt.Sprintf("%04dx.png", i+1)), 4, 4)
	}
	folder, err := Div2K(baseDir).Split(SplitTest).Done()
	require.NoError(t, err)

	ds := folder.Dataset("div2k-test", dtypes.Float32)
	_, inputs, labels, err := ds.Yield()
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Empty(t, labels)
	inputs[0].Shape().AssertDims(4, 4, 3)
}
