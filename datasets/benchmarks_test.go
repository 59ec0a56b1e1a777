// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeBenchmarkTree creates a miniature SRBenchmarks layout for the given
// dataset name, with numSamples images on HR and on each LR_bicubic scale dir.
func makeBenchmarkTree(t *testing.T, name string, numSamples int, scales ...int) (baseDir string) {
	t.Helper()
	baseDir = t.TempDir()
	datasetDir := path.Join(baseDir, "SRBenchmarks", "benchmark", name)
	for i := 0; i < numSamples; i++ {
		writePNG(t, path.Join(datasetDir, "HR", fmt.Sprintf("img%03d.png", i+1)), 12, 12)
		for _, scale := range scales {
			writePNG(t, path.Join(datasetDir, "LR_bicubic", fmt.Sprintf("X%d", scale),
				fmt.Sprintf("img%03dx%d.png", i+1, scale)), 12/scale, 12/scale)
		}
	}
	return
}

func TestSet5(t *testing.T) {
	baseDir := makeBenchmarkTree(t, "Set5", 5, 2, 3)
	ds, err := Set5(baseDir).Done()
	require.NoError(t, err)
	assert.Equal(t, "Set5", ds.Name())
	assert.Equal(t, SplitVal, ds.Split())
	assert.Equal(t, 5, ds.Len())
	assert.True(t, ds.HasHR())

	ds, err = Set5(baseDir).Scales(3).Done()
	require.NoError(t, err)
	assert.Equal(t, 5, ds.Len())
	paths, err := ds.SamplePaths(0)
	require.NoError(t, err)
	assert.Equal(t, path.Join(baseDir, "SRBenchmarks", "benchmark", "Set5", "LR_bicubic", "X3", "img001x3.png"), paths[1])
}

func TestBenchmarkLookupErrors(t *testing.T) {
	baseDir := path.Join(t.TempDir(), "nowhere")

	// Benchmarks only serve the "val" split.
	_, err := Set14(baseDir).Split(SplitTrain).Done()
	require.ErrorContains(t, err, `Set14: split "train" is not valid`)
	require.ErrorContains(t, err, "val")

	_, err = B100(baseDir).Scales(8).Done()
	require.ErrorContains(t, err, "does not include scale X8")

	_, err = Urban100(baseDir).Tracks(TrackUnknown).Done()
	require.ErrorContains(t, err, `Urban100: track "unknown" does not exist`)
}

func TestB100CountMismatch(t *testing.T) {
	baseDir := makeBenchmarkTree(t, "B100", 4, 2)
	// Drop one LR file by writing a tree with fewer LR images.
	datasetDir := path.Join(baseDir, "SRBenchmarks", "benchmark", "B100")
	require.NoError(t, os.Remove(path.Join(datasetDir, "LR_bicubic", "X2", "img004x2.png")))
	_, err := B100(baseDir).Done()
	require.ErrorContains(t, err, "does not match")
}
