// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"io"
	"sync"

	"github.com/gomlx/gomlx/ml/train"
	"github.com/gomlx/gomlx/types/tensors"
	timage "github.com/gomlx/gomlx/types/tensors/images"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// Dataset wraps a Folder as a train.Dataset, yielding one sample per Yield
// call: the LR images as inputs and the HR image as label, converted to
// tensors shaped [height, width, 3]. For splits without HR data the label
// slice is empty.
//
// Super-resolution images don't share dimensions, so no batching is done
// here: apply a Transform producing fixed-size aligned crops before batching,
// and wrap with data.CustomParallel to parallelize the loading.
type Dataset struct {
	folder   *Folder
	name     string
	toTensor *timage.ToTensorConfig

	mu   sync.Mutex
	next int
}

// Compile-time check that Dataset is a train.Dataset.
var _ train.Dataset = (*Dataset)(nil)

// Dataset wraps the Folder for use with a train.Loop. One epoch yields each
// sample once, in order, then io.EOF until Reset is called.
func (f *Folder) Dataset(name string, dtype dtypes.DType) *Dataset {
	return &Dataset{
		folder:   f,
		name:     name,
		toTensor: timage.ToTensor(dtype),
	}
}

// Name implements train.Dataset.
func (ds *Dataset) Name() string { return ds.name }

// Folder returns the wrapped Folder.
func (ds *Dataset) Folder() *Folder { return ds.folder }

// nextIndex returns the next sample index and increments it.
// Concurrency safe. Returns -1 once the epoch is exhausted.
func (ds *Dataset) nextIndex() int {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.next >= ds.folder.Len() {
		return -1
	}
	index := ds.next
	ds.next++
	return index
}

// Yield implements train.Dataset. It returns `ds` as spec, the LR tensors as
// inputs (one per requested scale, in request order) and the HR tensor as the
// only label, when the split has HR data.
func (ds *Dataset) Yield() (spec any, inputs, labels []*tensors.Tensor, err error) {
	spec = ds
	index := ds.nextIndex()
	if index < 0 {
		err = io.EOF
		return
	}
	images, err := ds.folder.At(index)
	if err != nil {
		err = errors.WithMessagef(err, "dataset %q failed to read sample #%d", ds.name, index)
		return
	}
	converted := make([]*tensors.Tensor, len(images))
	for i, img := range images {
		converted[i] = ds.toTensor.Single(img)
	}
	if ds.folder.HasHR() {
		labels = converted[:1]
		inputs = converted[1:]
	} else {
		inputs = converted
	}
	return
}

// Reset implements train.Dataset, restarting the epoch.
func (ds *Dataset) Reset() {
	ds.mu.Lock()
	ds.next = 0
	ds.mu.Unlock()
}
