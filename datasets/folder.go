// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

// Package datasets provides super-resolution datasets that pair
// high-resolution (HR) images with their downscaled low-resolution (LR)
// counterparts: DIV2K and the EDSR benchmarks Set5, Set14, B100 and Urban100.
//
// Each dataset is served from a directory tree laid out by the upstream
// archives; the adapters locate the per-track subdirectories, verify that the
// file counts match across tracks, and give indexed access to aligned
// (HR, LR...) image tuples.
//
// Usage example:
//
//	ds, err := datasets.Div2K("~/data").Scales(2).Tracks(datasets.TrackBicubic).
//		Split(datasets.SplitTrain).Download().Done()
//	if err != nil { ... }
//	images, err := ds.At(0) // images[0] is HR, images[1] its X2 bicubic LR.
//
// To train with GoMLX, wrap it with Folder.Dataset, which implements
// train.Dataset and yields one sample at a time as tensors.
package datasets

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Loader reads and decodes one image given its path.
type Loader func(path string) (image.Image, error)

// Transform takes all the images of one sample -- HR first when present, then
// each requested (track, scale) pair -- and returns a transformed version.
// It may change the number of images.
type Transform func(images []image.Image) ([]image.Image, error)

// DefaultLoader decodes an image with the imaging library, converting it to
// NRGBA so all samples share a color model.
func DefaultLoader(filePath string) (image.Image, error) {
	img, err := imaging.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load image %q", filePath)
	}
	return imaging.Clone(img), nil
}

// Folder is a built super-resolution dataset: a list of aligned file-path
// tuples, consumable by index. Construct it with one of the dataset
// functions (Div2K, Set5, ...) followed by Config.Done.
//
// All methods are read-only after construction, so a Folder can be shared
// across goroutines.
type Folder struct {
	spec      *Spec
	root      string
	split     string
	entries   []TrackKey
	samples   [][]string
	loader    Loader
	transform Transform
}

// Name of the dataset, e.g. "DIV2K".
func (f *Folder) Name() string { return f.spec.Name }

// Split the Folder was built for.
func (f *Folder) Split() string { return f.split }

// Len returns the number of samples.
func (f *Folder) Len() int { return len(f.samples) }

// HasHR returns whether the samples include the high-resolution original as
// their first image. Test splits have no HR data.
func (f *Folder) HasHR() bool {
	return len(f.entries) > 0 && f.entries[0].Track == TrackHR
}

// Entries returns the (track, split, scale) of each image of a sample tuple,
// in tuple order: HR first when present, then each requested pair.
func (f *Folder) Entries() []TrackKey {
	entries := make([]TrackKey, len(f.entries))
	copy(entries, f.entries)
	return entries
}

// SamplePaths returns the file paths of sample index, in tuple order.
func (f *Folder) SamplePaths(index int) ([]string, error) {
	if index < 0 || index >= len(f.samples) {
		return nil, errors.Errorf("%s: sample index %d is out of range, dataset has %d samples",
			f.Name(), index, len(f.samples))
	}
	sample := make([]string, len(f.samples[index]))
	copy(sample, f.samples[index])
	return sample, nil
}

// At loads the images of sample index and applies the transform, if any.
// Images come in tuple order: HR first when present, then each requested
// (track, scale) pair.
func (f *Folder) At(index int) ([]image.Image, error) {
	paths, err := f.SamplePaths(index)
	if err != nil {
		return nil, err
	}
	images := make([]image.Image, len(paths))
	for i, filePath := range paths {
		images[i], err = f.loader(filePath)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s: failed to load sample #%d", f.Name(), index)
		}
	}
	if f.transform == nil {
		return images, nil
	}
	images, err = f.transform(images)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s: transform failed on sample #%d", f.Name(), index)
	}
	return images, nil
}
