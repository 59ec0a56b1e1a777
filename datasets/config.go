// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Config holds the configuration returned by the dataset functions (Div2K,
// Set5, ...). Set the options with the chained methods, then call Done to
// locate, verify and pair the files.
type Config struct {
	spec      *Spec
	root      string
	scales    []int
	tracks    []string
	split     string
	loader    Loader
	transform Transform
	download  bool
}

// newConfig creates a Config for the given dataset spec, rooted at root, with
// the dataset's defaults.
func newConfig(spec *Spec, root, track, split string, scale int) *Config {
	return &Config{
		spec:   spec,
		root:   root,
		scales: []int{scale},
		tracks: []string{track},
		split:  split,
		loader: DefaultLoader,
	}
}

// Scales sets the upsampling factors to pair with the HR images, one LR image
// per scale. It defaults to 2.
//
// It panics on non-positive scales -- whether a dataset serves a scale is
// only checked at Done.
func (c *Config) Scales(scales ...int) *Config {
	if len(scales) == 0 {
		exceptions.Panicf("datasets: Scales requires at least one scale")
	}
	for _, scale := range scales {
		if scale <= 0 {
			exceptions.Panicf("datasets: invalid scale %d, scales must be positive", scale)
		}
	}
	c.scales = scales
	return c
}

// Tracks sets the downscaling tracks, e.g. "bicubic" or "unknown". A single
// track is broadcast to all configured scales; otherwise one track per scale
// must be given. It defaults to "bicubic".
func (c *Config) Tracks(tracks ...string) *Config {
	if len(tracks) == 0 {
		exceptions.Panicf("datasets: Tracks requires at least one track")
	}
	for _, track := range tracks {
		if track == "" {
			exceptions.Panicf("datasets: empty track name")
		}
	}
	c.tracks = tracks
	return c
}

// Split selects the dataset partition: "train", "val" or "test".
func (c *Config) Split(split string) *Config {
	c.split = split
	return c
}

// WithLoader replaces the image loader. It defaults to DefaultLoader.
func (c *Config) WithLoader(loader Loader) *Config {
	if loader == nil {
		exceptions.Panicf("datasets: WithLoader given a nil loader")
	}
	c.loader = loader
	return c
}

// WithTransform sets a transform applied to the images of each sample by
// Folder.At. Notice it takes all the images of a sample at once, so paired
// transformations (e.g. aligned crops) can be expressed.
func (c *Config) WithTransform(transform Transform) *Config {
	c.transform = transform
	return c
}

// Download makes Done fetch and extract the dataset archives into the root
// directory first. Archives already extracted are not fetched again.
func (c *Config) Download() *Config {
	c.download = true
	return c
}

// Done validates the configuration against the dataset tables, optionally
// downloads the archives, lists the per-track directories and pairs their
// files into samples.
//
// Table lookups are validated for every requested (track, scale) before any
// directory is read, so an unsupported combination fails without file I/O.
func (c *Config) Done() (*Folder, error) {
	tracks := c.tracks
	if len(tracks) == 1 && len(c.scales) > 1 {
		tracks = make([]string, len(c.scales))
		for i := range tracks {
			tracks[i] = c.tracks[0]
		}
	}
	if len(tracks) != len(c.scales) {
		return nil, errors.Errorf("%s: the number of tracks (%d) and of scales (%d) must be the same",
			c.spec.Name, len(tracks), len(c.scales))
	}

	entries := make([]TrackKey, 0, len(tracks)+1)
	if c.spec.hasHR(c.split) {
		entries = append(entries, TrackKey{TrackHR, c.split, 1})
	}
	for i, track := range tracks {
		entries = append(entries, TrackKey{track, c.split, c.scales[i]})
	}

	// Validate every lookup before touching the file-system.
	for _, entry := range entries {
		if _, err := c.spec.Dir(c.root, entry.Track, entry.Split, entry.Scale); err != nil {
			return nil, err
		}
	}

	if c.download {
		if err := c.spec.download(c.root); err != nil {
			return nil, err
		}
	}

	lists := make([][]string, len(entries))
	for i, entry := range entries {
		var err error
		lists[i], err = c.spec.listSamples(c.root, entry.Track, entry.Split, entry.Scale)
		if err != nil {
			return nil, err
		}
		if len(lists[i]) != len(lists[0]) {
			return nil, errors.Errorf("%s: number of files for track %q X%d (%d) does not match track %q X%d (%d)",
				c.spec.Name, entry.Track, entry.Scale, len(lists[i]),
				entries[0].Track, entries[0].Scale, len(lists[0]))
		}
	}

	samples := make([][]string, len(lists[0]))
	for i := range samples {
		sample := make([]string, len(lists))
		for j := range lists {
			sample[j] = lists[j][i]
		}
		samples[i] = sample
	}
	klog.V(1).Infof("%s: %d samples for split %q", c.spec.Name, len(samples), c.split)

	return &Folder{
		spec:      c.spec,
		root:      c.root,
		split:     c.split,
		entries:   entries,
		samples:   samples,
		loader:    c.loader,
		transform: c.transform,
	}, nil
}
