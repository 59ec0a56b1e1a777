// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"os"
	"path"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"k8s.io/klog/v2"

	"github.com/Coloquinte/torchsr/datautil"
)

// Named tracks and splits used by the dataset tables. The high-resolution
// originals are modeled as their own track, "hr", at scale 1.
const (
	TrackHR            = "hr"
	TrackBicubic       = "bicubic"
	TrackUnknown       = "unknown"
	TrackRealMild      = "real_mild"
	TrackRealDifficult = "real_difficult"

	SplitTrain = "train"
	SplitVal   = "val"
	SplitTest  = "test"
)

// downloadSubdir is where archives are stored under a dataset root, before
// being extracted into the root itself.
const downloadSubdir = "downloads"

// TrackKey identifies one directory of a dataset: a downscaling track, a
// dataset split and the upsampling scale relating the low-resolution images
// to their high-resolution originals.
type TrackKey struct {
	Track string
	Split string
	Scale int
}

// Archive is one downloadable file of a dataset. Target is the directory
// (relative to the dataset root) that its extraction produces; when Target
// already exists the archive is skipped.
type Archive struct {
	URL    string
	MD5    string
	Target string
}

// Spec is the static description of a dataset: the archives it is distributed
// as, and the subdirectory serving each (track, split, scale) triple.
type Spec struct {
	// Name of the dataset, e.g. "DIV2K" or "Set5". Used in error messages.
	Name string

	// Subdir under the user-provided base directory where the dataset lives,
	// e.g. "DIV2K" or "SRBenchmarks".
	Subdir string

	// Archives to fetch when downloading, in order.
	Archives []Archive

	// TrackDirs maps each supported (track, split, scale) to a directory
	// relative to the dataset root.
	TrackDirs map[TrackKey]string
}

// Tracks lists the tracks of the dataset, sorted. It includes "hr".
func (s *Spec) Tracks() []string {
	seen := make(map[string]bool)
	for key := range s.TrackDirs {
		seen[key.Track] = true
	}
	tracks := maps.Keys(seen)
	sort.Strings(tracks)
	return tracks
}

// Splits lists the splits of the dataset, sorted.
func (s *Spec) Splits() []string {
	seen := make(map[string]bool)
	for key := range s.TrackDirs {
		seen[key.Split] = true
	}
	splits := maps.Keys(seen)
	sort.Strings(splits)
	return splits
}

// HasSplit returns whether the dataset serves the given split.
func (s *Spec) HasSplit(split string) bool {
	for key := range s.TrackDirs {
		if key.Split == split {
			return true
		}
	}
	return false
}

// hasHR returns whether the given split comes with high-resolution originals.
// Test splits usually don't.
func (s *Spec) hasHR(split string) bool {
	_, found := s.TrackDirs[TrackKey{TrackHR, split, 1}]
	return found
}

// scalesFor lists the scales the given track supports on the given split, sorted.
func (s *Spec) scalesFor(track, split string) []int {
	var scales []int
	for key := range s.TrackDirs {
		if key.Track == track && key.Split == split {
			scales = append(scales, key.Scale)
		}
	}
	sort.Ints(scales)
	return scales
}

// hasTrack returns whether the dataset has the given track on any split.
func (s *Spec) hasTrack(track string) bool {
	for key := range s.TrackDirs {
		if key.Track == track {
			return true
		}
	}
	return false
}

// Dir resolves the directory serving the given (track, split, scale), under
// the given dataset root. Unknown tracks, splits or scales return descriptive
// errors listing the valid alternatives.
func (s *Spec) Dir(root, track, split string, scale int) (string, error) {
	if dir, found := s.TrackDirs[TrackKey{track, split, scale}]; found {
		return path.Join(root, dir), nil
	}
	if !s.hasTrack(track) {
		return "", errors.Errorf("%s: track %q does not exist, use one of %v",
			s.Name, track, s.Tracks())
	}
	if !s.HasSplit(split) {
		return "", errors.Errorf("%s: split %q is not valid, use one of %v",
			s.Name, split, s.Splits())
	}
	return "", errors.Errorf("%s: track %q on split %q does not include scale X%d, valid scales are %v",
		s.Name, track, split, scale, s.scalesFor(track, split))
}

// listSamples returns the sorted file paths under the directory serving the
// given (track, split, scale).
func (s *Spec) listSamples(root, track, split string, scale int) ([]string, error) {
	dir, err := s.Dir(root, track, split, scale)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: failed to list track %q X%d under %q",
			s.Name, track, scale, dir)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	samples := make([]string, len(names))
	for i, name := range names {
		samples[i] = path.Join(dir, name)
	}
	klog.V(1).Infof("%s: %d files for track %q X%d (split %q)", s.Name, len(samples), track, scale, split)
	return samples, nil
}

// download fetches and extracts every archive of the dataset into root,
// sequentially, skipping the ones already extracted. The X4/X8 archives are
// not big, so all of them are always fetched.
func (s *Spec) download(root string) error {
	for _, archive := range s.Archives {
		file := path.Join(downloadSubdir, path.Base(archive.URL))
		var err error
		if strings.HasSuffix(archive.URL, ".zip") {
			err = datautil.DownloadAndUnzipIfMissing(archive.URL, root, file, archive.Target, archive.MD5)
		} else {
			err = datautil.DownloadAndUntarIfMissing(archive.URL, root, file, archive.Target, archive.MD5)
		}
		if err != nil {
			return errors.WithMessagef(err, "%s: failed to fetch %q", s.Name, archive.URL)
		}
	}
	return nil
}
