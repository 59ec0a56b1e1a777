// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"path"

	"github.com/Coloquinte/torchsr/datautil"
)

// The four classic evaluation sets (Set5, Set14, B100 and Urban100) are all
// distributed in the single benchmark archive linked to by EDSR
// (https://github.com/zhouhuanxiang/EDSR-PyTorch): benchmark/<Name>/HR and
// benchmark/<Name>/LR_bicubic/X{2,3,4}. They only have a "val" split.
var benchmarkArchives = []Archive{
	{"https://cv.snu.ac.kr/research/EDSR/benchmark.tar", "4ace41d33c2384b97e6b320cd0afd6ba", "benchmark"},
}

// benchmarkSpec builds the Spec of one of the EDSR benchmark datasets.
func benchmarkSpec(name string) *Spec {
	return &Spec{
		Name:     name,
		Subdir:   "SRBenchmarks",
		Archives: benchmarkArchives,
		TrackDirs: map[TrackKey]string{
			{TrackHR, SplitVal, 1}:      path.Join("benchmark", name, "HR"),
			{TrackBicubic, SplitVal, 2}: path.Join("benchmark", name, "LR_bicubic", "X2"),
			{TrackBicubic, SplitVal, 3}: path.Join("benchmark", name, "LR_bicubic", "X3"),
			{TrackBicubic, SplitVal, 4}: path.Join("benchmark", name, "LR_bicubic", "X4"),
		},
	}
}

var (
	set5Spec     = benchmarkSpec("Set5")
	set14Spec    = benchmarkSpec("Set14")
	b100Spec     = benchmarkSpec("B100")
	urban100Spec = benchmarkSpec("Urban100")
)

// newBenchmarkConfig roots a benchmark dataset at baseDir/SRBenchmarks with
// the defaults shared by all of them: bicubic track, scale X2, val split.
func newBenchmarkConfig(spec *Spec, baseDir string) *Config {
	root := path.Join(datautil.ReplaceTildeInDir(baseDir), spec.Subdir)
	return newConfig(spec, root, TrackBicubic, SplitVal, 2)
}

// Set5 configures the Set5 super-resolution benchmark (5 images), rooted at
// baseDir/SRBenchmarks. Bicubic track at scales X2, X3 or X4, "val" split only.
func Set5(baseDir string) *Config { return newBenchmarkConfig(set5Spec, baseDir) }

// Set14 configures the Set14 super-resolution benchmark (14 images), rooted at
// baseDir/SRBenchmarks. Bicubic track at scales X2, X3 or X4, "val" split only.
func Set14(baseDir string) *Config { return newBenchmarkConfig(set14Spec, baseDir) }

// B100 configures the BSDS100 super-resolution benchmark (100 images), rooted
// at baseDir/SRBenchmarks. Bicubic track at scales X2, X3 or X4, "val" split only.
func B100(baseDir string) *Config { return newBenchmarkConfig(b100Spec, baseDir) }

// Urban100 configures the Urban100 super-resolution benchmark (100 urban
// scenes), rooted at baseDir/SRBenchmarks. Bicubic track at scales X2, X3 or
// X4, "val" split only.
func Urban100(baseDir string) *Config { return newBenchmarkConfig(urban100Spec, baseDir) }
