// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

// srdatasets downloads the super-resolution datasets to a local directory and
// reports their sample counts and on-disk sizes.
//
// Example:
//
//	srdatasets --data=~/tmp/torchsr --datasets=div2k,set5 --scale=2
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"

	"github.com/Coloquinte/torchsr/datasets"
)

var (
	flagDataDir  = flag.String("data", "~/tmp/torchsr", "Directory where datasets are downloaded and extracted.")
	flagDatasets = flag.String("datasets", "div2k,set5,set14,b100,urban100", "Comma-separated list of datasets to fetch.")
	flagScale    = flag.Int("scale", 2, "Upsampling scale used when reporting sample counts.")
	flagTrack    = flag.String("track", datasets.TrackBicubic, "Downscaling track used when reporting sample counts.")
)

// configsFor returns the configurations to fetch and report for one dataset
// name. DIV2K reports both the train and val splits; the benchmarks only have
// a val split.
func configsFor(name string) []*datasets.Config {
	switch strings.ToLower(name) {
	case "div2k":
		return []*datasets.Config{
			datasets.Div2K(*flagDataDir).Split(datasets.SplitTrain),
			datasets.Div2K(*flagDataDir).Split(datasets.SplitVal),
		}
	case "set5":
		return []*datasets.Config{datasets.Set5(*flagDataDir)}
	case "set14":
		return []*datasets.Config{datasets.Set14(*flagDataDir)}
	case "b100":
		return []*datasets.Config{datasets.B100(*flagDataDir)}
	case "urban100":
		return []*datasets.Config{datasets.Urban100(*flagDataDir)}
	default:
		klog.Exitf("Unknown dataset %q, use one of div2k, set5, set14, b100, urban100", name)
		return nil
	}
}

// folderSize sums the on-disk sizes of every file referenced by the folder.
func folderSize(folder *datasets.Folder) uint64 {
	var total uint64
	for i := 0; i < folder.Len(); i++ {
		for _, filePath := range must.M1(folder.SamplePaths(i)) {
			info, err := os.Stat(filePath)
			if err != nil {
				continue
			}
			total += uint64(info.Size())
		}
	}
	return total
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	for _, name := range strings.Split(*flagDatasets, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for _, config := range configsFor(name) {
			folder := must.M1(config.Tracks(*flagTrack).Scales(*flagScale).Download().Done())
			fmt.Printf("%s %s X%d: %d samples, %s\n",
				folder.Name(), folder.Split(), *flagScale, folder.Len(),
				humanize.IBytes(folderSize(folder)))
		}
	}
}
