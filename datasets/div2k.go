// Copyright 2025-2026 The TorchSR Authors. SPDX-License-Identifier: Apache-2.0

package datasets

import (
	"path"

	"github.com/Coloquinte/torchsr/datautil"
)

// div2kSpec describes the DIV2K super-resolution dataset
// (https://data.vision.ee.ethz.ch/cvl/DIV2K/).
//
// The real_wild track exists upstream but is excluded: it has multiple
// downscaled images per HR image and needs special handling.
var div2kSpec = &Spec{
	Name:   "DIV2K",
	Subdir: "DIV2K",
	Archives: []Archive{
		// Training archives.
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_HR.zip", "bdc2d9338d4e574fe81bf7d158758658", "DIV2K_train_HR"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_bicubic_X2.zip", "9a637d2ef4db0d0a81182be37fb00692", "DIV2K_train_LR_bicubic/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_bicubic_X3.zip", "ad80b9fe40c049a07a8a6c51bfab3b6d", "DIV2K_train_LR_bicubic/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_bicubic_X4.zip", "76c43ec4155851901ebbe8339846d93d", "DIV2K_train_LR_bicubic/X4"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_unknown_X2.zip", "1396d023072c9aaeb999c28b81315233", "DIV2K_train_LR_unknown/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_unknown_X3.zip", "4e651308aaa54d917fb1264395b7f6fa", "DIV2K_train_LR_unknown/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_unknown_X4.zip", "e3c7febb1b3f78bd30f9ba15fe8e3956", "DIV2K_train_LR_unknown/X4"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_x8.zip", "613db1b855721b3d2b26f4194a1d22a6", "DIV2K_train_LR_X8"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_mild.zip", "807b3e3a5156f35bd3a86c5bbfb674bc", "DIV2K_train_LR_mild"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_difficult.zip", "5a8f2b9e0c5f5ed0dac271c1293662f4", "DIV2K_train_LR_difficult"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_train_LR_wild.zip", "d00982366bffee7c4739ba7ff1316b3b", "DIV2K_train_LR_wild"},
		// Validation archives.
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_HR.zip", "9fcdda83005c5e5997799b69f955ff88", "DIV2K_valid_HR"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_bicubic_X2.zip", "1512c9a3f7bde2a1a21a73044e46b9cb", "DIV2K_valid_LR_bicubic/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_bicubic_X3.zip", "18b1d310f9f88c13618c287927b29898", "DIV2K_valid_LR_bicubic/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_bicubic_X4.zip", "21962de700c8d368c6ff83314480eff0", "DIV2K_valid_LR_bicubic/X4"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_unknown_X2.zip", "d319bd9033573d21de5395e6454f34f8", "DIV2K_valid_LR_unknown/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_unknown_X3.zip", "05184168e3608b5c539fbfb46bcade4f", "DIV2K_valid_LR_unknown/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_unknown_X4.zip", "8ac3413102bb3d0adc67012efb8a6c94", "DIV2K_valid_LR_unknown/X4"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_x8.zip", "c5aeea2004e297e9ff3abfbe143576a5", "DIV2K_valid_LR_X8"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_mild.zip", "8c433f812ca532eed62c11ec0de08370", "DIV2K_valid_LR_mild"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_difficult.zip", "1620af11bf82996bc94df655cb6490fe", "DIV2K_valid_LR_difficult"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_valid_LR_wild.zip", "aacae8db6bec39151ca5bb9c80bf2f6c", "DIV2K_valid_LR_wild"},
		// Testing archives: no HR, and not all tracks.
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_bicubic_X2.zip", "8acf28bea75077e0e7f091c5b2833740", "DIV2K_test_LR_bicubic/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_bicubic_X3.zip", "2379a7d09c0466e93783398873edd168", "DIV2K_test_LR_bicubic/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_bicubic_X4.zip", "6f7cc64f0d8da00b415edd1bc3ef50c3", "DIV2K_test_LR_bicubic/X4"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_unknown_X2.zip", "8fbf73d6aaa28f88c1826db4527356cf", "DIV2K_test_LR_unknown/X2"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_unknown_X3.zip", "0da7370efb61d4a49be29e84c8071cfb", "DIV2K_test_LR_unknown/X3"},
		{"http://data.vision.ee.ethz.ch/cvl/DIV2K/DIV2K_test_LR_unknown_X4.zip", "1bc4643dbadc18617aa19a865f1b2b28", "DIV2K_test_LR_unknown/X4"},
	},
	TrackDirs: map[TrackKey]string{
		{TrackHR, SplitTrain, 1}:            "DIV2K_train_HR",
		{TrackBicubic, SplitTrain, 2}:       "DIV2K_train_LR_bicubic/X2",
		{TrackBicubic, SplitTrain, 3}:       "DIV2K_train_LR_bicubic/X3",
		{TrackBicubic, SplitTrain, 4}:       "DIV2K_train_LR_bicubic/X4",
		{TrackBicubic, SplitTrain, 8}:       "DIV2K_train_LR_X8",
		{TrackUnknown, SplitTrain, 2}:       "DIV2K_train_LR_unknown/X2",
		{TrackUnknown, SplitTrain, 3}:       "DIV2K_train_LR_unknown/X3",
		{TrackUnknown, SplitTrain, 4}:       "DIV2K_train_LR_unknown/X4",
		{TrackRealMild, SplitTrain, 4}:      "DIV2K_train_LR_mild",
		{TrackRealDifficult, SplitTrain, 4}: "DIV2K_train_LR_difficult",
		{TrackHR, SplitVal, 1}:              "DIV2K_valid_HR",
		{TrackBicubic, SplitVal, 2}:         "DIV2K_valid_LR_bicubic/X2",
		{TrackBicubic, SplitVal, 3}:         "DIV2K_valid_LR_bicubic/X3",
		{TrackBicubic, SplitVal, 4}:         "DIV2K_valid_LR_bicubic/X4",
		{TrackBicubic, SplitVal, 8}:         "DIV2K_valid_LR_X8",
		{TrackUnknown, SplitVal, 2}:         "DIV2K_valid_LR_unknown/X2",
		{TrackUnknown, SplitVal, 3}:         "DIV2K_valid_LR_unknown/X3",
		{TrackUnknown, SplitVal, 4}:         "DIV2K_valid_LR_unknown/X4",
		{TrackRealMild, SplitVal, 4}:        "DIV2K_valid_LR_mild",
		{TrackRealDifficult, SplitVal, 4}:   "DIV2K_valid_LR_difficult",
		{TrackBicubic, SplitTest, 2}:        "DIV2K_test_LR_bicubic/X2",
		{TrackBicubic, SplitTest, 3}:        "DIV2K_test_LR_bicubic/X3",
		{TrackBicubic, SplitTest, 4}:        "DIV2K_test_LR_bicubic/X4",
		{TrackUnknown, SplitTest, 2}:        "DIV2K_test_LR_unknown/X2",
		{TrackUnknown, SplitTest, 3}:        "DIV2K_test_LR_unknown/X3",
		{TrackUnknown, SplitTest, 4}:        "DIV2K_test_LR_unknown/X4",
	},
}

// Div2K configures the DIV2K super-resolution dataset, rooted at
// baseDir/DIV2K. It defaults to the bicubic track at scale X2 on the train
// split; change the options on the returned Config and call Done.
//
// Supported tracks/scales: bicubic (X2, X3, X4, X8), unknown (X2, X3, X4),
// real_mild and real_difficult (X4). The test split has no HR images and only
// the bicubic and unknown tracks at X2-X4.
func Div2K(baseDir string) *Config {
	root := path.Join(datautil.ReplaceTildeInDir(baseDir), div2kSpec.Subdir)
	return newConfig(div2kSpec, root, TrackBicubic, SplitTrain, 2)
}
