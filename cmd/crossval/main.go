// Copyright 2026 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gorse-io/crossval/base"
	"github.com/gorse-io/crossval/base/log"
	"github.com/gorse-io/crossval/dataset"
	"github.com/gorse-io/crossval/model"
	"github.com/gorse-io/crossval/validation"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "crossval",
	Short: "Cross-validate an estimator over a data set",
	Run: func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.PersistentFlags().GetBool("debug")
		log.SetLogger(cmd.PersistentFlags(), debug)
		csvPath, _ := cmd.PersistentFlags().GetString("csv")
		var x [][]float32
		var y []float32
		var err error
		if csvPath != "" {
			x, y, err = dataset.LoadCSV(csvPath)
		} else {
			x, y, err = dataset.LoadIris()
		}
		if err != nil {
			log.Logger().Fatal("failed to load data set", zap.Error(err))
		}
		folds, _ := cmd.PersistentFlags().GetInt("folds")
		scoring, _ := cmd.PersistentFlags().GetString("scoring")
		neighbors, _ := cmd.PersistentFlags().GetInt("neighbors")
		seed, _ := cmd.PersistentFlags().GetInt64("random-state")
		estimators := map[string]model.Model{
			"knn":    model.NewKNN(base.Params{base.K: neighbors, base.RandomState: seed}),
			"mean":   model.NewMean(base.Params{base.RandomState: seed}),
			"random": model.NewRandom(base.Params{base.RandomState: seed}),
		}
		name, _ := cmd.PersistentFlags().GetString("estimator")
		estimator, exist := estimators[name]
		if !exist {
			log.Logger().Fatal("unknown estimator", zap.String("estimator", name))
		}
		result, err := validation.CrossValidate(estimator, x, y, scoring,
			folds, 1, nil, validation.NewFitOptions())
		if err != nil {
			log.Logger().Fatal("cross-validation failed", zap.Error(err))
		}
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Fold", "Score", "Test Size", "Time")
		for i, record := range result.Records {
			_ = table.Append([]string{
				strconv.Itoa(i + 1),
				fmt.Sprintf("%.5f", record.TestScore),
				strconv.Itoa(record.TestSize),
				record.Duration.String(),
			})
		}
		mean, margin := result.MeanAndMargin()
		_ = table.Append([]string{"mean", fmt.Sprintf("%.5f(±%.5f)", mean, margin), "", ""})
		_ = table.Render()
		for _, diagnostic := range result.Diagnostics {
			log.Logger().Warn(diagnostic.Message, zap.String("code", diagnostic.Code))
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("crossval version", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.PersistentFlags().Bool("debug", false, "use debug log mode")
	rootCmd.PersistentFlags().String("csv", "", "path to a CSV data set, the last column is the target")
	rootCmd.PersistentFlags().String("estimator", "knn", "estimator to evaluate (knn, mean, random)")
	rootCmd.PersistentFlags().String("scoring", "accuracy", "scoring metric (accuracy, rmse, mae, r2)")
	rootCmd.PersistentFlags().Int("folds", 5, "number of cross-validation folds")
	rootCmd.PersistentFlags().Int("neighbors", 5, "number of neighbors for knn")
	rootCmd.PersistentFlags().Int64("random-state", 0, "random seed")
	log.AddFlags(rootCmd.PersistentFlags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Logger().Fatal("failed to execute command", zap.Error(err))
	}
}
