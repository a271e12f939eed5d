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

package dataset

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/juju/errors"
	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/gorse-io/crossval/base/log"
)

var (
	tempDir    string
	datasetDir string
)

func init() {
	usr, err := user.Current()
	if err != nil {
		log.Logger().Fatal("failed to get user directory", zap.Error(err))
	}
	datasetDir = filepath.Join(usr.HomeDir, ".crossval", "dataset")
	tempDir = filepath.Join(usr.HomeDir, ".crossval", "temp")
}

// LoadIris loads the iris data set: 150 rows of 4 features and a class label
// out of 3 species, encoded as 0, 1 and 2.
func LoadIris() ([][]float32, []float32, error) {
	// Download dataset
	path, err := DownloadAndUnzip("iris")
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	dataFile := filepath.Join(path, "iris.data")
	// Load data
	f, err := os.Open(dataFile)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	// Parse data
	data := make([][]float32, len(rows))
	target := make([]float32, len(rows))
	classes := make(map[string]int)
	for i, row := range rows {
		data[i] = make([]float32, 4)
		for j, cell := range row[:4] {
			value, err := strconv.ParseFloat(cell, 32)
			if err != nil {
				return nil, nil, errors.Trace(err)
			}
			data[i][j] = float32(value)
		}
		if _, exist := classes[row[4]]; !exist {
			classes[row[4]] = len(classes)
		}
		target[i] = float32(classes[row[4]])
	}
	return data, target, nil
}

// LoadCSV loads a numeric CSV file. The last column is the target.
func LoadCSV(path string) ([][]float32, []float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	defer f.Close()
	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Trace(err)
	}
	data := make([][]float32, len(rows))
	target := make([]float32, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, errors.NotValidf("row %d with %d columns", i, len(row))
		}
		data[i] = make([]float32, len(row)-1)
		for j, cell := range row {
			value, err := strconv.ParseFloat(strings.TrimSpace(cell), 32)
			if err != nil {
				return nil, nil, errors.Trace(err)
			}
			if j < len(row)-1 {
				data[i][j] = float32(value)
			} else {
				target[i] = float32(value)
			}
		}
	}
	return data, target, nil
}

// DownloadAndUnzip fetches a built-in data set into the local cache.
func DownloadAndUnzip(name string) (string, error) {
	url := fmt.Sprintf("https://cdn.gorse.io/datasets/%s.zip", name)
	path := filepath.Join(datasetDir, name)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		zipFileName, err := downloadFromUrl(url, tempDir)
		if err != nil {
			return "", errors.Trace(err)
		}
		if _, err := unzip(zipFileName, datasetDir); err != nil {
			return "", errors.Trace(err)
		}
	}
	return path, nil
}

// downloadFromUrl downloads file from URL.
func downloadFromUrl(src, dst string) (string, error) {
	log.Logger().Info("Download dataset", zap.String("source", src), zap.String("destination", dst))
	// Extract file name
	tokens := strings.Split(src, "/")
	fileName := filepath.Join(dst, tokens[len(tokens)-1])
	// Create file
	if err := os.MkdirAll(filepath.Dir(fileName), os.ModePerm); err != nil {
		return fileName, errors.Trace(err)
	}
	output, err := os.Create(fileName)
	if err != nil {
		log.Logger().Error("failed to create file", zap.Error(err), zap.String("filename", fileName))
		return fileName, errors.Trace(err)
	}
	defer output.Close()
	// Download file
	response, err := http.Get(src)
	if err != nil {
		log.Logger().Error("failed to download", zap.Error(err), zap.String("source", src))
		return fileName, errors.Trace(err)
	}
	defer response.Body.Close()
	// Save file
	bar := progressbar.DefaultBytes(response.ContentLength, "downloading")
	_, err = io.Copy(io.MultiWriter(output, bar), response.Body)
	if err != nil {
		log.Logger().Error("failed to download", zap.Error(err), zap.String("source", src))
		return fileName, errors.Trace(err)
	}
	return fileName, nil
}

// unzip zip file.
func unzip(src, dst string) ([]string, error) {
	var fileNames []string
	// Open zip file
	r, err := zip.OpenReader(src)
	if err != nil {
		return fileNames, errors.Trace(err)
	}
	defer r.Close()
	// Extract files
	for _, f := range r.File {
		// Open file
		rc, err := f.Open()
		if err != nil {
			return fileNames, errors.Trace(err)
		}
		// Store filename/path for returning and using later on
		filePath := filepath.Join(dst, f.Name)
		// Check for ZipSlip. More Info: http://bit.ly/2MsjAWE
		if !strings.HasPrefix(filePath, filepath.Clean(dst)+string(os.PathSeparator)) {
			return fileNames, errors.NotValidf("illegal file path %s", filePath)
		}
		// Add filename
		fileNames = append(fileNames, filePath)
		if f.FileInfo().IsDir() {
			// Create folder
			if err = os.MkdirAll(filePath, os.ModePerm); err != nil {
				return fileNames, errors.Trace(err)
			}
		} else {
			// Create all folders
			if err = os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
				return fileNames, errors.Trace(err)
			}
			// Create file
			outFile, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.Mode())
			if err != nil {
				return fileNames, errors.Trace(err)
			}
			// Save file
			_, err = io.Copy(outFile, rc)
			if err != nil {
				return nil, errors.Trace(err)
			}
			outFile.Close()
		}
		rc.Close()
	}
	return fileNames, nil
}
