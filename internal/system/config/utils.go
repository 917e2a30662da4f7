/*
 * Copyright (c) 2026, Vocalia Inc. (https://vocalia.io).
 *
 * Vocalia Inc. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"os"
	"path"

	"gopkg.in/yaml.v2"

	"github.com/vocalia/customer-feedback-service/internal/system/constants"
)

// LoadConfig reads the deployment YAML, expanding ${VAR} references from the environment.
func LoadConfig(serviceHome, filePath string) (*Config, error) {
	file, err := os.ReadFile(path.Join(serviceHome, filePath))
	if err != nil {
		return nil, err
	}

	expanded := os.ExpandEnv(string(file))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, err
	}
	applyDetectionDefaults(&cfg)
	return &cfg, nil
}

// applyDetectionDefaults backfills conflict detection parameters left unset in the YAML.
func applyDetectionDefaults(cfg *Config) {
	if cfg.Detection.CollisionScanBound <= 0 {
		cfg.Detection.CollisionScanBound = constants.DefaultCollisionScanBound
	}
	if cfg.Detection.FrequencyRatioCutoff <= 0 {
		cfg.Detection.FrequencyRatioCutoff = constants.DefaultFrequencyRatioCutoff
	}
}
