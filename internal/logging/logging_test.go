// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInit(t *testing.T) {
	if err := Init("debug", false); err != nil {
		t.Fatalf("Init(debug): %v", err)
	}
	if got := Get().GetLevel(); got != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", got)
	}

	if err := Init("loud", false); err == nil {
		t.Error("Init(loud) returned nil error")
	}
	if got := Get().GetLevel(); got != logrus.InfoLevel {
		t.Errorf("level after bad Init = %v, want info", got)
	}
}

func TestGetDefault(t *testing.T) {
	log = nil
	if Get() == nil {
		t.Fatal("Get() returned nil")
	}
}
