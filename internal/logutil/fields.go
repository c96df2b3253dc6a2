// Copyright 2025 Ekjot Singh
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Count renders n as a human-readable, comma-grouped field, the way large
// row/cell counts are rendered in operational log lines across this corpus.
func Count(key string, n int) zap.Field {
	return zap.String(key, humanize.Comma(int64(n)))
}

// Bytes renders n bytes as a human-readable size field.
func Bytes(key string, n uint64) zap.Field {
	return zap.String(key, humanize.Bytes(n))
}
