// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Labels is the alphabet used to name rows and columns, one character per
// index. Its length is what limits the maximum size of a Board.
const Labels = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	MinSize = 16
	MaxSize = len(Labels)
)

// Label returns the label character of the given row or column index.
func Label(i int) byte {
	return Labels[i]
}

// LabelIndex returns the row or column index named by the given label.
func LabelIndex(c byte) (int, bool) {
	i := strings.IndexByte(Labels, c)
	return i, i >= 0
}

// ParseSize parses a board size from user input. Sizes outside the range
// [MinSize, MaxSize] are rejected.
func ParseSize(s string) (int, error) {
	size, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse size: %q is not a number", strings.TrimSpace(s))
	}

	if size < MinSize || size > MaxSize {
		return 0, fmt.Errorf("parse size: %d is outside [%d, %d]", size, MinSize, MaxSize)
	}

	return size, nil
}
