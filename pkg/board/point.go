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
	"strings"
)

// Point is the (row, col) coordinate of a square on the Board.
type Point struct {
	Row, Col int
}

// ParsePoint parses a point in the <row-label><col-label> format, like
// "7a". Whitespace around and between the two labels is ignored. The point
// has to lie inside a board of the given size.
func ParsePoint(s string, size int) (Point, error) {
	str := strings.Join(strings.Fields(s), "")
	if len(str) != 2 {
		return Point{}, fmt.Errorf("parse point: %q is not <row><col>", s)
	}

	row, found := LabelIndex(str[0])
	if !found || row >= size {
		return Point{}, fmt.Errorf("parse point: invalid row %q", str[0])
	}

	col, found := LabelIndex(str[1])
	if !found || col >= size {
		return Point{}, fmt.Errorf("parse point: invalid column %q", str[1])
	}

	return Point{Row: row, Col: col}, nil
}

// Inside checks if the point lies on a board of the given size.
func (point Point) Inside(size int) bool {
	return point.Row >= 0 && point.Row < size &&
		point.Col >= 0 && point.Col < size
}

func (point Point) String() string {
	if !point.Inside(MaxSize) {
		return fmt.Sprintf("(%d, %d)", point.Row, point.Col)
	}

	return string([]byte{Label(point.Row), Label(point.Col)})
}
