// Copyright 2025 walteh LLC
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

package status

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for the source name
	statusWidth = 10 // Width for status text
)

// 🎯 FormatOutcomeLine formats a rename outcome as one colored console line
func FormatOutcomeLine(from, to string, status Status, reason Reason) string {
	var prefix string
	switch status {
	case StatusRenamed:
		prefix = color.GreenString("✓")
	case StatusPlanned:
		prefix = color.CyanString("→")
	case StatusFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("•")
	}

	detail := to
	if status == StatusSkipped || (status == StatusFailed && to == "") {
		detail = reason.String()
	} else if status == StatusFailed {
		detail = fmt.Sprintf("%s (%s)", to, reason)
	}

	return fmt.Sprintf("%s%s %s %s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		fmt.Sprintf("%-*s", nameWidth, from),
		fmt.Sprintf("%-*s", statusWidth, status),
		detail,
	)
}
