// SPDX-License-Identifier: EPL-2.0

package zenify

import "errors"

var ErrUnknownOutputFormat = errors.New("unknown output format")
