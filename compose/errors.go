// SPDX-License-Identifier: EPL-2.0

package compose

import "errors"

var ErrInvalidConfig = errors.New("invalid composer configuration")
