// Copyright 2019 Google Inc.
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

package reporter

import (
	"github.com/go-faster/errors"
	"go.uber.org/multierr"
)

// Err joins every report in c into a single error, the shape an
// invalid-data outcome hands back to the caller. Reports collected out
// of a subtree that the caller then discards are still individually
// inspectable via errors.As/multierr.Errors.
func (c *Collector) Err() error {
	reports := c.Reports()
	if len(reports) == 0 {
		return nil
	}
	errs := make([]error, len(reports))
	for i, r := range reports {
		errs[i] = r
	}
	return multierr.Combine(errs...)
}

// Fatal wraps an infrastructure failure (allocation, I/O) as a distinct
// fatal outcome, separate from the schema-level invalid outcome
// reports produce.
func Fatal(context string, cause error) error {
	return errors.Wrap(cause, context)
}
