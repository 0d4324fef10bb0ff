// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gl33

import (
	"github.com/gogpu/tess/backend"
)

// init registers the GL backend on package import.
//
//	import _ "github.com/gogpu/tess/backend/gl33"
func init() {
	backend.Register(backend.BackendGL33, func() (backend.Device, error) {
		if err := Init(); err != nil {
			return nil, err
		}
		return New(), nil
	})
}
