// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package quad

import "code.hybscloud.com/atomix"

// abortFlag is the sticky process-wide non-convergence indicator.
// Any run terminating with StatusPrecisionFloor or StatusMaxSplit
// sets it; nothing in this package ever clears it. Callers that poll
// it for a specific run must ResetAbort before that run.
//
// The flag exists for parity with polling-style callers; Result.Status
// carries the same information per run and should be preferred.
// Intended for single-threaded use, like the rest of the call surface.
var abortFlag atomix.Uint32

// Aborted reports whether any run since the last ResetAbort
// terminated without meeting a tolerance.
func Aborted() bool { return abortFlag.Load() != 0 }

// ResetAbort clears the sticky abort flag.
func ResetAbort() { abortFlag.Store(0) }

func setAbort() { abortFlag.Store(1) }
