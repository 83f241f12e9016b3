package elementary

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// HardwareFMA reports whether the running CPU has a fused multiply-add
// instruction. The evaluators never fuse, so the answer is informational.
func HardwareFMA() bool {
	switch runtime.GOARCH {
	case "amd64":
		return cpu.X86.HasFMA
	case "arm64":
		// Note: FMADD is part of the ARMv8 base ISA; ASIMD is always true there.
		return cpu.ARM64.HasASIMD
	case "ppc64", "ppc64le", "s390x", "riscv64":
		return true
	default:
		return false
	}
}
